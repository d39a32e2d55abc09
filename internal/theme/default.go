package theme

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

type DefaultTheme struct {
}

func paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane game.Lane, player bool) string {
	if !player {
		return paint(opponentColor, syms[lane])
	}
	return paint(laneColors[lane], syms[lane])
}

func (t *DefaultTheme) RenderHold(lane game.Lane, player bool) string {
	if !player {
		return paint(opponentColor, holdSym)
	}
	return paint(laneColors[lane], holdSym)
}

func (t *DefaultTheme) RenderStrum(lane game.Lane, pressed bool) string {
	if pressed {
		return paint(laneColors[lane], barSyms[lane])
	}
	return paint(strumColor, barSyms[lane])
}

func (t *DefaultTheme) TierColor(name string) color.RGBA {
	col, ok := tierColors[name]
	if !ok {
		return tierColors[""]
	}
	return col
}

// TierLabel is the name right-aligned and colored for the stats column.
func (t *DefaultTheme) TierLabel(name string) string {
	label := name
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return paint(t.TierColor(name), fmt.Sprintf("%11v", label))
}

const (
	holdSym = "┃"
)

var (
	syms          = [...]string{"◀", "▼", "▲", "▶"}
	barSyms       = [...]string{"◁", "▽", "△", "▷"}
	strumColor    = color.RGBA{106, 106, 106, 255}
	opponentColor = color.RGBA{173, 173, 173, 255}
	laneColors    = [...]color.RGBA{
		{194, 75, 153, 255}, // purple
		{0, 255, 255, 255},  // cyan
		{18, 250, 5, 255},   // green
		{249, 57, 63, 255},  // red
	}
	tierColors = map[string]color.RGBA{
		"sick": {173, 236, 236, 255},
		"good": {0, 236, 128, 255},
		"bad":  {236, 195, 0, 255},
		"shit": {236, 128, 0, 255},
		"miss": {236, 30, 0, 255},
		"":     {255, 255, 255, 255},
	}
)
