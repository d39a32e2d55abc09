package theme

import (
	"image/color"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

type Theme interface {
	RenderNote(lane game.Lane, player bool) string
	RenderHold(lane game.Lane, player bool) string
	RenderStrum(lane game.Lane, pressed bool) string
	TierColor(name string) color.RGBA
	TierLabel(name string) string
}
