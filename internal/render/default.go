package render

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out io.Writer

	buffer       strings.Builder
	fd           int
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) Init() error {
	r.fd = int(os.Stdout.Fd())
	state, err := term.MakeRaw(r.fd)
	if nil != err {
		return err
	}
	r.restoreState = state

	io.WriteString(r.out(), "\033[?1049h"+ // Enable alternate buffer
		"\033[?25l"+ // Make the cursor invisible
		"\033[J", // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	io.WriteString(r.out(), "\033[?1049l"+ // Disable alternate buffer
		"\033[?25h", // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

// Size falls back to 80x24 when stdout is not a terminal.
func (r *DefaultRenderer) Size() (int, int) {
	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return 80, 24
	}
	return columns, rows
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop redraws every frame period until render returns false or ctx
// is done.
func (r *DefaultRenderer) RenderLoop(ctx context.Context, framePeriod time.Duration, render func(now time.Time) bool) {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()
	for {
		r.buffer.WriteString("\033[H\033[J")
		cont := render(time.Now())
		r.tickDecorations()
		r.flush()
		if !cont {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// move positions the cursor, rows and columns start at 1.
func (r *DefaultRenderer) move(row, column int) {
	fmt.Fprintf(&r.buffer, "\033[%d;%dH", row, column)
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.move(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.move(row, column)
	fmt.Fprintf(&r.buffer, "\033[38;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, message)
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.out(), r.buffer.String())
	r.buffer.Reset()
}
