package render

import (
	"context"
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	AddDecoration(col, row int, content string, frames int)
	RenderLoop(ctx context.Context, framePeriod time.Duration, render func(now time.Time) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, c color.RGBA, message string)
}
