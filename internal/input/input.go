// Package input turns keyboard activity into lane press and release events.
package input

import (
	"context"
	"time"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

type Event struct {
	Lane    game.Lane
	Pressed bool
	Quit    bool
	At      time.Time // When the key changed state
}

// Source delivers events until ctx is cancelled or the device fails.
type Source interface {
	Run(ctx context.Context, events chan<- Event) error
}

// LaneMap resolves a key to a lane.
type LaneMap func(r rune) (game.Lane, bool)

func send(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
