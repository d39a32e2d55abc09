package engine

import "github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"

type EventKind int

const (
	NoteHit EventKind = iota
	NoteMiss
	OpponentHit
	HoldDropped
	HoldComplete
	StrumPress
	StrumRelease
	BeatHit
	GameOver
)

var eventNames = [...]string{
	"note-hit", "note-miss", "opponent-hit", "hold-dropped", "hold-complete",
	"strum-press", "strum-release", "beat", "game-over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is published to listeners. It carries values only, never renderer state.
type Event struct {
	Kind     EventKind
	Position float64
	Lane     game.Lane
	Player   bool
	Hold     bool
	Tier     int // -1 when not a judgement
	TimeDiff float64
	Combo    int
	Score    int
	Health   float64
	Beat     int
}

type Listener interface {
	Notify(Event)
}

type ListenerFunc func(Event)

func (f ListenerFunc) Notify(e Event) {
	f(e)
}
