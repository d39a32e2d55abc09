package game

import (
	"errors"
	"math"
)

// State is the single lifecycle phase a note is in.
type State int

const (
	Unspawned State = iota
	Pending
	Hit
	Missed
	Holding
	HoldResolved
	CleanedUp
)

var stateNames = [...]string{"unspawned", "pending", "hit", "missed", "holding", "hold-resolved", "cleaned-up"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

var ErrInvalidNote = errors.New("invalid note")

type Note struct {
	StrumTime     float64 // The song position in ms the note should be hit
	Lane          Lane
	Player        bool    // Owned by the player strumline, else the opponent
	SustainLength float64 // Hold tail length in ms, 0 for taps

	// This is state, mutated only by the engine
	Spawned       bool
	WasHit        bool
	TooLate       bool // Missed, or cleaned up
	CanBeHit      bool
	BeingHeld     bool
	HoldReleased  bool
	HoldEndPassed bool
	Cleaned       bool

	HitTime         float64 // Song position of the head hit
	HoldScoreTime   float64 // Last hold score tick
	HoldHealTime    float64 // Last hold health tick
	RetiredSegments int     // Hold segments scrolled past the strumline
}

// NewNote validates and builds a note with all lifecycle flags cleared.
func NewNote(strumTime float64, lane Lane, player bool, sustain float64) (*Note, error) {
	if math.IsNaN(strumTime) || math.IsInf(strumTime, 0) {
		return nil, ErrInvalidNote
	}
	if !lane.Valid() {
		return nil, ErrInvalidNote
	}
	if math.IsNaN(sustain) || math.IsInf(sustain, 0) || sustain < 0 {
		sustain = 0
	}
	return &Note{
		StrumTime:     strumTime,
		Lane:          lane,
		Player:        player,
		SustainLength: sustain,
	}, nil
}

func (n *Note) IsHold() bool {
	return n.SustainLength > 0
}

// EndTime is when the hold tail reaches the strumline.
func (n *Note) EndTime() float64 {
	return n.StrumTime + n.SustainLength
}

// Resolved reports whether the head has been judged either way.
func (n *Note) Resolved() bool {
	return n.WasHit || n.TooLate
}

func (n *Note) State() State {
	switch {
	case n.Cleaned:
		return CleanedUp
	case !n.Spawned:
		return Unspawned
	case n.BeingHeld:
		return Holding
	case n.IsHold() && (n.HoldReleased || n.HoldEndPassed):
		return HoldResolved
	case n.TooLate:
		return Missed
	case n.WasHit:
		return Hit
	}
	return Pending
}

// HoldProgress is the fraction of the tail that has scrolled past the strumline.
func (n *Note) HoldProgress(songPosition float64) float64 {
	if !n.IsHold() {
		return 0
	}
	p := (songPosition - n.StrumTime) / n.SustainLength
	return math.Max(0, math.Min(1, p))
}

// Clone returns a copy with the lifecycle state reset.
func (n *Note) Clone() *Note {
	return &Note{
		StrumTime:     n.StrumTime,
		Lane:          n.Lane,
		Player:        n.Player,
		SustainLength: n.SustainLength,
	}
}
