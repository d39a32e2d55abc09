package score

import (
	"errors"
	"time"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

var ErrNoRecord = errors.New("no score record")

// Store keeps the best record per song and difficulty.
type Store interface {
	Init() error
	Deinit()

	// Save replaces the stored record only when r.Score is strictly greater.
	// It reports whether r was written.
	Save(r Record) (bool, error)

	// Load returns the best record, or ErrNoRecord.
	Load(song, difficulty string) (Record, error)

	List() ([]Record, error)
}

type Record struct {
	Song          string
	Difficulty    string
	Score         int
	Combo         int
	MaxCombo      int
	Misses        int
	TotalNotesHit int
	TotalNotes    int
	Accuracy      float64
	Inputs        []game.Input // For replays
	PlayedAt      time.Time
}

func NewRecord(song, difficulty string, snap engine.Snapshot, inputs []game.Input) Record {
	return Record{
		Song:          song,
		Difficulty:    difficulty,
		Score:         snap.Score,
		Combo:         snap.Combo,
		MaxCombo:      snap.MaxCombo,
		Misses:        snap.Misses,
		TotalNotesHit: snap.TotalNotesHit,
		TotalNotes:    snap.TotalNotes,
		Accuracy:      snap.Accuracy,
		Inputs:        inputs,
		PlayedAt:      time.Now(),
	}
}
