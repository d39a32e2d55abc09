package score

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
	"github.com/sirupsen/logrus"
)

func newTestStore(t *testing.T) *DefaultStore {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := &DefaultStore{Path: filepath.Join(t.TempDir(), "scores.db"), Logger: logger}
	if err := s.Init(); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(s.Deinit)
	return s
}

func TestStoreLoadMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load("tutorial", "normal"); !errors.Is(err, ErrNoRecord) {
		t.Errorf("expected ErrNoRecord, got %v", err)
	}
}

func TestStoreKeepsBest(t *testing.T) {
	s := newTestStore(t)

	first := Record{Song: "tutorial", Difficulty: "normal", Score: 2000, MaxCombo: 5, Accuracy: 90,
		Inputs: []game.Input{{Lane: game.Up, Pressed: true, Time: 1000}, {Lane: game.Up, Pressed: false, Time: 1040}}}
	var tests = []struct {
		r     Record
		saved bool
		best  int
	}{
		{first, true, 2000},
		{Record{Song: "tutorial", Difficulty: "normal", Score: 1500}, false, 2000},
		{Record{Song: "tutorial", Difficulty: "normal", Score: 2000}, false, 2000},
		{Record{Song: "tutorial", Difficulty: "normal", Score: 2450, MaxCombo: 7}, true, 2450},
	}

	for i, test := range tests {
		saved, err := s.Save(test.r)
		if nil != err {
			t.Fatalf("%d: %v", i, err)
		}
		if saved != test.saved {
			t.Errorf("%d: expected saved %v, got %v", i, test.saved, saved)
		}
		r, err := s.Load("tutorial", "normal")
		if nil != err {
			t.Fatalf("%d: %v", i, err)
		}
		if r.Score != test.best {
			t.Errorf("%d: expected best %d, got %d", i, test.best, r.Score)
		}
		if i == 0 && len(r.Inputs) != 2 {
			t.Errorf("expected inputs to round trip, got %v", r.Inputs)
		}
	}
}

func TestStoreList(t *testing.T) {
	s := newTestStore(t)
	for _, r := range []Record{
		{Song: "bopeebo", Difficulty: "hard", Score: 10},
		{Song: "bopeebo", Difficulty: "easy", Score: 20},
		{Song: "tutorial", Difficulty: "normal", Score: 30},
	} {
		if _, err := s.Save(r); nil != err {
			t.Fatal(err)
		}
	}

	records, err := s.List()
	if nil != err {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Difficulty != "easy" || records[2].Song != "tutorial" {
		t.Errorf("unexpected order: %v", records)
	}
}
