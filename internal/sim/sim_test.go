package sim

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/bot"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/parser"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/testdata"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func loadTestChart(t *testing.T) *engine.Session {
	t.Helper()
	p := parser.DefaultParser{Logger: quietLogger()}
	chart, err := p.ParseBytes(testdata.GetChart())
	if err != nil {
		t.Fatal(err)
	}
	s := engine.NewSession(engine.DefaultTuning(), quietLogger())
	s.Load(chart)
	return s
}

func TestAutoplayClearsChart(t *testing.T) {
	s := loadTestChart(t)
	cfg := bot.DefaultConfig()
	snap := Run(s, Options{Bot: &cfg, Logger: quietLogger()})
	if snap.Misses != 0 || snap.TotalNotesHit != 7 || snap.MaxCombo != 7 {
		t.Fatalf("snapshot %+v", snap)
	}
	if snap.Accuracy != 1 {
		t.Fatalf("accuracy %v", snap.Accuracy)
	}
	if !s.Done() {
		t.Fatal("not done")
	}
}

func TestNoInputMissesEverything(t *testing.T) {
	s := loadTestChart(t)
	snap := Run(s, Options{Logger: quietLogger()})
	if snap.Misses != 7 || snap.TotalNotesHit != 0 || snap.Score != -70 {
		t.Fatalf("snapshot %+v", snap)
	}
}

func TestReplayMatchesAutoplay(t *testing.T) {
	s := loadTestChart(t)
	fresh := s.Chart().Fresh()
	cfg := bot.DefaultConfig()
	played := Run(s, Options{Bot: &cfg, Logger: quietLogger()})
	inputs := s.Inputs()

	s.Load(fresh)
	replayed := Run(s, Options{Inputs: inputs, Logger: quietLogger()})
	if replayed.Score != played.Score || replayed.MaxCombo != played.MaxCombo || replayed.Misses != played.Misses {
		t.Fatalf("replay %+v, played %+v", replayed, played)
	}
}

func TestRecordedInputsUseTheirTimestamps(t *testing.T) {
	chart := &game.Chart{BPM: 100, Speed: 1}
	n, _ := game.NewNote(1000, game.Left, true, 0)
	chart.Notes = []*game.Note{n}
	s := engine.NewSession(engine.DefaultTuning(), quietLogger())
	s.Load(chart)

	// A coarse step lands the tick well after the press; the press still
	// judges at 1003.
	snap := Run(s, Options{
		Step:   100,
		Inputs: []game.Input{{Lane: game.Left, Pressed: true, Time: 1003}, {Lane: game.Left, Time: 1050}},
		Logger: quietLogger(),
	})
	if snap.Counts[game.Sick] != 1 || snap.Misses != 0 {
		t.Fatalf("snapshot %+v", snap)
	}
}

func TestStopOnGameOver(t *testing.T) {
	chart := &game.Chart{BPM: 100, Speed: 1}
	for i := 0; i < 40; i++ {
		n, _ := game.NewNote(float64(500+i*50), game.Lane(i%4), true, 0)
		chart.Notes = append(chart.Notes, n)
	}
	chart.Notes = append(chart.Notes, func() *game.Note {
		n, _ := game.NewNote(60000, game.Left, true, 0)
		return n
	}())
	s := engine.NewSession(engine.DefaultTuning(), quietLogger())
	s.Load(chart)
	snap := Run(s, Options{StopOnGameOver: true, Logger: quietLogger()})
	if !snap.GameOver || snap.Position > 30000 {
		t.Fatalf("snapshot %+v", snap)
	}
}
