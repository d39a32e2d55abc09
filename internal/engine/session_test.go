package engine

import (
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(kind EventKind) int {
	c := 0
	for _, e := range r.events {
		if e.Kind == kind {
			c++
		}
	}
	return c
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

type noteDef struct {
	time    float64
	lane    game.Lane
	player  bool
	sustain float64
}

func newTestSession(t *testing.T, speed float64, defs ...noteDef) (*Session, *recorder) {
	t.Helper()
	chart := &game.Chart{Song: "test", Difficulty: "normal", BPM: 100, Speed: speed}
	for _, def := range defs {
		n, err := game.NewNote(def.time, def.lane, def.player, def.sustain)
		if err != nil {
			t.Fatal(err)
		}
		chart.Notes = append(chart.Notes, n)
	}
	chart.Count()
	s := NewSession(DefaultTuning(), quietLogger())
	rec := &recorder{}
	s.Subscribe(rec)
	s.Load(chart)
	return s, rec
}

func TestEndToEndSick(t *testing.T) {
	s, rec := newTestSession(t, 1, noteDef{time: 1000, lane: game.Left, player: true})

	for pos := 0.0; pos <= 1000; pos += 10 {
		s.Tick(pos, 10)
	}
	j, ok := s.Press(game.Left, 1005)
	if !ok {
		t.Fatal("press found no note")
	}
	if j.TierName != "sick" || j.Combo != 1 || j.Score != 350 {
		t.Fatalf("judgement %+v", j)
	}
	snap := s.Snapshot()
	if snap.Combo != 1 || snap.Score != 350 || snap.TotalNotes != 1 || snap.Accuracy != 1 {
		t.Fatalf("snapshot %+v", snap)
	}
	if math.Abs(s.health.Target()-(1+0.023*1.3)) > 1e-9 {
		t.Fatalf("health target %v", s.health.Target())
	}
	if rec.count(NoteHit) != 1 || rec.count(StrumPress) != 1 {
		t.Fatalf("events %+v", rec.events)
	}
}

func TestPressWithNothingToHit(t *testing.T) {
	s, rec := newTestSession(t, 1, noteDef{time: 1000, lane: game.Left, player: true})
	s.Tick(500, 16)
	if _, ok := s.Press(game.Left, 500); ok {
		t.Fatal("judged a note 500ms away")
	}
	if _, ok := s.Press(game.Down, 1000); ok {
		t.Fatal("judged a note on the wrong lane")
	}
	if !s.Pressed(game.Left) {
		t.Fatal("strumline not pressed")
	}
	snap := s.Snapshot()
	if snap.TotalNotes != 0 || snap.Misses != 0 || snap.Score != 0 {
		t.Fatalf("free press was judged: %+v", snap)
	}
	if rec.count(NoteHit) != 0 || rec.count(NoteMiss) != 0 {
		t.Fatal("judgement events for a free press")
	}
}

func TestHitIsIdempotent(t *testing.T) {
	s, _ := newTestSession(t, 1, noteDef{time: 1000, lane: game.Up, player: true})
	s.Tick(1000, 16)
	n := s.chart.Notes[0]

	if _, ok := s.hit(n, 1000); !ok {
		t.Fatal("first hit rejected")
	}
	if _, ok := s.hit(n, 1000); ok {
		t.Fatal("second hit accepted")
	}
	if _, ok := s.Press(game.Up, 1001); ok {
		t.Fatal("duplicate press judged a resolved note")
	}
	snap := s.Snapshot()
	if snap.Score != 350 || snap.Combo != 1 || snap.TotalNotes != 1 {
		t.Fatalf("double award: %+v", snap)
	}
}

func TestNearestNoteWins(t *testing.T) {
	s, _ := newTestSession(t, 1,
		noteDef{time: 1000, lane: game.Right, player: true},
		noteDef{time: 1100, lane: game.Right, player: true},
	)
	s.Tick(1000, 16)
	j, ok := s.Press(game.Right, 1080)
	if !ok || j.TimeDiff != 20 {
		t.Fatalf("judgement %+v", j)
	}
	if s.chart.Notes[0].WasHit || !s.chart.Notes[1].WasHit {
		t.Fatal("wrong note resolved")
	}
}

func TestNearestTieGoesToEarlier(t *testing.T) {
	s, _ := newTestSession(t, 1,
		noteDef{time: 1000, lane: game.Down, player: true},
		noteDef{time: 1100, lane: game.Down, player: true},
	)
	s.Tick(1000, 16)
	if _, ok := s.Press(game.Down, 1050); !ok {
		t.Fatal("no judgement")
	}
	if !s.chart.Notes[0].WasHit || s.chart.Notes[1].WasHit {
		t.Fatal("tie went to the later note")
	}
}

func TestOpponentNotesIgnoreInput(t *testing.T) {
	s, rec := newTestSession(t, 1, noteDef{time: 1000, lane: game.Left, player: false})
	s.Tick(1000, 16)
	if _, ok := s.Press(game.Left, 1000); ok {
		t.Fatal("player input judged an opponent note")
	}
	if rec.count(OpponentHit) != 1 {
		t.Fatalf("opponent hits %v", rec.count(OpponentHit))
	}
	if s.Snapshot().TotalNotes != 0 {
		t.Fatal("opponent hit reached the accumulator")
	}
}

func TestSnapshotBeforeLoad(t *testing.T) {
	s := NewSession(DefaultTuning(), quietLogger())
	snap := s.Snapshot()
	if snap.Tier != -1 || snap.Health != 1 || len(snap.Counts) != 5 {
		t.Fatalf("snapshot %+v", snap)
	}
	if !s.Done() || s.Pending() != nil || s.Views(0) != nil {
		t.Fatal("unloaded session has notes")
	}
	s.Tick(100, 16)
	if _, ok := s.Press(game.Left, 100); ok {
		t.Fatal("unloaded session judged a press")
	}
}

func TestGameOverSignalledOnce(t *testing.T) {
	var defs []noteDef
	for i := 0; i < 30; i++ {
		defs = append(defs, noteDef{time: float64(500 + i*100), lane: game.Lane(i % 4), player: true})
	}
	s, rec := newTestSession(t, 1, defs...)
	for pos := 0.0; pos < 8000; pos += 16 {
		s.Tick(pos, 16)
	}
	if rec.count(GameOver) != 1 {
		t.Fatalf("game over signalled %v times", rec.count(GameOver))
	}
	snap := s.Snapshot()
	if !snap.GameOver || snap.Health < 0 {
		t.Fatalf("snapshot %+v", snap)
	}
	if snap.Misses != 30 {
		t.Fatalf("misses %v", snap.Misses)
	}
}

func TestBeatEvents(t *testing.T) {
	s, rec := newTestSession(t, 1, noteDef{time: 5000, lane: game.Left, player: true})
	for pos := 0.0; pos < 3000; pos += 16 {
		s.Tick(pos, 16)
	}
	// 100 bpm, beats 0..4 by 2992ms.
	if rec.count(BeatHit) != 5 {
		t.Fatalf("beats %v", rec.count(BeatHit))
	}
	if s.Snapshot().Beat != 4 {
		t.Fatalf("beat %v", s.Snapshot().Beat)
	}
}

func TestViews(t *testing.T) {
	s, _ := newTestSession(t, 1,
		noteDef{time: 1000, lane: game.Left, player: true},
		noteDef{time: 1000, lane: game.Right, player: false, sustain: 400},
	)
	s.Tick(500, 16)
	views := s.Views(100)
	if len(views) != 2 {
		t.Fatalf("views %v", len(views))
	}
	if math.Abs(views[0].Offset-(100-500*0.45)) > 1e-9 {
		t.Fatalf("offset %v", views[0].Offset)
	}
	if views[0].EndOffset != views[0].Offset || views[0].Segments != 0 {
		t.Fatalf("tap view %+v", views[0])
	}
	if views[1].Segments != 8 || views[1].State != game.Pending {
		t.Fatalf("hold view %+v", views[1])
	}
}
