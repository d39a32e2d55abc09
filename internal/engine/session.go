// Package engine owns the notes of a loaded chart and judges input against them.
//
// A Session is single threaded. The host calls Tick once per frame with the
// song position read from the audio transport, and Press/Release as key
// events arrive, each stamped with the song position valid at event time.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/health"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/rating"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/scroll"
)

type Session struct {
	tuning Tuning
	log    logrus.FieldLogger

	chart  *game.Chart
	clock  *scroll.Clock
	rating *rating.Accumulator
	health *health.Model

	listeners []Listener

	holds   [game.NLanes]*game.Note // At most one active player hold per lane
	pressed [game.NLanes]bool
	inputs  []game.Input

	position float64
	lastTier int
	attached bool
}

func NewSession(tuning Tuning, logger logrus.FieldLogger) *Session {
	if len(tuning.Tiers) < 2 {
		tuning.Tiers = game.DefaultTiers()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Session{
		tuning:   tuning,
		log:      logger,
		rating:   rating.NewAccumulator(tuning.Tiers, tuning.HoldTickPoints),
		health:   health.NewModel().WithMultipliers(tuning.DamageMultiplier, tuning.HealMultiplier),
		lastTier: -1,
	}
}

func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(e Event) {
	for _, l := range s.listeners {
		l.Notify(e)
	}
}

// Load cleans up any previous song and attaches the chart. The chart's notes
// must be fresh; use Chart.Fresh to replay a chart already played.
func (s *Session) Load(chart *game.Chart) {
	s.Cleanup()
	s.chart = chart
	s.clock = scroll.NewClock(chart.BPM, chart.Speed, chart.BPMChanges)
	s.chart.SetActive(0, 0)
	s.attached = true

	s.log.WithFields(logrus.Fields{
		"song":       chart.Song,
		"difficulty": chart.Difficulty,
		"notes":      len(chart.Notes),
		"bpm":        chart.BPM,
		"speed":      chart.Speed,
	}).Info("song loaded")
}

// Cleanup resolves every note, resets rating and health, frees all hold slots
// and detaches input. Press and Release are ignored until the next Load.
func (s *Session) Cleanup() {
	if s.chart != nil {
		for _, n := range s.chart.Notes {
			s.cleanup(n)
		}
		s.chart.Notes = nil
		s.chart.SetActive(0, 0)
	}
	s.chart = nil
	s.clock = nil
	s.rating.Reset()
	s.health.Reset()
	s.holds = [game.NLanes]*game.Note{}
	s.pressed = [game.NLanes]bool{}
	s.inputs = nil
	s.position = 0
	s.lastTier = -1
	s.attached = false
}

// Tick advances the note lifecycle to songPosition. elapsedMs only drives
// health easing; no timing is ever accumulated from it.
func (s *Session) Tick(songPosition, elapsedMs float64) {
	if !s.attached {
		return
	}
	s.position = songPosition

	for _, b := range s.clock.AdvanceTo(songPosition) {
		s.emit(Event{Kind: BeatHit, Position: songPosition, Beat: b, Tier: -1})
	}

	s.spawn(songPosition)
	s.updateHolds(songPosition)
	s.updateNotes(songPosition)
	s.slide()

	if s.health.Update(elapsedMs) {
		s.log.WithField("position", songPosition).Info("health depleted")
		s.emit(Event{Kind: GameOver, Position: songPosition, Tier: -1, Health: s.health.Value()})
	}
}

// Done reports whether every note has been cleaned up.
func (s *Session) Done() bool {
	if !s.attached {
		return true
	}
	_, start, _ := s.chart.Active()
	return start >= len(s.chart.Notes)
}

func (s *Session) Attached() bool       { return s.attached }
func (s *Session) Chart() *game.Chart   { return s.chart }
func (s *Session) Clock() *scroll.Clock { return s.clock }
func (s *Session) Tuning() Tuning       { return s.tuning }
func (s *Session) Position() float64    { return s.position }

func (s *Session) HitWindow() float64 {
	return s.tuning.Tiers.HitWindow()
}

// Inputs is the press/release log since Load.
func (s *Session) Inputs() []game.Input {
	out := make([]game.Input, len(s.inputs))
	copy(out, s.inputs)
	return out
}

// Pressed reports the strumline state of a player lane.
func (s *Session) Pressed(lane game.Lane) bool {
	return lane.Valid() && s.pressed[lane]
}

// Pending lists the unresolved player notes already spawned, in chart order.
func (s *Session) Pending() []*game.Note {
	if !s.attached {
		return nil
	}
	active, _, _ := s.chart.Active()
	var out []*game.Note
	for _, n := range active {
		if n.Player && !n.Resolved() {
			out = append(out, n)
		}
	}
	return out
}

// Snapshot is the judgement state consumed by the UI.
type Snapshot struct {
	Position      float64
	Tier          int // Last judged tier, -1 before the first
	TierName      string
	Combo         int
	MaxCombo      int
	Score         int
	Accuracy      float64
	Health        float64
	GameOver      bool
	Misses        int
	TotalNotesHit int
	TotalNotes    int
	Counts        []int
	Mean, Stdev   float64
	BPM           float64
	Beat          int
}

func (s *Session) Snapshot() Snapshot {
	tiers := s.tuning.Tiers
	snap := Snapshot{
		Position:      s.position,
		Tier:          s.lastTier,
		Combo:         s.rating.Combo(),
		MaxCombo:      s.rating.MaxCombo(),
		Score:         s.rating.Score(),
		Accuracy:      s.rating.Accuracy(),
		Health:        s.health.Value(),
		GameOver:      s.health.GameOver(),
		Misses:        s.rating.Misses(),
		TotalNotesHit: s.rating.TotalNotesHit(),
		TotalNotes:    s.rating.TotalNotes(),
		Counts:        make([]int, len(tiers)),
		Mean:          s.rating.Mean(),
		Stdev:         s.rating.Stdev(),
	}
	if s.lastTier >= 0 {
		snap.TierName = tiers[s.lastTier].Name
	}
	for i := range tiers {
		snap.Counts[i] = s.rating.Count(i)
	}
	if s.clock != nil {
		snap.BPM = s.clock.BPM()
		snap.Beat = s.clock.Beat()
	}
	return snap
}
