package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

// Judgement is the result of a press that found a note.
type Judgement struct {
	Lane     game.Lane
	Tier     int
	TierName string
	TimeDiff float64 // strumTime - songPosition
	Hold     bool
	Combo    int
	Score    int
}

// Press handles a key-down on a player lane. Pressing with nothing in the hit
// window only presses the strumline and returns false.
func (s *Session) Press(lane game.Lane, songPosition float64) (Judgement, bool) {
	if !s.attached || !lane.Valid() {
		return Judgement{}, false
	}
	s.inputs = append(s.inputs, game.Input{Lane: lane, Pressed: true, Time: songPosition})
	s.pressed[lane] = true
	s.emit(Event{Kind: StrumPress, Position: songPosition, Lane: lane, Player: true, Tier: -1})

	n := s.nearest(lane, songPosition)
	if n == nil {
		return Judgement{}, false
	}
	return s.hit(n, songPosition)
}

// nearest finds the unresolved spawned player note closest to songPosition
// within the hit window. Exact ties go to the earlier note in chart order.
func (s *Session) nearest(lane game.Lane, songPosition float64) *game.Note {
	active, _, _ := s.chart.Active()
	hitWindow := s.HitWindow()

	var closest *game.Note
	distance := math.Inf(1)
	for _, n := range active {
		if !n.Player || n.Lane != lane || !n.Spawned || n.Resolved() {
			continue
		}
		if n.StrumTime-songPosition > hitWindow {
			break
		}
		d := math.Abs(n.StrumTime - songPosition)
		if d > hitWindow {
			continue
		}
		if d < distance {
			distance = d
			closest = n
		}
	}
	return closest
}

// hit resolves a note exactly once.
func (s *Session) hit(n *game.Note, pos float64) (Judgement, bool) {
	if n.Resolved() || n.Cleaned {
		return Judgement{}, false
	}
	n.WasHit = true
	n.CanBeHit = false
	n.HitTime = pos

	diff := n.StrumTime - pos
	idx, tier := s.rating.RecordHit(diff)
	s.health.Apply(tier.Health)
	s.lastTier = idx

	if n.IsHold() {
		s.startHold(n, pos)
	}

	j := Judgement{
		Lane:     n.Lane,
		Tier:     idx,
		TierName: tier.Name,
		TimeDiff: diff,
		Hold:     n.IsHold(),
		Combo:    s.rating.Combo(),
		Score:    s.rating.Score(),
	}

	s.log.WithFields(logrus.Fields{
		"position": pos,
		"lane":     n.Lane,
		"diff":     diff,
		"tier":     tier.Name,
		"combo":    j.Combo,
	}).Debug("note hit")

	s.emit(Event{
		Kind:     NoteHit,
		Position: pos,
		Lane:     n.Lane,
		Player:   true,
		Hold:     n.IsHold(),
		Tier:     idx,
		TimeDiff: diff,
		Combo:    j.Combo,
		Score:    j.Score,
		Health:   s.health.Target(),
	})
	return j, true
}

// Release handles a key-up on a player lane. A hold released before its safe
// end window costs one miss; stale releases are ignored.
func (s *Session) Release(lane game.Lane, songPosition float64) {
	if !s.attached || !lane.Valid() {
		return
	}
	s.inputs = append(s.inputs, game.Input{Lane: lane, Pressed: false, Time: songPosition})
	s.pressed[lane] = false
	s.emit(Event{Kind: StrumRelease, Position: songPosition, Lane: lane, Player: true, Tier: -1})

	n := s.holds[lane]
	if n == nil {
		return
	}
	s.releaseHold(n, songPosition)
}
