package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

func (s *Session) startHold(n *game.Note, pos float64) {
	if prev := s.holds[n.Lane]; prev != nil && prev != n {
		s.releaseHold(prev, pos)
	}
	n.BeingHeld = true
	n.HoldScoreTime = pos
	n.HoldHealTime = pos
	s.holds[n.Lane] = n
}

// Segments is how many visual pieces the hold tail is drawn with.
func (s *Session) Segments(n *game.Note) int {
	if !n.IsHold() || s.tuning.HoldSegment <= 0 {
		return 0
	}
	return int(math.Max(1, math.Ceil(n.SustainLength/s.tuning.HoldSegment)))
}

// advanceHold pays out the score and health ticks due up to pos.
func (s *Session) advanceHold(n *game.Note, pos float64) {
	limit := math.Min(pos, n.EndTime())
	if interval := s.tuning.HoldScoreInterval; interval > 0 {
		for n.HoldScoreTime+interval <= limit {
			s.rating.RecordHoldTick()
			n.HoldScoreTime += interval
		}
	}
	if interval := s.tuning.HoldHealInterval; interval > 0 {
		gain := s.tuning.HoldGain()
		for n.HoldHealTime+interval <= limit {
			s.health.Heal(gain)
			n.HoldHealTime += interval
		}
	}
	n.RetiredSegments = int(math.Floor(n.HoldProgress(pos) * float64(s.Segments(n))))
}

func (s *Session) updateHolds(pos float64) {
	for lane, n := range s.holds {
		if n == nil {
			continue
		}
		if n.Cleaned || !n.BeingHeld {
			s.holds[lane] = nil
			continue
		}
		s.advanceHold(n, pos)
		if pos >= n.EndTime() {
			s.completeHold(n, pos)
		}
	}
}

func (s *Session) completeHold(n *game.Note, pos float64) {
	n.BeingHeld = false
	n.HoldEndPassed = true
	s.holds[n.Lane] = nil
	s.emit(Event{
		Kind:     HoldComplete,
		Position: pos,
		Lane:     n.Lane,
		Player:   true,
		Hold:     true,
		Tier:     -1,
		Combo:    s.rating.Combo(),
		Score:    s.rating.Score(),
		Health:   s.health.Target(),
	})
	s.cleanup(n)
}

func (s *Session) releaseHold(n *game.Note, pos float64) {
	s.holds[n.Lane] = nil
	if n.Cleaned || !n.BeingHeld || n.HoldReleased {
		return
	}
	s.advanceHold(n, pos)
	n.HoldReleased = true

	if pos >= n.EndTime()-s.HitWindow() {
		s.completeHold(n, pos)
		return
	}

	n.BeingHeld = false
	s.rating.RecordMiss()
	s.health.Apply(s.tuning.Tiers[s.tuning.Tiers.MissTier()].Health)
	s.lastTier = s.tuning.Tiers.MissTier()

	s.log.WithFields(logrus.Fields{
		"position": pos,
		"lane":     n.Lane,
		"end":      n.EndTime(),
	}).Debug("hold dropped")

	s.emit(Event{
		Kind:     HoldDropped,
		Position: pos,
		Lane:     n.Lane,
		Player:   true,
		Hold:     true,
		Tier:     s.lastTier,
		TimeDiff: n.EndTime() - pos,
		Combo:    s.rating.Combo(),
		Score:    s.rating.Score(),
		Health:   s.health.Target(),
	})
}
