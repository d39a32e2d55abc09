package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

// spawn extends the active window over notes that entered the lookahead.
func (s *Session) spawn(pos float64) {
	_, start, end := s.chart.Active()
	lookahead := s.tuning.SpawnLookahead * s.clock.Speed()

	endOffset := 0
	for _, n := range s.chart.Notes[end:] {
		if n.StrumTime-pos > lookahead {
			break
		}
		n.Spawned = true
		endOffset++
	}
	s.chart.SetActive(start, end+endOffset)
}

// slide drops cleaned notes off the front of the active window. Hold notes
// still being drawn keep the window from sliding past them.
func (s *Session) slide() {
	_, start, end := s.chart.Active()
	startOffset := 0
	for _, n := range s.chart.Notes[start:end] {
		if !n.Cleaned {
			break
		}
		startOffset++
	}
	s.chart.SetActive(start+startOffset, end)
}

func (s *Session) updateNotes(pos float64) {
	active, _, _ := s.chart.Active()
	hitWindow := s.HitWindow()

	for _, n := range active {
		if n.Cleaned {
			continue
		}
		diff := n.StrumTime - pos

		if n.Player {
			n.CanBeHit = !n.Resolved() && math.Abs(diff) <= hitWindow
			if !n.Resolved() && diff < -hitWindow {
				s.miss(n, pos)
			}
		} else {
			if !n.Resolved() && diff <= s.tuning.OpponentWindow {
				s.opponentHit(n, pos)
			}
			if n.BeingHeld && pos >= n.EndTime() {
				n.BeingHeld = false
				n.HoldEndPassed = true
			}
		}

		if s.expired(n, pos) {
			s.cleanup(n)
		}
	}
}

func (s *Session) expired(n *game.Note, pos float64) bool {
	if !n.IsHold() {
		return n.StrumTime-pos < -s.tuning.CleanupDelay
	}
	return pos > n.EndTime()+s.tuning.CleanupDelay && !n.BeingHeld
}

func (s *Session) miss(n *game.Note, pos float64) {
	n.TooLate = true
	n.CanBeHit = false
	s.rating.RecordMiss()
	s.health.Apply(s.tuning.Tiers[s.tuning.Tiers.MissTier()].Health)
	s.lastTier = s.tuning.Tiers.MissTier()

	s.log.WithFields(logrus.Fields{
		"position": pos,
		"lane":     n.Lane,
		"strum":    n.StrumTime,
	}).Debug("note missed")

	s.emit(Event{
		Kind:     NoteMiss,
		Position: pos,
		Lane:     n.Lane,
		Player:   true,
		Hold:     n.IsHold(),
		Tier:     s.lastTier,
		TimeDiff: n.StrumTime - pos,
		Combo:    s.rating.Combo(),
		Score:    s.rating.Score(),
		Health:   s.health.Target(),
	})
}

// opponentHit always resolves an opponent note, it only drives animation.
func (s *Session) opponentHit(n *game.Note, pos float64) {
	n.WasHit = true
	n.HitTime = pos
	if n.IsHold() {
		n.BeingHeld = pos < n.EndTime()
		n.HoldEndPassed = !n.BeingHeld
	}
	s.emit(Event{
		Kind:     OpponentHit,
		Position: pos,
		Lane:     n.Lane,
		Hold:     n.IsHold(),
		Tier:     -1,
		TimeDiff: n.StrumTime - pos,
	})
}

// cleanup is idempotent. The note can never be judged or held again.
func (s *Session) cleanup(n *game.Note) {
	n.WasHit = true
	n.TooLate = true
	n.CanBeHit = false
	n.BeingHeld = false
	n.Cleaned = true
	if n.Player && n.Lane.Valid() && s.holds[n.Lane] == n {
		s.holds[n.Lane] = nil
	}
}
