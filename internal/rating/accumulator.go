// Package rating accumulates combo, score and accuracy from judged notes.
package rating

import (
	"math"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

const DefaultHoldTickPoints = 10

// Accumulator is mutated only through RecordHit, RecordMiss and RecordHoldTick.
type Accumulator struct {
	tiers          game.Tiers
	holdTickPoints int

	combo, maxCombo int
	score           int
	counts          []int
	totalNotesHit   int
	totalNotes      int

	// Running hit offset statistics
	offsets  int
	mean, m2 float64
}

func NewAccumulator(tiers game.Tiers, holdTickPoints int) *Accumulator {
	if len(tiers) == 0 {
		tiers = game.DefaultTiers()
	}
	return &Accumulator{
		tiers:          tiers,
		holdTickPoints: holdTickPoints,
		counts:         make([]int, len(tiers)),
	}
}

// RecordHit judges a hit timeDiff ms away from the note. The lowest hit tier
// still counts as a hit but breaks the combo.
func (a *Accumulator) RecordHit(timeDiff float64) (int, game.Tier) {
	idx := a.tiers.Classify(timeDiff)
	if idx == a.tiers.MissTier() {
		a.RecordMiss()
		return idx, a.tiers[idx]
	}
	tier := a.tiers[idx]

	if idx == a.tiers.LowestHit() {
		a.combo = 0
	} else {
		a.combo++
		if a.combo > a.maxCombo {
			a.maxCombo = a.combo
		}
	}

	a.score += tier.Points + (a.combo/10)*10
	a.counts[idx]++
	a.totalNotesHit++
	a.totalNotes++

	a.offsets++
	delta := timeDiff - a.mean
	a.mean += delta / float64(a.offsets)
	a.m2 += delta * (timeDiff - a.mean)

	return idx, tier
}

func (a *Accumulator) RecordMiss() {
	miss := a.tiers.MissTier()
	a.combo = 0
	a.counts[miss]++
	a.totalNotes++
	a.score += a.tiers[miss].Points
}

// RecordHoldTick awards the bonus for one held sustain interval.
func (a *Accumulator) RecordHoldTick() {
	a.score += a.holdTickPoints
}

func (a *Accumulator) Accuracy() float64 {
	if a.totalNotes == 0 {
		return 0
	}
	sum := 0.0
	for i, c := range a.counts {
		sum += float64(c) * a.tiers[i].Weight
	}
	return sum / float64(a.totalNotes)
}

func (a *Accumulator) Reset() {
	a.combo, a.maxCombo, a.score = 0, 0, 0
	a.totalNotesHit, a.totalNotes = 0, 0
	a.counts = make([]int, len(a.tiers))
	a.offsets, a.mean, a.m2 = 0, 0, 0
}

func (a *Accumulator) Tiers() game.Tiers  { return a.tiers }
func (a *Accumulator) Combo() int         { return a.combo }
func (a *Accumulator) MaxCombo() int      { return a.maxCombo }
func (a *Accumulator) Score() int         { return a.score }
func (a *Accumulator) TotalNotesHit() int { return a.totalNotesHit }
func (a *Accumulator) TotalNotes() int    { return a.totalNotes }
func (a *Accumulator) Misses() int        { return a.counts[a.tiers.MissTier()] }

// Count is the number of judgements that landed in tier idx.
func (a *Accumulator) Count(idx int) int {
	if idx < 0 || idx >= len(a.counts) {
		return 0
	}
	return a.counts[idx]
}

// Mean is the average signed hit offset in ms, positive when early.
func (a *Accumulator) Mean() float64 {
	return a.mean
}

// Stdev is the sample standard deviation of the hit offsets.
func (a *Accumulator) Stdev() float64 {
	if a.offsets < 2 {
		return 0
	}
	return math.Sqrt(a.m2 / float64(a.offsets-1))
}
