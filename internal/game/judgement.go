package game

import "math"

// Tier is a timing window bucket. Window is the absolute radius in ms.
type Tier struct {
	Name   string  `yaml:"name"`
	Window float64 `yaml:"window"`
	Weight float64 `yaml:"weight"` // Accuracy weight in [0,1]
	Points int     `yaml:"points"`
	Health float64 `yaml:"health"` // Heal when positive, damage when negative
}

func (t Tier) IsMiss() bool {
	return math.IsInf(t.Window, 1)
}

// Tiers is ordered by increasing window; the last entry is the miss tier.
type Tiers []Tier

const (
	Sick = iota
	Good
	Bad
	Shit
	Miss
)

func DefaultTiers() Tiers {
	return Tiers{
		{Name: "sick", Window: 60, Weight: 1, Points: 350, Health: 0.023},
		{Name: "good", Window: 120, Weight: 0.75, Points: 200, Health: 0.015},
		{Name: "bad", Window: 180, Weight: 0.5, Points: 100, Health: 0.005},
		{Name: "shit", Window: 250, Weight: 0.25, Points: 50, Health: -0.01},
		{Name: "miss", Window: math.Inf(1), Weight: 0, Points: -10, Health: -0.0475},
	}
}

// Classify returns the index of the first tier whose window covers |timeDiff|.
func (ts Tiers) Classify(timeDiff float64) int {
	d := math.Abs(timeDiff)
	for i := 0; i < len(ts)-1; i++ {
		if d <= ts[i].Window {
			return i
		}
	}
	return len(ts) - 1
}

// HitWindow is the largest finite window.
func (ts Tiers) HitWindow() float64 {
	return ts[len(ts)-2].Window
}

// MissTier is the last entry.
func (ts Tiers) MissTier() int {
	return len(ts) - 1
}

// LowestHit is the worst tier that still counts as a hit.
func (ts Tiers) LowestHit() int {
	return len(ts) - 2
}
