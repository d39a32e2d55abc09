package engine

import (
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/health"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/rating"
)

// Tuning holds the gameplay constants. All times are in ms.
type Tuning struct {
	Tiers game.Tiers

	SpawnLookahead float64 // Scaled by the chart speed
	CleanupDelay   float64
	OpponentWindow float64

	HoldScoreInterval float64
	HoldHealInterval  float64
	HoldHealFraction  float64 // Of the best tier's heal
	HoldSegment       float64
	HoldTickPoints    int

	DamageMultiplier float64
	HealMultiplier   float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Tiers:             game.DefaultTiers(),
		SpawnLookahead:    2000,
		CleanupDelay:      1000,
		OpponentWindow:    10,
		HoldScoreInterval: 100,
		HoldHealInterval:  60,
		HoldHealFraction:  0.2,
		HoldSegment:       50,
		HoldTickPoints:    rating.DefaultHoldTickPoints,
		DamageMultiplier:  health.DamageMultiplier,
		HealMultiplier:    health.HealMultiplier,
	}
}

// HoldGain is the heal applied every hold health interval.
func (t Tuning) HoldGain() float64 {
	return t.Tiers[0].Health * t.HoldHealFraction
}
