// Package health keeps the bounded health value driven by judgements.
package health

import "math"

const (
	Min     = 0.0
	Max     = 2.0
	Neutral = 1.0

	DamageMultiplier = 1.6
	HealMultiplier   = 1.3

	// Easing rate per second
	easing  = 5.0
	epsilon = 0.001
)

// Model eases the live value toward a clamped target. It only reports game
// over; acting on it is the host's job.
type Model struct {
	min, max        float64
	damageMul       float64
	healMul         float64
	current, target float64
	gameOver        bool
}

func NewModel() *Model {
	m := &Model{
		min:       Min,
		max:       Max,
		damageMul: DamageMultiplier,
		healMul:   HealMultiplier,
	}
	m.Reset()
	return m
}

// WithMultipliers overrides the damage and heal scaling.
func (m *Model) WithMultipliers(damage, heal float64) *Model {
	m.damageMul = damage
	m.healMul = heal
	return m
}

func (m *Model) Reset() {
	m.current = Neutral
	m.target = Neutral
	m.gameOver = false
}

func (m *Model) clamp(v float64) float64 {
	return math.Max(m.min, math.Min(m.max, v))
}

func (m *Model) Damage(amount float64) {
	m.target = m.clamp(m.target - amount*m.damageMul)
}

func (m *Model) Heal(amount float64) {
	m.target = m.clamp(m.target + amount*m.healMul)
}

// Apply heals for positive amounts and damages for negative ones.
func (m *Model) Apply(amount float64) {
	if amount < 0 {
		m.Damage(-amount)
	} else if amount > 0 {
		m.Heal(amount)
	}
}

// Update eases the live value toward the target over dtMs and reports whether
// this call is the one that crossed into game over.
func (m *Model) Update(dtMs float64) bool {
	if dtMs > 0 {
		k := 1 - math.Exp(-easing*dtMs/1000)
		m.current = m.clamp(m.current + (m.target-m.current)*k)
	}
	if math.Abs(m.current-m.target) < epsilon {
		m.current = m.target
	}
	if !m.gameOver && m.current <= m.min+epsilon {
		m.gameOver = true
		return true
	}
	return false
}

func (m *Model) Value() float64  { return m.current }
func (m *Model) Target() float64 { return m.target }
func (m *Model) GameOver() bool  { return m.gameOver }
