package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/bot"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

var ErrWindowOrder = errors.New("tier windows must be strictly increasing")

// TuningFile is the on-disk gameplay tuning. Fields left out keep their
// defaults.
type TuningFile struct {
	Tiers []TierConfig `yaml:"tiers"`
	Miss  MissConfig   `yaml:"miss"`

	SpawnLookahead float64 `yaml:"spawn_lookahead"`
	CleanupDelay   float64 `yaml:"cleanup_delay"`
	OpponentWindow float64 `yaml:"opponent_window"`

	Hold   HoldConfig   `yaml:"hold"`
	Health HealthConfig `yaml:"health"`
	Bot    bot.Config   `yaml:"bot"`
}

type TierConfig struct {
	Name   string  `yaml:"name"`
	Window float64 `yaml:"window"`
	Weight float64 `yaml:"weight"`
	Points int     `yaml:"points"`
	Health float64 `yaml:"health"`
}

func (c TierConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Window, validation.Required, validation.Min(0.0)),
		validation.Field(&c.Weight, validation.Min(0.0), validation.Max(1.0)),
	)
}

type MissConfig struct {
	Points int     `yaml:"points"`
	Health float64 `yaml:"health"`
}

func (c MissConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Points, validation.Max(0)),
		validation.Field(&c.Health, validation.Max(0.0)),
	)
}

type HoldConfig struct {
	ScoreInterval float64 `yaml:"score_interval"`
	HealInterval  float64 `yaml:"heal_interval"`
	HealFraction  float64 `yaml:"heal_fraction"`
	Segment       float64 `yaml:"segment"`
	TickPoints    int     `yaml:"tick_points"`
}

func (c HoldConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ScoreInterval, validation.Required, validation.Min(1.0)),
		validation.Field(&c.HealInterval, validation.Required, validation.Min(1.0)),
		validation.Field(&c.HealFraction, validation.Min(0.0)),
		validation.Field(&c.Segment, validation.Required, validation.Min(1.0)),
		validation.Field(&c.TickPoints, validation.Min(0)),
	)
}

type HealthConfig struct {
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	HealMultiplier   float64 `yaml:"heal_multiplier"`
}

func (c HealthConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DamageMultiplier, validation.Min(0.0)),
		validation.Field(&c.HealMultiplier, validation.Min(0.0)),
	)
}

func (f *TuningFile) Validate() error {
	if err := validation.ValidateStruct(f,
		validation.Field(&f.Tiers, validation.Required, validation.Length(1, 0)),
		validation.Field(&f.Miss),
		validation.Field(&f.SpawnLookahead, validation.Required, validation.Min(0.0)),
		validation.Field(&f.CleanupDelay, validation.Min(0.0)),
		validation.Field(&f.OpponentWindow, validation.Min(0.0)),
		validation.Field(&f.Hold),
		validation.Field(&f.Health),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&f.Bot,
		validation.Field(&f.Bot.Reaction, validation.Min(0.0)),
		validation.Field(&f.Bot.TapHold, validation.Required, validation.Min(0.0)),
	); err != nil {
		return fmt.Errorf("bot: %w", err)
	}
	for i := 1; i < len(f.Tiers); i++ {
		if f.Tiers[i].Window <= f.Tiers[i-1].Window {
			return fmt.Errorf("%w: %s after %s", ErrWindowOrder, f.Tiers[i].Name, f.Tiers[i-1].Name)
		}
	}
	return nil
}

// DefaultTuningFile mirrors engine.DefaultTuning and bot.DefaultConfig.
func DefaultTuningFile() *TuningFile {
	t := engine.DefaultTuning()
	f := &TuningFile{
		SpawnLookahead: t.SpawnLookahead,
		CleanupDelay:   t.CleanupDelay,
		OpponentWindow: t.OpponentWindow,
		Hold: HoldConfig{
			ScoreInterval: t.HoldScoreInterval,
			HealInterval:  t.HoldHealInterval,
			HealFraction:  t.HoldHealFraction,
			Segment:       t.HoldSegment,
			TickPoints:    t.HoldTickPoints,
		},
		Health: HealthConfig{
			DamageMultiplier: t.DamageMultiplier,
			HealMultiplier:   t.HealMultiplier,
		},
		Bot: bot.DefaultConfig(),
	}
	for _, tier := range t.Tiers[:t.Tiers.MissTier()] {
		f.Tiers = append(f.Tiers, TierConfig(tier))
	}
	miss := t.Tiers[t.Tiers.MissTier()]
	f.Miss = MissConfig{Points: miss.Points, Health: miss.Health}
	return f
}

// Engine converts the file into engine tuning, appending the miss tier.
func (f *TuningFile) Engine() engine.Tuning {
	tiers := make(game.Tiers, 0, len(f.Tiers)+1)
	for _, tier := range f.Tiers {
		tiers = append(tiers, game.Tier(tier))
	}
	tiers = append(tiers, game.Tier{
		Name:   "miss",
		Window: math.Inf(1),
		Points: f.Miss.Points,
		Health: f.Miss.Health,
	})

	return engine.Tuning{
		Tiers:             tiers,
		SpawnLookahead:    f.SpawnLookahead,
		CleanupDelay:      f.CleanupDelay,
		OpponentWindow:    f.OpponentWindow,
		HoldScoreInterval: f.Hold.ScoreInterval,
		HoldHealInterval:  f.Hold.HealInterval,
		HoldHealFraction:  f.Hold.HealFraction,
		HoldSegment:       f.Hold.Segment,
		HoldTickPoints:    f.Hold.TickPoints,
		DamageMultiplier:  f.Health.DamageMultiplier,
		HealMultiplier:    f.Health.HealMultiplier,
	}
}

// ParseTuning overlays data on the defaults and validates the result.
func ParseTuning(data []byte) (engine.Tuning, bot.Config, error) {
	f := DefaultTuningFile()
	if len(data) > 0 {
		// A tier list in the file replaces the default list entirely.
		f.Tiers = nil
		if err := yaml.Unmarshal(data, f); nil != err {
			return engine.Tuning{}, bot.Config{}, fmt.Errorf("config: tuning: %w", err)
		}
		if len(f.Tiers) == 0 {
			f.Tiers = DefaultTuningFile().Tiers
		}
	}
	if err := f.Validate(); nil != err {
		return engine.Tuning{}, bot.Config{}, fmt.Errorf("config: tuning: %w", err)
	}
	return f.Engine(), f.Bot, nil
}

// LoadTuning reads the tuning file, or returns the defaults when file is
// empty.
func LoadTuning(file string) (engine.Tuning, bot.Config, error) {
	if file == "" {
		return ParseTuning(nil)
	}
	data, err := os.ReadFile(file)
	if nil != err {
		return engine.Tuning{}, bot.Config{}, fmt.Errorf("config: tuning: %w", err)
	}
	return ParseTuning(data)
}
