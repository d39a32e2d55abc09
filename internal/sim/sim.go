// Package sim runs a session headless at a fixed tick rate, for autoplay and replays.
package sim

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/bot"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

const DefaultStep = 1000.0 / 60

type Options struct {
	Step           float64     // Tick length in ms
	Start          float64     // First song position
	Bot            *bot.Config // Autoplay when set
	Inputs         []game.Input
	StopOnGameOver bool
	Logger         logrus.FieldLogger
}

// Run ticks the session until every note is cleaned up. Recorded inputs are
// applied between ticks at their own timestamps, as a live host receives them.
func Run(s *engine.Session, opts Options) engine.Snapshot {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	chart := s.Chart()
	if chart == nil {
		return s.Snapshot()
	}

	inputs := make([]game.Input, len(opts.Inputs))
	copy(inputs, opts.Inputs)
	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].Time < inputs[j].Time
	})

	var autoplay *bot.Bot
	if opts.Bot != nil {
		autoplay = bot.New(s, *opts.Bot, opts.Logger)
	}

	end := chart.Length() + s.Tuning().CleanupDelay + opts.Step
	next := 0
	ticks := 0
	for pos := opts.Start; pos <= end; pos = opts.Start + float64(ticks)*opts.Step {
		for next < len(inputs) && inputs[next].Time <= pos {
			in := inputs[next]
			if in.Pressed {
				s.Press(in.Lane, in.Time)
			} else {
				s.Release(in.Lane, in.Time)
			}
			next++
		}

		s.Tick(pos, opts.Step)
		if autoplay != nil {
			autoplay.Tick(pos)
		}
		ticks++

		if s.Done() {
			break
		}
		if opts.StopOnGameOver && s.Snapshot().GameOver {
			opts.Logger.WithField("position", pos).Info("sim: game over")
			break
		}
	}
	return s.Snapshot()
}
