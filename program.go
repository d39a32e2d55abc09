package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/bot"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/parser"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/render"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/score"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/sim"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/theme"
)

type Program struct {
	Parser   parser.Parser
	Store    score.Store
	Theme    theme.Theme
	Renderer render.Renderer
	Log      logrus.FieldLogger
	Tuning   engine.Tuning
	Bot      bot.Config
	Out      io.Writer
}

// Check prints a chart summary.
func (p *Program) Check(file string) error {
	chart, err := p.Parser.Parse(file)
	if nil != err {
		return err
	}
	opponent := len(chart.Notes) - int(chart.NoteCount)
	fmt.Fprintf(p.Out, "       Song:  %v\n", chart.Song)
	fmt.Fprintf(p.Out, " Difficulty:  %v\n", chart.Difficulty)
	fmt.Fprintf(p.Out, "        BPM:  %6.1f\n", chart.BPM)
	fmt.Fprintf(p.Out, "      Speed:  %6.2f\n", chart.Speed)
	fmt.Fprintf(p.Out, "      Notes:  %6v\n", chart.NoteCount)
	fmt.Fprintf(p.Out, "      Holds:  %6v\n", chart.HoldCount)
	fmt.Fprintf(p.Out, "   Opponent:  %6v\n", opponent)
	fmt.Fprintf(p.Out, "BPM changes:  %6v\n", len(chart.BPMChanges))
	fmt.Fprintf(p.Out, "     Length:  %6.0f ms\n", chart.Length())
	return nil
}

// Autoplay runs the bot over the chart headless.
func (p *Program) Autoplay(file string, step float64, save bool) error {
	chart, err := p.Parser.Parse(file)
	if nil != err {
		return err
	}
	s := engine.NewSession(p.Tuning, p.Log)
	s.Load(chart.Fresh())
	cfg := p.Bot
	snap := sim.Run(s, sim.Options{Step: step, Bot: &cfg, Logger: p.Log})
	p.summary(chart, snap)

	if !save {
		return nil
	}
	return p.save(chart, snap, s.Inputs())
}

// Replay re-runs the stored best inputs for the chart.
func (p *Program) Replay(file string) error {
	chart, err := p.Parser.Parse(file)
	if nil != err {
		return err
	}
	if err := p.Store.Init(); nil != err {
		return err
	}
	defer p.Store.Deinit()

	r, err := p.Store.Load(chart.Song, chart.Difficulty)
	if errors.Is(err, score.ErrNoRecord) {
		return fmt.Errorf("no record for %v (%v)", chart.Song, chart.Difficulty)
	} else if nil != err {
		return err
	}

	s := engine.NewSession(p.Tuning, p.Log)
	s.Load(chart.Fresh())
	snap := sim.Run(s, sim.Options{Inputs: r.Inputs, Logger: p.Log})
	p.summary(chart, snap)

	if snap.Score != r.Score {
		p.Log.WithFields(logrus.Fields{
			"recorded": r.Score,
			"replayed": snap.Score,
		}).Warn("replay diverged from the recorded score")
	}
	return nil
}

// Scores lists the best record for every song and difficulty.
func (p *Program) Scores() error {
	if err := p.Store.Init(); nil != err {
		return err
	}
	defer p.Store.Deinit()

	records, err := p.Store.List()
	if nil != err {
		return err
	}
	for i, r := range records {
		fmt.Fprintf(p.Out, "%2v) %-24v %-8v %8v  %6.2f%%  %4vx  %3v miss  %v\n",
			i, r.Song, r.Difficulty, r.Score, r.Accuracy*100, r.MaxCombo, r.Misses,
			r.PlayedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (p *Program) save(chart *game.Chart, snap engine.Snapshot, inputs []game.Input) error {
	if err := p.Store.Init(); nil != err {
		return err
	}
	defer p.Store.Deinit()

	saved, err := p.Store.Save(score.NewRecord(chart.Song, chart.Difficulty, snap, inputs))
	if nil != err {
		return err
	}
	if saved {
		fmt.Fprintln(p.Out, "New best score!")
	}
	return nil
}

func (p *Program) summary(chart *game.Chart, snap engine.Snapshot) {
	fmt.Fprintf(p.Out, "%v (%v)\n", chart.Song, chart.Difficulty)
	fmt.Fprintf(p.Out, "      Score:  %8v\n", snap.Score)
	fmt.Fprintf(p.Out, "   Accuracy:  %8.2f%%\n", snap.Accuracy*100)
	fmt.Fprintf(p.Out, "  Max combo:  %8v\n", snap.MaxCombo)
	fmt.Fprintf(p.Out, "       Mean:  %8.2f ms\n", snap.Mean)
	fmt.Fprintf(p.Out, "      Stdev:  %8.2f ms\n", snap.Stdev)
	for i, tier := range p.Tuning.Tiers {
		fmt.Fprintf(p.Out, "%v:  %8v\n", p.Theme.TierLabel(tier.Name), snap.Counts[i])
	}
	if snap.GameOver {
		fmt.Fprintln(p.Out, "  Game over")
	}
}
