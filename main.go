package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/config"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/parser"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/render"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/score"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		logrus.WithError(err).Fatal("genesis")
	}
}

func run(args []string) error {
	cmd, err := config.Parse(args)
	if nil != err {
		return err
	}

	// The renderer owns the terminal while playing.
	playing := cmd == config.Play.FullCommand()
	logger, closer, err := config.NewLogger(*config.LogLevel, *config.LogFile, playing)
	if nil != err {
		return err
	}
	defer closer.Close()

	tuning, botConfig, err := config.LoadTuning(*config.Tuning)
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	p := &Program{
		Parser:   &parser.DefaultParser{Logger: logger},
		Store:    &score.DefaultStore{Path: *config.Database, Logger: logger},
		Theme:    &theme.DefaultTheme{},
		Renderer: &render.DefaultRenderer{},
		Log:      logger,
		Tuning:   tuning,
		Bot:      botConfig,
		Out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cmd {
	case config.Play.FullCommand():
		return p.Play(ctx, *config.PlayChart)
	case config.Autoplay.FullCommand():
		return p.Autoplay(*config.AutoplayChart, *config.Step, *config.Save)
	case config.Replay.FullCommand():
		return p.Replay(*config.ReplayChart)
	case config.Scores.FullCommand():
		return p.Scores()
	case config.Check.FullCommand():
		return p.Check(*config.CheckChart)
	}
	return fmt.Errorf("unknown command %q", cmd)
}
