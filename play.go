package main

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/audio"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/bot"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/config"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/input"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/parser"
)

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (p *Program) openTransport(chart *game.Chart) (audio.Transport, error) {
	if *config.Audio == "" {
		length := time.Duration((chart.Length() + p.Tuning.CleanupDelay) * float64(time.Millisecond))
		return audio.NewSilentTransport(*config.Delay, length), nil
	}
	return audio.Open(*config.Audio, *config.Delay, p.Log)
}

func (p *Program) inputSource() input.Source {
	if *config.Device != "" {
		return &input.DeviceSource{Path: *config.Device, Keys: config.Keys(), Lanes: config.KeyLane, Logger: p.Log}
	}
	return &input.KeyboardSource{Lanes: config.KeyLane, Logger: p.Log}
}

// Play runs a chart against the audio clock in the terminal. The render loop
// goroutine owns the session; input and file watching feed it over channels.
func (p *Program) Play(ctx context.Context, file string) error {
	pristine, err := p.Parser.Parse(file)
	if nil != err {
		return err
	}
	s := engine.NewSession(p.Tuning, p.Log)
	s.Load(pristine.Fresh())

	var autoplay *bot.Bot
	if *config.Bot {
		autoplay = bot.New(s, p.Bot, p.Log)
	}

	transport, err := p.openTransport(pristine)
	if nil != err {
		return err
	}
	defer func() {
		transport.Close()
	}()

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	lay := newLayout(p.Renderer.Size())
	s.Subscribe(p.decorate(&lay))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	events := make(chan input.Event, 128)
	source := p.inputSource()
	g.Go(func() error {
		return source.Run(gctx, events)
	})

	reload := make(chan struct{}, 1)
	if *config.Watch {
		g.Go(func() error {
			return parser.Watch(gctx, file, p.Log, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		})
	}

	offset := ms(*config.Offset)
	transport.Start()
	last := transport.Position() + offset
	quit := false

	p.Renderer.RenderLoop(gctx, *config.FramePeriod, func(now time.Time) bool {
		lay = newLayout(p.Renderer.Size())
		pos := transport.Position() + offset

		// Inputs are judged at the position they happened, before the tick
		// that may miss their notes.
	drain:
		for {
			select {
			case ev := <-events:
				if ev.Quit {
					quit = true
					return false
				}
				if nil != autoplay {
					continue
				}
				at := pos - ms(now.Sub(ev.At))
				if ev.Pressed {
					s.Press(ev.Lane, at)
				} else {
					s.Release(ev.Lane, at)
				}
			default:
				break drain
			}
		}

		select {
		case <-reload:
			chart, err := p.Parser.Parse(file)
			if nil != err {
				p.Log.WithError(err).Warn("unable to reload chart")
				break
			}
			transport.Close()
			if transport, err = p.openTransport(chart); nil != err {
				p.Log.WithError(err).Error("unable to restart audio")
				return false
			}
			pristine = chart
			s.Load(pristine.Fresh())
			if nil != autoplay {
				autoplay.Reset()
			}
			transport.Start()
			pos = transport.Position() + offset
			last = pos
			p.Log.WithField("file", file).Info("chart reloaded")
		default:
		}

		s.Tick(pos, math.Max(0, pos-last))
		if nil != autoplay {
			autoplay.Tick(pos)
		}
		last = pos

		snap := s.Snapshot()
		p.draw(s, snap, lay)

		if snap.GameOver {
			return false
		}
		return !s.Done() || pos < transport.Length()
	})

	cancel()
	werr := g.Wait()
	if err := p.Renderer.Deinit(); nil != err {
		p.Log.WithError(err).Warn("unable to restore terminal")
	}
	if nil != werr {
		return werr
	}

	snap := s.Snapshot()
	p.summary(pristine, snap)
	if quit || snap.GameOver || nil != autoplay || !s.Done() {
		return nil
	}
	return p.save(pristine, snap, s.Inputs())
}
