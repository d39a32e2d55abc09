// Package bot plays a chart through the same press and release calls as a
// human player.
package bot

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

// Player is the input surface the bot drives. *engine.Session implements it.
type Player interface {
	Press(lane game.Lane, songPosition float64) (engine.Judgement, bool)
	Release(lane game.Lane, songPosition float64)
	Pending() []*game.Note
	HitWindow() float64
}

type Config struct {
	// Reaction is both how early the bot presses and the minimum gap
	// between two of its presses, in ms.
	Reaction float64 `yaml:"reaction"`
	// TapHold is how long a tap stays pressed, in ms.
	TapHold float64 `yaml:"tap_hold"`
}

func DefaultConfig() Config {
	return Config{Reaction: 10, TapHold: 40}
}

type Bot struct {
	cfg    Config
	player Player
	log    logrus.FieldLogger

	held      [game.NLanes]bool
	sustained [game.NLanes]bool // Held for a hold note
	releaseAt [game.NLanes]float64
	lastPress float64
}

func New(player Player, cfg Config, logger logrus.FieldLogger) *Bot {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	b := &Bot{cfg: cfg, player: player, log: logger}
	b.Reset()
	return b
}

func (b *Bot) Reset() {
	b.held = [game.NLanes]bool{}
	b.sustained = [game.NLanes]bool{}
	b.releaseAt = [game.NLanes]float64{}
	b.lastPress = math.Inf(-1)
}

// Tick releases lanes that are due and presses for notes that reached the
// strumline.
func (b *Bot) Tick(songPosition float64) {
	for lane := range b.held {
		if b.held[lane] && songPosition >= b.releaseAt[lane] {
			b.release(game.Lane(lane), songPosition)
		}
	}

	hitWindow := b.player.HitWindow()
	for _, n := range b.player.Pending() {
		diff := n.StrumTime - songPosition
		if diff > b.cfg.Reaction {
			break
		}
		if diff < -hitWindow {
			continue
		}
		if songPosition-b.lastPress < b.cfg.Reaction {
			return
		}
		if b.held[n.Lane] {
			if b.sustained[n.Lane] {
				continue
			}
			b.release(n.Lane, songPosition)
		}
		b.press(n, songPosition)
	}
}

func (b *Bot) press(n *game.Note, songPosition float64) {
	j, ok := b.player.Press(n.Lane, songPosition)
	b.lastPress = songPosition
	b.held[n.Lane] = true
	b.sustained[n.Lane] = n.IsHold()
	if n.IsHold() {
		b.releaseAt[n.Lane] = n.EndTime()
	} else {
		b.releaseAt[n.Lane] = songPosition + b.cfg.TapHold
	}
	if ok {
		b.log.WithFields(logrus.Fields{
			"position": songPosition,
			"lane":     n.Lane,
			"tier":     j.TierName,
		}).Debug("bot: press")
	}
}

func (b *Bot) release(lane game.Lane, songPosition float64) {
	b.player.Release(lane, songPosition)
	b.held[lane] = false
	b.sustained[lane] = false
}

// Holding reports whether the bot currently holds a lane down.
func (b *Bot) Holding(lane game.Lane) bool {
	return lane.Valid() && b.held[lane]
}
