package input

import (
	"context"
	"fmt"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/sirupsen/logrus"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

// DefaultReleaseAfter covers the initial autorepeat delay of most terminals.
const DefaultReleaseAfter = 550 * time.Millisecond

// KeyboardSource reads keys from the terminal. Terminals only report
// presses, so a lane is released once its key stops repeating.
type KeyboardSource struct {
	Lanes        LaneMap
	ReleaseAfter time.Duration
	Logger       logrus.FieldLogger
}

// repeats tracks synthesized key state for each lane.
type repeats struct {
	after    time.Duration
	deadline [game.NLanes]time.Time
}

// press reports whether the key starts a new press, as opposed to an
// autorepeat of a held one.
func (r *repeats) press(lane game.Lane, now time.Time) bool {
	held := !r.deadline[lane].IsZero()
	r.deadline[lane] = now.Add(r.after)
	return !held
}

// expire returns the lanes whose key stopped repeating by now.
func (r *repeats) expire(now time.Time) []game.Lane {
	var lanes []game.Lane
	for i, d := range r.deadline {
		if !d.IsZero() && !now.Before(d) {
			r.deadline[i] = time.Time{}
			lanes = append(lanes, game.Lane(i))
		}
	}
	return lanes
}

func (s *KeyboardSource) Run(ctx context.Context, events chan<- Event) error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("input: unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			s.Logger.WithError(err).Warn("unable to close keyboard")
		}
	}()

	after := s.ReleaseAfter
	if after == 0 {
		after = DefaultReleaseAfter
	}
	r := &repeats{after: after}
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			for _, lane := range r.expire(now) {
				if !send(ctx, events, Event{Lane: lane, At: now}) {
					return nil
				}
			}
		case key, ok := <-keys:
			if !ok {
				return nil
			}
			if nil != key.Err {
				return fmt.Errorf("input: %w", key.Err)
			}
			now := time.Now()
			if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
				send(ctx, events, Event{Quit: true, At: now})
				return nil
			}
			rn := key.Rune
			if key.Key == keyboard.KeySpace {
				rn = ' '
			}
			lane, ok := s.Lanes(rn)
			if !ok {
				continue
			}
			if r.press(lane, now) && !send(ctx, events, Event{Lane: lane, Pressed: true, At: now}) {
				return nil
			}
		}
	}
}
