package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/sirupsen/logrus"
)

// DefaultTransport streams a song file to the speaker.
type DefaultTransport struct {
	log      logrus.FieldLogger
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	delay    time.Duration

	mu    sync.Mutex
	start time.Time
	timer *time.Timer
}

func decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, beep.Format{}, err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}
	f.Close()
	return nil, beep.Format{}, fmt.Errorf("audio: unsupported file %v", file)
}

// Open decodes file and initialises the speaker. Playback begins delay after
// Start.
func Open(file string, delay time.Duration, logger logrus.FieldLogger) (*DefaultTransport, error) {
	streamer, format, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("audio: speaker: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"file":        file,
		"sample_rate": format.SampleRate,
		"length":      format.SampleRate.D(streamer.Len()),
	}).Info("opened audio")

	return &DefaultTransport{
		log:      logger,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: streamer},
		delay:    delay,
	}, nil
}

func (t *DefaultTransport) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = time.Now().Add(t.delay)
	t.timer = time.AfterFunc(t.delay, func() {
		speaker.Play(t.ctrl)
	})
}

func (t *DefaultTransport) Position() float64 {
	t.mu.Lock()
	start := t.start
	t.mu.Unlock()

	if start.IsZero() {
		return -ms(t.delay)
	}
	if now := time.Now(); now.Before(start) {
		return -ms(start.Sub(now))
	}

	speaker.Lock()
	p := t.streamer.Position()
	speaker.Unlock()
	return ms(t.format.SampleRate.D(p))
}

func (t *DefaultTransport) Length() float64 {
	return ms(t.format.SampleRate.D(t.streamer.Len()))
}

func (t *DefaultTransport) Close() error {
	t.mu.Lock()
	if nil != t.timer {
		t.timer.Stop()
	}
	t.mu.Unlock()

	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
	return t.streamer.Close()
}
