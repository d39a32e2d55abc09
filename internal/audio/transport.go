// Package audio provides the song position feed.
package audio

import "time"

// Transport plays the song and reports the playback position in ms. The
// position is negative during the start delay.
type Transport interface {
	Start()
	Position() float64
	Length() float64
	Close() error
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// SilentTransport is a wall clock for charts without audio.
type SilentTransport struct {
	delay  time.Duration
	length time.Duration
	start  time.Time
	now    func() time.Time
}

func NewSilentTransport(delay, length time.Duration) *SilentTransport {
	return &SilentTransport{delay: delay, length: length, now: time.Now}
}

func (t *SilentTransport) Start() {
	t.start = t.now().Add(t.delay)
}

func (t *SilentTransport) Position() float64 {
	if t.start.IsZero() {
		return -ms(t.delay)
	}
	return ms(t.now().Sub(t.start))
}

func (t *SilentTransport) Length() float64 {
	return ms(t.length)
}

func (t *SilentTransport) Close() error {
	return nil
}
