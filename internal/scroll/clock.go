// Package scroll converts song positions into lane offsets and beat indices.
package scroll

import (
	"math"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

// PixelsPerMs is the scroll rate at speed 1 and 100 bpm.
const PixelsPerMs = 0.45

// Clock owns the tempo state. AdvanceTo is its only mutator.
type Clock struct {
	baseBPM  float64
	bpm      float64
	speed    float64
	changes  []game.BPMChange
	next     int // Index of the first change not yet applied
	lastBeat int
	position float64
}

func NewClock(bpm, speed float64, changes []game.BPMChange) *Clock {
	if bpm <= 0 {
		bpm = game.DefaultBPM
	}
	if speed <= 0 {
		speed = game.DefaultSpeed
	}
	c := &Clock{
		baseBPM: bpm,
		speed:   speed,
		changes: changes,
	}
	c.Reset()
	return c
}

// Reset rewinds to the start of the song.
func (c *Clock) Reset() {
	c.bpm = c.baseBPM
	c.next = 0
	c.lastBeat = -1
	c.position = 0
}

func (c *Clock) BPM() float64      { return c.bpm }
func (c *Clock) Speed() float64    { return c.speed }
func (c *Clock) Beat() int         { return c.lastBeat }
func (c *Clock) Position() float64 { return c.position }

func (c *Clock) Crochet() float64 {
	return game.Crochet(c.bpm)
}

// Rate is the scroll speed in pixels per ms.
func (c *Clock) Rate() float64 {
	return PixelsPerMs * c.speed * (c.bpm / 100)
}

// Offset is the lane Y of a note, moving toward laneY as songPosition nears strumTime.
func (c *Clock) Offset(strumTime, songPosition, laneY float64) float64 {
	return laneY + (strumTime-songPosition)*-c.Rate()
}

// AdvanceTo moves the clock to an absolute song position and returns the beat
// indices crossed. Crossing a breakpoint re-derives the beat counter from the
// absolute position so the next beat is neither skipped nor repeated.
func (c *Clock) AdvanceTo(songPosition float64) []int {
	if songPosition < c.position {
		c.position = songPosition
		return nil
	}
	c.position = songPosition

	for c.next < len(c.changes) && c.changes[c.next].Time <= songPosition {
		c.bpm = c.changes[c.next].BPM
		c.next++
		c.lastBeat = c.beatAt(songPosition) - 1
	}

	var beats []int
	for cur := c.beatAt(songPosition); c.lastBeat < cur; {
		c.lastBeat++
		beats = append(beats, c.lastBeat)
	}
	return beats
}

func (c *Clock) beatAt(songPosition float64) int {
	return int(math.Floor(songPosition / c.Crochet()))
}
