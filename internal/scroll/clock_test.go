package scroll

import (
	"math"
	"testing"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

func TestRate(t *testing.T) {
	c := NewClock(150, 2, nil)
	if r := c.Rate(); math.Abs(r-1.35) > 1e-9 {
		t.Fatalf("rate %v", r)
	}
	c = NewClock(0, 0, nil)
	if c.BPM() != game.DefaultBPM || c.Speed() != game.DefaultSpeed {
		t.Fatalf("defaults %v %v", c.BPM(), c.Speed())
	}
}

func TestOffset(t *testing.T) {
	c := NewClock(100, 1, nil)
	tests := []struct {
		strum, pos, expected float64
	}{
		{1000, 1000, 50},
		{1000, 0, 50 - 450},
		{1000, 1100, 50 + 45},
	}
	for _, test := range tests {
		if o := c.Offset(test.strum, test.pos, 50); math.Abs(o-test.expected) > 1e-9 {
			t.Logf("strum %v pos %v: got %v, expected %v", test.strum, test.pos, o, test.expected)
			t.Fail()
		}
	}
}

func TestBeatsAtConstantTempo(t *testing.T) {
	c := NewClock(100, 1, nil)
	if beats := c.AdvanceTo(0); len(beats) != 1 || beats[0] != 0 {
		t.Fatalf("first tick beats %v", beats)
	}
	if beats := c.AdvanceTo(599); len(beats) != 0 {
		t.Fatalf("beats %v before 600ms", beats)
	}
	if beats := c.AdvanceTo(1850); len(beats) != 3 || beats[2] != 3 {
		t.Fatalf("beats %v", beats)
	}
	if c.Beat() != 3 {
		t.Fatalf("beat %v", c.Beat())
	}
}

func TestBeatContinuityAcrossBreakpoint(t *testing.T) {
	c := NewClock(100, 1, []game.BPMChange{{Time: 6000, BPM: 200}})
	for pos := 0.0; pos < 6000; pos += 16 {
		c.AdvanceTo(pos)
	}
	if c.Beat() != 9 {
		t.Fatalf("beat %v before change", c.Beat())
	}

	beats := c.AdvanceTo(6010)
	if c.BPM() != 200 {
		t.Fatalf("bpm %v", c.BPM())
	}
	// At 200 bpm the absolute beat at 6010ms is floor(6010/300) = 20.
	if len(beats) != 1 || beats[0] != 20 || c.Beat() != 20 {
		t.Fatalf("crossing tick fired %v, beat %v", beats, c.Beat())
	}

	last := c.Beat()
	for pos := 6026.0; pos < 9000; pos += 16 {
		for _, b := range c.AdvanceTo(pos) {
			if b != last+1 {
				t.Fatalf("beat %v after %v at %v", b, last, pos)
			}
			last = b
		}
		if expected := int(math.Floor(pos / 300)); c.Beat() != expected {
			t.Fatalf("beat %v at %v, expected %v", c.Beat(), pos, expected)
		}
	}
}

func TestMultipleBreakpointsInOneTick(t *testing.T) {
	c := NewClock(100, 1, []game.BPMChange{{Time: 1000, BPM: 120}, {Time: 1100, BPM: 240}})
	c.AdvanceTo(900)
	beats := c.AdvanceTo(1200)
	if c.BPM() != 240 {
		t.Fatalf("bpm %v", c.BPM())
	}
	if len(beats) != 1 || beats[0] != 4 {
		t.Fatalf("beats %v", beats)
	}
}

func TestResetAndRewind(t *testing.T) {
	c := NewClock(100, 1, []game.BPMChange{{Time: 1000, BPM: 200}})
	c.AdvanceTo(2000)
	if beats := c.AdvanceTo(1500); beats != nil {
		t.Fatalf("rewind fired %v", beats)
	}
	c.Reset()
	if c.BPM() != 100 || c.Beat() != -1 || c.Position() != 0 {
		t.Fatalf("reset state %v %v %v", c.BPM(), c.Beat(), c.Position())
	}
}
