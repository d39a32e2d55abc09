package audio

import (
	"testing"
	"time"
)

func TestSilentTransport(t *testing.T) {
	now := time.Unix(100, 0)
	tr := NewSilentTransport(1500*time.Millisecond, 90*time.Second)
	tr.now = func() time.Time { return now }

	if p := tr.Position(); p != -1500 {
		t.Errorf("expected -1500 before start, got %v", p)
	}

	tr.Start()
	if p := tr.Position(); p != -1500 {
		t.Errorf("expected -1500 at start, got %v", p)
	}

	now = now.Add(2 * time.Second)
	if p := tr.Position(); p != 500 {
		t.Errorf("expected 500, got %v", p)
	}

	if l := tr.Length(); l != 90000 {
		t.Errorf("expected length 90000, got %v", l)
	}
}
