package score

import (
	"reflect"
	"testing"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

func TestCompactInputs(t *testing.T) {
	in := []game.Input{
		{Lane: game.Left, Pressed: true, Time: 100},
		{Lane: game.Right, Pressed: true, Time: 200},
		{Lane: game.Left, Pressed: false, Time: 140},
		{Lane: game.Lane(9), Pressed: true, Time: 300},
	}
	out := compactInputs(in)
	if len(out) != game.NLanes {
		t.Fatalf("expected %d lanes, got %d", game.NLanes, len(out))
	}
	if !reflect.DeepEqual(out[game.Left].Presses, []float64{100}) {
		t.Errorf("left presses %v", out[game.Left].Presses)
	}
	if !reflect.DeepEqual(out[game.Left].Releases, []float64{140}) {
		t.Errorf("left releases %v", out[game.Left].Releases)
	}
	if !reflect.DeepEqual(out[game.Right].Presses, []float64{200}) {
		t.Errorf("right presses %v", out[game.Right].Presses)
	}
	if len(out[game.Down].Presses) != 0 || len(out[game.Up].Releases) != 0 {
		t.Errorf("unexpected entries in idle lanes: %v", out)
	}
}

func TestUncompactInputs(t *testing.T) {
	var tests = []struct {
		in       []game.Input
		expected []game.Input
	}{
		{
			in:       []game.Input{},
			expected: []game.Input{},
		},
		{
			in: []game.Input{
				{Lane: game.Down, Pressed: true, Time: 10},
				{Lane: game.Down, Pressed: false, Time: 50},
				{Lane: game.Up, Pressed: true, Time: 30},
				{Lane: game.Up, Pressed: false, Time: 70},
			},
			expected: []game.Input{
				{Lane: game.Down, Pressed: true, Time: 10},
				{Lane: game.Up, Pressed: true, Time: 30},
				{Lane: game.Down, Pressed: false, Time: 50},
				{Lane: game.Up, Pressed: false, Time: 70},
			},
		},
		{
			// A release and the next press on the same frame.
			in: []game.Input{
				{Lane: game.Left, Pressed: true, Time: 0},
				{Lane: game.Left, Pressed: false, Time: 40},
				{Lane: game.Left, Pressed: true, Time: 40},
			},
			expected: []game.Input{
				{Lane: game.Left, Pressed: true, Time: 0},
				{Lane: game.Left, Pressed: false, Time: 40},
				{Lane: game.Left, Pressed: true, Time: 40},
			},
		},
	}

	for i, test := range tests {
		out := uncompactInputs(compactInputs(test.in))
		if !reflect.DeepEqual(out, test.expected) {
			t.Errorf("%d: expected %v, got %v", i, test.expected, out)
		}
	}
}
