package score

import (
	"sort"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

// InputsCompact stores one lane's press and release times.
type InputsCompact struct {
	Lane     game.Lane `json:"l"`
	Presses  []float64 `json:"p"`
	Releases []float64 `json:"r"`
}

func compactInputs(inputs []game.Input) []InputsCompact {
	ins := make([]InputsCompact, game.NLanes)
	for i := range ins {
		ins[i].Lane = game.Lane(i)
		ins[i].Presses = []float64{}
		ins[i].Releases = []float64{}
	}
	for _, in := range inputs {
		if !in.Lane.Valid() {
			continue
		}
		c := &ins[in.Lane]
		if in.Pressed {
			c.Presses = append(c.Presses, in.Time)
		} else {
			c.Releases = append(c.Releases, in.Time)
		}
	}
	return ins
}

// uncompactInputs rebuilds the log in time order. On equal times a lane's
// release comes before its next press.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, c := range inputs {
		for _, t := range c.Presses {
			ins = append(ins, game.Input{Lane: c.Lane, Pressed: true, Time: t})
		}
		for _, t := range c.Releases {
			ins = append(ins, game.Input{Lane: c.Lane, Pressed: false, Time: t})
		}
	}
	sort.SliceStable(ins, func(i, j int) bool {
		if ins[i].Time != ins[j].Time {
			return ins[i].Time < ins[j].Time
		}
		return !ins[i].Pressed && ins[j].Pressed
	})
	return ins
}
