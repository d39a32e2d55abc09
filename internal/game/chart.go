package game

type Chart struct {
	Song       string
	Difficulty string
	BPM        float64
	Speed      float64
	Notes      []*Note // Sorted by StrumTime
	BPMChanges []BPMChange

	NoteCount int64 // Player notes only
	HoldCount int64

	startNoteIndex int
	endNoteIndex   int
}

func (c *Chart) Active() ([]*Note, int, int) {
	return c.Notes[c.startNoteIndex:c.endNoteIndex], c.startNoteIndex, c.endNoteIndex
}

func (c *Chart) SetActive(start int, end int) {
	if end > len(c.Notes) {
		end = len(c.Notes)
	}
	if start > end {
		start = end
	}
	c.startNoteIndex = start
	c.endNoteIndex = end
}

// Count fills in the derived note totals.
func (c *Chart) Count() {
	c.NoteCount, c.HoldCount = 0, 0
	for _, n := range c.Notes {
		if !n.Player {
			continue
		}
		c.NoteCount++
		if n.IsHold() {
			c.HoldCount++
		}
	}
}

// Fresh returns a copy of the chart with every note back in its initial state.
func (c *Chart) Fresh() *Chart {
	notes := make([]*Note, len(c.Notes))
	for i, n := range c.Notes {
		notes[i] = n.Clone()
	}
	changes := make([]BPMChange, len(c.BPMChanges))
	copy(changes, c.BPMChanges)
	return &Chart{
		Song:       c.Song,
		Difficulty: c.Difficulty,
		BPM:        c.BPM,
		Speed:      c.Speed,
		Notes:      notes,
		BPMChanges: changes,
		NoteCount:  c.NoteCount,
		HoldCount:  c.HoldCount,
	}
}

// Length is the song position at which the last note fully ends.
func (c *Chart) Length() float64 {
	end := 0.0
	for _, n := range c.Notes {
		if e := n.EndTime(); e > end {
			end = e
		}
	}
	return end
}
