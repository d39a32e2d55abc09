package engine

import "github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"

// NoteView is what a renderer needs to draw one note.
type NoteView struct {
	Lane            game.Lane
	Player          bool
	State           game.State
	Offset          float64 // Head Y relative to the strumline
	EndOffset       float64 // Tail end Y, equal to Offset for taps
	HoldProgress    float64
	Segments        int
	RetiredSegments int
}

// Views lists every spawned note not yet cleaned up, with positions relative
// to a strumline at laneY.
func (s *Session) Views(laneY float64) []NoteView {
	if !s.attached {
		return nil
	}
	active, _, _ := s.chart.Active()
	views := make([]NoteView, 0, len(active))
	for _, n := range active {
		if n.Cleaned {
			continue
		}
		views = append(views, NoteView{
			Lane:            n.Lane,
			Player:          n.Player,
			State:           n.State(),
			Offset:          s.clock.Offset(n.StrumTime, s.position, laneY),
			EndOffset:       s.clock.Offset(n.EndTime(), s.position, laneY),
			HoldProgress:    n.HoldProgress(s.position),
			Segments:        s.Segments(n),
			RetiredSegments: n.RetiredSegments,
		})
	}
	return views
}
