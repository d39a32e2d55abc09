package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/config"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/engine"
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

const (
	rowPixels    = 24.0 // Scroll distance covered by one terminal row
	laneSpacing  = 4
	fieldSpacing = 14
	healthWidth  = 20
)

type layout struct {
	columns, rows int
	strumRow      int
	lanes         [2][game.NLanes]int // Opponent, player
	sideCol       int
}

func newLayout(columns, rows int) layout {
	l := layout{columns: columns, rows: rows}
	l.strumRow = rows - int(*config.BarRow)
	if l.strumRow < 2 {
		l.strumRow = 2
	}
	mid := columns / 2
	for i := 0; i < game.NLanes; i++ {
		d := (2*i - 3) * laneSpacing / 2
		l.lanes[0][i] = mid - fieldSpacing + d
		l.lanes[1][i] = mid + fieldSpacing + d
	}
	l.sideCol = l.lanes[0][0] - 36
	if l.sideCol < 2 {
		l.sideCol = 2
	}
	return l
}

func (l layout) column(lane game.Lane, player bool) int {
	if player {
		return l.lanes[1][lane]
	}
	return l.lanes[0][lane]
}

func (l layout) row(offset float64) int {
	return l.strumRow + int(math.Round(offset/rowPixels))
}

func (l layout) inField(row int) bool {
	return row > 0 && row <= l.rows
}

func (p *Program) decorate(lay *layout) engine.Listener {
	return engine.ListenerFunc(func(e engine.Event) {
		if !e.Player {
			return
		}
		switch e.Kind {
		case engine.NoteHit:
			label := p.Theme.TierLabel(p.Tuning.Tiers[e.Tier].Name)
			p.Renderer.AddDecoration(lay.lanes[1][0]-4, lay.strumRow-4, label, 60)
		case engine.NoteMiss, engine.HoldDropped:
			col := lay.column(e.Lane, true)
			red := p.Theme.TierColor("miss")
			mark := fmt.Sprintf("\033[38;2;%v;%v;%vm✗\033[0m", red.R, red.G, red.B)
			p.Renderer.AddDecoration(col, lay.strumRow+1, mark, 60)
		}
	})
}

func (p *Program) draw(s *engine.Session, snap engine.Snapshot, lay layout) {
	r := p.Renderer

	for i := game.Left; i <= game.Right; i++ {
		r.Fill(lay.strumRow, lay.column(i, false), p.Theme.RenderStrum(i, false))
		r.Fill(lay.strumRow, lay.column(i, true), p.Theme.RenderStrum(i, s.Pressed(i)))
	}

	for _, v := range s.Views(0) {
		col := lay.column(v.Lane, v.Player)
		head := lay.row(v.Offset)
		if v.State == game.Holding {
			head = lay.strumRow
		}
		if v.EndOffset != v.Offset && v.State != game.Missed {
			for row := lay.row(v.EndOffset); row < head; row++ {
				if lay.inField(row) {
					r.Fill(row, col, p.Theme.RenderHold(v.Lane, v.Player))
				}
			}
		}
		if lay.inField(head) && (v.State == game.Pending || v.State == game.Unspawned) {
			r.Fill(head, col, p.Theme.RenderNote(v.Lane, v.Player))
		}
	}

	filled := int(math.Round(snap.Health / 2 * healthWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", healthWidth-filled)

	r.Fill(2, lay.sideCol, fmt.Sprintf("   Position:  %8.0f ms", snap.Position))
	r.Fill(3, lay.sideCol, fmt.Sprintf("        BPM:  %8.1f  beat %v", snap.BPM, snap.Beat))
	r.Fill(5, lay.sideCol, fmt.Sprintf("      Score:  %8v", snap.Score))
	r.Fill(6, lay.sideCol, fmt.Sprintf("      Combo:  %8v", snap.Combo))
	r.Fill(7, lay.sideCol, fmt.Sprintf("   Accuracy:  %7.2f%%", snap.Accuracy*100))
	barColor := p.Theme.TierColor("sick")
	if snap.Health < 0.5 {
		barColor = p.Theme.TierColor("miss")
	}
	r.Fill(8, lay.sideCol, "     Health:  ")
	r.FillColor(8, lay.sideCol+14, barColor, bar)
	r.Fill(10, lay.sideCol, fmt.Sprintf("       Mean:  %8.2f ms", snap.Mean))
	r.Fill(11, lay.sideCol, fmt.Sprintf("      Stdev:  %8.2f ms", snap.Stdev))
	if chart := s.Chart(); nil != chart {
		r.Fill(12, lay.sideCol, fmt.Sprintf("      Notes:  %8v", chart.NoteCount))
		r.Fill(13, lay.sideCol, fmt.Sprintf("      Holds:  %8v", chart.HoldCount))
	}
	for i, tier := range p.Tuning.Tiers {
		r.Fill(15+i, lay.sideCol, fmt.Sprintf("%v:  %8v", p.Theme.TierLabel(tier.Name), snap.Counts[i]))
	}
}
