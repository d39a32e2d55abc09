package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

const defaultStepsPerSection = 16

type DefaultParser struct {
	Logger logrus.FieldLogger
}

func (p *DefaultParser) log() logrus.FieldLogger {
	if p.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		p.Logger = l
	}
	return p.Logger
}

// Parse reads a chart file. The difficulty comes from the file name suffix,
// "bopeebo-hard.json" is hard, a bare "bopeebo.json" is normal.
func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	chart, err := p.ParseBytes(data)
	if nil != err {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	chart.Difficulty = "normal"
	for _, d := range []string{"easy", "hard"} {
		if strings.HasSuffix(base, "-"+d) {
			chart.Difficulty = d
			base = strings.TrimSuffix(base, "-"+d)
		}
	}
	if chart.Song == "" {
		chart.Song = base
	}
	return chart, nil
}

func number(r gjson.Result, fallback float64) float64 {
	if r.Type != gjson.Number {
		return fallback
	}
	return r.Float()
}

// ParseBytes accepts either a flat {"notes": [...]} document or the nested
// {"song": {"notes": [...]}} one.
func (p *DefaultParser) ParseBytes(data []byte) (*game.Chart, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrUnrecognizedChart)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrUnrecognizedChart
	}

	song := root
	name := ""
	if s := root.Get("song"); s.IsObject() {
		song = s
		name = s.Get("song").String()
	} else if s.Type == gjson.String {
		name = s.String()
	}

	sections := song.Get("notes")
	if !sections.IsArray() {
		return nil, ErrUnrecognizedChart
	}

	bpm := number(song.Get("bpm"), game.DefaultBPM)
	if bpm <= 0 {
		bpm = game.DefaultBPM
	}
	speed := number(song.Get("speed"), game.DefaultSpeed)
	if speed <= 0 {
		speed = game.DefaultSpeed
	}

	chart := &game.Chart{
		Song:  name,
		BPM:   bpm,
		Speed: speed,
	}

	dropped := 0
	currentBPM := bpm
	position := 0.0
	sections.ForEach(func(_, section gjson.Result) bool {
		if !section.IsObject() {
			return true
		}
		start := number(section.Get("startTime"), position)

		if section.Get("changeBPM").Bool() {
			b := number(section.Get("bpm"), currentBPM)
			if b > 0 && b != currentBPM {
				currentBPM = b
				chart.BPMChanges = append(chart.BPMChanges, game.BPMChange{Time: start, BPM: b})
			}
		}

		mustHit := section.Get("mustHitSection").Bool()
		section.Get("sectionNotes").ForEach(func(_, row gjson.Result) bool {
			note, ok := p.parseRow(row, mustHit)
			if !ok {
				dropped++
				return true
			}
			chart.Notes = append(chart.Notes, note)
			return true
		})

		steps := number(section.Get("lengthInSteps"), defaultStepsPerSection)
		if steps <= 0 {
			steps = defaultStepsPerSection
		}
		position = start + game.Crochet(currentBPM)/4*steps
		return true
	})

	if len(chart.Notes) == 0 {
		return nil, ErrNoNotes
	}

	sort.SliceStable(chart.Notes, func(i, j int) bool {
		return chart.Notes[i].StrumTime < chart.Notes[j].StrumTime
	})
	sort.SliceStable(chart.BPMChanges, func(i, j int) bool {
		return chart.BPMChanges[i].Time < chart.BPMChanges[j].Time
	})
	chart.Count()

	p.log().WithFields(logrus.Fields{
		"song":        chart.Song,
		"notes":       len(chart.Notes),
		"dropped":     dropped,
		"bpm_changes": len(chart.BPMChanges),
	}).Debug("chart parsed")

	return chart, nil
}

// parseRow reads a [strumTime, direction, sustain] triple. Directions 0-3 belong
// to the side the section is centred on, 4 and up to the other side.
func (p *DefaultParser) parseRow(row gjson.Result, mustHit bool) (*game.Note, bool) {
	if !row.IsArray() {
		return nil, false
	}
	t, d := row.Get("0"), row.Get("1")
	if t.Type != gjson.Number || d.Type != gjson.Number {
		return nil, false
	}
	raw := d.Float()
	if raw != math.Trunc(raw) || raw < 0 {
		return nil, false
	}
	dir := int(raw)
	player := mustHit
	if dir > 3 {
		player = !mustHit
	}
	lane := dir % game.NLanes
	if lane < 0 || lane >= game.NLanes {
		return nil, false
	}

	note, err := game.NewNote(t.Float(), game.Lane(lane), player, number(row.Get("2"), 0))
	if nil != err {
		return nil, false
	}
	return note, true
}
