package parser

import (
	"errors"

	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
)

var (
	ErrUnrecognizedChart = errors.New("unrecognized chart document")
	ErrNoNotes           = errors.New("chart has no usable notes")
)

type Parser interface {
	Parse(file string) (*game.Chart, error)
	ParseBytes(data []byte) (*game.Chart, error)
}
