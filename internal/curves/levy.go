package curves

import (
	"math"

	"fractal-explorer/internal/turtle"
	"fractal-explorer/pkg/geometry"
)

// levySymbol is the Lévy C curve alphabet {F, L, R}.
type levySymbol int

const (
	levyF levySymbol = iota
	levyL
	levyR
)

// levySystem rewrites F -> L F R R F L.
type levySystem struct{}

func (levySystem) Initial() []levySymbol {
	return []levySymbol{levyF}
}

func (levySystem) ApplyRule(sym levySymbol) []levySymbol {
	if sym == levyF {
		return []levySymbol{levyL, levyF, levyR, levyR, levyF, levyL}
	}
	return []levySymbol{sym}
}

// LevyC is the Lévy C curve: each segment bends into two at 45°, shrinking
// by 1/sqrt(2) per iteration.
type LevyC struct {
	lsystemProgram[levySymbol]
}

// NewLevyC creates a Lévy C curve program for the given iteration count.
func NewLevyC(iterations uint) *LevyC {
	length := 1.0 / math.Pow(math.Sqrt2, float64(iterations))
	turn := turtle.DegreesToRadians(45)
	return &LevyC{lsystemProgram[levySymbol]{
		system:     levySystem{},
		iterations: iterations,
		interpret: func(sym levySymbol) turtle.Step {
			switch sym {
			case levyL:
				return turtle.TurnRad(turn)
			case levyR:
				return turtle.TurnRad(-turn)
			default:
				return turtle.Forward(length)
			}
		},
		init: []turtle.Step{
			turtle.SetPos(geometry.Point2D{}),
			turtle.SetRad(0),
			turtle.PenDown(),
		},
	}}
}
