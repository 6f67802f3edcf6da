package curves

import (
	"math"

	"fractal-explorer/internal/turtle"
	"fractal-explorer/pkg/geometry"
)

// kochSymbol is the Koch snowflake alphabet {F, L, R}.
type kochSymbol int

const (
	kochF kochSymbol = iota
	kochL
	kochR
)

// kochSystem starts from a triangle (F L L F L L F) and rewrites each side
// F -> F R F L L F R F.
type kochSystem struct{}

func (kochSystem) Initial() []kochSymbol {
	return []kochSymbol{kochF, kochL, kochL, kochF, kochL, kochL, kochF}
}

func (kochSystem) ApplyRule(sym kochSymbol) []kochSymbol {
	if sym == kochF {
		return []kochSymbol{kochF, kochR, kochF, kochL, kochL, kochF, kochR, kochF}
	}
	return []kochSymbol{sym}
}

// Koch is the Koch snowflake: each side splits into four thirds-length
// segments with ±60° turns.
type Koch struct {
	lsystemProgram[kochSymbol]
}

// NewKoch creates a Koch snowflake program for the given iteration count.
func NewKoch(iterations uint) *Koch {
	length := 1.0 / math.Pow(3, float64(iterations))
	turn := turtle.DegreesToRadians(60)
	return &Koch{lsystemProgram[kochSymbol]{
		system:     kochSystem{},
		iterations: iterations,
		interpret: func(sym kochSymbol) turtle.Step {
			switch sym {
			case kochL:
				return turtle.TurnRad(turn)
			case kochR:
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
