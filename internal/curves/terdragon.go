package curves

import (
	"math"

	"fractal-explorer/internal/turtle"
	"fractal-explorer/pkg/geometry"
)

// terdragonSymbol is the terdragon alphabet {F, L, R}.
type terdragonSymbol int

const (
	terF terdragonSymbol = iota
	terL
	terR
)

// terdragonSystem rewrites F -> F L F R F; turns are fixed points.
type terdragonSystem struct{}

func (terdragonSystem) Initial() []terdragonSymbol {
	return []terdragonSymbol{terF}
}

func (terdragonSystem) ApplyRule(sym terdragonSymbol) []terdragonSymbol {
	if sym == terF {
		return []terdragonSymbol{terF, terL, terF, terR, terF}
	}
	return []terdragonSymbol{sym}
}

// Terdragon is the terdragon curve: 3^N segments with ±120° turns.
type Terdragon struct {
	lsystemProgram[terdragonSymbol]
}

// NewTerdragon creates a terdragon program for the given iteration count.
func NewTerdragon(iterations uint) *Terdragon {
	length := 1.0 / math.Pow(math.Sqrt(3), float64(iterations))
	turn := turtle.DegreesToRadians(120)
	return &Terdragon{lsystemProgram[terdragonSymbol]{
		system:     terdragonSystem{},
		iterations: iterations,
		interpret: func(sym terdragonSymbol) turtle.Step {
			switch sym {
			case terL:
				return turtle.TurnRad(turn)
			case terR:
				return turtle.TurnRad(-turn)
			default:
				return turtle.Forward(length)
			}
		},
		init: []turtle.Step{
			turtle.SetPos(geometry.Point2D{}),
			turtle.SetRad(turtle.DegreesToRadians(-30 * float64(iterations))),
			turtle.PenDown(),
		},
	}}
}
