package curves

import (
	"math"

	"fractal-explorer/internal/turtle"
	"fractal-explorer/pkg/geometry"
)

// Both Césaro variants share the 85° base angle and the F -> F L F R R F L F
// rewrite. 85° is a fixed parameter of the curve definition, not a derived
// value. Each rewrite replaces a segment with four, scaled so the replacement
// spans the original baseline: l' = l / (2 + 2·cos 85°).
const cesaroBaseDegrees = 85

func cesaroScale() float64 {
	return 1.0 / (2.0 + 2.0*math.Cos(turtle.DegreesToRadians(cesaroBaseDegrees)))
}

// cesaroSymbol is the square Césaro alphabet {F, Q, L, R}.
type cesaroSymbol int

const (
	cesaroF cesaroSymbol = iota
	cesaroQ
	cesaroL
	cesaroR
)

// cesaroSystem starts from a square (F Q F Q F Q F Q) and rewrites each side
// F -> F L F R R F L F. Corner turns Q are fixed points.
type cesaroSystem struct{}

func (cesaroSystem) Initial() []cesaroSymbol {
	return []cesaroSymbol{
		cesaroF, cesaroQ, cesaroF, cesaroQ,
		cesaroF, cesaroQ, cesaroF, cesaroQ,
	}
}

func (cesaroSystem) ApplyRule(sym cesaroSymbol) []cesaroSymbol {
	if sym == cesaroF {
		return []cesaroSymbol{
			cesaroF, cesaroL, cesaroF, cesaroR,
			cesaroR, cesaroF, cesaroL, cesaroF,
		}
	}
	return []cesaroSymbol{sym}
}

// Cesaro is the square Césaro fractal: a square whose sides pinch inward at
// the 85° base angle.
type Cesaro struct {
	lsystemProgram[cesaroSymbol]
}

// NewCesaro creates a square Césaro program for the given iteration count.
func NewCesaro(iterations uint) *Cesaro {
	length := math.Pow(cesaroScale(), float64(iterations))
	base := turtle.DegreesToRadians(cesaroBaseDegrees)
	corner := turtle.DegreesToRadians(90)
	return &Cesaro{lsystemProgram[cesaroSymbol]{
		system:     cesaroSystem{},
		iterations: iterations,
		interpret: func(sym cesaroSymbol) turtle.Step {
			switch sym {
			case cesaroQ:
				return turtle.TurnRad(corner)
			case cesaroL:
				return turtle.TurnRad(base)
			case cesaroR:
				return turtle.TurnRad(-base)
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

// cesaroTriSymbol is the triangle Césaro alphabet {F1, F2, F3, Q1, Q2, Q3, L, R}.
// The three sides carry distinct forward distances, so each keeps its own
// symbol through the rewrite.
type cesaroTriSymbol int

const (
	cesaroTriF1 cesaroTriSymbol = iota
	cesaroTriF2
	cesaroTriF3
	cesaroTriQ1
	cesaroTriQ2
	cesaroTriQ3
	cesaroTriL
	cesaroTriR
)

// cesaroTriSystem starts from a right isosceles triangle
// (F1 Q1 F2 Q2 F3 Q3) and rewrites each side Fi -> Fi L Fi R R Fi L Fi.
type cesaroTriSystem struct{}

func (cesaroTriSystem) Initial() []cesaroTriSymbol {
	return []cesaroTriSymbol{
		cesaroTriF1, cesaroTriQ1,
		cesaroTriF2, cesaroTriQ2,
		cesaroTriF3, cesaroTriQ3,
	}
}

func (cesaroTriSystem) ApplyRule(sym cesaroTriSymbol) []cesaroTriSymbol {
	switch sym {
	case cesaroTriF1, cesaroTriF2, cesaroTriF3:
		return []cesaroTriSymbol{
			sym, cesaroTriL, sym, cesaroTriR,
			cesaroTriR, sym, cesaroTriL, sym,
		}
	default:
		return []cesaroTriSymbol{sym}
	}
}

// CesaroTri is the Césaro fractal over a right isosceles triangle: a unit
// hypotenuse, two 1/sqrt(2) sides, and corner turns of 135°, 90°, 135°.
type CesaroTri struct {
	lsystemProgram[cesaroTriSymbol]
}

// NewCesaroTri creates a triangle Césaro program for the given iteration count.
func NewCesaroTri(iterations uint) *CesaroTri {
	scale := math.Pow(cesaroScale(), float64(iterations))
	hypUnit := scale
	sideUnit := scale / math.Sqrt2
	base := turtle.DegreesToRadians(cesaroBaseDegrees)
	return &CesaroTri{lsystemProgram[cesaroTriSymbol]{
		system:     cesaroTriSystem{},
		iterations: iterations,
		interpret: func(sym cesaroTriSymbol) turtle.Step {
			switch sym {
			case cesaroTriF1:
				return turtle.Forward(hypUnit)
			case cesaroTriF2, cesaroTriF3:
				return turtle.Forward(sideUnit)
			case cesaroTriQ1, cesaroTriQ3:
				return turtle.TurnRad(turtle.DegreesToRadians(135))
			case cesaroTriQ2:
				return turtle.TurnRad(turtle.DegreesToRadians(90))
			case cesaroTriL:
				return turtle.TurnRad(base)
			default:
				return turtle.TurnRad(-base)
			}
		},
		init: []turtle.Step{
			turtle.SetPos(geometry.Point2D{}),
			turtle.SetRad(0),
			turtle.PenDown(),
		},
	}}
}
