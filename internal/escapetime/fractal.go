// Package escapetime implements the Mandelbrot family of per-pixel
// iterated-complex-function fractals and the parallel renderer that fills a
// shared raster with their classifications.
package escapetime

import (
	"fmt"
	"math"

	"fractal-explorer/pkg/geometry"
)

// escapeRadius is the classic bailout: once |z| reaches 2 the orbit is
// guaranteed to diverge.
const escapeRadius = 2.0

// Variant selects the one-step update rule. The set is closed; rendering and
// classification dispatch on it directly.
type Variant int

const (
	VariantMandelbrot Variant = iota
	VariantBurningShip
	VariantBurningMandel
	VariantRoadRunner
)

// Fractal is one configured escape-time fractal: a variant, an iteration
// budget, and a power for the generalized z^p + c family.
type Fractal struct {
	variant       Variant
	maxIterations uint64
	power         uint64
}

// New creates an escape-time fractal. maxIterations and power must both be
// at least 1.
func New(variant Variant, maxIterations, power uint64) (*Fractal, error) {
	if maxIterations < 1 {
		return nil, fmt.Errorf("escapetime: max iterations must be >= 1, got %d", maxIterations)
	}
	if power < 1 {
		return nil, fmt.Errorf("escapetime: power must be >= 1, got %d", power)
	}
	return &Fractal{variant: variant, maxIterations: maxIterations, power: power}, nil
}

// MaxIterations returns the iteration budget.
func (f *Fractal) MaxIterations() uint64 {
	return f.maxIterations
}

// DefaultViewArea returns a suggested initial Cartesian viewing rectangle.
func (f *Fractal) DefaultViewArea() [2]geometry.Point2D {
	switch f.variant {
	case VariantBurningShip:
		return [2]geometry.Point2D{{X: -2.5, Y: -2.0}, {X: 1.5, Y: 1.0}}
	case VariantBurningMandel, VariantRoadRunner:
		return [2]geometry.Point2D{{X: -2.0, Y: -2.0}, {X: 2.0, Y: 2.0}}
	default:
		return [2]geometry.Point2D{{X: -2.5, Y: -1.25}, {X: 1.0, Y: 1.25}}
	}
}

// Iterate applies the one-step update rule: z' = g(z)^p + c, where g folds
// the components according to the variant.
func (f *Fractal) Iterate(c, z complex128) complex128 {
	switch f.variant {
	case VariantBurningShip:
		z = complex(math.Abs(real(z)), -math.Abs(imag(z)))
	case VariantBurningMandel:
		z = complex(math.Abs(real(z)), -imag(z))
	case VariantRoadRunner:
		z = complex(real(z), -math.Abs(imag(z)))
	}
	return geometry.Cpow(z, f.power) + c
}

// Classify iterates the point's orbit from z=0. It reports whether the orbit
// escaped and how many iterations were used: the escape iteration, or the
// full budget for bounded points.
func (f *Fractal) Classify(point geometry.Point2D) (escaped bool, iterations uint64) {
	c := complex(point.X, point.Y)
	z := complex(0, 0)
	for i := uint64(0); i < f.maxIterations; i++ {
		z = f.Iterate(c, z)
		if real(z)*real(z)+imag(z)*imag(z) >= escapeRadius*escapeRadius {
			return true, i + 1
		}
	}
	return false, f.maxIterations
}
