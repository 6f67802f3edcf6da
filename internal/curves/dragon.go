package curves

import (
	"iter"
	"math"

	"fractal-explorer/internal/turtle"
	"fractal-explorer/pkg/geometry"
)

// Dragon is the Heighway dragon curve. Unlike the other curves its turn
// sequence is computed directly from the step index rather than through an
// L-system: strip the trailing factors of two from the index and turn left
// when the remainder is 1 mod 4, right otherwise.
type Dragon struct {
	iterations uint
}

// NewDragon creates a dragon curve program for the given iteration count.
func NewDragon(iterations uint) *Dragon {
	return &Dragon{iterations: iterations}
}

// StepCount returns the number of Forward steps: 2^N.
func (d *Dragon) StepCount() uint64 {
	return 1 << d.iterations
}

// SegmentLength returns the per-step distance, chosen so the curve's
// endpoints stay one unit apart at every iteration.
func (d *Dragon) SegmentLength() float64 {
	return 1.0 / math.Pow(math.Sqrt2, float64(d.iterations))
}

// TurnAfterStep reports the turn following step i (1-based): positive for a
// left 90° turn, negative for right.
func (d *Dragon) TurnAfterStep(i uint64) float64 {
	for i%2 == 0 {
		i /= 2
	}
	if i%4 == 1 {
		return math.Pi / 2
	}
	return -math.Pi / 2
}

// InitSteps positions the turtle at the origin with the heading tilted by
// -45° per iteration, keeping the endpoints pinned as the curve folds.
func (d *Dragon) InitSteps() []turtle.Step {
	return []turtle.Step{
		turtle.SetPos(geometry.Point2D{}),
		turtle.SetRad(turtle.DegreesToRadians(-45 * float64(d.iterations))),
		turtle.PenDown(),
	}
}

// Steps yields the curve body: a Forward per step with the computed turn
// between consecutive steps. Each call returns a fresh sequence.
func (d *Dragon) Steps() iter.Seq[turtle.Step] {
	count := d.StepCount()
	length := d.SegmentLength()
	return func(yield func(turtle.Step) bool) {
		for i := uint64(1); i <= count; i++ {
			if !yield(turtle.Forward(length)) {
				return
			}
			if i < count && !yield(turtle.TurnRad(d.TurnAfterStep(i))) {
				return
			}
		}
	}
}
