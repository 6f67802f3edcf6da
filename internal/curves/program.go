// Package curves compiles the concrete fractal curves (dragon, terdragon,
// Koch, Lévy C, Césaro) into lazy turtle command sequences.
package curves

import (
	"iter"

	"fractal-explorer/internal/turtle"
	"fractal-explorer/pkg/geometry"
)

// Program is a compiled turtle curve. InitSteps positions and orients the
// turtle; Steps yields the curve body. Steps must return a fresh sequence on
// every call so a resize or reset can replay the curve from scratch.
type Program interface {
	InitSteps() []turtle.Step
	Steps() iter.Seq[turtle.Step]
}

// GroupUntilNextForward repackages a step sequence into chunks, each holding
// every step up to and including the next Forward. This lets a renderer
// advance one visible line segment per animation tick. Trailing non-Forward
// steps form a final partial chunk; an empty sequence yields no chunks.
func GroupUntilNextForward(steps iter.Seq[turtle.Step]) iter.Seq[[]turtle.Step] {
	return func(yield func([]turtle.Step) bool) {
		var chunk []turtle.Step
		for step := range steps {
			chunk = append(chunk, step)
			if step.Kind == turtle.StepForward {
				if !yield(chunk) {
					return
				}
				chunk = nil
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// Segment is one drawn line in Cartesian space.
type Segment struct {
	From, To geometry.Point2D
}

// Segments runs the whole program on a fresh turtle and yields one Segment
// per Forward step taken while the pen is down.
func Segments(p Program) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		t := turtle.New()
		for _, step := range p.InitSteps() {
			t.Perform(step)
		}
		for step := range p.Steps() {
			from := t.Position
			t.Perform(step)
			if step.Kind == turtle.StepForward && t.Down {
				if !yield(Segment{From: from, To: t.Position}) {
					return
				}
			}
		}
	}
}
