// Package turtle provides a stateful drawing head driven by a stream of Step
// commands. The turtle only tracks position, heading, and pen state; emitting
// line segments is the consumer's job.
package turtle

import (
	"math"

	"fractal-explorer/pkg/geometry"
)

// StepKind discriminates the Step command union.
type StepKind int

const (
	StepForward StepKind = iota
	StepSetPos
	StepSetRad
	StepTurnRad
	StepPenDown
	StepPenUp
)

// Step is one turtle command. It is the wire format between curve generators
// and turtle consumers: a closed tagged union dispatched by Kind.
type Step struct {
	Kind     StepKind
	Distance float64          // StepForward
	Pos      geometry.Point2D // StepSetPos
	Angle    float64          // StepSetRad, StepTurnRad (radians)
}

// Forward returns a command moving the turtle distance units along its heading.
func Forward(distance float64) Step {
	return Step{Kind: StepForward, Distance: distance}
}

// SetPos returns a command teleporting the turtle to p.
func SetPos(p geometry.Point2D) Step {
	return Step{Kind: StepSetPos, Pos: p}
}

// SetRad returns a command setting the heading to angle radians.
func SetRad(angle float64) Step {
	return Step{Kind: StepSetRad, Angle: angle}
}

// TurnRad returns a command rotating the heading by delta radians
// (positive is counterclockwise).
func TurnRad(delta float64) Step {
	return Step{Kind: StepTurnRad, Angle: delta}
}

// PenDown returns a command lowering the pen.
func PenDown() Step {
	return Step{Kind: StepPenDown}
}

// PenUp returns a command raising the pen.
func PenUp() Step {
	return Step{Kind: StepPenUp}
}

// Turtle is the mutable drawing head. It starts at the origin with heading 0
// and the pen down. A turtle is owned exclusively by whichever consumer is
// currently stepping it.
type Turtle struct {
	Position geometry.Point2D
	Angle    float64 // radians, kept in [0, 2π)
	Down     bool
}

// New returns a turtle at the origin, heading 0, pen down.
func New() *Turtle {
	return &Turtle{Down: true}
}

// Forward moves the turtle distance units along its current heading.
func (t *Turtle) Forward(distance float64) {
	t.Position = t.Position.PointAt(geometry.NewVector(t.Angle, distance))
}

// SetPosition teleports the turtle without drawing.
func (t *Turtle) SetPosition(p geometry.Point2D) {
	t.Position = p
}

// SetHeadingRadians sets the absolute heading.
func (t *Turtle) SetHeadingRadians(angle float64) {
	t.Angle = wrapAngle(angle)
}

// SetHeadingDegrees sets the absolute heading in degrees.
func (t *Turtle) SetHeadingDegrees(angle float64) {
	t.SetHeadingRadians(DegreesToRadians(angle))
}

// TurnRadians rotates the heading by delta radians.
func (t *Turtle) TurnRadians(delta float64) {
	t.Angle = wrapAngle(t.Angle + delta)
}

// TurnDegrees rotates the heading by delta degrees.
func (t *Turtle) TurnDegrees(delta float64) {
	t.TurnRadians(DegreesToRadians(delta))
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() {
	t.Down = true
}

// PenUp raises the pen.
func (t *Turtle) PenUp() {
	t.Down = false
}

// Perform dispatches a Step to the corresponding primitive.
func (t *Turtle) Perform(step Step) {
	switch step.Kind {
	case StepForward:
		t.Forward(step.Distance)
	case StepSetPos:
		t.SetPosition(step.Pos)
	case StepSetRad:
		t.SetHeadingRadians(step.Angle)
	case StepTurnRad:
		t.TurnRadians(step.Angle)
	case StepPenDown:
		t.PenDown()
	case StepPenUp:
		t.PenUp()
	}
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees / 360.0 * 2.0 * math.Pi
}

func wrapAngle(angle float64) float64 {
	wrapped := math.Mod(angle, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped
}
