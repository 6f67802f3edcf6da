package curves

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractal-explorer/internal/turtle"
	"fractal-explorer/pkg/geometry"
)

func forwardCount(p Program) int {
	count := 0
	for step := range p.Steps() {
		if step.Kind == turtle.StepForward {
			count++
		}
	}
	return count
}

func endpoint(p Program) geometry.Point2D {
	t := turtle.New()
	for _, step := range p.InitSteps() {
		t.Perform(step)
	}
	for step := range p.Steps() {
		t.Perform(step)
	}
	return t.Position
}

func TestTerdragonStepPattern(t *testing.T) {
	// Iteration 2 expands to the 17-symbol sequence F L F R F L F L F R F R F L F R F.
	want := "FLFRFLFLFRFRFLFRF"

	var got []rune
	for step := range NewTerdragon(2).Steps() {
		switch {
		case step.Kind == turtle.StepForward:
			got = append(got, 'F')
		case step.Kind == turtle.StepTurnRad && step.Angle > 0:
			got = append(got, 'L')
		default:
			got = append(got, 'R')
		}
	}
	assert.Equal(t, want, string(got))
}

func TestTerdragonForwardCounts(t *testing.T) {
	for iterations, want := range map[uint]int{0: 1, 1: 3, 2: 9, 3: 27} {
		assert.Equal(t, want, forwardCount(NewTerdragon(iterations)), "iteration %d", iterations)
	}
}

func TestTerdragonEndpointSpan(t *testing.T) {
	// Like the dragon, the terdragon keeps its endpoints one unit apart.
	for iterations := uint(0); iterations <= 4; iterations++ {
		end := endpoint(NewTerdragon(iterations))
		assert.InDelta(t, 1.0, end.Distance(geometry.Point2D{}), 1e-9, "iteration %d", iterations)
	}
}

func TestKochForwardCounts(t *testing.T) {
	// Three sides, each quadrupling per iteration.
	for iterations, want := range map[uint]int{0: 3, 1: 12, 2: 48} {
		assert.Equal(t, want, forwardCount(NewKoch(iterations)), "iteration %d", iterations)
	}
}

func TestKochCurveCloses(t *testing.T) {
	for iterations := uint(0); iterations <= 3; iterations++ {
		end := endpoint(NewKoch(iterations))
		assert.InDelta(t, 0.0, end.Distance(geometry.Point2D{}), 1e-9, "iteration %d", iterations)
	}
}

func TestLevyCEndpointSpan(t *testing.T) {
	// The C curve's endpoints stay a unit baseline apart.
	for iterations := uint(0); iterations <= 5; iterations++ {
		end := endpoint(NewLevyC(iterations))
		assert.InDelta(t, 1.0, end.Distance(geometry.Point2D{}), 1e-9, "iteration %d", iterations)
	}
}

func TestCesaroCurveCloses(t *testing.T) {
	for iterations := uint(0); iterations <= 2; iterations++ {
		end := endpoint(NewCesaro(iterations))
		assert.InDelta(t, 0.0, end.Distance(geometry.Point2D{}), 1e-9, "iteration %d", iterations)
	}
}

func TestCesaroForwardCounts(t *testing.T) {
	// Four sides, each quadrupling per iteration.
	for iterations, want := range map[uint]int{0: 4, 1: 16, 2: 64} {
		assert.Equal(t, want, forwardCount(NewCesaro(iterations)), "iteration %d", iterations)
	}
}

func TestCesaroTriCurveCloses(t *testing.T) {
	for iterations := uint(0); iterations <= 2; iterations++ {
		end := endpoint(NewCesaroTri(iterations))
		assert.InDelta(t, 0.0, end.Distance(geometry.Point2D{}), 1e-9, "iteration %d", iterations)
	}
}

func TestLsystemStepsRestartable(t *testing.T) {
	p := NewKoch(2)
	first := collectSteps(t, p)
	second := collectSteps(t, p)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestGroupUntilNextForward(t *testing.T) {
	f := turtle.Forward(1)
	l := turtle.TurnRad(1)

	tests := []struct {
		name  string
		steps []turtle.Step
		want  [][]turtle.Step
	}{
		{"empty", nil, nil},
		{"single forward", []turtle.Step{f}, [][]turtle.Step{{f}}},
		{
			"turns attach to following forward",
			[]turtle.Step{l, f, l, l, f},
			[][]turtle.Step{{l, f}, {l, l, f}},
		},
		{
			"trailing turns form a partial chunk",
			[]turtle.Step{f, l, l},
			[][]turtle.Step{{f}, {l, l}},
		},
		{"no forwards at all", []turtle.Step{l, l}, [][]turtle.Step{{l, l}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][]turtle.Step
			for chunk := range GroupUntilNextForward(slices.Values(tt.steps)) {
				got = append(got, chunk)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupUntilNextForwardOverProgram(t *testing.T) {
	d := NewDragon(3)
	chunks := 0
	for chunk := range GroupUntilNextForward(d.Steps()) {
		// Every chunk of a dragon walk ends in its Forward.
		require.Equal(t, turtle.StepForward, chunk[len(chunk)-1].Kind)
		chunks++
	}
	assert.Equal(t, int(d.StepCount()), chunks)
}

func TestSegmentsRespectPenState(t *testing.T) {
	// A program whose pen is up for the middle forward yields two segments.
	p := &scriptProgram{steps: []turtle.Step{
		turtle.Forward(1),
		turtle.PenUp(),
		turtle.Forward(1),
		turtle.PenDown(),
		turtle.Forward(1),
	}}
	var segs []Segment
	for seg := range Segments(p) {
		segs = append(segs, seg)
	}
	require.Len(t, segs, 2)
	assert.InDelta(t, 1.0, segs[0].To.X, 1e-12)
	assert.InDelta(t, 3.0, segs[1].To.X, 1e-12)
}

// scriptProgram replays a fixed step list; used to exercise helpers.
type scriptProgram struct {
	steps []turtle.Step
}

func (p *scriptProgram) InitSteps() []turtle.Step {
	return []turtle.Step{turtle.SetPos(geometry.Point2D{}), turtle.SetRad(0), turtle.PenDown()}
}

func (p *scriptProgram) Steps() iter.Seq[turtle.Step] {
	return slices.Values(p.steps)
}
