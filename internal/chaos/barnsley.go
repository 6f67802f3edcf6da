package chaos

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"fractal-explorer/pkg/geometry"
)

// fernTransforms holds the four classic Barnsley fern affine maps. The
// matching weights are relative probability mass; they do not need to sum to
// anything in particular.
var fernTransforms = [4]geometry.AffineTransform{
	{A: 0.0, B: 0.0, TX: 0.0, C: 0.0, D: 0.16, TY: 0.0},
	{A: 0.85, B: 0.04, TX: 0.0, C: -0.04, D: 0.85, TY: 1.60},
	{A: 0.20, B: -0.26, TX: 0.0, C: 0.23, D: 0.22, TY: 1.60},
	{A: -0.15, B: 0.28, TX: 0.0, C: 0.26, D: 0.24, TY: 0.44},
}

var fernWeights = [4]float64{1, 85, 7, 7}

// BarnsleyFern generates the Barnsley fern by repeatedly applying one of four
// affine transforms, chosen with probability proportional to its weight.
type BarnsleyFern struct {
	picker  distuv.Categorical
	current geometry.Point2D
}

// NewBarnsleyFern creates a fern game with a time-derived random seed.
func NewBarnsleyFern() *BarnsleyFern {
	return NewBarnsleyFernSeeded(uint64(time.Now().UnixNano()))
}

// NewBarnsleyFernSeeded creates a fern game with a fixed seed, for
// reproducible sequences.
func NewBarnsleyFernSeeded(seed uint64) *BarnsleyFern {
	return &BarnsleyFern{
		picker: distuv.NewCategorical(fernWeights[:], rand.NewSource(seed)),
	}
}

// Next applies a weighted-random transform to the current point and returns
// the result scaled down by 10 for display.
func (f *BarnsleyFern) Next() geometry.Point2D {
	idx := int(f.picker.Rand())
	f.current = fernTransforms[idx].Apply(f.current)
	return f.current.Scale(0.1)
}

// Reset moves the fern back to the origin.
func (f *BarnsleyFern) Reset() {
	f.current = geometry.Point2D{}
}
