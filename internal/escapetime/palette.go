package escapetime

import (
	"image/color"

	"fractal-explorer/pkg/colorutil"
)

// maxRampSize caps the precomputed ramp; deeper iteration counts clamp to
// the last entry.
const maxRampSize = 50

// Palette maps a classification to a display color: escaped orbits are
// colored by how fast they escaped, bounded points all share one set color.
type Palette struct {
	ramp []color.RGBA
	set  color.RGBA
}

// NewPalette builds a palette for the given iteration budget. The ramp runs
// from first to last with min(maxIterations, 50) entries (a minimum of two,
// since a ramp needs both endpoints).
func NewPalette(first, last, set color.RGBA, maxIterations uint64) (*Palette, error) {
	size := maxIterations
	if size > maxRampSize {
		size = maxRampSize
	}
	if size < 2 {
		size = 2
	}
	ramp, err := colorutil.LinearRamp(first, last, int(size))
	if err != nil {
		return nil, err
	}
	return &Palette{ramp: ramp, set: set}, nil
}

// NewSmoothPalette is NewPalette with HCL-blended ramp entries, for the
// viewer's smooth palette option.
func NewSmoothPalette(first, last, set color.RGBA, maxIterations uint64) (*Palette, error) {
	size := maxIterations
	if size > maxRampSize {
		size = maxRampSize
	}
	if size < 2 {
		size = 2
	}
	ramp, err := colorutil.SmoothRamp(first, last, int(size))
	if err != nil {
		return nil, err
	}
	return &Palette{ramp: ramp, set: set}, nil
}

// DefaultPalette is the stock black-to-white ramp with a black set color.
func DefaultPalette(maxIterations uint64) *Palette {
	p, _ := NewPalette(colorutil.Blue, colorutil.White, colorutil.Black, maxIterations)
	return p
}

// ColorFor returns the display color for one classified point.
func (p *Palette) ColorFor(escaped bool, iterations uint64) color.RGBA {
	if !escaped {
		return p.set
	}
	idx := int(iterations) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.ramp) {
		idx = len(p.ramp) - 1
	}
	return p.ramp[idx]
}
