// Package colorutil provides shared color utilities: common named colors and
// the color ramps used to visualize escape-time iteration counts.
package colorutil

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Common colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// LinearRamp returns count colors interpolated channel-wise from first to
// last. Index 0 is exactly first and index count-1 is exactly last; the
// channels in between follow first[c] + i*(last[c]-first[c])/(count-1),
// truncated to the byte range.
//
// count must be at least 2: a ramp needs both of its endpoints.
func LinearRamp(first, last color.RGBA, count int) ([]color.RGBA, error) {
	if count < 2 {
		return nil, fmt.Errorf("colorutil: ramp needs at least 2 colors, got %d", count)
	}

	ramp := make([]color.RGBA, count)
	steps := float64(count - 1)
	for i := 0; i < count; i++ {
		t := float64(i)
		ramp[i] = color.RGBA{
			R: rampChannel(first.R, last.R, t, steps),
			G: rampChannel(first.G, last.G, t, steps),
			B: rampChannel(first.B, last.B, t, steps),
			A: rampChannel(first.A, last.A, t, steps),
		}
	}
	return ramp, nil
}

func rampChannel(first, last uint8, i, steps float64) uint8 {
	v := float64(first) + i*(float64(last)-float64(first))/steps
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// SmoothRamp returns count colors blended from first to last in HCL space,
// which avoids the muddy midpoints a plain channel lerp produces. Used by the
// viewer's "smooth" palette option; LinearRamp remains the default.
func SmoothRamp(first, last color.RGBA, count int) ([]color.RGBA, error) {
	if count < 2 {
		return nil, fmt.Errorf("colorutil: ramp needs at least 2 colors, got %d", count)
	}

	c1, _ := colorful.MakeColor(first)
	c2, _ := colorful.MakeColor(last)

	ramp := make([]color.RGBA, count)
	steps := float64(count - 1)
	for i := 0; i < count; i++ {
		blended := c1.BlendHcl(c2, float64(i)/steps).Clamped()
		r, g, b := blended.RGB255()
		ramp[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return ramp, nil
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1.
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}
