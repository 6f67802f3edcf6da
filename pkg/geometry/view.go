package geometry

import (
	"fmt"
	"math"
)

// ViewAreaTransformer maps between pixel coordinates on a viewport and points
// in a visible Cartesian rectangle. It is immutable: build a fresh one whenever
// the viewport size or the view rectangle changes.
//
// The scale is uniform (no distortion): the larger of the two required scales
// governs, and the other axis is centered with a symmetric offset. The Y axis
// is flipped between the two spaces (screen Y grows down, Cartesian Y grows up).
type ViewAreaTransformer struct {
	viewport Size
	topLeft     Point2D // min X, max Y
	bottomRight Point2D // max X, min Y

	scale   float64 // Cartesian units per pixel
	centerX float64
	centerY float64
}

// NewViewAreaTransformer creates a transformer for the given viewport size and
// the Cartesian rectangle spanned by corners a and b. The corners may be given
// in either diagonal order.
//
// Panics if the rectangle has zero width or height; a degenerate view area
// would otherwise turn every mapped coordinate into NaN or Inf.
func NewViewAreaTransformer(viewport Size, a, b Point2D) *ViewAreaTransformer {
	minX := math.Min(a.X, b.X)
	maxX := math.Max(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxY := math.Max(a.Y, b.Y)

	cartWidth := maxX - minX
	cartHeight := maxY - minY
	if cartWidth == 0 || cartHeight == 0 {
		panic(fmt.Sprintf("geometry: degenerate view area %vx%v", cartWidth, cartHeight))
	}

	scale := math.Max(
		cartHeight/float64(viewport.Height),
		cartWidth/float64(viewport.Width),
	)

	return &ViewAreaTransformer{
		viewport:    viewport,
		topLeft:     Point2D{X: minX, Y: maxY},
		bottomRight: Point2D{X: maxX, Y: minY},
		scale:       scale,
		centerX:     (minX + maxX) / 2,
		centerY:     (minY + maxY) / 2,
	}
}

// Viewport returns the pixel size this transformer was built for.
func (v *ViewAreaTransformer) Viewport() Size {
	return v.viewport
}

// ViewArea returns the normalized Cartesian corners: top-left, bottom-right.
func (v *ViewAreaTransformer) ViewArea() [2]Point2D {
	return [2]Point2D{v.topLeft, v.bottomRight}
}

// Scale returns the uniform scale in Cartesian units per pixel.
func (v *ViewAreaTransformer) Scale() float64 {
	return v.scale
}

// MapPixelToPoint maps a (possibly fractional) pixel coordinate to its
// Cartesian point.
func (v *ViewAreaTransformer) MapPixelToPoint(pixel Point2D) Point2D {
	halfW := float64(v.viewport.Width) / 2
	halfH := float64(v.viewport.Height) / 2
	return Point2D{
		X: v.centerX + (pixel.X-halfW)*v.scale,
		Y: v.centerY - (pixel.Y-halfH)*v.scale,
	}
}

// MapPointToPixel maps a Cartesian point to its pixel coordinate. It is the
// exact inverse of MapPixelToPoint: the round trip reproduces the input within
// floating-point epsilon.
func (v *ViewAreaTransformer) MapPointToPixel(point Point2D) Point2D {
	halfW := float64(v.viewport.Width) / 2
	halfH := float64(v.viewport.Height) / 2
	return Point2D{
		X: (point.X-v.centerX)/v.scale + halfW,
		Y: (v.centerY-point.Y)/v.scale + halfH,
	}
}

// ZoomedViewArea returns new view-area corners scaled by factor about the
// given Cartesian point. A factor below 1 zooms in, above 1 zooms out.
func (v *ViewAreaTransformer) ZoomedViewArea(about Point2D, factor float64) [2]Point2D {
	shrink := func(p Point2D) Point2D {
		return Point2D{
			X: about.X + (p.X-about.X)*factor,
			Y: about.Y + (p.Y-about.Y)*factor,
		}
	}
	return [2]Point2D{shrink(v.topLeft), shrink(v.bottomRight)}
}

// PannedViewArea returns new view-area corners shifted by a pixel delta.
func (v *ViewAreaTransformer) PannedViewArea(dxPixels, dyPixels float64) [2]Point2D {
	dx := dxPixels * v.scale
	dy := -dyPixels * v.scale
	return [2]Point2D{
		{X: v.topLeft.X + dx, Y: v.topLeft.Y + dy},
		{X: v.bottomRight.X + dx, Y: v.bottomRight.Y + dy},
	}
}
