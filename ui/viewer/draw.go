package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"

	xdraw "golang.org/x/image/draw"

	"fractal-explorer/internal/curves"
	"fractal-explorer/pkg/geometry"
)

func newFilledImage(size geometry.Size, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	return img
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	img.SetRGBA(x, y, col)
}

// drawLine rasterizes a segment by stepping one pixel at a time along its
// longer axis.
func drawLine(img *image.RGBA, from, to geometry.Point2D, col color.RGBA) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		setPixel(img, int(math.Round(from.X)), int(math.Round(from.Y)), col)
		return
	}
	stepX := dx / float64(steps)
	stepY := dy / float64(steps)
	x, y := from.X, from.Y
	for i := 0; i <= steps; i++ {
		setPixel(img, int(math.Round(x)), int(math.Round(y)), col)
		x += stepX
		y += stepY
	}
}

func copyImage(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

// scaleTo stretches a frame to the target size. Used while a resize is in
// flight, before the restarted generation publishes a frame at the new size.
func scaleTo(img *image.RGBA, size geometry.Size) *image.RGBA {
	if img.Bounds().Dx() == size.Width && img.Bounds().Dy() == size.Height {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return scaled
}

// newSegmentPuller converts a program's segment sequence into pull form so
// the animation loop can interleave it with frame ticks.
func newSegmentPuller(program curves.Program) (func() (curves.Segment, bool), func()) {
	return iter.Pull(curves.Segments(program))
}
