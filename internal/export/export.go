// Package export writes finished fractal plots to files: raster PNG output
// through a gg drawing context, and vector SVG/PDF output through a tdewolff
// canvas. Both plot in pixel coordinates with the origin at the top left,
// matching the view transformer.
package export

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"

	"fractal-explorer/pkg/geometry"
)

// Plot is a drawing surface for point and segment fractals.
type Plot interface {
	// Line strokes a one-pixel-wide segment between two pixel positions.
	Line(from, to geometry.Point2D)
	// Dot marks a single pixel position.
	Dot(p geometry.Point2D)
	// Write finishes the plot and writes it to path.
	Write(path string) error
}

// NewPlot picks the plot implementation for the output file's extension:
// .png is raster, .svg and .pdf are vector.
func NewPlot(path string, size geometry.Size, background, ink color.RGBA) (Plot, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return NewRasterPlot(size, background, ink), nil
	case ".svg", ".pdf":
		return NewVectorPlot(size, background, ink), nil
	default:
		return nil, fmt.Errorf("export: unsupported output format %q", filepath.Ext(path))
	}
}

// RasterPlot draws into a pixel buffer.
type RasterPlot struct {
	dc *gg.Context
}

// NewRasterPlot creates a raster plot filled with the background color.
func NewRasterPlot(size geometry.Size, background, ink color.RGBA) *RasterPlot {
	dc := gg.NewContext(size.Width, size.Height)
	dc.SetColor(background)
	dc.Clear()
	dc.SetColor(ink)
	dc.SetLineWidth(1)
	return &RasterPlot{dc: dc}
}

// Line implements Plot.
func (p *RasterPlot) Line(from, to geometry.Point2D) {
	p.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	p.dc.Stroke()
}

// Dot implements Plot.
func (p *RasterPlot) Dot(pt geometry.Point2D) {
	p.dc.DrawPoint(pt.X, pt.Y, 0.5)
	p.dc.Fill()
}

// Image returns the underlying pixel buffer.
func (p *RasterPlot) Image() image.Image {
	return p.dc.Image()
}

// Write implements Plot; the path must end in .png.
func (p *RasterPlot) Write(path string) error {
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return nil
}

// VectorPlot draws scalable geometry. The canvas Y axis points up, so pixel
// positions are flipped on the way in.
type VectorPlot struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	height float64
}

// NewVectorPlot creates a vector plot sized in pixels.
func NewVectorPlot(size geometry.Size, background, ink color.RGBA) *VectorPlot {
	c := canvas.New(float64(size.Width), float64(size.Height))
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(background)
	ctx.DrawPath(0, 0, canvas.Rectangle(float64(size.Width), float64(size.Height)))
	ctx.SetFillColor(ink)
	ctx.SetStrokeColor(ink)
	ctx.SetStrokeWidth(1)
	return &VectorPlot{c: c, ctx: ctx, height: float64(size.Height)}
}

// Line implements Plot.
func (p *VectorPlot) Line(from, to geometry.Point2D) {
	p.ctx.MoveTo(from.X, p.height-from.Y)
	p.ctx.LineTo(to.X, p.height-to.Y)
	p.ctx.Stroke()
}

// Dot implements Plot.
func (p *VectorPlot) Dot(pt geometry.Point2D) {
	p.ctx.DrawPath(pt.X, p.height-pt.Y, canvas.Rectangle(1, 1))
}

// Write implements Plot, dispatching on the file extension.
func (p *VectorPlot) Write(path string) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		err = p.c.WriteFile(path, svg.Writer)
	case ".pdf":
		err = p.c.WriteFile(path, pdf.Writer)
	case ".png":
		err = p.c.WriteFile(path, rasterizer.PNGWriter(1.0))
	default:
		return fmt.Errorf("export: unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return nil
}
