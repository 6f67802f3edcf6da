package escapetime

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractal-explorer/pkg/colorutil"
	"fractal-explorer/pkg/geometry"
)

func TestPaletteRampSize(t *testing.T) {
	tests := []struct {
		maxIterations uint64
		wantSize      int
	}{
		{1, 2},   // ramp floor: both endpoints
		{2, 2},
		{30, 30},
		{50, 50},
		{100, 50}, // capped
	}
	for _, tt := range tests {
		p, err := NewPalette(colorutil.Black, colorutil.White, colorutil.Black, tt.maxIterations)
		require.NoError(t, err)
		assert.Len(t, p.ramp, tt.wantSize, "maxIterations=%d", tt.maxIterations)
	}
}

func TestPaletteColorFor(t *testing.T) {
	set := colorutil.Red
	p, err := NewPalette(colorutil.Black, colorutil.White, set, 100)
	require.NoError(t, err)

	assert.Equal(t, set, p.ColorFor(false, 100))

	first := p.ColorFor(true, 1)
	assert.Equal(t, colorutil.Black, first)

	// Iteration counts beyond the ramp clamp to the last entry.
	assert.Equal(t, colorutil.White, p.ColorFor(true, 50))
	assert.Equal(t, colorutil.White, p.ColorFor(true, 1000))
}

func TestRasterColumnWrites(t *testing.T) {
	r := NewRaster(geometry.NewSize(4, 3))
	column := []color.RGBA{colorutil.Red, colorutil.Green, colorutil.Blue}
	r.SetColumn(2, column)

	// Out-of-bounds writes are dropped, not panicking.
	r.SetColumn(-1, column)
	r.SetColumn(4, column)
	r.SetPixel(0, 99, colorutil.Red)

	img := r.Snapshot()
	assert.Equal(t, colorutil.Red, img.RGBAAt(2, 0))
	assert.Equal(t, colorutil.Green, img.RGBAAt(2, 1))
	assert.Equal(t, colorutil.Blue, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}

func TestRenderFillsEveryPixel(t *testing.T) {
	f, err := New(VariantMandelbrot, 40, 2)
	require.NoError(t, err)

	size := geometry.NewSize(16, 12)
	area := f.DefaultViewArea()
	view := geometry.NewViewAreaTransformer(size, area[0], area[1])
	raster := NewRaster(size)
	palette := DefaultPalette(f.MaxIterations())

	require.NoError(t, Render(f, view, raster, palette, 3))

	img := raster.Snapshot()
	for x := 0; x < size.Width; x++ {
		for y := 0; y < size.Height; y++ {
			point := view.MapPixelToPoint(geometry.Point2D{X: float64(x), Y: float64(y)})
			escaped, iterations := f.Classify(point)
			want := palette.ColorFor(escaped, iterations)
			require.Equal(t, want, img.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRenderWorkerCountsProduceSameImage(t *testing.T) {
	f, err := New(VariantBurningShip, 25, 2)
	require.NoError(t, err)

	size := geometry.NewSize(20, 15)
	area := f.DefaultViewArea()

	render := func(workers int) []uint8 {
		view := geometry.NewViewAreaTransformer(size, area[0], area[1])
		raster := NewRaster(size)
		require.NoError(t, Render(f, view, raster, nil, workers))
		return raster.Snapshot().Pix
	}

	single := render(1)
	assert.Equal(t, single, render(4))
	assert.Equal(t, single, render(7))
}

func TestRendererCancelBeforeStart(t *testing.T) {
	f, err := New(VariantMandelbrot, 1000, 2)
	require.NoError(t, err)

	size := geometry.NewSize(64, 64)
	area := f.DefaultViewArea()
	view := geometry.NewViewAreaTransformer(size, area[0], area[1])
	raster := NewRaster(size)

	r := NewRenderer(f, view, raster, nil, 4)
	r.Cancel()
	r.Start()
	require.NoError(t, r.Wait())

	// Workers check cancellation before their first column, so nothing was
	// written.
	img := raster.Snapshot()
	for i := range img.Pix {
		require.Zero(t, img.Pix[i])
	}
}

func TestRendererCancelMidFill(t *testing.T) {
	f, err := New(VariantMandelbrot, 50000, 2)
	require.NoError(t, err)

	size := geometry.NewSize(400, 300)
	area := f.DefaultViewArea()
	view := geometry.NewViewAreaTransformer(size, area[0], area[1])
	raster := NewRaster(size)

	r := NewRenderer(f, view, raster, nil, 2)
	r.Start()
	r.Cancel()
	// Cancellation is not an error; Wait still joins cleanly.
	assert.NoError(t, r.Wait())
}

func TestRendererSurfacesWorkerPanic(t *testing.T) {
	f, err := New(VariantMandelbrot, 10, 2)
	require.NoError(t, err)

	// A nil view transformer makes every worker panic on its first column.
	raster := NewRaster(geometry.NewSize(8, 8))
	r := NewRenderer(f, nil, raster, nil, 2)
	r.Start()

	waitErr := r.Wait()
	require.Error(t, waitErr)
	assert.Contains(t, waitErr.Error(), "panicked")
}
