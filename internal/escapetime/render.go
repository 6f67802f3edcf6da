package escapetime

import (
	"errors"
	"fmt"
	"image/color"
	"runtime"
	"sync"

	"fractal-explorer/pkg/geometry"
)

// Renderer fills a raster with one fractal's pixel classifications using a
// fixed pool of workers. Columns are assigned round-robin (column mod worker
// count); each worker checks for cancellation between columns and writes each
// finished column into the shared raster under a single lock acquisition.
//
// A Renderer runs one fill and is then spent. Starting a fresh fill for a new
// view means building a new Renderer over a freshly sized raster; workers of
// a canceled renderer hold only their own raster and can never write into the
// replacement.
type Renderer struct {
	fractal *Fractal
	view    *geometry.ViewAreaTransformer
	raster  *Raster
	palette *Palette
	workers int

	cancel     chan struct{}
	cancelOnce sync.Once
	wg         sync.WaitGroup

	mu       sync.Mutex
	failures []error
}

// NewRenderer prepares a fill of raster with the fractal as seen through
// view. workers <= 0 selects one worker per available CPU.
func NewRenderer(f *Fractal, view *geometry.ViewAreaTransformer, raster *Raster, palette *Palette, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if palette == nil {
		palette = DefaultPalette(f.MaxIterations())
	}
	return &Renderer{
		fractal: f,
		view:    view,
		raster:  raster,
		palette: palette,
		workers: workers,
		cancel:  make(chan struct{}),
	}
}

// Start launches the worker pool. Call Wait to join it.
func (r *Renderer) Start() {
	for w := 0; w < r.workers; w++ {
		r.wg.Add(1)
		go r.fillColumns(w)
	}
}

// Cancel asks all workers to stop at their next between-columns check.
// It does not wait; pair it with Wait.
func (r *Renderer) Cancel() {
	r.cancelOnce.Do(func() {
		close(r.cancel)
	})
}

// Wait joins the worker pool. A worker panic is returned as an error, one
// per failed worker; the remaining workers are unaffected and their columns
// complete normally.
func (r *Renderer) Wait() error {
	r.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	return errors.Join(r.failures...)
}

// fillColumns is one worker: it classifies every pixel of the columns
// assigned to worker index w.
func (r *Renderer) fillColumns(w int) {
	defer r.wg.Done()
	defer func() {
		if rec := recover(); rec != nil {
			r.mu.Lock()
			r.failures = append(r.failures, fmt.Errorf("escapetime: worker %d panicked: %v", w, rec))
			r.mu.Unlock()
		}
	}()

	size := r.raster.Size()
	column := make([]color.RGBA, size.Height)
	for x := w; x < size.Width; x += r.workers {
		select {
		case <-r.cancel:
			return
		default:
		}

		for y := 0; y < size.Height; y++ {
			point := r.view.MapPixelToPoint(geometry.Point2D{X: float64(x), Y: float64(y)})
			escaped, iterations := r.fractal.Classify(point)
			column[y] = r.palette.ColorFor(escaped, iterations)
		}
		r.raster.SetColumn(x, column)
	}
}

// Render is the synchronous convenience wrapper: it fills the raster
// completely and returns any worker failure. Used by the offline renderer;
// the viewer drives Renderer directly so it can cancel mid-fill.
func Render(f *Fractal, view *geometry.ViewAreaTransformer, raster *Raster, palette *Palette, workers int) error {
	r := NewRenderer(f, view, raster, palette, workers)
	r.Start()
	return r.Wait()
}
