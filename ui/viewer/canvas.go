// Package viewer provides the fractal display widget: a raster canvas that
// pulls from whichever engine matches the current selection, painting
// incrementally and restarting cleanly on zoom, pan, resize, or reselection.
package viewer

import (
	"image"
	"image/color"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"fractal-explorer/internal/app"
	"fractal-explorer/internal/chaos"
	"fractal-explorer/internal/curves"
	"fractal-explorer/internal/escapetime"
	"fractal-explorer/internal/fractal"
	"fractal-explorer/pkg/colorutil"
	"fractal-explorer/pkg/geometry"
)

const (
	zoomInFactor  = 0.8
	zoomOutFactor = 1.25

	// frameInterval paces incremental repaints while an engine is producing.
	frameInterval = 40 * time.Millisecond

	// defaultPointsPerFrame is how many streamed chaos points are plotted
	// per frame when no preference overrides it.
	defaultPointsPerFrame = 200

	// turtleSegmentsPerFrame is how many visible line segments a turtle
	// animation advances per frame.
	turtleSegmentsPerFrame = 16
)

// FractalCanvas displays the selected fractal and owns the lifecycle of the
// engine feeding it: exactly one render generation is live at a time, and
// starting a new one first cancels and joins the old.
type FractalCanvas struct {
	widget.BaseWidget

	state          *app.State
	raster         *fynecanvas.Raster
	workers        int
	smooth         bool
	pointsPerFrame int

	// restartMu serializes the stop-then-start sequence. Restart can be
	// entered concurrently (state events arrive synchronously while draw
	// spawns Restarts on resize); without serialization two generations
	// could both start and one stopper would overwrite the other, leaving
	// an orphaned generation running forever.
	restartMu sync.Mutex

	mu      sync.Mutex
	size    geometry.Size
	output  *image.RGBA
	view    *geometry.ViewAreaTransformer
	stopper func() // cancels the live render generation; nil when idle
}

// NewFractalCanvas creates the canvas and subscribes it to state changes.
// workers <= 0 uses one escape-time worker per CPU; smooth selects the HCL
// palette; pointsPerFrame <= 0 uses the default chaos plotting rate.
func NewFractalCanvas(state *app.State, workers int, smooth bool, pointsPerFrame int) *FractalCanvas {
	if pointsPerFrame <= 0 {
		pointsPerFrame = defaultPointsPerFrame
	}
	c := &FractalCanvas{
		state:          state,
		workers:        workers,
		smooth:         smooth,
		pointsPerFrame: pointsPerFrame,
		size:           geometry.NewSize(800, 600),
	}
	c.raster = fynecanvas.NewRaster(c.draw)
	c.ExtendBaseWidget(c)

	state.On(app.EventSelectionChanged, func(interface{}) { c.Restart() })
	state.On(app.EventConfigChanged, func(interface{}) { c.Restart() })
	state.On(app.EventViewAreaChanged, func(interface{}) { c.Restart() })
	return c
}

// CreateRenderer implements fyne.Widget.
func (c *FractalCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

// Restart tears down the live render generation and starts a fresh one for
// the current selection, configuration, and view area.
func (c *FractalCanvas) Restart() {
	c.restartMu.Lock()
	defer c.restartMu.Unlock()
	c.stopCurrent()

	d := c.state.Selection()
	cfg := c.state.Config()

	c.mu.Lock()
	size := c.size
	c.output = newFilledImage(size, colorutil.Black)
	c.view = nil
	c.mu.Unlock()

	var err error
	switch d.Category {
	case fractal.CategoryEscapeTime:
		err = c.startEscapeTime(d, cfg, size)
	case fractal.CategoryChaosGame:
		err = c.startChaosGame(d, size)
	case fractal.CategoryTurtleCurve:
		err = c.startTurtleCurve(d, cfg, size)
	}
	if err != nil {
		log.Printf("viewer: cannot start %s: %v", d.ID, err)
		return
	}
	c.raster.Refresh()
}

// Stop cancels the live render generation and waits for its engine to
// terminate. Safe to call when idle; must be called before discarding the
// canvas.
func (c *FractalCanvas) Stop() {
	c.restartMu.Lock()
	defer c.restartMu.Unlock()
	c.stopCurrent()
}

// stopCurrent joins the live generation. Callers hold restartMu.
func (c *FractalCanvas) stopCurrent() {
	c.mu.Lock()
	stopper := c.stopper
	c.stopper = nil
	c.mu.Unlock()
	if stopper != nil {
		stopper()
	}
}

// ViewTransformer returns the transformer of the live generation, or nil.
func (c *FractalCanvas) ViewTransformer() *geometry.ViewAreaTransformer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// startEscapeTime launches a parallel raster fill plus a ticker goroutine
// that copies partial results to the display while workers are running.
func (c *FractalCanvas) startEscapeTime(d fractal.Descriptor, cfg fractal.Config, size geometry.Size) error {
	f, err := fractal.NewEscapeTime(d.ID, cfg)
	if err != nil {
		return err
	}

	area := c.state.ViewArea()
	view := geometry.NewViewAreaTransformer(size, area[0], area[1])
	target := escapetime.NewRaster(size)

	palette, err := c.makePalette(f.MaxIterations())
	if err != nil {
		return err
	}

	renderer := escapetime.NewRenderer(f, view, target, palette, c.workers)
	renderer.Start()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.publish(view, target.Snapshot())
			}
		}
	}()
	go func() {
		if err := renderer.Wait(); err != nil {
			log.Printf("viewer: escape-time fill failed: %v", err)
		}
		c.publish(view, target.Snapshot())
	}()

	c.mu.Lock()
	c.view = view
	c.stopper = func() {
		close(done)
		renderer.Cancel()
		renderer.Wait() // failures already logged by the completion goroutine
	}
	c.mu.Unlock()
	return nil
}

// startChaosGame launches the game's streaming producer and a consumer
// goroutine that plots a batch of points per frame.
func (c *FractalCanvas) startChaosGame(d fractal.Descriptor, size geometry.Size) error {
	game, err := fractal.NewChaosGame(d.ID)
	if err != nil {
		return err
	}
	game.Reset()

	area := c.state.ViewArea()
	view := geometry.NewViewAreaTransformer(size, area[0], area[1])
	streamer := chaos.NewStreamer(game)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				for i := 0; i < c.pointsPerFrame; i++ {
					point, ok := <-streamer.Points()
					if !ok {
						return
					}
					c.plotPoint(view, point, colorutil.Green)
				}
				c.raster.Refresh()
			}
		}
	}()

	c.mu.Lock()
	c.view = view
	c.stopper = func() {
		close(done)
		if err := streamer.Stop(); err != nil {
			log.Printf("viewer: chaos producer failed: %v", err)
		}
	}
	c.mu.Unlock()
	return nil
}

// startTurtleCurve launches a goroutine that walks the compiled program one
// chunk-to-next-forward at a time, drawing a few segments per frame.
func (c *FractalCanvas) startTurtleCurve(d fractal.Descriptor, cfg fractal.Config, size geometry.Size) error {
	program, err := fractal.NewTurtleProgram(d.ID, cfg)
	if err != nil {
		return err
	}

	// Turtle curves are normalized to a unit baseline; frame them with a
	// margin around the unit box.
	view := geometry.NewViewAreaTransformer(size,
		geometry.Point2D{X: -0.8, Y: -0.8}, geometry.Point2D{X: 1.2, Y: 0.8})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		next, stop := newSegmentPuller(program)
		defer stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				for i := 0; i < turtleSegmentsPerFrame; i++ {
					seg, ok := next()
					if !ok {
						c.raster.Refresh()
						return
					}
					c.plotSegment(view, seg, colorutil.White)
				}
				c.raster.Refresh()
			}
		}
	}()

	c.mu.Lock()
	c.view = view
	c.stopper = func() { close(done) }
	c.mu.Unlock()
	return nil
}

func (c *FractalCanvas) makePalette(maxIterations uint64) (*escapetime.Palette, error) {
	if c.smooth {
		return escapetime.NewSmoothPalette(colorutil.Blue, colorutil.White, colorutil.Black, maxIterations)
	}
	return escapetime.NewPalette(colorutil.Blue, colorutil.White, colorutil.Black, maxIterations)
}

// publish swaps in a freshly rendered frame and refreshes the display. The
// view pointer identifies the render generation: a frame from a superseded
// generation is discarded.
func (c *FractalCanvas) publish(view *geometry.ViewAreaTransformer, img *image.RGBA) {
	c.mu.Lock()
	if c.view != view {
		c.mu.Unlock()
		return
	}
	c.output = img
	c.mu.Unlock()
	c.raster.Refresh()
}

func (c *FractalCanvas) plotPoint(view *geometry.ViewAreaTransformer, p geometry.Point2D, col color.RGBA) {
	pixel := view.MapPointToPixel(p)
	c.mu.Lock()
	if c.view == view {
		setPixel(c.output, int(pixel.X), int(pixel.Y), col)
	}
	c.mu.Unlock()
}

func (c *FractalCanvas) plotSegment(view *geometry.ViewAreaTransformer, seg curves.Segment, col color.RGBA) {
	from := view.MapPointToPixel(seg.From)
	to := view.MapPointToPixel(seg.To)
	c.mu.Lock()
	if c.view == view {
		drawLine(c.output, from, to, col)
	}
	c.mu.Unlock()
}

// draw is the raster callback. A size change restarts the live generation
// against a freshly sized view; the stale generation keeps its own raster
// and cannot write into the new one. The frame handed to the painter is a
// copy taken under the lock, since the chaos and turtle goroutines keep
// mutating the live image after draw returns.
func (c *FractalCanvas) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	c.mu.Lock()
	resized := c.size.Width != w || c.size.Height != h
	if resized {
		c.size = geometry.NewSize(w, h)
	}
	var output *image.RGBA
	if c.output != nil {
		output = copyImage(c.output)
	}
	c.mu.Unlock()

	if resized {
		go c.Restart()
	}
	if output == nil {
		return newFilledImage(geometry.NewSize(w, h), colorutil.Black)
	}
	return scaleTo(output, geometry.NewSize(w, h))
}

// Scrolled zooms the view area about the cursor. Escape-time fractals and
// chaos games remap to the new area; turtle curves keep their fixed frame
// and simply redraw.
func (c *FractalCanvas) Scrolled(ev *fyne.ScrollEvent) {
	c.mu.Lock()
	view := c.view
	c.mu.Unlock()
	if view == nil {
		return
	}

	factor := zoomOutFactor
	if ev.Scrolled.DY > 0 {
		factor = zoomInFactor
	}
	about := view.MapPixelToPoint(geometry.Point2D{
		X: float64(ev.Position.X),
		Y: float64(ev.Position.Y),
	})
	c.state.SetViewArea(view.ZoomedViewArea(about, factor))
}

// Dragged pans the view area.
func (c *FractalCanvas) Dragged(ev *fyne.DragEvent) {
	c.mu.Lock()
	view := c.view
	c.mu.Unlock()
	if view == nil {
		return
	}
	c.state.SetViewArea(view.PannedViewArea(
		-float64(ev.Dragged.DX), -float64(ev.Dragged.DY)))
}

// DragEnd implements fyne.Draggable.
func (c *FractalCanvas) DragEnd() {}
