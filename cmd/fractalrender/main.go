// Command fractalrender renders one catalog fractal to a file without the
// desktop viewer. Escape-time fractals render to PNG; chaos games and turtle
// curves render to PNG, SVG, or PDF depending on the output extension.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fogleman/gg"

	"fractal-explorer/internal/chaos"
	"fractal-explorer/internal/curves"
	"fractal-explorer/internal/escapetime"
	"fractal-explorer/internal/export"
	"fractal-explorer/internal/fractal"
	"fractal-explorer/pkg/colorutil"
	"fractal-explorer/pkg/geometry"
)

func main() {
	name := flag.String("fractal", "", "Fractal to render (see -list)")
	list := flag.Bool("list", false, "List available fractals and exit")
	out := flag.String("out", "fractal.png", "Output file (.png, .svg, or .pdf)")
	width := flag.Int("width", 1024, "Output width in pixels")
	height := flag.Int("height", 768, "Output height in pixels")
	iterations := flag.Uint64("iterations", 100, "Escape-time iteration limit")
	power := flag.Uint64("power", 2, "Escape-time exponent")
	iteration := flag.Uint("iteration", 8, "Turtle curve expansion depth")
	points := flag.Int("points", 100000, "Chaos game points to plot")
	workers := flag.Int("workers", 0, "Escape-time workers (0 = one per CPU)")
	smooth := flag.Bool("smooth", false, "Use the perceptually smooth palette")
	flag.Parse()

	if *list {
		for _, d := range fractal.All() {
			fmt.Printf("%-14s %-12s %s\n", d.ID, d.Category, d.Description)
		}
		return
	}
	if *name == "" {
		fmt.Println("Usage: fractalrender -fractal <id> [-out fractal.png] (see -list)")
		os.Exit(1)
	}

	d, ok := fractal.Lookup(fractal.ID(*name))
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown fractal %q, try -list\n", *name)
		os.Exit(1)
	}

	size := geometry.NewSize(*width, *height)
	var err error
	switch d.Category {
	case fractal.CategoryEscapeTime:
		cfg := fractal.Config{MaxIterations: *iterations, Power: *power}
		err = renderEscapeTime(d, cfg, size, *workers, *smooth, *out)
	case fractal.CategoryChaosGame:
		err = renderChaosGame(d, size, *points, *out)
	case fractal.CategoryTurtleCurve:
		cfg := fractal.Config{Iteration: *iteration}
		err = renderTurtleCurve(d, cfg, size, *out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}

func renderEscapeTime(d fractal.Descriptor, cfg fractal.Config, size geometry.Size, workers int, smooth bool, out string) error {
	f, err := fractal.NewEscapeTime(d.ID, cfg)
	if err != nil {
		return err
	}

	area := f.DefaultViewArea()
	view := geometry.NewViewAreaTransformer(size, area[0], area[1])
	raster := escapetime.NewRaster(size)

	palette, err := makePalette(smooth, f.MaxIterations())
	if err != nil {
		return err
	}

	if err := escapetime.Render(f, view, raster, palette, workers); err != nil {
		return err
	}
	return gg.SavePNG(out, raster.Snapshot())
}

func renderChaosGame(d fractal.Descriptor, size geometry.Size, points int, out string) error {
	game, err := fractal.NewChaosGame(d.ID)
	if err != nil {
		return err
	}
	game.Reset()

	area := fractal.DefaultViewArea(d)
	view := geometry.NewViewAreaTransformer(size, area[0], area[1])

	plot, err := export.NewPlot(out, size, colorutil.Black, colorutil.Green)
	if err != nil {
		return err
	}

	streamer := chaos.NewStreamer(game)
	for i := 0; i < points; i++ {
		point, ok := <-streamer.Points()
		if !ok {
			break
		}
		plot.Dot(view.MapPointToPixel(point))
	}
	if err := streamer.Stop(); err != nil {
		return err
	}
	return plot.Write(out)
}

func renderTurtleCurve(d fractal.Descriptor, cfg fractal.Config, size geometry.Size, out string) error {
	program, err := fractal.NewTurtleProgram(d.ID, cfg)
	if err != nil {
		return err
	}

	view := geometry.NewViewAreaTransformer(size,
		geometry.Point2D{X: -0.8, Y: -0.8}, geometry.Point2D{X: 1.2, Y: 0.8})

	plot, err := export.NewPlot(out, size, colorutil.White, colorutil.Black)
	if err != nil {
		return err
	}
	for seg := range curves.Segments(program) {
		plot.Line(view.MapPointToPixel(seg.From), view.MapPointToPixel(seg.To))
	}
	return plot.Write(out)
}

func makePalette(smooth bool, maxIterations uint64) (*escapetime.Palette, error) {
	if smooth {
		return escapetime.NewSmoothPalette(colorutil.Blue, colorutil.White, colorutil.Black, maxIterations)
	}
	return escapetime.NewPalette(colorutil.Blue, colorutil.White, colorutil.Black, maxIterations)
}
