// Package fractal is the selection surface: a closed catalog of fractal
// identifiers, each mapped to a category that determines which configuration
// shape applies and which engine constructs it.
package fractal

import (
	"fmt"

	"fractal-explorer/internal/chaos"
	"fractal-explorer/internal/curves"
	"fractal-explorer/internal/escapetime"
	"fractal-explorer/pkg/geometry"
)

// Category determines which engine renders a fractal and which Config fields
// apply to it.
type Category int

const (
	CategoryChaosGame Category = iota
	CategoryEscapeTime
	CategoryTurtleCurve
)

// String returns the category's human-readable name.
func (c Category) String() string {
	switch c {
	case CategoryChaosGame:
		return "Chaos game"
	case CategoryEscapeTime:
		return "Escape time"
	case CategoryTurtleCurve:
		return "Turtle curve"
	default:
		return "Unknown"
	}
}

// ID identifies one fractal in the catalog.
type ID string

const (
	IDBarnsleyFern  ID = "barnsleyfern"
	IDSierpinski    ID = "sierpinski"
	IDMandelbrot    ID = "mandelbrot"
	IDBurningShip   ID = "burningship"
	IDBurningMandel ID = "burningmandel"
	IDRoadRunner    ID = "roadrunner"
	IDDragon        ID = "dragon"
	IDTerdragon     ID = "terdragon"
	IDKoch          ID = "koch"
	IDLevyC         ID = "levyc"
	IDCesaro        ID = "cesaro"
	IDCesaroTri     ID = "cesarotri"
)

// Descriptor is the catalog metadata for one fractal.
type Descriptor struct {
	ID          ID
	Name        string
	Description string
	Category    Category
}

// catalog is the closed set of supported fractals. Construction dispatches on
// this table; adding a fractal means adding a row and a constructor case.
var catalog = []Descriptor{
	{IDBarnsleyFern, "Barnsley Fern", "Weighted iterated-function-system fern", CategoryChaosGame},
	{IDSierpinski, "Sierpinski Triangle", "Chaos game on three random vertices", CategoryChaosGame},
	{IDMandelbrot, "Mandelbrot", "z^p + c escape-time set", CategoryEscapeTime},
	{IDBurningShip, "Burning Ship", "Escape time with both components folded", CategoryEscapeTime},
	{IDBurningMandel, "Burning Mandel", "Escape time with the real component folded", CategoryEscapeTime},
	{IDRoadRunner, "Road Runner", "Escape time with the imaginary component folded", CategoryEscapeTime},
	{IDDragon, "Dragon", "Heighway dragon folding curve", CategoryTurtleCurve},
	{IDTerdragon, "Terdragon", "Threefold dragon curve", CategoryTurtleCurve},
	{IDKoch, "Koch Snowflake", "Triangle with thirds-rule sides", CategoryTurtleCurve},
	{IDLevyC, "Levy C Curve", "C-shaped 45-degree folding curve", CategoryTurtleCurve},
	{IDCesaro, "Cesaro Square", "Square with 85-degree pinched sides", CategoryTurtleCurve},
	{IDCesaroTri, "Cesaro Triangle", "Right triangle with 85-degree pinched sides", CategoryTurtleCurve},
}

// All returns every catalog descriptor in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns the descriptors of one category in display order.
func ByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range catalog {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds a descriptor by ID.
func Lookup(id ID) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Config carries the per-category construction parameters. Escape-time
// fractals read MaxIterations and Power; turtle curves read Iteration; chaos
// games need nothing beyond their identity.
type Config struct {
	MaxIterations uint64
	Power         uint64
	Iteration     uint
}

// DefaultConfig returns sensible starting parameters for a category.
func DefaultConfig(c Category) Config {
	switch c {
	case CategoryEscapeTime:
		return Config{MaxIterations: 100, Power: 2}
	case CategoryTurtleCurve:
		return Config{Iteration: 8}
	default:
		return Config{}
	}
}

// Validate checks the configuration shape for a category. Invalid values are
// rejected here, before any engine work begins; nothing is clamped silently.
func (cfg Config) Validate(category Category) error {
	if category == CategoryEscapeTime {
		if cfg.MaxIterations < 1 {
			return fmt.Errorf("fractal: max iterations must be a positive integer, got %d", cfg.MaxIterations)
		}
		if cfg.Power < 1 {
			return fmt.Errorf("fractal: power must be a positive integer, got %d", cfg.Power)
		}
	}
	return nil
}

// DefaultViewArea returns the initial Cartesian viewing rectangle for a
// fractal. Escape-time variants have individual plane windows; the other
// categories share fixed framings.
func DefaultViewArea(d Descriptor) [2]geometry.Point2D {
	if d.Category == CategoryEscapeTime {
		if f, err := NewEscapeTime(d.ID, DefaultConfig(CategoryEscapeTime)); err == nil {
			return f.DefaultViewArea()
		}
	}
	return [2]geometry.Point2D{{X: -1, Y: -1}, {X: 1, Y: 1}}
}

// NewChaosGame constructs the chaos game for id.
func NewChaosGame(id ID) (chaos.Game, error) {
	switch id {
	case IDBarnsleyFern:
		return chaos.NewBarnsleyFern(), nil
	case IDSierpinski:
		return chaos.NewSierpinski(), nil
	default:
		return nil, fmt.Errorf("fractal: %q is not a chaos game", id)
	}
}

// NewEscapeTime constructs the escape-time fractal for id.
func NewEscapeTime(id ID, cfg Config) (*escapetime.Fractal, error) {
	if err := cfg.Validate(CategoryEscapeTime); err != nil {
		return nil, err
	}
	var variant escapetime.Variant
	switch id {
	case IDMandelbrot:
		variant = escapetime.VariantMandelbrot
	case IDBurningShip:
		variant = escapetime.VariantBurningShip
	case IDBurningMandel:
		variant = escapetime.VariantBurningMandel
	case IDRoadRunner:
		variant = escapetime.VariantRoadRunner
	default:
		return nil, fmt.Errorf("fractal: %q is not an escape-time fractal", id)
	}
	return escapetime.New(variant, cfg.MaxIterations, cfg.Power)
}

// NewTurtleProgram constructs the turtle curve program for id.
func NewTurtleProgram(id ID, cfg Config) (curves.Program, error) {
	switch id {
	case IDDragon:
		return curves.NewDragon(cfg.Iteration), nil
	case IDTerdragon:
		return curves.NewTerdragon(cfg.Iteration), nil
	case IDKoch:
		return curves.NewKoch(cfg.Iteration), nil
	case IDLevyC:
		return curves.NewLevyC(cfg.Iteration), nil
	case IDCesaro:
		return curves.NewCesaro(cfg.Iteration), nil
	case IDCesaroTri:
		return curves.NewCesaroTri(cfg.Iteration), nil
	default:
		return nil, fmt.Errorf("fractal: %q is not a turtle curve", id)
	}
}
