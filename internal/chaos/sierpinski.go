package chaos

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"fractal-explorer/pkg/geometry"
)

// Sierpinski plays the classic chaos game on a random triangle: three
// vertices are drawn uniformly from [-1,1]x[-1,1] and the current point moves
// halfway toward a uniformly chosen vertex on each step.
type Sierpinski struct {
	rng      *rand.Rand
	coord    distuv.Uniform
	vertices [3]geometry.Point2D
	current  geometry.Point2D
}

// NewSierpinski creates a Sierpinski game with a time-derived random seed.
func NewSierpinski() *Sierpinski {
	return NewSierpinskiSeeded(uint64(time.Now().UnixNano()))
}

// NewSierpinskiSeeded creates a Sierpinski game with a fixed seed, for
// reproducible sequences.
func NewSierpinskiSeeded(seed uint64) *Sierpinski {
	src := rand.NewSource(seed)
	s := &Sierpinski{
		rng:   rand.New(src),
		coord: distuv.Uniform{Min: -1, Max: 1, Src: src},
	}
	s.Reset()
	return s
}

// Vertices returns the triangle corners of the current game.
func (s *Sierpinski) Vertices() [3]geometry.Point2D {
	return s.vertices
}

// Next moves the current point halfway toward a random vertex and returns it.
func (s *Sierpinski) Next() geometry.Point2D {
	target := s.vertices[s.rng.Intn(3)]
	s.current = geometry.Midpoint(s.current, target)
	return s.current
}

// Reset regenerates the three vertices, starts the current point at their
// centroid, and immediately half-steps it toward a random vertex.
func (s *Sierpinski) Reset() {
	for i := range s.vertices {
		s.vertices[i] = geometry.Point2D{X: s.coord.Rand(), Y: s.coord.Rand()}
	}
	s.current = geometry.Centroid(s.vertices[:])
	s.current = geometry.Midpoint(s.current, s.vertices[s.rng.Intn(3)])
}
