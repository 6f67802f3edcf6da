package escapetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractal-explorer/pkg/geometry"
)

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(VariantMandelbrot, 0, 2)
	assert.Error(t, err)

	_, err = New(VariantMandelbrot, 100, 0)
	assert.Error(t, err)

	f, err := New(VariantMandelbrot, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.MaxIterations())
}

func TestMandelbrotClassification(t *testing.T) {
	f, err := New(VariantMandelbrot, 100, 2)
	require.NoError(t, err)

	tests := []struct {
		name    string
		point   geometry.Point2D
		escaped bool
	}{
		{"origin bounded", geometry.Point2D{X: 0, Y: 0}, false},
		{"minus one bounded", geometry.Point2D{X: -1, Y: 0}, false},
		{"one escapes", geometry.Point2D{X: 1, Y: 0}, true},
		{"near boundary escapes", geometry.Point2D{X: -0.8, Y: 0.35}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			escaped, iterations := f.Classify(tt.point)
			assert.Equal(t, tt.escaped, escaped)
			if tt.escaped {
				assert.Less(t, iterations, uint64(100))
			} else {
				assert.Equal(t, uint64(100), iterations)
			}
		})
	}
}

func TestEscapeIterationCount(t *testing.T) {
	f, err := New(VariantMandelbrot, 100, 2)
	require.NoError(t, err)

	// c=1: z1=1, z2=2 hits the bailout on the second iteration.
	escaped, iterations := f.Classify(geometry.Point2D{X: 1, Y: 0})
	require.True(t, escaped)
	assert.Equal(t, uint64(2), iterations)
}

func TestVariantFolding(t *testing.T) {
	c := complex(0.1, 0.2)
	z := complex(-3, 4)

	mandelbrot, _ := New(VariantMandelbrot, 10, 2)
	ship, _ := New(VariantBurningShip, 10, 2)
	mandel, _ := New(VariantBurningMandel, 10, 2)
	runner, _ := New(VariantRoadRunner, 10, 2)

	assert.Equal(t, z*z+c, mandelbrot.Iterate(c, z))
	assert.Equal(t, geometry.Cpow(complex(3, -4), 2)+c, ship.Iterate(c, z))
	assert.Equal(t, geometry.Cpow(complex(3, -4), 2)+c, mandel.Iterate(c, z))
	assert.Equal(t, geometry.Cpow(complex(-3, -4), 2)+c, runner.Iterate(c, z))

	// The variants differ once the imaginary part is negative.
	z = complex(-3, -4)
	assert.Equal(t, geometry.Cpow(complex(3, -4), 2)+c, ship.Iterate(c, z))
	assert.Equal(t, geometry.Cpow(complex(3, 4), 2)+c, mandel.Iterate(c, z))
	assert.Equal(t, geometry.Cpow(complex(-3, -4), 2)+c, runner.Iterate(c, z))
}

func TestPowerGeneralizedMandelbrot(t *testing.T) {
	cubed, err := New(VariantMandelbrot, 50, 3)
	require.NoError(t, err)

	c := complex(0.3, -0.1)
	z := complex(0.5, 0.25)
	assert.Equal(t, z*z*z+c, cubed.Iterate(c, z))
}

func TestDefaultViewAreasAreNondegenerate(t *testing.T) {
	for _, variant := range []Variant{
		VariantMandelbrot, VariantBurningShip, VariantBurningMandel, VariantRoadRunner,
	} {
		f, err := New(variant, 10, 2)
		require.NoError(t, err)
		area := f.DefaultViewArea()
		assert.NotEqual(t, area[0].X, area[1].X, "variant %d", variant)
		assert.NotEqual(t, area[0].Y, area[1].Y, "variant %d", variant)
	}
}
