package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRampBlackToWhite(t *testing.T) {
	ramp, err := LinearRamp(Black, White, 256)
	require.NoError(t, err)
	require.Len(t, ramp, 256)

	assert.Equal(t, Black, ramp[0])
	assert.Equal(t, White, ramp[255])
	assert.Equal(t, color.RGBA{R: 10, G: 10, B: 10, A: 255}, ramp[10])
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, ramp[128])
}

func TestLinearRampEndpointsExact(t *testing.T) {
	first := color.RGBA{R: 17, G: 200, B: 3, A: 255}
	last := color.RGBA{R: 250, G: 1, B: 99, A: 128}

	ramp, err := LinearRamp(first, last, 50)
	require.NoError(t, err)
	assert.Equal(t, first, ramp[0])
	assert.Equal(t, last, ramp[49])
}

func TestLinearRampDescending(t *testing.T) {
	ramp, err := LinearRamp(White, Black, 3)
	require.NoError(t, err)
	assert.Equal(t, White, ramp[0])
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 255}, ramp[1])
	assert.Equal(t, Black, ramp[2])
}

func TestLinearRampRejectsDegenerateCount(t *testing.T) {
	for _, count := range []int{-1, 0, 1} {
		_, err := LinearRamp(Black, White, count)
		assert.Error(t, err, "count=%d", count)
	}
}

func TestSmoothRampEndpoints(t *testing.T) {
	ramp, err := SmoothRamp(Black, White, 16)
	require.NoError(t, err)
	require.Len(t, ramp, 16)
	assert.Equal(t, Black, ramp[0])
	assert.Equal(t, White, ramp[15])
}

func TestSmoothRampRejectsDegenerateCount(t *testing.T) {
	_, err := SmoothRamp(Black, White, 1)
	assert.Error(t, err)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}
