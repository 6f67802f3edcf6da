package viewer

import (
	"image"
	"runtime"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractal-explorer/internal/app"
	"fractal-explorer/pkg/colorutil"
)

// Overlapping Restart calls (resize-triggered ones run on their own
// goroutines while state events restart synchronously) must never leave a
// generation running with no stopper: every engine goroutine has to be
// joined once the final Stop returns.
func TestOverlappingRestartsLeaveNoOrphanGeneration(t *testing.T) {
	test.NewApp()
	state := app.NewState() // first catalog entry is a chaos game
	c := NewFractalCanvas(state, 1, false, 1)

	baseline := runtime.NumGoroutine()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				c.Restart()
			}
		}()
	}
	wg.Wait()
	c.Stop()

	c.mu.Lock()
	stopper := c.stopper
	c.mu.Unlock()
	assert.Nil(t, stopper)

	// An orphaned generation keeps its ticker and producer goroutines
	// alive forever, so the count would never come back down.
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline+2
	}, 2*time.Second, 20*time.Millisecond, "engine goroutines were not joined")
}

// The painter reads the returned frame outside the canvas lock, so draw must
// hand back a detached copy rather than the image the engine goroutines are
// still writing to.
func TestDrawReturnsDetachedFrame(t *testing.T) {
	test.NewApp()
	state := app.NewState()
	c := NewFractalCanvas(state, 1, false, 1)

	c.mu.Lock()
	c.output = newFilledImage(c.size, colorutil.Black)
	live := c.output
	size := c.size
	c.mu.Unlock()

	frame, ok := c.draw(size.Width, size.Height).(*image.RGBA)
	require.True(t, ok)
	require.NotSame(t, live, frame)

	frame.Pix[0] = 0xFF
	assert.Zero(t, live.Pix[0], "painting the frame must not touch the live image")

	live.Pix[4] = 0xFF
	assert.Zero(t, frame.Pix[4], "engine writes must not show in a handed-out frame")
}
