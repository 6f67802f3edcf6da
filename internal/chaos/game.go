// Package chaos implements randomized iterated-function-system games
// (Barnsley fern, Sierpinski) and the streaming producer that feeds their
// unbounded point sequences to a consumer.
package chaos

import (
	"fmt"
	"sync"

	"fractal-explorer/pkg/geometry"
)

// Game produces a possibly-infinite randomized point sequence.
type Game interface {
	// Next computes and returns the next point of the sequence.
	Next() geometry.Point2D
	// Reset reinitializes the game's random state, e.g. on viewport resize.
	Reset()
}

// streamBuffer bounds the producer's lead over the consumer. Small on
// purpose: the producer blocks instead of racing ahead.
const streamBuffer = 10

// Streamer runs a Game on its own goroutine and hands points to the consumer
// through a bounded channel. The owner must call Stop before discarding a
// Streamer; an unstopped Streamer leaks its producer goroutine.
type Streamer struct {
	points   chan geometry.Point2D
	done     chan struct{}
	finished chan struct{}

	stopOnce sync.Once
	err      error
}

// NewStreamer starts a producer goroutine for the game.
func NewStreamer(game Game) *Streamer {
	s := &Streamer{
		points:   make(chan geometry.Point2D, streamBuffer),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go s.produce(game)
	return s
}

// Points returns the stream of generated points. The channel is closed when
// the producer terminates, so the consumer sees disconnection as a normal
// end of stream.
func (s *Streamer) Points() <-chan geometry.Point2D {
	return s.points
}

// Stop signals the producer to terminate and waits for it to do so. It
// returns only after the producer goroutine has exited; an abnormal producer
// termination is returned as an error rather than swallowed. Stop is
// idempotent.
func (s *Streamer) Stop() error {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	<-s.finished
	return s.err
}

func (s *Streamer) produce(game Game) {
	defer close(s.finished)
	defer close(s.points)
	defer func() {
		if r := recover(); r != nil {
			s.err = fmt.Errorf("chaos: producer terminated abnormally: %v", r)
		}
	}()

	for {
		select {
		case s.points <- game.Next():
		case <-s.done:
			return
		}
	}
}
