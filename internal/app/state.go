// Package app provides application state and change events for the viewer:
// which fractal is selected, how it is configured, and what part of the plane
// is visible.
package app

import (
	"sync"

	"fractal-explorer/internal/fractal"
	"fractal-explorer/pkg/geometry"
)

// EventType identifies application events.
type EventType int

const (
	// EventSelectionChanged fires when a different fractal is selected;
	// data is the new fractal.Descriptor.
	EventSelectionChanged EventType = iota
	// EventConfigChanged fires when the selected fractal's parameters
	// change; data is the new fractal.Config.
	EventConfigChanged
	// EventViewAreaChanged fires on zoom or pan; data is the new
	// [2]geometry.Point2D corner pair.
	EventViewAreaChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the viewer's current selection, configuration, and view area.
type State struct {
	mu sync.RWMutex

	selection fractal.Descriptor
	config    fractal.Config
	viewArea  [2]geometry.Point2D

	listeners map[EventType][]EventListener
}

// NewState creates application state with the first catalog entry selected.
func NewState() *State {
	first := fractal.All()[0]
	return &State{
		selection: first,
		config:    fractal.DefaultConfig(first.Category),
		viewArea:  fractal.DefaultViewArea(first),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Selection returns the currently selected fractal.
func (s *State) Selection() fractal.Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// Config returns the current fractal configuration.
func (s *State) Config() fractal.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// ViewArea returns the current Cartesian view corners.
func (s *State) ViewArea() [2]geometry.Point2D {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewArea
}

// Select switches to a different fractal, resetting the configuration and
// view area to that fractal's defaults, and emits EventSelectionChanged.
func (s *State) Select(d fractal.Descriptor) {
	s.mu.Lock()
	s.selection = d
	s.config = fractal.DefaultConfig(d.Category)
	s.viewArea = fractal.DefaultViewArea(d)
	s.mu.Unlock()
	s.Emit(EventSelectionChanged, d)
}

// SetConfig validates and stores a new configuration for the current
// selection and emits EventConfigChanged. Invalid configurations are
// rejected untouched.
func (s *State) SetConfig(cfg fractal.Config) error {
	s.mu.Lock()
	if err := cfg.Validate(s.selection.Category); err != nil {
		s.mu.Unlock()
		return err
	}
	s.config = cfg
	s.mu.Unlock()
	s.Emit(EventConfigChanged, cfg)
	return nil
}

// SetViewArea stores new view corners and emits EventViewAreaChanged.
func (s *State) SetViewArea(area [2]geometry.Point2D) {
	s.mu.Lock()
	s.viewArea = area
	s.mu.Unlock()
	s.Emit(EventViewAreaChanged, area)
}
