// ABOUTME: Frame loop state and events
// ABOUTME: Process-lifetime visualizer state owned by the loop, plus input events
package app

import (
	"github.com/harperreed/halo/pkg/bars"
	"github.com/harperreed/halo/pkg/spectrum"
)

// Phase is the frame loop state machine
type Phase int

const (
	Running Phase = iota
	Shutdown
)

func (p Phase) String() string {
	if p == Running {
		return "running"
	}
	return "shutdown"
}

// State is everything that survives between ticks. Only Loop.Tick mutates it.
type State struct {
	Phase   Phase
	Peak    spectrum.RollingPeak
	Hue     float64
	Heights bars.Heights
	Bass    float64
	Radius  float64
	Scale   float64

	Ticks         uint64
	CaptureErrors uint64
	DrawSkipped   uint64
}

// NewState returns the state before the first tick
func NewState() State {
	return State{
		Phase:  Running,
		Peak:   *spectrum.NewRollingPeak(),
		Radius: bars.BaseRadius,
	}
}

// EventKind identifies an input event
type EventKind int

const (
	EventQuit EventKind = iota
	EventResize
)

// Event is a window or terminal event polled at the top of a tick
type Event struct {
	Kind   EventKind
	Width  int
	Height int
}

// Quit returns a quit event
func Quit() Event {
	return Event{Kind: EventQuit}
}

// Resize returns a resize event for the new dimensions
func Resize(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}
