package session

import "lifeview/internal/render"

// EventKind enumerates the input events a Surface can report.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventQuit
	EventKey
	EventPointer
)

// Key identifies a key press the loop reacts to. Backends map their native
// keys onto these.
type Key uint8

const (
	KeyUnknown Key = iota
	// KeySpace toggles the simulation between paused and running.
	KeySpace
	// KeyStep advances one generation while paused.
	KeyStep
	// KeyClear kills every cell while paused.
	KeyClear
	// KeyRandom seeds the grid randomly while paused.
	KeyRandom
	// KeyQuit ends the loop.
	KeyQuit
)

// Event is one polled input event. X and Y are pixel coordinates and are
// only meaningful for EventPointer.
type Event struct {
	Kind    EventKind
	Key     Key
	Pressed bool
	X, Y    int
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyDown returns a key event.
func KeyDown(k Key) Event { return Event{Kind: EventKey, Key: k} }

// Pointer returns a pointer state event.
func Pointer(pressed bool, x, y int) Event {
	return Event{Kind: EventPointer, Pressed: pressed, X: x, Y: y}
}

// Surface is the window or terminal the loop renders to and polls input
// from.
type Surface interface {
	// Poll returns the events received since the previous call without
	// blocking.
	Poll() []Event
	// Canvas returns the drawing target for the next frame.
	Canvas() render.Canvas
	// Present makes everything drawn since the last call visible.
	Present()
	// Close releases the surface.
	Close() error
}

// Status is a snapshot of the session handed to surfaces that show one.
type Status struct {
	Active     bool
	Generation int
	LiveCells  int
}

// Label names the simulation state.
func (s Status) Label() string {
	if s.Active {
		return "RUNNING"
	}
	return "PAUSED"
}

// StatusSink is implemented by surfaces that display session status.
type StatusSink interface {
	SetStatus(Status)
}
