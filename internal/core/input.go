package core

// EventKind is a semantic input event, abstracted from physical devices.
// Frontends translate mouse buttons, keys and window signals into these.
type EventKind int

const (
	EventNone  EventKind = iota
	EventClick           // Primary pointer button pressed
	EventPause           // Dedicated pause key
	EventClose           // Window closed / terminal interrupt
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventClick:
		return "Click"
	case EventPause:
		return "Pause"
	case EventClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Event is one polled input event. At is the pointer position for clicks.
type Event struct {
	Kind EventKind
	At   Point
}

// Input is everything a frontend collected during one frame: the last known
// pointer position and the batch of discrete events, in arrival order.
type Input struct {
	Pointer Point
	Events  []Event
}

// NewInput creates an input frame with the pointer at p and no events.
func NewInput(p Point) Input {
	return Input{Pointer: p}
}

// Push appends an event to the batch.
func (in *Input) Push(e Event) {
	in.Events = append(in.Events, e)
}

// Click appends a click at the current pointer position.
func (in *Input) Click() {
	in.Push(Event{Kind: EventClick, At: in.Pointer})
}

// Clear drops all events, keeping the pointer position.
func (in *Input) Clear() {
	in.Events = in.Events[:0]
}
