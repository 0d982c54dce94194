package controller

import "strings"

// Key is a directional binding. Anything the viewer does not bind maps to KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[string]Key{
	"up":         KeyUp,
	"arrowup":    KeyUp,
	"down":       KeyDown,
	"arrowdown":  KeyDown,
	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"right":      KeyRight,
	"arrowright": KeyRight,
}

// ParseKey maps a key identifier ("Up", "ArrowUp", "right", ...) to a Key.
// Unknown identifiers return KeyNone.
func ParseKey(name string) Key {
	return keyNames[strings.ToLower(strings.TrimSpace(name))]
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// EventKind identifies which input rule an Event feeds.
type EventKind int

const (
	EventClick EventKind = iota
	EventScroll
	EventKey
)

// Event is one discrete input from the Input Source.
// DeltaY is only read for EventScroll and Key only for EventKey.
type Event struct {
	Kind   EventKind
	DeltaY float32
	Key    Key
}

// ClickEvent returns a pointer click.
func ClickEvent() Event { return Event{Kind: EventClick} }

// ScrollEvent returns a wheel event. Positive deltaY zooms out, negative zooms in.
func ScrollEvent(deltaY float32) Event { return Event{Kind: EventScroll, DeltaY: deltaY} }

// KeyEvent returns a key-down event.
func KeyEvent(k Key) Event { return Event{Kind: EventKey, Key: k} }
