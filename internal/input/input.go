// Package input turns one frame of polled device state into controller events.
package input

import "museum-viewer/internal/controller"

// Frame is the input polled during one display frame.
// WheelMove follows raylib: positive when the wheel is rolled away from the user.
// Keys holds the names of keys that went down (or auto-repeated) this frame.
type Frame struct {
	Clicked   bool
	WheelMove float32
	Keys      []string
}

// Translate returns the events for f in a fixed order: click, scroll, then keys in the
// order they were polled. Unbound keys still produce a KeyNone event since every key
// event runs the height clamp.
func Translate(f Frame) []controller.Event {
	var out []controller.Event
	if f.Clicked {
		out = append(out, controller.ClickEvent())
	}
	if f.WheelMove != 0 {
		// Rolling away from the user zooms in, which is a negative delta.
		out = append(out, controller.ScrollEvent(-f.WheelMove))
	}
	for _, k := range f.Keys {
		out = append(out, controller.KeyEvent(controller.ParseKey(k)))
	}
	return out
}

// Empty reports whether f carries no input.
func (f Frame) Empty() bool {
	return !f.Clicked && f.WheelMove == 0 && len(f.Keys) == 0
}
