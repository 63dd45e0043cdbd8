// Package pointer normalizes mouse, touch and pointer input into a single
// event shape so drag handling can be written once for all three input
// families.
package pointer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedInputKind is returned for input that belongs to none
	// of the mouse, touch or pointer families.
	ErrUnsupportedInputKind = errors.New("unsupported input kind")

	// ErrMissingTouchPoint is returned for touch input without a changed
	// touch point.
	ErrMissingTouchPoint = errors.New("touch input has no changed touch point")
)

// Kind is the input family an Event was normalized from.
type Kind int

const (
	// Mouse input.
	Mouse Kind = iota
	// Touch input.
	Touch
	// Pointer-events input.
	Pointer
)

// String returns the family name.
func (k Kind) String() string {
	switch k {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	case Pointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// MoveEvent returns the event type that reports motion for this family.
func (k Kind) MoveEvent() string {
	switch k {
	case Touch:
		return TouchMove
	case Pointer:
		return PointerMove
	default:
		return MouseMove
	}
}

// UpEvent returns the event type that reports release for this family.
func (k Kind) UpEvent() string {
	switch k {
	case Touch:
		return TouchEnd
	case Pointer:
		return PointerUp
	default:
		return MouseUp
	}
}

// Event is a normalized input occurrence. It is a tagged variant: exactly
// one of the family payloads is set, selected by kind, and the accessors
// read through whichever is present.
type Event struct {
	kind    Kind
	mouse   *MouseInput
	touch   *TouchInput
	point   TouchPoint
	pointer *PointerInput
}

// Normalize converts a raw input occurrence into an Event. For touch
// input only the first changed touch point is used.
func Normalize(in Input) (Event, error) {
	switch raw := in.(type) {
	case *MouseInput:
		return Event{kind: Mouse, mouse: raw}, nil
	case *PointerInput:
		return Event{kind: Pointer, pointer: raw}, nil
	case *TouchInput:
		if len(raw.ChangedTouches) == 0 {
			return Event{}, fmt.Errorf("%s: %w", raw.Type(), ErrMissingTouchPoint)
		}
		return Event{kind: Touch, touch: raw, point: raw.ChangedTouches[0]}, nil
	case nil:
		return Event{}, fmt.Errorf("nil input: %w", ErrUnsupportedInputKind)
	default:
		return Event{}, fmt.Errorf("%T: %w", in, ErrUnsupportedInputKind)
	}
}

// MustNormalize is Normalize for call sites that only ever receive
// supported input; it panics otherwise.
func MustNormalize(in Input) Event {
	ev, err := Normalize(in)
	if err != nil {
		panic(fmt.Sprintf("pointer: listener only registered for supported input: %v", err))
	}
	return ev
}

// Kind returns the input family.
func (e Event) Kind() Kind { return e.kind }

// Raw returns the occurrence the event was normalized from.
func (e Event) Raw() Input {
	switch e.kind {
	case Mouse:
		return e.mouse
	case Touch:
		return e.touch
	default:
		return e.pointer
	}
}

func (e Event) coords() Coords {
	switch e.kind {
	case Mouse:
		return e.mouse.Coords
	case Touch:
		return e.point.Coords
	default:
		return e.pointer.Coords
	}
}

// ClientX returns the horizontal position relative to the viewport.
func (e Event) ClientX() int { return e.coords().ClientX }

// ClientY returns the vertical position relative to the viewport.
func (e Event) ClientY() int { return e.coords().ClientY }

// ScreenX returns the horizontal position relative to the screen.
func (e Event) ScreenX() int { return e.coords().ScreenX }

// ScreenY returns the vertical position relative to the screen.
func (e Event) ScreenY() int { return e.coords().ScreenY }

// PageX returns the horizontal position relative to the document.
func (e Event) PageX() int { return e.coords().PageX }

// PageY returns the vertical position relative to the document.
func (e Event) PageY() int { return e.coords().PageY }

// Target returns the originating interaction target. A touch point's own
// target wins over the occurrence's target.
func (e Event) Target() Target {
	switch e.kind {
	case Mouse:
		return e.mouse.Origin
	case Touch:
		if e.point.Target != "" {
			return e.point.Target
		}
		return e.touch.Origin
	default:
		return e.pointer.Origin
	}
}

// Pressed reports whether any button or contact is still held after the
// occurrence. A motion occurrence that is not pressed means the release
// happened somewhere nobody was listening.
func (e Event) Pressed() bool {
	switch e.kind {
	case Mouse:
		return e.mouse.Buttons != 0
	case Touch:
		t := e.touch.Type()
		return t != TouchEnd && t != TouchCancel
	default:
		return e.pointer.Buttons != 0
	}
}
