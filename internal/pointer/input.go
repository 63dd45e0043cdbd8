package pointer

// Event type names, one set per input family.
const (
	MouseDown = "mousedown"
	MouseMove = "mousemove"
	MouseUp   = "mouseup"

	TouchStart  = "touchstart"
	TouchMove   = "touchmove"
	TouchEnd    = "touchend"
	TouchCancel = "touchcancel"

	PointerDown = "pointerdown"
	PointerMove = "pointermove"
	PointerUp   = "pointerup"
)

// Button bits reported in the Buttons field of mouse and pointer input.
const (
	ButtonPrimary   uint16 = 1 << 0
	ButtonSecondary uint16 = 1 << 1
	ButtonAuxiliary uint16 = 1 << 2
)

// Target identifies the element an input occurrence originated from.
type Target string

// Input is a raw input occurrence as delivered by the host. Every input
// family embeds Base, so foreign types may satisfy Input as well; those
// are rejected by Normalize.
type Input interface {
	Type() string
	PreventDefault()
	DefaultPrevented() bool
}

// Base carries the fields shared by every raw input occurrence.
type Base struct {
	EventType string
	Origin    Target

	prevented bool
}

// Type returns the event type name, e.g. "mousemove".
func (b *Base) Type() string { return b.EventType }

// PreventDefault suppresses the platform's default handling of the
// occurrence (for touch moves: page scrolling).
func (b *Base) PreventDefault() { b.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (b *Base) DefaultPrevented() bool { return b.prevented }

// Coords holds the three coordinate spaces a position is reported in.
type Coords struct {
	ClientX, ClientY int
	ScreenX, ScreenY int
	PageX, PageY     int
}

// At returns Coords with every coordinate space set to (x, y). Hosts
// without scrolling or multiple screens (a terminal) report identical
// coordinates in all three spaces.
func At(x, y int) Coords {
	return Coords{ClientX: x, ClientY: y, ScreenX: x, ScreenY: y, PageX: x, PageY: y}
}

// MouseInput is a raw mouse occurrence.
type MouseInput struct {
	Base
	Coords
	// Buttons is the set of buttons held after the occurrence.
	Buttons uint16
}

// PointerInput is a raw pointer-events occurrence.
type PointerInput struct {
	Base
	Coords
	Buttons     uint16
	PointerID   int
	PointerType string
	IsPrimary   bool
}

// TouchPoint is one contact point of a touch occurrence.
type TouchPoint struct {
	Identifier int
	Coords
	Target Target
}

// TouchInput is a raw touch occurrence. Touches lists the contacts still
// on the surface; ChangedTouches lists the contacts whose state changed
// in this occurrence.
type TouchInput struct {
	Base
	Touches        []TouchPoint
	ChangedTouches []TouchPoint
}

// NewMouse builds a mouse occurrence at (x, y).
func NewMouse(eventType string, x, y int, buttons uint16) *MouseInput {
	return &MouseInput{
		Base:    Base{EventType: eventType},
		Coords:  At(x, y),
		Buttons: buttons,
	}
}

// NewPointer builds a primary pointer occurrence at (x, y).
func NewPointer(eventType, pointerType string, x, y int, buttons uint16) *PointerInput {
	return &PointerInput{
		Base:        Base{EventType: eventType},
		Coords:      At(x, y),
		Buttons:     buttons,
		PointerType: pointerType,
		IsPrimary:   true,
	}
}

// NewTouch builds a single-contact touch occurrence at (x, y). For
// touchend and touchcancel the contact is reported as changed but no
// longer present in Touches.
func NewTouch(eventType string, identifier, x, y int) *TouchInput {
	t := TouchPoint{Identifier: identifier, Coords: At(x, y)}
	in := &TouchInput{
		Base:           Base{EventType: eventType},
		ChangedTouches: []TouchPoint{t},
	}
	if eventType != TouchEnd && eventType != TouchCancel {
		in.Touches = []TouchPoint{t}
	}
	return in
}
