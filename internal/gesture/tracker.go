// Package gesture turns a primary-button or finger "down" into a full drag
// lifecycle (begin, zero or more moves, end) independent of input family.
//
// A Tracker registers its move and release listeners on the global input
// surface rather than on the control that was pressed, so a drag keeps
// going after the pointer leaves the control. Those listeners only hold a
// weak reference to the tracker; the consumer that created the tracker
// owns it and must Close it when it goes away.
package gesture

import (
	"weak"

	"github.com/Gaurav-Gosain/dockwm/internal/events"
	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
)

// State is the tracker's phase.
type State int

const (
	// Idle means no gesture is in progress.
	Idle State = iota
	// Dragging means a down was seen and no release yet.
	Dragging
)

// String returns the state name.
func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Handler receives the gesture lifecycle.
type Handler interface {
	OnBegin(ev pointer.Event)
	OnMove(ev pointer.Event, dx, dy int)
	OnEnd(ev pointer.Event)
}

// Funcs adapts plain functions to Handler. Nil fields are skipped.
type Funcs struct {
	Begin func(ev pointer.Event)
	Move  func(ev pointer.Event, dx, dy int)
	End   func(ev pointer.Event)
}

// OnBegin calls Begin.
func (f Funcs) OnBegin(ev pointer.Event) {
	if f.Begin != nil {
		f.Begin(ev)
	}
}

// OnMove calls Move.
func (f Funcs) OnMove(ev pointer.Event, dx, dy int) {
	if f.Move != nil {
		f.Move(ev, dx, dy)
	}
}

// OnEnd calls End.
func (f Funcs) OnEnd(ev pointer.Event) {
	if f.End != nil {
		f.End(ev)
	}
}

// Tracker follows one gesture at a time for a single trigger surface.
type Tracker struct {
	surface *events.Target
	handler Handler

	state          State
	kind           pointer.Kind
	originX        int
	originY        int
	lastX          int
	lastY          int
	moveListener   *events.Listener
	upListener     *events.Listener
	cancelListener *events.Listener
	closed         bool
}

// New creates an idle tracker that will attach to surface while dragging.
func New(surface *events.Target, handler Handler) *Tracker {
	return &Tracker{surface: surface, handler: handler}
}

// State returns the current phase.
func (t *Tracker) State() State { return t.state }

// Dragging reports whether a gesture is in progress.
func (t *Tracker) Dragging() bool { return t.state == Dragging }

// Origin returns where the current (or last) gesture started.
func (t *Tracker) Origin() (x, y int) { return t.originX, t.originY }

// Down starts a gesture. It is ignored while a gesture is already in
// progress or after Close.
func (t *Tracker) Down(in pointer.Input) {
	if t.closed || t.state == Dragging {
		return
	}
	ev := pointer.MustNormalize(in)

	t.state = Dragging
	t.kind = ev.Kind()
	t.originX, t.originY = ev.ClientX(), ev.ClientY()
	t.lastX, t.lastY = t.originX, t.originY

	ref := weak.Make(t)
	var moveL, upL, cancelL *events.Listener
	release := func() {
		moveL.Remove()
		upL.Remove()
		cancelL.Remove()
	}
	moveL = t.surface.AddListener(t.kind.MoveEvent(), func(in pointer.Input) {
		// Stop touch devices from scrolling the page under the drag.
		in.PreventDefault()
		tr := ref.Value()
		if tr == nil {
			release()
			return
		}
		tr.move(in)
	})
	onUp := func(in pointer.Input) {
		tr := ref.Value()
		if tr == nil {
			release()
			return
		}
		tr.up(in)
	}
	upL = t.surface.AddListener(t.kind.UpEvent(), onUp)
	// An interrupted touch ends the gesture like a lifted finger.
	if t.kind == pointer.Touch {
		cancelL = t.surface.AddListener(pointer.TouchCancel, onUp)
	}
	t.moveListener, t.upListener, t.cancelListener = moveL, upL, cancelL

	t.handler.OnBegin(ev)
}

func (t *Tracker) delta(ev pointer.Event) (dx, dy int) {
	x, y := ev.ClientX(), ev.ClientY()
	dx, dy = x-t.lastX, y-t.lastY
	t.lastX, t.lastY = x, y
	return dx, dy
}

func (t *Tracker) move(in pointer.Input) {
	if t.state != Dragging {
		return
	}
	ev := pointer.MustNormalize(in)
	dx, dy := t.delta(ev)
	t.handler.OnMove(ev, dx, dy)

	// Released somewhere nobody was listening: the move doubles as the up.
	if !ev.Pressed() {
		t.finish(ev)
	}
}

func (t *Tracker) up(in pointer.Input) {
	if t.state != Dragging {
		return
	}
	ev := pointer.MustNormalize(in)
	if dx, dy := t.delta(ev); dx != 0 || dy != 0 {
		t.handler.OnMove(ev, dx, dy)
	}
	t.finish(ev)
}

// finish ends the gesture. The listeners are detached from the tracker
// before OnEnd so a handler may start a new gesture, and removed after it
// as the last step.
func (t *Tracker) finish(ev pointer.Event) {
	moveL, upL, cancelL := t.moveListener, t.upListener, t.cancelListener
	t.moveListener, t.upListener, t.cancelListener = nil, nil, nil
	t.state = Idle

	t.handler.OnEnd(ev)

	moveL.Remove()
	upL.Remove()
	cancelL.Remove()
}

// Close releases the global listeners of an in-progress gesture without
// notifying the handler, and makes the tracker ignore further input.
func (t *Tracker) Close() {
	t.closed = true
	t.state = Idle
	t.moveListener.Remove()
	t.upListener.Remove()
	t.cancelListener.Remove()
	t.moveListener, t.upListener, t.cancelListener = nil, nil, nil
}
