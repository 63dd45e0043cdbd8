// Package events provides the global input surface that drag gestures
// attach their move and release listeners to.
package events

import "github.com/Gaurav-Gosain/dockwm/internal/pointer"

// Handler receives one raw input occurrence.
type Handler func(pointer.Input)

// Target is an input surface holding listeners per event type. It is not
// safe for concurrent use; it lives on the event loop like the rest of
// the screen state.
type Target struct {
	name      string
	listeners map[string][]*Listener
	nextID    uint64
}

// Listener is a registration on a Target. It stays active until Remove
// is called.
type Listener struct {
	target    *Target
	eventType string
	id        uint64
	handler   Handler
	removed   bool
}

// NewTarget creates an empty input surface.
func NewTarget(name string) *Target {
	return &Target{
		name:      name,
		listeners: make(map[string][]*Listener),
	}
}

// Name returns the surface name.
func (t *Target) Name() string { return t.name }

// AddListener registers h for eventType.
func (t *Target) AddListener(eventType string, h Handler) *Listener {
	t.nextID++
	l := &Listener{target: t, eventType: eventType, id: t.nextID, handler: h}
	t.listeners[eventType] = append(t.listeners[eventType], l)
	return l
}

// Remove unregisters the listener. Removing twice is a no-op.
func (l *Listener) Remove() {
	if l == nil || l.removed {
		return
	}
	l.removed = true

	list := l.target.listeners[l.eventType]
	for i, other := range list {
		if other.id == l.id {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(l.target.listeners, l.eventType)
	} else {
		l.target.listeners[l.eventType] = list
	}
}

// Active reports whether the listener is still registered.
func (l *Listener) Active() bool { return l != nil && !l.removed }

// Dispatch delivers in to every listener registered for its type and
// returns how many were invoked. Listeners added while dispatching do not
// see the occurrence; listeners removed while dispatching are skipped.
func (t *Target) Dispatch(in pointer.Input) int {
	snapshot := append([]*Listener(nil), t.listeners[in.Type()]...)
	n := 0
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.handler(in)
		n++
	}
	return n
}

// Len returns the number of registered listeners across all event types.
func (t *Target) Len() int {
	n := 0
	for _, list := range t.listeners {
		n += len(list)
	}
	return n
}

// LenType returns the number of listeners registered for eventType.
func (t *Target) LenType(eventType string) int {
	return len(t.listeners[eventType])
}
