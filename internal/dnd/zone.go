package dnd

import "github.com/Gaurav-Gosain/dockwm/internal/dock"

// Mover reassigns a window to a dock. *dock.Engine satisfies it.
type Mover interface {
	MoveWindow(id dock.ID, d dock.Dock) error
}

// Zone is a drop target for one dock.
type Zone struct {
	Dock dock.Dock
	over bool
}

// NewZone returns the drop target of d.
func NewZone(d dock.Dock) *Zone { return &Zone{Dock: d} }

// Enter is called when a drag enters the zone. It reports whether the
// zone accepts the drag.
func (z *Zone) Enter(dt *DataTransfer) bool { return z.Over(dt) }

// Over is called while a drag moves over the zone.
func (z *Zone) Over(dt *DataTransfer) bool {
	z.over = dt.HasType(PayloadType)
	return z.over
}

// Leave is called when a drag leaves the zone.
func (z *Zone) Leave() { z.over = false }

// Hovered reports whether an accepted drag is over the zone.
func (z *Zone) Hovered() bool { return z.over }

// Drop moves the dragged window into the zone's dock. Drops without a
// parseable payload, or naming a window that does not exist, are
// ignored. It reports whether a window was moved.
func (z *Zone) Drop(dt *DataTransfer, m Mover) bool {
	z.over = false
	id, err := ParsePayload(dt)
	if err != nil {
		return false
	}
	return m.MoveWindow(id, z.Dock) == nil
}
