package dnd

import "github.com/Gaurav-Gosain/dockwm/internal/dock"

// Coordinator runs the drag-and-drop protocol for a host without native
// drag and drop: it owns the transfer of the drag in flight and one zone
// per dock, and turns pointer motion into enter, over and leave calls.
type Coordinator struct {
	zones    [dock.Count]*Zone
	transfer *DataTransfer
	current  dock.Dock
}

// NewCoordinator returns a coordinator with a zone for every dock.
func NewCoordinator() *Coordinator {
	c := &Coordinator{current: dock.None}
	for _, d := range dock.All() {
		c.zones[d] = NewZone(d)
	}
	return c
}

// Zone returns the drop target of d.
func (c *Coordinator) Zone(d dock.Dock) *Zone {
	if !d.Valid() {
		return nil
	}
	return c.zones[d]
}

// Begin starts dragging the window.
func (c *Coordinator) Begin(id dock.ID) {
	dt := NewDataTransfer()
	Start(dt, id)
	c.BeginTransfer(dt)
}

// BeginTransfer starts a drag carrying an arbitrary transfer.
func (c *Coordinator) BeginTransfer(dt *DataTransfer) {
	c.Cancel()
	c.transfer = dt
}

// Active reports whether a drag is in flight.
func (c *Coordinator) Active() bool { return c.transfer != nil }

// Transfer returns the transfer of the drag in flight.
func (c *Coordinator) Transfer() *DataTransfer { return c.transfer }

// Move reports that the drag is now over d, or over no zone when d is
// dock.None. It returns whether the zone under the drag accepts it.
func (c *Coordinator) Move(d dock.Dock) bool {
	if c.transfer == nil {
		return false
	}
	if d != c.current {
		if z := c.Zone(c.current); z != nil {
			z.Leave()
		}
		c.current = d
		if z := c.Zone(d); z != nil {
			return z.Enter(c.transfer)
		}
		return false
	}
	if z := c.Zone(d); z != nil {
		return z.Over(c.transfer)
	}
	return false
}

// Drop ends the drag over d and reports whether a window was moved.
func (c *Coordinator) Drop(d dock.Dock, m Mover) bool {
	if c.transfer == nil {
		return false
	}
	dt := c.transfer
	c.Cancel()
	z := c.Zone(d)
	if z == nil || !z.Over(dt) {
		return false
	}
	return z.Drop(dt, m)
}

// Cancel abandons the drag in flight.
func (c *Coordinator) Cancel() {
	if z := c.Zone(c.current); z != nil {
		z.Leave()
	}
	c.current = dock.None
	c.transfer = nil
}

// Hovered returns the dock whose zone currently accepts the drag.
func (c *Coordinator) Hovered() (dock.Dock, bool) {
	if z := c.Zone(c.current); z != nil && z.Hovered() {
		return c.current, true
	}
	return dock.None, false
}
