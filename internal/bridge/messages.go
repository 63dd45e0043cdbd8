package bridge

import (
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// Created is the result of a NewWindow command.
type Created struct {
	ID     dock.ID
	Handle dock.Handle
}

// Done is the result of commands that only succeed or fail.
type Done = struct{}

// The messages below are delivered to the screen's event loop. Reply may
// be nil for fire-and-forget use.

// Command is implemented by every message that carries a Reply. Reject
// fails the reply without running the command.
type Command interface {
	Reject(err error)
}

// ResizeMsg carries a fresh container size.
type ResizeMsg struct {
	Width, Height int
	Reply         *Pending[Done]
}

// NewWindowMsg creates a window.
type NewWindowMsg struct {
	Init  dock.Init
	Reply *Pending[Created]
}

// MoveWindowMsg moves a window to a dock.
type MoveWindowMsg struct {
	ID    dock.ID
	Dock  dock.Dock
	Reply *Pending[Done]
}

// ToggleWindowMsg hides or shows a window.
type ToggleWindowMsg struct {
	ID    dock.ID
	Reply *Pending[Done]
}

// ResizeDockMsg resizes an edge dock by a drag delta.
type ResizeDockMsg struct {
	Dock   dock.Dock
	DX, DY int
	Reply  *Pending[Done]
}

// OpenSelectorMsg opens the placement popup of a window.
type OpenSelectorMsg struct {
	ID    dock.ID
	X, Y  int
	Reply *Pending[Done]
}

// CloseSelectorMsg closes the placement popup.
type CloseSelectorMsg struct {
	Reply *Pending[Done]
}

// ResizeWindowMsg drags one of a window's anchors.
type ResizeWindowMsg struct {
	ID     dock.ID
	Anchor geometry.Anchor
	DX, DY int
	Reply  *Pending[Done]
}

// GetWindowMsg looks up a window's content handle.
type GetWindowMsg struct {
	ID    dock.ID
	Reply *Pending[dock.Handle]
}

// LayoutMsg asks for a snapshot of the render facts.
type LayoutMsg struct {
	Reply *Pending[dock.Layout]
}

// DestroyMsg tears the screen down.
type DestroyMsg struct {
	Reply *Pending[Done]
}

// Reject fails the reply with err.
func (m ResizeMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m NewWindowMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m MoveWindowMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m ToggleWindowMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m ResizeDockMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m OpenSelectorMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m CloseSelectorMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m ResizeWindowMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m GetWindowMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m LayoutMsg) Reject(err error) { m.Reply.Reject(err) }

// Reject fails the reply with err.
func (m DestroyMsg) Reject(err error) { m.Reply.Reject(err) }
