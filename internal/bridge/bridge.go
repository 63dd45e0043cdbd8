// Package bridge lets code outside the event loop drive the screen. Every
// command becomes a message for the Bubble Tea program; results come back
// through promises settled by the event loop, so the dock engine is only
// ever touched from inside Update.
package bridge

import (
	"errors"
	"fmt"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// ErrDestroyed is returned by commands issued after Destroy.
var ErrDestroyed = errors.New("screen destroyed")

// Sender delivers a message to the event loop. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Container reports the size of the area the screen is embedded in.
type Container interface {
	Size() (width, height int, err error)
}

// Bridge issues commands to a running screen. Its methods are safe for
// concurrent use but must not be called from the event loop itself:
// Send blocks until the loop receives the message.
type Bridge struct {
	sender    Sender
	container Container
	logger    *log.Logger
	destroyed atomic.Bool
}

// New creates a bridge. container may be nil when the host never resizes.
func New(sender Sender, container Container, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.Default()
	}
	return &Bridge{sender: sender, container: container, logger: logger}
}

func send[T any](b *Bridge, name string, build func(*Pending[T]) tea.Msg) *Promise[T] {
	if b.destroyed.Load() {
		return Rejected[T](fmt.Errorf("%s: %w", name, ErrDestroyed))
	}
	p, pending := NewPromise[T](name, b.logger)
	b.sender.Send(build(pending))
	return p
}

// Resize re-reads the container size and hands it to the screen.
func (b *Bridge) Resize() *Promise[Done] {
	if b.container == nil {
		return Rejected[Done](errors.New("resize: no container"))
	}
	w, h, err := b.container.Size()
	if err != nil {
		return Rejected[Done](fmt.Errorf("resize: %w", err))
	}
	return send(b, "resize", func(p *Pending[Done]) tea.Msg {
		return ResizeMsg{Width: w, Height: h, Reply: p}
	})
}

// NewWindow creates a window from its JSON description. A description
// that does not parse rejects the promise without reaching the screen.
func (b *Bridge) NewWindow(initJSON []byte) *Promise[Created] {
	init, err := ParseInit(initJSON)
	if err != nil {
		return Rejected[Created](err)
	}
	return b.NewWindowWith(init)
}

// NewWindowWith creates a window from an already decoded description.
func (b *Bridge) NewWindowWith(init dock.Init) *Promise[Created] {
	return send(b, "newWindow", func(p *Pending[Created]) tea.Msg {
		return NewWindowMsg{Init: init, Reply: p}
	})
}

// MoveWindow moves a window to the dock with index d (Top=0 .. Center=4).
// Out-of-range docks are rejected here.
func (b *Bridge) MoveWindow(id uint64, d int) *Promise[Done] {
	target, err := dock.FromIndex(d)
	if err != nil {
		return Rejected[Done](fmt.Errorf("moveWindow: %w", err))
	}
	return send(b, "moveWindow", func(p *Pending[Done]) tea.Msg {
		return MoveWindowMsg{ID: dock.ID(id), Dock: target, Reply: p}
	})
}

// GetWindow resolves to the content handle of a window, or fails with
// dock.ErrUnknownWindow.
func (b *Bridge) GetWindow(id uint64) *Promise[dock.Handle] {
	return send(b, "getWindow", func(p *Pending[dock.Handle]) tea.Msg {
		return GetWindowMsg{ID: dock.ID(id), Reply: p}
	})
}

// ToggleWindow hides a shown window or shows a hidden one.
func (b *Bridge) ToggleWindow(id uint64) *Promise[Done] {
	return send(b, "toggleWindow", func(p *Pending[Done]) tea.Msg {
		return ToggleWindowMsg{ID: dock.ID(id), Reply: p}
	})
}

// ResizeDock resizes the edge dock with index d by a drag delta.
func (b *Bridge) ResizeDock(d, dx, dy int) *Promise[Done] {
	target, err := dock.FromIndex(d)
	if err != nil {
		return Rejected[Done](fmt.Errorf("resizeDock: %w", err))
	}
	return send(b, "resizeDock", func(p *Pending[Done]) tea.Msg {
		return ResizeDockMsg{Dock: target, DX: dx, DY: dy, Reply: p}
	})
}

// OpenSelector opens the placement popup of a window at (x, y).
func (b *Bridge) OpenSelector(id uint64, x, y int) *Promise[Done] {
	return send(b, "openSelector", func(p *Pending[Done]) tea.Msg {
		return OpenSelectorMsg{ID: dock.ID(id), X: x, Y: y, Reply: p}
	})
}

// CloseSelector closes the placement popup.
func (b *Bridge) CloseSelector() *Promise[Done] {
	return send(b, "closeSelector", func(p *Pending[Done]) tea.Msg {
		return CloseSelectorMsg{Reply: p}
	})
}

// ResizeWindow drags anchor a of a window by (dx, dy).
func (b *Bridge) ResizeWindow(id uint64, a geometry.Anchor, dx, dy int) *Promise[Done] {
	return send(b, "resizeWindow", func(p *Pending[Done]) tea.Msg {
		return ResizeWindowMsg{ID: dock.ID(id), Anchor: a, DX: dx, DY: dy, Reply: p}
	})
}

// Layout resolves to a snapshot of the current render facts.
func (b *Bridge) Layout() *Promise[dock.Layout] {
	return send(b, "layout", func(p *Pending[dock.Layout]) tea.Msg {
		return LayoutMsg{Reply: p}
	})
}

// Destroy tears the screen down. Later commands are rejected.
func (b *Bridge) Destroy() *Promise[Done] {
	// Marked before sending so no command can queue up behind the teardown.
	if !b.destroyed.CompareAndSwap(false, true) {
		return Rejected[Done](fmt.Errorf("destroy: %w", ErrDestroyed))
	}
	p, pending := NewPromise[Done]("destroy", b.logger)
	b.sender.Send(DestroyMsg{Reply: pending})
	return p
}
