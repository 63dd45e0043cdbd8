package screen

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dockwm/internal/bridge"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
)

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, s *Screen) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init implements tea.Model.
func (s *Screen) Init() tea.Cmd { return nil }

// Update applies one message to completion.
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if s.destroyed {
		switch m := msg.(type) {
		case bridge.DestroyMsg:
			m.Reply.Resolve(bridge.Done{})
		case bridge.Command:
			m.Reject(bridge.ErrDestroyed)
		}
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.Resize(msg.Width, msg.Height)
		return s, nil

	case bridge.ResizeMsg:
		s.Resize(msg.Width, msg.Height)
		msg.Reply.Resolve(bridge.Done{})
		return s, nil

	case bridge.NewWindowMsg:
		w, err := s.Engine.NewWindow(msg.Init)
		if err != nil {
			s.Logger.Error("failed to create window", "title", msg.Init.Title, "err", err)
			msg.Reply.Reject(err)
			return s, nil
		}
		s.Logger.Debug("window created", "id", w.ID, "title", w.Title, "dock", w.Last)
		s.Sync()
		msg.Reply.Resolve(bridge.Created{ID: w.ID, Handle: w.Handle})
		return s, nil

	case bridge.MoveWindowMsg:
		err := s.Engine.MoveWindow(msg.ID, msg.Dock)
		s.Sync()
		msg.Reply.Finish(bridge.Done{}, err)
		return s, nil

	case bridge.ToggleWindowMsg:
		err := s.Engine.ToggleWindow(msg.ID)
		s.Sync()
		msg.Reply.Finish(bridge.Done{}, err)
		return s, nil

	case bridge.ResizeDockMsg:
		s.Engine.ResizeDock(msg.Dock, msg.DX, msg.DY)
		s.Sync()
		msg.Reply.Resolve(bridge.Done{})
		return s, nil

	case bridge.OpenSelectorMsg:
		err := s.Engine.OpenSelector(msg.ID, msg.X, msg.Y)
		s.Sync()
		msg.Reply.Finish(bridge.Done{}, err)
		return s, nil

	case bridge.CloseSelectorMsg:
		s.Engine.CloseSelector()
		s.Sync()
		msg.Reply.Resolve(bridge.Done{})
		return s, nil

	case bridge.ResizeWindowMsg:
		err := s.Engine.ResizeWindow(msg.ID, msg.Anchor, msg.DX, msg.DY)
		s.Sync()
		msg.Reply.Finish(bridge.Done{}, err)
		return s, nil

	case bridge.GetWindowMsg:
		w, ok := s.Engine.Window(msg.ID)
		if !ok {
			msg.Reply.Reject(fmt.Errorf("get window %s: %w", msg.ID, dock.ErrUnknownWindow))
			return s, nil
		}
		msg.Reply.Resolve(w.Handle)
		return s, nil

	case bridge.LayoutMsg:
		msg.Reply.Resolve(s.Engine.Layout())
		return s, nil

	case bridge.DestroyMsg:
		s.Destroy()
		msg.Reply.Resolve(bridge.Done{})
		return s, tea.Quit
	}

	if inputHandler != nil {
		return inputHandler(msg, s)
	}
	return s, nil
}
