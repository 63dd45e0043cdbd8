package tape

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Gaurav-Gosain/dockwm/internal/bridge"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// Executor applies tape commands to a running screen.
type Executor interface {
	NewWindow(init dock.Init) (dock.ID, error)
	MoveWindow(id dock.ID, d dock.Dock) error
	ToggleWindow(id dock.ID) error
	ResizeDock(d dock.Dock, dx, dy int) error
	OpenSelector(id dock.ID, x, y int) error
	CloseSelector() error
	ResizeWindow(id dock.ID, a geometry.Anchor, dx, dy int) error
	Resize() error
}

// CommandExecutor maps parsed commands onto an Executor.
type CommandExecutor struct {
	executor Executor
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor(executor Executor) *CommandExecutor {
	return &CommandExecutor{executor: executor}
}

// Execute runs one command. Sleep is left to the player.
func (ce *CommandExecutor) Execute(cmd *Command) error {
	if ce.executor == nil {
		return nil
	}

	switch cmd.Type {
	case CommandTypeNewWindow:
		init, err := windowInit(cmd.Args)
		if err != nil {
			return err
		}
		_, err = ce.executor.NewWindow(init)
		return err

	case CommandTypeMoveWindow:
		id, d, err := idAndDock(cmd.Args)
		if err != nil {
			return err
		}
		return ce.executor.MoveWindow(id, d)

	case CommandTypeToggleWindow:
		id, err := argAt(cmd.Args, 0, dock.ParseID)
		if err != nil {
			return err
		}
		return ce.executor.ToggleWindow(id)

	case CommandTypeResizeDock:
		d, err := argAt(cmd.Args, 0, dock.Parse)
		if err != nil {
			return err
		}
		dx, dy, err := delta(cmd.Args, 1)
		if err != nil {
			return err
		}
		return ce.executor.ResizeDock(d, dx, dy)

	case CommandTypeOpenSelector:
		id, err := argAt(cmd.Args, 0, dock.ParseID)
		if err != nil {
			return err
		}
		x, y, err := delta(cmd.Args, 1)
		if err != nil {
			return err
		}
		return ce.executor.OpenSelector(id, x, y)

	case CommandTypeCloseSelector:
		return ce.executor.CloseSelector()

	case CommandTypeResizeWindow:
		id, err := argAt(cmd.Args, 0, dock.ParseID)
		if err != nil {
			return err
		}
		a, err := argAt(cmd.Args, 1, geometry.ParseAnchor)
		if err != nil {
			return err
		}
		dx, dy, err := delta(cmd.Args, 2)
		if err != nil {
			return err
		}
		return ce.executor.ResizeWindow(id, a, dx, dy)

	case CommandTypeResize:
		return ce.executor.Resize()

	case CommandTypeSleep:
		return nil

	default:
		return fmt.Errorf("unknown command type: %s", cmd.Type)
	}
}

func argAt[T any](args []string, i int, parse func(string) (T, error)) (T, error) {
	if i >= len(args) {
		var zero T
		return zero, fmt.Errorf("missing argument %d", i+1)
	}
	return parse(args[i])
}

func delta(args []string, i int) (int, int, error) {
	x, err := argAt(args, i, strconv.Atoi)
	if err != nil {
		return 0, 0, err
	}
	y, err := argAt(args, i+1, strconv.Atoi)
	return x, y, err
}

func idAndDock(args []string) (dock.ID, dock.Dock, error) {
	id, err := argAt(args, 0, dock.ParseID)
	if err != nil {
		return 0, dock.None, err
	}
	d, err := argAt(args, 1, dock.Parse)
	return id, d, err
}

func windowInit(args []string) (dock.Init, error) {
	d, err := argAt(args, 0, dock.Parse)
	if err != nil {
		return dock.Init{}, err
	}
	init := dock.Init{Dock: d}
	var text []string
	for _, a := range args[1:] {
		if a == RequestCenterFlag {
			init.RequestCenter = true
			continue
		}
		text = append(text, a)
	}
	if len(text) > 0 {
		init.Title = text[0]
	}
	if len(text) > 1 {
		init.Icon = text[1]
	}
	return init, nil
}

// BridgeExecutor runs commands through a host bridge and waits for each
// to be applied.
type BridgeExecutor struct {
	ctx    context.Context
	bridge *bridge.Bridge
}

// NewBridgeExecutor creates an executor bound to b. ctx bounds every wait.
func NewBridgeExecutor(ctx context.Context, b *bridge.Bridge) *BridgeExecutor {
	return &BridgeExecutor{ctx: ctx, bridge: b}
}

func await[T any](ctx context.Context, p *bridge.Promise[T]) error {
	_, err := p.Await(ctx)
	return err
}

func (e *BridgeExecutor) NewWindow(init dock.Init) (dock.ID, error) {
	created, err := e.bridge.NewWindowWith(init).Await(e.ctx)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (e *BridgeExecutor) MoveWindow(id dock.ID, d dock.Dock) error {
	return await(e.ctx, e.bridge.MoveWindow(uint64(id), int(d)))
}

func (e *BridgeExecutor) ToggleWindow(id dock.ID) error {
	return await(e.ctx, e.bridge.ToggleWindow(uint64(id)))
}

func (e *BridgeExecutor) ResizeDock(d dock.Dock, dx, dy int) error {
	return await(e.ctx, e.bridge.ResizeDock(int(d), dx, dy))
}

func (e *BridgeExecutor) OpenSelector(id dock.ID, x, y int) error {
	return await(e.ctx, e.bridge.OpenSelector(uint64(id), x, y))
}

func (e *BridgeExecutor) CloseSelector() error {
	return await(e.ctx, e.bridge.CloseSelector())
}

func (e *BridgeExecutor) ResizeWindow(id dock.ID, a geometry.Anchor, dx, dy int) error {
	return await(e.ctx, e.bridge.ResizeWindow(uint64(id), a, dx, dy))
}

func (e *BridgeExecutor) Resize() error {
	return await(e.ctx, e.bridge.Resize())
}
