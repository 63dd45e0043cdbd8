// Package control exposes the host bridge as Model Context Protocol tools
// over streamable HTTP, so agents and scripts can drive a running screen
// while the terminal stays with the TUI.
package control

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Gaurav-Gosain/dockwm/internal/bridge"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

const (
	ServerName = "dockwm"

	// DefaultTimeout bounds how long a tool waits for the event loop.
	DefaultTimeout = 5 * time.Second
)

// Server is the MCP server for one running screen.
type Server struct {
	mcpServer *mcpsdk.Server
	bridge    *bridge.Bridge
	logger    *log.Logger
	timeout   time.Duration
}

// NewServer creates a server that sends every tool call through b.
func NewServer(b *bridge.Bridge, version string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{bridge: b, logger: logger, timeout: DefaultTimeout}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: version,
		},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "new_window",
		Description: "Create a window. It starts hidden unless request_center is set; toggle_window shows it in its dock. Returns the window id and content handle.",
	}, s.handleNewWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move a window to the top of a dock's stack. Moving to the dock it is already in only raises it.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_window",
		Description: "Hide a shown window, or show a hidden one in the dock it was last in.",
	}, s.handleToggleWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_window",
		Description: "Return the content handle of a window.",
	}, s.handleGetWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_dock",
		Description: "Resize an edge dock by a pointer delta, as if its inner edge were dragged. Sizes never go below zero.",
	}, s.handleResizeDock)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_selector",
		Description: "Open the dock selector for a window at a screen position.",
	}, s.handleOpenSelector)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_selector",
		Description: "Close the dock selector if it is open.",
	}, s.handleCloseSelector)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_window",
		Description: "Move or resize a floating center window by dragging one of its anchors. The title anchor moves the window; edges and corners resize it down to its minimum size.",
	}, s.handleResizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_layout",
		Description: "Return the screen size, edge dock sizes and stacks, the center window and every window with the dock it is shown in.",
	}, s.handleGetLayout)
}

func (s *Server) await(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func parseDock(name string) (dock.Dock, error) {
	d, err := dock.Parse(name)
	if err != nil {
		return dock.None, fmt.Errorf("dock %q: %w", name, err)
	}
	return d, nil
}

func done(err error) (*mcpsdk.CallToolResult, DoneOutput, error) {
	if err != nil {
		return nil, DoneOutput{}, err
	}
	return nil, DoneOutput{OK: true}, nil
}

func (s *Server) handleNewWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args NewWindowInput) (*mcpsdk.CallToolResult, NewWindowOutput, error) {
	init := dock.Init{Title: args.Title, Icon: args.Icon, Dock: dock.None, RequestCenter: args.RequestCenter}
	if args.Dock != "" {
		d, err := parseDock(args.Dock)
		if err != nil {
			return nil, NewWindowOutput{}, err
		}
		init.Dock = d
	}

	ctx, cancel := s.await(ctx)
	defer cancel()
	created, err := s.bridge.NewWindowWith(init).Await(ctx)
	if err != nil {
		return nil, NewWindowOutput{}, err
	}
	s.logger.Debug("window created over mcp", "id", created.ID, "title", args.Title)
	return nil, NewWindowOutput{ID: uint64(created.ID), Handle: string(created.Handle)}, nil
}

func (s *Server) handleMoveWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, DoneOutput, error) {
	d, err := parseDock(args.Dock)
	if err != nil {
		return done(err)
	}
	ctx, cancel := s.await(ctx)
	defer cancel()
	_, err = s.bridge.MoveWindow(args.ID, int(d)).Await(ctx)
	return done(err)
}

func (s *Server) handleToggleWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, DoneOutput, error) {
	ctx, cancel := s.await(ctx)
	defer cancel()
	_, err := s.bridge.ToggleWindow(args.ID).Await(ctx)
	return done(err)
}

func (s *Server) handleGetWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, GetWindowOutput, error) {
	ctx, cancel := s.await(ctx)
	defer cancel()
	h, err := s.bridge.GetWindow(args.ID).Await(ctx)
	if err != nil {
		return nil, GetWindowOutput{}, err
	}
	return nil, GetWindowOutput{Handle: string(h)}, nil
}

func (s *Server) handleResizeDock(ctx context.Context, _ *mcpsdk.CallToolRequest, args ResizeDockInput) (*mcpsdk.CallToolResult, DoneOutput, error) {
	d, err := parseDock(args.Dock)
	if err != nil {
		return done(err)
	}
	if !d.IsEdge() {
		return done(fmt.Errorf("dock %q cannot be resized", args.Dock))
	}
	ctx, cancel := s.await(ctx)
	defer cancel()
	_, err = s.bridge.ResizeDock(int(d), args.DX, args.DY).Await(ctx)
	return done(err)
}

func (s *Server) handleOpenSelector(ctx context.Context, _ *mcpsdk.CallToolRequest, args OpenSelectorInput) (*mcpsdk.CallToolResult, DoneOutput, error) {
	ctx, cancel := s.await(ctx)
	defer cancel()
	_, err := s.bridge.OpenSelector(args.ID, args.X, args.Y).Await(ctx)
	return done(err)
}

func (s *Server) handleCloseSelector(ctx context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, DoneOutput, error) {
	ctx, cancel := s.await(ctx)
	defer cancel()
	_, err := s.bridge.CloseSelector().Await(ctx)
	return done(err)
}

func (s *Server) handleResizeWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowInput) (*mcpsdk.CallToolResult, DoneOutput, error) {
	a, err := geometry.ParseAnchor(args.Anchor)
	if err != nil {
		return done(err)
	}
	ctx, cancel := s.await(ctx)
	defer cancel()
	_, err = s.bridge.ResizeWindow(args.ID, a, args.DX, args.DY).Await(ctx)
	return done(err)
}

func (s *Server) handleGetLayout(ctx context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	ctx, cancel := s.await(ctx)
	defer cancel()
	l, err := s.bridge.Layout().Await(ctx)
	if err != nil {
		return nil, LayoutOutput{}, err
	}
	return nil, layoutOutput(l), nil
}

func layoutOutput(l dock.Layout) LayoutOutput {
	out := LayoutOutput{
		Width:   l.Width,
		Height:  l.Height,
		Docks:   make([]DockInfo, 0, dock.EdgeCount),
		Windows: make([]WindowInfo, 0, len(l.Taskbar)),
	}
	for _, f := range l.Edges {
		info := DockInfo{Dock: f.Dock.String(), Occupied: f.Occupied, Size: f.Size, Stack: make([]uint64, 0, len(f.Stack))}
		for _, id := range f.Stack {
			info.Stack = append(info.Stack, uint64(id))
		}
		out.Docks = append(out.Docks, info)
	}
	if l.HasCenter {
		id := uint64(l.Center)
		out.Center = &id
	}
	for _, item := range l.Taskbar {
		out.Windows = append(out.Windows, WindowInfo{
			ID:     uint64(item.ID),
			Title:  item.Title,
			Icon:   item.Icon,
			Handle: string(item.Handle),
			Open:   item.Open,
			Dock:   item.Dock.String(),
		})
	}
	return out
}

// Handler serves the MCP endpoint over streamable HTTP.
func (s *Server) Handler() http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return s.mcpServer
	}, nil)
}

// ListenAndServe serves the MCP endpoint on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("mcp server listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
