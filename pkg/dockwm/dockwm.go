// Package dockwm provides the dock window manager as a Bubble Tea model
// that can be embedded in other applications or run on its own.
//
// # Basic Usage
//
// Create a screen with default options and drive it from a program:
//
//	model := dockwm.New()
//	p := tea.NewProgram(model, dockwm.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Driving the screen from outside
//
// A Bridge sends commands into the running program and returns promises
// settled by the event loop:
//
//	b := dockwm.NewBridge(p, nil, nil)
//	go func() {
//		created, err := b.NewWindowWith(dockwm.WindowInit{Title: "Editor", Dock: dockwm.Left}).Await(ctx)
//		...
//	}()
package dockwm

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwm/internal/bridge"
	"github.com/Gaurav-Gosain/dockwm/internal/config"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/input"
	"github.com/Gaurav-Gosain/dockwm/internal/screen"
)

// Model is the screen model that implements tea.Model.
type Model = screen.Screen

// Bridge issues commands to a running Model from other goroutines.
type Bridge = bridge.Bridge

// Container reports the size of the area the screen is embedded in.
type Container = bridge.Container

// WindowInit describes a window to create.
type WindowInit = dock.Init

// Layout is the derived dock state the renderer draws from.
type Layout = dock.Layout

// ContentFunc renders the body of a window.
type ContentFunc = screen.ContentFunc

// Dock identifies one of the five placement regions.
type Dock = dock.Dock

// Dock constants
const (
	Top    = dock.Top
	Left   = dock.Left
	Bottom = dock.Bottom
	Right  = dock.Right
	Center = dock.Center
	// None marks a hidden window.
	None = dock.None
)

// Options configures a dockwm instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of box drawing glyphs.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "ascii"
	BorderStyle string

	// TaskbarHeight is the number of rows reserved for the taskbar (1-3).
	TaskbarHeight int

	// HideStatus hides the screen size line in an empty center dock.
	HideStatus bool

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// Content renders window bodies. Nil shows the window title and handle.
	Content ContentFunc

	// Logger receives debug output. Nil uses the default logger.
	Logger *log.Logger

	// UserConfig is a custom user configuration. If nil, the config file
	// is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring dockwm.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithTaskbarHeight sets the taskbar height, clamped to 1-3.
func WithTaskbarHeight(rows int) Option {
	return func(o *Options) {
		o.TaskbarHeight = min(max(rows, 1), config.MaxTaskbarHeight)
	}
}

// WithHideStatus hides the screen size line.
func WithHideStatus(hide bool) Option {
	return func(o *Options) {
		o.HideStatus = hide
	}
}

// WithSize sets the initial screen size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithContent sets the window body renderer.
func WithContent(fn ContentFunc) Option {
	return func(o *Options) {
		o.Content = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{TaskbarHeight: config.DefaultTaskbarHeight}
}

// New creates a new screen with the given options.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

func newModel(options Options) *Model {
	screen.SetInputHandler(input.HandleInput)

	logger := options.Logger
	if logger == nil {
		logger = log.Default()
	}

	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig(logger)
		if err != nil {
			logger.Warn("failed to load config, using defaults", "err", err)
			userConfig = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:     options.ASCIIOnly,
		BorderStyle:   options.BorderStyle,
		TaskbarHeight: options.TaskbarHeight,
		HideStatus:    options.HideStatus,
		ThemeName:     options.Theme,
	}, userConfig, logger)

	m := screen.New(screen.Options{
		Engine:     config.EngineOptions(userConfig),
		Regions:    config.RegionOptions(userConfig),
		Keys:       config.NewKeybindRegistry(userConfig.Keybindings),
		Logger:     logger,
		Content:    options.Content,
		ShowStatus: config.ShowStatus,
	})
	if options.Width > 0 && options.Height > 0 {
		m.Resize(options.Width, options.Height)
	}
	return m
}

// NewBridge returns a bridge that drives the model run by p. container
// may be nil when the host never calls Resize.
func NewBridge(p *tea.Program, container Container, logger *log.Logger) *Bridge {
	return bridge.New(p, container, logger)
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// dockwm.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion
// nobody is waiting for. Motion only matters while a taskbar entry is
// pressed or a drag is in progress.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	m, ok := model.(*Model)
	if !ok {
		return msg
	}
	if m.Press != nil || m.DnD.Active() || m.Dragging() {
		return msg
	}
	return nil
}

// Config re-exports the config package for customization.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func(*log.Logger) (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
