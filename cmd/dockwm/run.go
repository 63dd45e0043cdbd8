package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/dockwm/internal/bridge"
	"github.com/Gaurav-Gosain/dockwm/internal/config"
	"github.com/Gaurav-Gosain/dockwm/internal/control"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/input"
	"github.com/Gaurav-Gosain/dockwm/internal/logging"
	"github.com/Gaurav-Gosain/dockwm/internal/screen"
	"github.com/Gaurav-Gosain/dockwm/internal/tape"
	"github.com/Gaurav-Gosain/dockwm/pkg/dockwm"
)

// stdoutContainer measures the terminal the screen is drawn on.
type stdoutContainer struct{}

func (stdoutContainer) Size() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// stderrLogger reports configuration problems before the TUI takes over the
// terminal.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "dockwm"})
}

// resolveLogLevel picks the log level: --log-level, then --debug, then
// the config file.
func resolveLogLevel(cfg *config.UserConfig) string {
	switch {
	case logLevel != "":
		return logLevel
	case debugMode:
		return "debug"
	case cfg != nil:
		return cfg.Logging.Level
	}
	return ""
}

func loadConfig() *config.UserConfig {
	userConfig, err := config.LoadUserConfig(stderrLogger())
	if err != nil {
		stderrLogger().Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	return userConfig
}

func runLocal(tapePath string) error {
	var commands []tape.Command
	if tapePath != "" {
		var err error
		if commands, err = loadTape(tapePath); err != nil {
			return err
		}
	}

	userConfig := loadConfig()

	logger, closeLog, err := logging.New(logging.Options{
		Level: resolveLogLevel(userConfig),
		File:  userConfig.Logging.File,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			stderrLogger().Warn("failed to close log file", "err", err)
		}
	}()

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:     asciiOnly,
		BorderStyle:   borderStyle,
		TaskbarHeight: taskbarHeight,
		HideStatus:    hideStatus,
		ThemeName:     themeName,
	}, userConfig, logger)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("starting", "version", version, "config", configPath)
	}

	screen.SetInputHandler(input.HandleInput)

	s := screen.New(screen.Options{
		Engine:     config.EngineOptions(userConfig),
		Regions:    config.RegionOptions(userConfig),
		Keys:       config.NewKeybindRegistry(userConfig.Keybindings),
		Logger:     logger,
		ShowStatus: config.ShowStatus,
	})

	p := tea.NewProgram(
		s,
		tea.WithoutSignalHandler(),
		tea.WithFilter(dockwm.FilterMouseMotion),
	)
	b := bridge.New(p, stdoutContainer{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logger.Info("signal received, shutting down")
			b.Destroy()
		case <-ctx.Done():
		}
	}()

	if mcpAddr != "" {
		srv := control.NewServer(b, version, logger)
		go func() {
			if err := srv.ListenAndServe(ctx, mcpAddr); err != nil {
				logger.Error("mcp server stopped", "err", err)
			}
		}()
	}

	go func() {
		if err := createDemoWindows(ctx, b, demoWindows); err != nil {
			logger.Error("failed to create demo windows", "err", err)
			return
		}
		if len(commands) == 0 {
			return
		}
		exec := tape.NewCommandExecutor(tape.NewBridgeExecutor(ctx, b))
		if err := tape.NewPlayer(commands).Run(ctx, exec, logger); err != nil {
			logger.Error("tape stopped", "file", tapePath, "err", err)
			return
		}
		logger.Info("tape finished", "file", tapePath, "commands", len(commands))
	}()

	_, err = p.Run()
	cancel()

	if !s.Destroyed() {
		s.Destroy()
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// createDemoWindows opens n windows, spread over the edge docks, with the
// last one shown in the center.
func createDemoWindows(ctx context.Context, b *bridge.Bridge, n int) error {
	edges := dock.Edges()
	for i := range n {
		init := dock.Init{
			Title:         fmt.Sprintf("Demo %d", i+1),
			Dock:          edges[i%len(edges)],
			RequestCenter: i == n-1,
		}
		created, err := b.NewWindowWith(init).Await(ctx)
		if err != nil {
			return err
		}
		if init.RequestCenter {
			continue
		}
		if _, err := b.ToggleWindow(uint64(created.ID)).Await(ctx); err != nil {
			return err
		}
	}
	return nil
}

func loadTape(path string) ([]tape.Command, error) {
	// #nosec G304 - path is given on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tape file: %w", err)
	}
	commands, err := tape.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return commands, nil
}

func validateTapeFile(path string) error {
	commands, err := loadTape(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d command(s)\n", path, len(commands))
	for _, cmd := range commands {
		fmt.Printf("  %3d  %s\n", cmd.Line, cmd.String())
	}
	return nil
}
