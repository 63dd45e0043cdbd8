package config

import (
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// EngineOptions converts the docks and windows sections into layout engine
// options. An invalid default dock falls back to center.
func EngineOptions(cfg *UserConfig) dock.Options {
	opts := dock.DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.Sizes = [dock.EdgeCount]int{cfg.Docks.Top, cfg.Docks.Left, cfg.Docks.Bottom, cfg.Docks.Right}
	if d, err := dock.Parse(cfg.Docks.DefaultDock); err == nil && d.Valid() {
		opts.DefaultDock = d
	}
	opts.MaxIDs = cfg.Windows.MaxIDs
	opts.Frame = geometry.Rect{
		X:      2,
		Y:      1,
		Width:  max(cfg.Windows.DefaultWidth, cfg.Windows.MinWidth),
		Height: max(cfg.Windows.DefaultHeight, cfg.Windows.MinHeight),
	}
	opts.MinWidth = cfg.Windows.MinWidth
	opts.MinHeight = cfg.Windows.MinHeight
	return opts
}

// RegionOptions returns the screen region options for the active
// appearance settings.
func RegionOptions(cfg *UserConfig) dock.RegionOptions {
	opts := dock.RegionOptions{TaskbarHeight: TaskbarHeight, DropZone: DefaultDropZone}
	if cfg != nil {
		opts.DropZone = cfg.Docks.DropZone
	}
	return opts
}
