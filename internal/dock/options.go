package dock

import "github.com/Gaurav-Gosain/dockwm/internal/geometry"

// Options configure a new Engine.
type Options struct {
	// Sizes are the initial extents of the Top, Left, Bottom and Right
	// docks.
	Sizes [EdgeCount]int
	// DefaultDock is used for windows created without a dock.
	DefaultDock Dock
	// MaxIDs bounds the id space. Zero means unbounded.
	MaxIDs uint64
	// Frame is the floating frame a new window starts with.
	Frame geometry.Rect
	// MinWidth and MinHeight bound window resizes.
	MinWidth, MinHeight int
	// NewHandle creates content handles. Defaults to random UUIDs.
	NewHandle func() Handle
}

// DefaultOptions returns the stock engine options.
func DefaultOptions() Options {
	return Options{
		Sizes:       [EdgeCount]int{50, 100, 50, 100},
		DefaultDock: Center,
		Frame:       geometry.Rect{X: 2, Y: 1, Width: 40, Height: 12},
		MinWidth:    12,
		MinHeight:   4,
		NewHandle:   NewHandle,
	}
}

func (o *Options) fillMissing() {
	def := DefaultOptions()
	if !o.DefaultDock.Valid() {
		o.DefaultDock = def.DefaultDock
	}
	if o.Frame.Width <= 0 || o.Frame.Height <= 0 {
		o.Frame = def.Frame
	}
	for i, s := range o.Sizes {
		o.Sizes[i] = max(s, 0)
	}
	o.MinWidth = max(o.MinWidth, 0)
	o.MinHeight = max(o.MinHeight, 0)
	if o.NewHandle == nil {
		o.NewHandle = def.NewHandle
	}
}
