// Package dock implements the dock layout state machine: which window
// sits in which dock, the z-order inside every dock, dock sizes and the
// placement selector. Commands run to completion and never partially
// apply; the rendering side reads derived facts through Layout.
package dock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownWindow is returned when a command names a window id the
	// engine never created.
	ErrUnknownWindow = errors.New("unknown window")

	// ErrInvalidDock is returned for dock values outside Top..Center.
	ErrInvalidDock = errors.New("invalid dock")

	// ErrOutOfIDs is returned when a bounded id space is exhausted.
	ErrOutOfIDs = errors.New("out of ids")
)

// Dock is one of the five placement regions of the screen.
type Dock int

// Dock values are part of the host bridge contract: Top=0 through Center=4.
const (
	Top Dock = iota
	Left
	Bottom
	Right
	Center

	// None marks a hidden window.
	None Dock = -1
)

const (
	// Count is the number of docks including Center.
	Count = 5
	// EdgeCount is the number of sized edge docks.
	EdgeCount = 4
)

var dockNames = [Count]string{"top", "left", "bottom", "right", "center"}

func (d Dock) String() string {
	if d == None {
		return "none"
	}
	if !d.Valid() {
		return fmt.Sprintf("dock(%d)", int(d))
	}
	return dockNames[d]
}

// Valid reports whether d is one of the five docks.
func (d Dock) Valid() bool { return d >= Top && d <= Center }

// IsEdge reports whether d is a sized edge dock.
func (d Dock) IsEdge() bool { return d >= Top && d <= Right }

// Edges lists the sized docks in index order.
func Edges() []Dock { return []Dock{Top, Left, Bottom, Right} }

// All lists every dock in index order.
func All() []Dock { return []Dock{Top, Left, Bottom, Right, Center} }

// FromIndex converts a host-supplied integer into a dock, rejecting
// values outside 0..4.
func FromIndex(i int) (Dock, error) {
	d := Dock(i)
	if !d.Valid() {
		return None, fmt.Errorf("%d: %w", i, ErrInvalidDock)
	}
	return d, nil
}

// Parse accepts a dock name ("left", case-insensitive) or its index.
func Parse(s string) (Dock, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range dockNames {
		if name == s {
			return Dock(i), nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil {
		return FromIndex(i)
	}
	return None, fmt.Errorf("%q: %w", s, ErrInvalidDock)
}
