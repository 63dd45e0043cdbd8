package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAnchor is returned by ParseAnchor for names it does not know.
var ErrUnknownAnchor = errors.New("unknown anchor")

// Anchor is a drag handle position on a window: its title bar, one of the
// four edges or one of the four corners.
type Anchor int

// Anchor positions. N, S, W and E are the edges; the rest are corners.
const (
	Title Anchor = iota
	N
	S
	W
	E
	NW
	NE
	SW
	SE
)

var anchorNames = [...]string{"title", "n", "s", "w", "e", "nw", "ne", "sw", "se"}

// Anchors lists every anchor position in declaration order.
func Anchors() []Anchor {
	return []Anchor{Title, N, S, W, E, NW, NE, SW, SE}
}

// String returns the lowercase anchor name, e.g. "nw".
func (a Anchor) String() string {
	if a < Title || a > SE {
		return fmt.Sprintf("anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor parses an anchor name, case-insensitively.
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), nil
		}
	}
	return Title, fmt.Errorf("%q: %w", s, ErrUnknownAnchor)
}

// touchesWest reports whether the anchor sits on the left side.
func (a Anchor) touchesWest() bool { return a == W || a == NW || a == SW }

func (a Anchor) touchesEast() bool { return a == E || a == NE || a == SE }

func (a Anchor) touchesNorth() bool { return a == N || a == NW || a == NE }

func (a Anchor) touchesSouth() bool { return a == S || a == SW || a == SE }

// Bounds returns the cells of r that act as the anchor. Corners are single
// cells, edges are the border strips between the corners and the title is
// the first row inside the top border.
func (a Anchor) Bounds(r Rect) Rect {
	switch a {
	case NW:
		return Rect{X: r.X, Y: r.Y, Width: 1, Height: 1}
	case NE:
		return Rect{X: r.Right() - 1, Y: r.Y, Width: 1, Height: 1}
	case SW:
		return Rect{X: r.X, Y: r.Bottom() - 1, Width: 1, Height: 1}
	case SE:
		return Rect{X: r.Right() - 1, Y: r.Bottom() - 1, Width: 1, Height: 1}
	case N:
		return Rect{X: r.X + 1, Y: r.Y, Width: max(r.Width-2, 0), Height: 1}
	case S:
		return Rect{X: r.X + 1, Y: r.Bottom() - 1, Width: max(r.Width-2, 0), Height: 1}
	case W:
		return Rect{X: r.X, Y: r.Y + 1, Width: 1, Height: max(r.Height-2, 0)}
	case E:
		return Rect{X: r.Right() - 1, Y: r.Y + 1, Width: 1, Height: max(r.Height-2, 0)}
	default:
		return Rect{X: r.X + 1, Y: r.Y + 1, Width: max(r.Width-2, 0), Height: 1}
	}
}

// AnchorAt returns the anchor of r under (x, y). Corners win over edges,
// edges over the title row.
func AnchorAt(r Rect, x, y int) (Anchor, bool) {
	if !r.Contains(x, y) {
		return Title, false
	}
	for _, a := range []Anchor{NW, NE, SW, SE, N, S, W, E, Title} {
		if a.Bounds(r).Contains(x, y) {
			return a, true
		}
	}
	return Title, false
}
