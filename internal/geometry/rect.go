// Package geometry holds the rectangle math used by windows and docks:
// corner-preserving resize and border hit testing.
package geometry

import "fmt"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampInto shifts r so it lies inside bounds where possible and shrinks it
// when it is larger than bounds.
func (r Rect) ClampInto(bounds Rect) Rect {
	r.Width = min(r.Width, bounds.Width)
	r.Height = min(r.Height, bounds.Height)
	r.X = max(bounds.X, min(r.X, bounds.Right()-r.Width))
	r.Y = max(bounds.Y, min(r.Y, bounds.Bottom()-r.Height))
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%d y:%d w:%d h:%d}", r.X, r.Y, r.Width, r.Height)
}
