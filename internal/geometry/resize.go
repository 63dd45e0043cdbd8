package geometry

// Resize applies a drag of (dx, dy) on anchor to r.
//
// The title anchor moves the rectangle. Every other anchor resizes it
// while the corner opposite the anchor stays where it was, also when the
// size is clamped to minW and minH. Sizes never go below zero.
func Resize(r Rect, anchor Anchor, dx, dy, minW, minH int) Rect {
	if anchor == Title {
		return r.Translate(dx, dy)
	}

	left, top := r.X, r.Y
	right, bottom := r.Right(), r.Bottom()

	w, h := r.Width, r.Height
	switch {
	case anchor.touchesWest():
		w -= dx
	case anchor.touchesEast():
		w += dx
	}
	switch {
	case anchor.touchesNorth():
		h -= dy
	case anchor.touchesSouth():
		h += dy
	}
	w = max(w, minW, 0)
	h = max(h, minH, 0)

	out := Rect{X: left, Y: top, Width: w, Height: h}
	if anchor.touchesWest() {
		out.X = right - w
	}
	if anchor.touchesNorth() {
		out.Y = bottom - h
	}
	return out
}
