package screen

import (
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// selectorLabelWidth fits the longest dock name plus the marker column.
const selectorLabelWidth = 10

// SelectorItem is one choice of the open dock selector.
type SelectorItem struct {
	Dock dock.Dock
	Rect geometry.Rect
}

// SelectorBox returns the on-screen box of the open dock selector,
// including its border. The box is kept inside the screen.
func (s *Screen) SelectorBox() (geometry.Rect, bool) {
	sel := s.layout.Selector
	if sel == nil {
		return geometry.Rect{}, false
	}
	box := geometry.Rect{
		X:      sel.X,
		Y:      sel.Y,
		Width:  selectorLabelWidth + 2,
		Height: dock.Count + 2,
	}
	return box.ClampInto(geometry.Rect{Width: s.Width, Height: s.Height}), true
}

// SelectorItems returns the dock choices of the open selector, one row
// each, in dock order.
func (s *Screen) SelectorItems() []SelectorItem {
	box, ok := s.SelectorBox()
	if !ok {
		return nil
	}
	items := make([]SelectorItem, 0, dock.Count)
	for i, d := range dock.All() {
		row := geometry.Rect{X: box.X + 1, Y: box.Y + 1 + i, Width: box.Width - 2, Height: 1}
		if row.Bottom() > box.Bottom()-1 {
			break
		}
		items = append(items, SelectorItem{Dock: d, Rect: row})
	}
	return items
}

// SelectorItemAt returns the dock choice under (x, y).
func (s *Screen) SelectorItemAt(x, y int) (dock.Dock, bool) {
	for _, item := range s.SelectorItems() {
		if item.Rect.Contains(x, y) {
			return item.Dock, true
		}
	}
	return dock.None, false
}
