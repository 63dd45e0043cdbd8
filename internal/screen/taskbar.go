package screen

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/dockwm/internal/config"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// maxTaskbarTitle bounds the width of a title in the taskbar.
const maxTaskbarTitle = 18

// TaskbarSlot is the on-screen place of one taskbar entry.
type TaskbarSlot struct {
	Item  dock.TaskbarItem
	Label string
	Rect  geometry.Rect
}

// TaskbarLabel returns the text of a taskbar entry.
func TaskbarLabel(item dock.TaskbarItem) string {
	title := ansi.Truncate(item.Title, maxTaskbarTitle, "…")
	if title == "" {
		title = "window " + item.ID.String()
	}
	if item.Icon != "" {
		title = item.Icon + " " + title
	}
	return fmt.Sprintf(" %s %s ", config.GetTaskbarMarker(item.Open), title)
}

// TaskbarSlots lays the taskbar entries out left to right on the first
// taskbar row. Entries that do not fit are dropped.
func (s *Screen) TaskbarSlots() []TaskbarSlot {
	bar := s.regions.Taskbar
	if bar.Empty() {
		return nil
	}
	slots := make([]TaskbarSlot, 0, len(s.layout.Taskbar))
	x := bar.X
	for _, item := range s.layout.Taskbar {
		label := TaskbarLabel(item)
		w := ansi.StringWidth(label)
		if x+w > bar.Right() {
			break
		}
		slots = append(slots, TaskbarSlot{
			Item:  item,
			Label: label,
			Rect:  geometry.Rect{X: x, Y: bar.Y, Width: w, Height: bar.Height},
		})
		x += w + 1
	}
	return slots
}

// TaskbarItemAt returns the taskbar entry under (x, y).
func (s *Screen) TaskbarItemAt(x, y int) (dock.TaskbarItem, bool) {
	for _, slot := range s.TaskbarSlots() {
		if slot.Rect.Contains(x, y) {
			return slot.Item, true
		}
	}
	return dock.TaskbarItem{}, false
}
