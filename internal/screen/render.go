package screen

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/dockwm/internal/config"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
	"github.com/Gaurav-Gosain/dockwm/internal/theme"
)

// View renders the desktop.
func (s *Screen) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(s.Canvas().Render()))
	view.AltScreen = true
	// All motion: drags are tracked even when the button state is lost.
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// Canvas composes every visible element into a canvas of the screen size.
func (s *Screen) Canvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(max(s.Width, 0), max(s.Height, 0))
	if s.Width <= 0 || s.Height <= 0 {
		return canvas
	}

	layers := []*lipgloss.Layer{s.renderBackground()}
	for _, d := range dock.Edges() {
		layers = append(layers, s.renderEdgeDock(d)...)
	}
	layers = append(layers, s.renderCenter()...)
	if l := s.renderTaskbar(); l != nil {
		layers = append(layers, l)
	}
	if l := s.renderSelector(); l != nil {
		layers = append(layers, l)
	}
	if s.ShowHelp {
		layers = append(layers, s.renderHelp())
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

func (s *Screen) renderBackground() *lipgloss.Layer {
	row := lipgloss.NewStyle().Background(theme.ScreenBg()).Render(strings.Repeat(" ", s.Width))
	rows := make([]string, s.Height)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.NewLayer(strings.Join(rows, "\n")).X(0).Y(0).Z(config.ZIndexBackground).ID("background")
}

// panel draws a bordered box of exactly w x h cells with the title set
// into the top border.
func panel(title, body string, w, h int, borderColor, titleColor color.Color) string {
	if w < 2 || h < 2 {
		return ""
	}
	b := config.GetBorderForStyle()
	bs := lipgloss.NewStyle().Foreground(borderColor)
	ts := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	inner := w - 2

	label := ""
	if title != "" && inner >= 3 {
		label = " " + ansi.Truncate(title, inner-2, "…") + " "
	}
	fill := max(inner-ansi.StringWidth(label), 0)

	lines := make([]string, 0, h)
	lines = append(lines, bs.Render(b.TopLeft)+ts.Render(label)+bs.Render(strings.Repeat(b.Top, fill)+b.TopRight))

	bodyLines := strings.Split(body, "\n")
	for i := range h - 2 {
		line := ""
		if i < len(bodyLines) {
			line = ansi.Truncate(bodyLines[i], inner, "")
		}
		line += strings.Repeat(" ", max(inner-ansi.StringWidth(line), 0))
		lines = append(lines, bs.Render(b.Left)+line+bs.Render(b.Right))
	}

	lines = append(lines, bs.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return strings.Join(lines, "\n")
}

// fill repeats glyph over a w x h area.
func fill(glyph string, w, h int, style lipgloss.Style) string {
	row := style.Render(strings.Repeat(glyph, max(w, 0)))
	rows := make([]string, max(h, 0))
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// DefaultContent describes a window in place of its rendered surface.
func DefaultContent(w dock.Window, width, _ int) string {
	lines := []string{
		fmt.Sprintf("window %s", w.ID),
		"handle " + string(w.Handle),
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}

// splitExtent divides total into n parts, the first ones one cell larger
// when it does not divide evenly.
func splitExtent(total, n int) []int {
	if n <= 0 {
		return nil
	}
	parts := make([]int, n)
	for i := range parts {
		parts[i] = total / n
		if i < total%n {
			parts[i]++
		}
	}
	return parts
}

func (s *Screen) hovered(d dock.Dock) bool {
	h, ok := s.DnD.Hovered()
	return ok && h == d
}

func (s *Screen) renderEdgeDock(d dock.Dock) []*lipgloss.Layer {
	region := s.regions.Dock(d)
	if region.Empty() {
		return nil
	}
	facts := s.layout.Edge(d)
	id := "dock-" + d.String()

	if facts.DropZone() {
		c := theme.DropZone()
		if s.hovered(d) {
			c = theme.DropZoneHover()
		}
		content := fill(config.GetDropZoneFill(), region.Width, region.Height, lipgloss.NewStyle().Foreground(c))
		return []*lipgloss.Layer{lipgloss.NewLayer(content).X(region.X).Y(region.Y).Z(config.ZIndexDock).ID(id)}
	}

	border := theme.DockBorder()
	if s.hovered(d) {
		border = theme.DropZoneHover()
	}

	horizontal := d == dock.Top || d == dock.Bottom
	var parts []int
	if horizontal {
		parts = splitExtent(region.Width, len(facts.Stack))
	} else {
		parts = splitExtent(region.Height, len(facts.Stack))
	}

	layers := make([]*lipgloss.Layer, 0, len(facts.Stack)+1)
	offset := 0
	for i, wid := range facts.Stack {
		w, ok := s.Engine.Window(wid)
		if !ok {
			continue
		}
		cell := geometry.Rect{X: region.X, Y: region.Y + offset, Width: region.Width, Height: parts[i]}
		if horizontal {
			cell = geometry.Rect{X: region.X + offset, Y: region.Y, Width: parts[i], Height: region.Height}
		}
		offset += parts[i]

		titleColor := theme.ScreenFg()
		if wid == facts.Topmost {
			titleColor = theme.WindowTitle()
		}
		body := s.content(w, max(cell.Width-2, 0), max(cell.Height-2, 0))
		content := panel(w.Title, body, cell.Width, cell.Height, border, titleColor)
		if content == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(content).
			X(cell.X).Y(cell.Y).Z(config.ZIndexDock).ID(fmt.Sprintf("%s-%s", id, wid)))
	}

	if edge := s.dockAnchors[d].Bounds; !edge.Empty() {
		style := lipgloss.NewStyle().Foreground(theme.DockAnchor())
		var line string
		if edge.Height == 1 {
			line = fill(config.GetAnchorLine(true), edge.Width, 1, style)
		} else {
			line = fill(config.GetAnchorLine(false), 1, edge.Height, style)
		}
		layers = append(layers, lipgloss.NewLayer(line).X(edge.X).Y(edge.Y).Z(config.ZIndexDock+1).ID(id+"-anchor"))
	}
	return layers
}

func (s *Screen) renderCenter() []*lipgloss.Layer {
	region := s.regions.Dock(dock.Center)
	if region.Empty() {
		return nil
	}

	var layers []*lipgloss.Layer
	if s.hovered(dock.Center) {
		content := panel("drop here", "", region.Width, region.Height, theme.DropZoneHover(), theme.DropZoneHover())
		if content != "" {
			layers = append(layers, lipgloss.NewLayer(content).X(region.X).Y(region.Y).Z(config.ZIndexDock).ID("dock-center"))
		}
	}

	frame, ok := s.CenterFrame()
	if !ok {
		if s.ShowStatus {
			status := lipgloss.NewStyle().Foreground(theme.StatusText()).Render(s.StatusLine())
			placed := lipgloss.Place(region.Width, region.Height, lipgloss.Center, lipgloss.Center, status)
			layers = append(layers, lipgloss.NewLayer(placed).X(region.X).Y(region.Y).Z(config.ZIndexDock-1).ID("status"))
		}
		return layers
	}

	w, _ := s.Engine.Window(s.layout.Center)
	body := s.content(w, max(frame.Width-2, 0), max(frame.Height-2, 0))
	content := panel(w.Title, body, frame.Width, frame.Height, theme.WindowBorder(), theme.WindowTitle())
	if content != "" {
		layers = append(layers, lipgloss.NewLayer(content).
			X(frame.X).Y(frame.Y).Z(config.ZIndexCenterWindow).ID("center-"+w.ID.String()))
	}
	return layers
}

// StatusLine is shown in an empty center dock.
func (s *Screen) StatusLine() string {
	return fmt.Sprintf("Your screen is %d by %d cells", s.Width, s.Height)
}

func (s *Screen) renderTaskbar() *lipgloss.Layer {
	bar := s.regions.Taskbar
	if bar.Empty() {
		return nil
	}
	base := lipgloss.NewStyle().Background(theme.TaskbarBg())

	var sb strings.Builder
	x := bar.X
	for _, slot := range s.TaskbarSlots() {
		if gap := slot.Rect.X - x; gap > 0 {
			sb.WriteString(base.Render(strings.Repeat(" ", gap)))
		}
		style := base.Foreground(theme.TaskbarFg())
		switch {
		case s.Press != nil && s.Press.ID == slot.Item.ID:
			style = base.Foreground(theme.TaskbarPressed()).Bold(true)
		case slot.Item.Open:
			style = base.Foreground(theme.TaskbarOpen())
		}
		sb.WriteString(style.Render(slot.Label))
		x = slot.Rect.Right()
	}
	if rest := bar.Right() - x; rest > 0 {
		sb.WriteString(base.Render(strings.Repeat(" ", rest)))
	}

	rows := []string{sb.String()}
	for range bar.Height - 1 {
		rows = append(rows, base.Render(strings.Repeat(" ", bar.Width)))
	}
	return lipgloss.NewLayer(strings.Join(rows, "\n")).X(bar.X).Y(bar.Y).Z(config.ZIndexTaskbar).ID("taskbar")
}

func (s *Screen) renderSelector() *lipgloss.Layer {
	box, ok := s.SelectorBox()
	if !ok || box.Width < 2 || box.Height < 2 {
		return nil
	}
	w, _ := s.Engine.Window(s.layout.Selector.ID)

	base := lipgloss.NewStyle().Background(theme.SelectorBg()).Foreground(theme.SelectorFg())
	current := base.Foreground(theme.SelectorHighlight()).Bold(true)
	inner := box.Width - 2

	lines := make([]string, 0, dock.Count)
	for _, item := range s.SelectorItems() {
		marker := " "
		style := base
		if item.Dock == w.Current {
			marker = config.GetSelectorMarker()
			style = current
		}
		label := fmt.Sprintf("%s %s", marker, dockLabel(item.Dock))
		label += strings.Repeat(" ", max(inner-ansi.StringWidth(label), 0))
		lines = append(lines, style.Render(label))
	}

	title := "dock"
	if w.Title != "" {
		title = w.Title
	}
	content := panel(title, strings.Join(lines, "\n"), box.Width, box.Height, theme.SelectorHighlight(), theme.SelectorFg())
	return lipgloss.NewLayer(content).X(box.X).Y(box.Y).Z(config.ZIndexSelector).ID("selector")
}

func dockLabel(d dock.Dock) string {
	name := d.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func (s *Screen) renderHelp() *lipgloss.Layer {
	var lines []string
	keyWidth := 0
	sections := config.GetKeybindings(s.Keys)
	for _, sec := range sections {
		for _, b := range sec.Bindings {
			keyWidth = max(keyWidth, ansi.StringWidth(b.Key))
		}
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.SelectorHighlight()).Bold(true)
	headStyle := lipgloss.NewStyle().Foreground(theme.WindowTitle()).Bold(true)
	for i, sec := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, headStyle.Render(sec.Title))
		for _, b := range sec.Bindings {
			pad := strings.Repeat(" ", keyWidth-ansi.StringWidth(b.Key))
			lines = append(lines, "  "+keyStyle.Render(b.Key)+pad+"  "+b.Description)
		}
	}

	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	w := min(width+2, s.Width)
	h := min(len(lines)+2, s.Height)
	content := panel("help", strings.Join(lines, "\n"), w, h, theme.WindowBorder(), theme.WindowTitle())
	return lipgloss.NewLayer(content).
		X((s.Width - w) / 2).Y((s.Height - h) / 2).Z(config.ZIndexHelp).ID("help")
}
