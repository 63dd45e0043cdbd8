package dockwm

import (
	"io"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return New(
		WithUserConfig(Config.DefaultConfig()),
		WithLogger(log.New(io.Discard)),
		WithSize(80, 24),
	)
}

func TestNewAppliesSize(t *testing.T) {
	m := newTestModel(t)
	if m.Width != 80 || m.Height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.Width, m.Height)
	}
	if m.Engine.Len() != 0 {
		t.Errorf("new model has %d windows", m.Engine.Len())
	}
}

func TestWithTaskbarHeightClamps(t *testing.T) {
	tests := []struct {
		rows, want int
	}{
		{0, 1},
		{2, 2},
		{9, 3},
	}
	for _, tt := range tests {
		var o Options
		WithTaskbarHeight(tt.rows)(&o)
		if o.TaskbarHeight != tt.want {
			t.Errorf("WithTaskbarHeight(%d) = %d, want %d", tt.rows, o.TaskbarHeight, tt.want)
		}
	}
}

func TestFilterMouseMotion(t *testing.T) {
	m := newTestModel(t)

	motion := tea.MouseMotionMsg{X: 3, Y: 3}
	if got := FilterMouseMotion(m, motion); got != nil {
		t.Errorf("idle motion passed the filter: %v", got)
	}

	key := tea.KeyPressMsg{Code: 'n', Text: "n"}
	if got := FilterMouseMotion(m, key); got == nil {
		t.Error("key press was filtered")
	}

	m.DnD.Begin(0)
	if got := FilterMouseMotion(m, motion); got == nil {
		t.Error("motion during drag and drop was filtered")
	}
}
