package events

import (
	"testing"

	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
)

func TestDispatchAndRemove(t *testing.T) {
	surface := NewTarget("window")

	var moves, ups int
	move := surface.AddListener(pointer.MouseMove, func(pointer.Input) { moves++ })
	surface.AddListener(pointer.MouseUp, func(pointer.Input) { ups++ })

	if n := surface.Dispatch(pointer.NewMouse(pointer.MouseMove, 1, 1, pointer.ButtonPrimary)); n != 1 {
		t.Errorf("Dispatch() invoked %d listeners, want 1", n)
	}
	if moves != 1 || ups != 0 {
		t.Errorf("moves=%d ups=%d, want 1 and 0", moves, ups)
	}

	move.Remove()
	move.Remove()
	if move.Active() {
		t.Error("listener still active after Remove")
	}
	surface.Dispatch(pointer.NewMouse(pointer.MouseMove, 2, 2, pointer.ButtonPrimary))
	if moves != 1 {
		t.Errorf("removed listener was invoked, moves=%d", moves)
	}
	if surface.LenType(pointer.MouseMove) != 0 {
		t.Errorf("LenType(mousemove) = %d, want 0", surface.LenType(pointer.MouseMove))
	}
	if surface.Len() != 1 {
		t.Errorf("Len() = %d, want 1", surface.Len())
	}
}

func TestRemoveDuringDispatch(t *testing.T) {
	surface := NewTarget("window")

	var second *Listener
	var secondCalls int
	surface.AddListener(pointer.MouseUp, func(pointer.Input) { second.Remove() })
	second = surface.AddListener(pointer.MouseUp, func(pointer.Input) { secondCalls++ })

	if n := surface.Dispatch(pointer.NewMouse(pointer.MouseUp, 0, 0, 0)); n != 1 {
		t.Errorf("Dispatch() invoked %d listeners, want 1", n)
	}
	if secondCalls != 0 {
		t.Error("listener removed mid-dispatch was still invoked")
	}
}

func TestAddDuringDispatch(t *testing.T) {
	surface := NewTarget("window")

	var late int
	surface.AddListener(pointer.MouseMove, func(pointer.Input) {
		surface.AddListener(pointer.MouseMove, func(pointer.Input) { late++ })
	})

	surface.Dispatch(pointer.NewMouse(pointer.MouseMove, 0, 0, 0))
	if late != 0 {
		t.Error("listener added mid-dispatch saw the occurrence")
	}
	if surface.LenType(pointer.MouseMove) != 2 {
		t.Errorf("LenType(mousemove) = %d, want 2", surface.LenType(pointer.MouseMove))
	}
}
