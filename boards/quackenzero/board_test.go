package quackenzero

import (
	"testing"

	"github.com/mlgarchery/Quacken/layout"
	"github.com/mlgarchery/Quacken/matrix"
)

func TestTopologyValid(t *testing.T) {
	for _, rotated := range []bool{false, true} {
		topo := Topology(rotated)
		if err := topo.Validate(); err != nil {
			t.Errorf("Topology(%v) invalid: %v", rotated, err)
		}
		if topo.Rows != Rows || topo.Cols != Cols {
			t.Errorf("Topology(%v) grid = %dx%d", rotated, topo.Rows, topo.Cols)
		}
		if !topo.Folded {
			t.Errorf("Topology(%v) not folded", rotated)
		}
	}
}

func TestKeymapBuildsEngine(t *testing.T) {
	e, err := layout.NewEngine(Keymap())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	if e.Rows() != Rows || e.Cols() != Cols {
		t.Errorf("keymap grid = %dx%d, want %dx%d", e.Rows(), e.Cols(), Rows, Cols)
	}
}

func TestKeymapLayerCount(t *testing.T) {
	if got := len(Keymap()); got != LayerCount {
		t.Errorf("keymap has %d layers, want %d", got, LayerCount)
	}
}

func TestKeymapBaseLayerAnchors(t *testing.T) {
	base := Keymap()[LayerBase]
	tests := []struct {
		row, col int
		want     layout.Action
	}{
		{0, 0, layout.Key(layout.CodeEscape)},
		{0, 11, layout.Key(layout.CodeBackspace)},
		{2, 0, layout.Key(layout.CodeLShift)},
		{3, 5, layout.Hold(LayerNumNav)},
		{3, 6, layout.Key(layout.CodeLGUI)},
	}
	for _, tt := range tests {
		got := base[tt.row][tt.col]
		if got.Kind != tt.want.Kind || got.Code != tt.want.Code || got.Layer != tt.want.Layer {
			t.Errorf("base[%d][%d] = %+v, want %+v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestKeymapNumberLayerThroughHold(t *testing.T) {
	e, err := layout.NewEngine(Keymap())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	// Hold the number layer and press the cell emitting 7.
	e.Press(matrix.Logical{Row: 3, Col: 5})
	e.Press(matrix.Logical{Row: 0, Col: 7})

	var got []layout.Code
	e.VisitAsserted(func(c layout.Code) { got = append(got, c) })
	if len(got) != 1 || got[0] != layout.Code7 {
		t.Errorf("asserted = %v, want [7]", got)
	}
}

func TestKeymapUndoChord(t *testing.T) {
	undo := Keymap()[LayerNumNav][2][1]
	if undo.Kind != layout.ActionMacro {
		t.Fatalf("NumNav[2][1].Kind = %v, want macro", undo.Kind)
	}
	want := []layout.Step{
		{Code: layout.CodeLCtrl, Press: true},
		{Code: layout.CodeZ, Press: true},
		{Code: layout.CodeZ, Press: false},
		{Code: layout.CodeLCtrl, Press: false},
	}
	if len(undo.Steps) != len(want) {
		t.Fatalf("undo has %d steps, want %d", len(undo.Steps), len(want))
	}
	for i, s := range undo.Steps {
		if s != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, s, want[i])
		}
	}
}
