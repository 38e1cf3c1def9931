package layout

import (
	"errors"
	"testing"

	"github.com/mlgarchery/Quacken/matrix"
	"github.com/mlgarchery/Quacken/pkg"
)

// testLayers builds a 2x3 keymap with two layers:
//
//	base:  A      B          Hold(1)
//	       LCtrl  Toggle(1)  C
//	upper: 1      trans      trans
//	       noop   trans      2
func testLayers() Layers {
	return Layers{
		{
			{Key(CodeA), Key(CodeB), Hold(1)},
			{Key(CodeLCtrl), Toggle(1), Key(CodeC)},
		},
		{
			{Key(Code1), Trans(), Trans()},
			{NoAct(), Trans(), Key(Code2)},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testLayers())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

// asserted returns the engine's asserted codes in first-asserted order.
func asserted(e *Engine) []Code {
	var out []Code
	e.VisitAsserted(func(c Code) { out = append(out, c) })
	return out
}

func codesEqual(a, b []Code) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewEngineValidation(t *testing.T) {
	tests := []struct {
		name    string
		layers  Layers
		wantErr error
	}{
		{
			name:    "empty keymap",
			layers:  Layers{},
			wantErr: pkg.ErrKeymapShape,
		},
		{
			name: "ragged rows",
			layers: Layers{
				{{Key(CodeA), Key(CodeB)}},
				{{Trans(), Trans()}, {Trans(), Trans()}},
			},
			wantErr: pkg.ErrKeymapShape,
		},
		{
			name: "ragged cols",
			layers: Layers{
				{{Key(CodeA), Key(CodeB)}, {Key(CodeC)}},
			},
			wantErr: pkg.ErrKeymapShape,
		},
		{
			name: "transparent base cell",
			layers: Layers{
				{{Key(CodeA), Trans()}},
			},
			wantErr: pkg.ErrKeymapCoverage,
		},
		{
			name: "layer reference out of range",
			layers: Layers{
				{{Key(CodeA), Hold(2)}},
				{{Trans(), Trans()}},
			},
			wantErr: pkg.ErrLayerRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.layers); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewEngine() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngineSimpleKey(t *testing.T) {
	e := newTestEngine(t)

	e.Press(matrix.Logical{Row: 0, Col: 0})
	if got := asserted(e); !codesEqual(got, []Code{CodeA}) {
		t.Fatalf("asserted = %v, want [A]", got)
	}

	e.Release(matrix.Logical{Row: 0, Col: 0})
	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted after release = %v, want empty", got)
	}
}

func TestEngineModifier(t *testing.T) {
	e := newTestEngine(t)

	e.Press(matrix.Logical{Row: 1, Col: 0})
	if got := asserted(e); !codesEqual(got, []Code{CodeLCtrl}) {
		t.Fatalf("asserted = %v, want [LCtrl]", got)
	}
	e.Release(matrix.Logical{Row: 1, Col: 0})
	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted after release = %v, want empty", got)
	}
}

func TestEngineLayerHoldResolution(t *testing.T) {
	e := newTestEngine(t)
	hold := matrix.Logical{Row: 0, Col: 2}
	key := matrix.Logical{Row: 0, Col: 0}

	e.Press(hold)
	if depth := e.StackDepth(); depth != 2 {
		t.Fatalf("stack depth = %d, want 2", depth)
	}

	// (0,0) now resolves through the upper layer.
	e.Press(key)
	if got := asserted(e); !codesEqual(got, []Code{Code1}) {
		t.Fatalf("asserted = %v, want [1]", got)
	}
	e.Release(key)

	e.Release(hold)
	if depth := e.StackDepth(); depth != 1 {
		t.Errorf("stack depth after release = %d, want 1", depth)
	}
}

func TestEngineTransparentFallsThrough(t *testing.T) {
	e := newTestEngine(t)
	e.Press(matrix.Logical{Row: 0, Col: 2})

	// (0,1) is transparent on the upper layer; it falls through to B.
	e.Press(matrix.Logical{Row: 0, Col: 1})
	if got := asserted(e); !codesEqual(got, []Code{CodeB}) {
		t.Errorf("asserted = %v, want [B]", got)
	}
}

func TestEngineNoOpShadowsBase(t *testing.T) {
	e := newTestEngine(t)
	e.Press(matrix.Logical{Row: 0, Col: 2})

	// The upper layer's noop at (1,0) shadows LCtrl on the base layer; a
	// noop resolves without falling through and asserts nothing.
	e.Press(matrix.Logical{Row: 1, Col: 0})
	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted = %v, want empty", got)
	}
	e.Release(matrix.Logical{Row: 1, Col: 0})
	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted after release = %v, want empty", got)
	}
}

func TestEnginePressTimeBinding(t *testing.T) {
	e := newTestEngine(t)
	hold := matrix.Logical{Row: 0, Col: 2}
	key := matrix.Logical{Row: 0, Col: 0}

	// Key pressed on the upper layer, layer released, then key released:
	// the release undoes the upper-layer binding, not the base action.
	e.Press(hold)
	e.Press(key)
	e.Release(hold)

	if got := asserted(e); !codesEqual(got, []Code{Code1}) {
		t.Fatalf("asserted = %v, want [1]", got)
	}

	e.Release(key)
	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted = %v, want empty", got)
	}
}

func TestEnginePressTimeBindingReverse(t *testing.T) {
	e := newTestEngine(t)
	hold := matrix.Logical{Row: 0, Col: 2}
	key := matrix.Logical{Row: 0, Col: 0}

	// Key pressed on base, layer activated, key released: the base binding
	// is undone even though the coordinate now resolves differently.
	e.Press(key)
	e.Press(hold)
	e.Release(key)

	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted = %v, want empty", got)
	}
}

func TestEngineToggle(t *testing.T) {
	e := newTestEngine(t)
	toggle := matrix.Logical{Row: 1, Col: 1}

	e.Press(toggle)
	e.Release(toggle)
	if depth := e.StackDepth(); depth != 2 {
		t.Fatalf("stack depth after toggle on = %d, want 2", depth)
	}

	// The toggled layer persists across the release; toggling again, now
	// resolved through the upper layer's transparent cell, flips it off.
	e.Press(toggle)
	e.Release(toggle)
	if depth := e.StackDepth(); depth != 1 {
		t.Errorf("stack depth after toggle off = %d, want 1", depth)
	}
}

func TestEngineStackOverflowIgnored(t *testing.T) {
	// Two hold keys but only one free stack slot: the second activation is
	// dropped, and its release must not pop anything.
	e, err := NewEngine(Layers{
		{
			{Hold(1), Hold(1), Key(CodeA)},
		},
		{
			{Trans(), Trans(), Key(Code1)},
		},
	})
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	first := matrix.Logical{Row: 0, Col: 0}
	second := matrix.Logical{Row: 0, Col: 1}

	e.Press(first)
	e.Press(second)
	if depth := e.StackDepth(); depth != 2 {
		t.Fatalf("stack depth = %d, want 2", depth)
	}

	e.Release(second)
	if depth := e.StackDepth(); depth != 2 {
		t.Errorf("releasing rejected hold popped the stack: depth = %d, want 2", depth)
	}

	e.Release(first)
	if layers := e.ActiveLayers(); len(layers) != 1 || layers[0] != 0 {
		t.Errorf("active layers = %v, want [0]", layers)
	}
}

func TestEngineHoldReleaseAfterToggleRemoval(t *testing.T) {
	e := newTestEngine(t)
	hold := matrix.Logical{Row: 0, Col: 2}

	e.Press(hold)
	if depth := e.StackDepth(); depth != 2 {
		t.Fatalf("stack depth = %d, want 2", depth)
	}

	// Toggle removes the layer the hold pushed; releasing the hold must
	// not pop the base layer in its place.
	e.Press(matrix.Logical{Row: 1, Col: 1})
	if depth := e.StackDepth(); depth != 1 {
		t.Fatalf("stack depth after toggle = %d, want 1", depth)
	}

	e.Release(hold)
	if layers := e.ActiveLayers(); len(layers) != 1 || layers[0] != 0 {
		t.Errorf("active layers = %v, want [0]", layers)
	}
}

func TestEngineOverlappingCodes(t *testing.T) {
	layers := Layers{
		{
			{Key(CodeA), Key(CodeA), Key(CodeB)},
			{Key(CodeC), Key(CodeD), Key(CodeE)},
		},
	}
	e, err := NewEngine(layers)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	// Two coordinates asserting the same code: the code stays asserted
	// until both release.
	e.Press(matrix.Logical{Row: 0, Col: 0})
	e.Press(matrix.Logical{Row: 0, Col: 1})
	e.Release(matrix.Logical{Row: 0, Col: 0})
	if got := asserted(e); !codesEqual(got, []Code{CodeA}) {
		t.Fatalf("asserted = %v, want [A]", got)
	}
	e.Release(matrix.Logical{Row: 0, Col: 1})
	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted = %v, want empty", got)
	}
}

func TestEngineAssertedOrder(t *testing.T) {
	e := newTestEngine(t)

	e.Press(matrix.Logical{Row: 1, Col: 2}) // C
	e.Press(matrix.Logical{Row: 0, Col: 0}) // A
	e.Press(matrix.Logical{Row: 0, Col: 1}) // B

	if got := asserted(e); !codesEqual(got, []Code{CodeC, CodeA, CodeB}) {
		t.Errorf("asserted = %v, want [C A B]", got)
	}
}

func TestEngineReleaseUnbound(t *testing.T) {
	e := newTestEngine(t)
	// Releasing a coordinate that was never pressed must not disturb state.
	e.Release(matrix.Logical{Row: 0, Col: 0})
	if got := asserted(e); len(got) != 0 {
		t.Errorf("asserted = %v, want empty", got)
	}
}

func macroEngine(t *testing.T, a Action) *Engine {
	t.Helper()
	e, err := NewEngine(Layers{
		{
			{a, Key(CodeB)},
		},
	})
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

func TestEngineMacroOneStepPerTick(t *testing.T) {
	e := macroEngine(t, Chord(CodeLCtrl, CodeZ))
	pos := matrix.Logical{Row: 0, Col: 0}

	e.Press(pos)
	if got := asserted(e); len(got) != 0 {
		t.Fatalf("asserted before first tick = %v, want empty", got)
	}

	e.Tick()
	if got := asserted(e); !codesEqual(got, []Code{CodeLCtrl}) {
		t.Fatalf("after tick 1 = %v, want [LCtrl]", got)
	}

	e.Tick()
	if got := asserted(e); !codesEqual(got, []Code{CodeLCtrl, CodeZ}) {
		t.Fatalf("after tick 2 = %v, want [LCtrl Z]", got)
	}

	e.Tick()
	if got := asserted(e); !codesEqual(got, []Code{CodeLCtrl}) {
		t.Fatalf("after tick 3 = %v, want [LCtrl]", got)
	}

	e.Tick()
	if got := asserted(e); len(got) != 0 {
		t.Fatalf("after tick 4 = %v, want empty", got)
	}

	// Further ticks past the end of the sequence are inert.
	e.Tick()
	if got := asserted(e); len(got) != 0 {
		t.Errorf("after extra tick = %v, want empty", got)
	}

	e.Release(pos)
	if got := asserted(e); len(got) != 0 {
		t.Errorf("after release = %v, want empty", got)
	}
}

func TestEngineMacroAbortReleasesHeld(t *testing.T) {
	e := macroEngine(t, Chord(CodeLCtrl, CodeZ))
	pos := matrix.Logical{Row: 0, Col: 0}

	// Release mid-sequence with both codes down: the abort must release
	// them so every press stays paired.
	e.Press(pos)
	e.Tick()
	e.Tick()
	if got := asserted(e); !codesEqual(got, []Code{CodeLCtrl, CodeZ}) {
		t.Fatalf("mid-sequence = %v, want [LCtrl Z]", got)
	}

	e.Release(pos)
	if got := asserted(e); len(got) != 0 {
		t.Fatalf("after abort = %v, want empty", got)
	}

	// No stale cursor: ticks after the abort do nothing.
	e.Tick()
	if got := asserted(e); len(got) != 0 {
		t.Errorf("tick after abort = %v, want empty", got)
	}
}

func TestEngineMacroRestart(t *testing.T) {
	e := macroEngine(t, Macro(
		Step{Code: CodeA, Press: true},
		Step{Code: CodeA, Press: false},
	))
	pos := matrix.Logical{Row: 0, Col: 0}

	for i := 0; i < 2; i++ {
		e.Press(pos)
		e.Tick()
		if got := asserted(e); !codesEqual(got, []Code{CodeA}) {
			t.Fatalf("run %d after tick 1 = %v, want [A]", i, got)
		}
		e.Tick()
		if got := asserted(e); len(got) != 0 {
			t.Fatalf("run %d after tick 2 = %v, want empty", i, got)
		}
		e.Release(pos)
	}
}

func TestChordSteps(t *testing.T) {
	a := Chord(CodeLCtrl, CodeZ)
	want := []Step{
		{Code: CodeLCtrl, Press: true},
		{Code: CodeZ, Press: true},
		{Code: CodeZ, Press: false},
		{Code: CodeLCtrl, Press: false},
	}
	if len(a.Steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(a.Steps), len(want))
	}
	for i, s := range a.Steps {
		if s != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestKeyRoutesModifiers(t *testing.T) {
	if a := Key(CodeLShift); a.Kind != ActionModifier {
		t.Errorf("Key(LShift).Kind = %v, want modifier", a.Kind)
	}
	if a := Key(CodeA); a.Kind != ActionKey {
		t.Errorf("Key(A).Kind = %v, want key", a.Kind)
	}
}
