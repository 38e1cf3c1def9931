package layout

import (
	"fmt"

	"github.com/mlgarchery/Quacken/matrix"
	"github.com/mlgarchery/Quacken/pkg"
)

// Layer is a full grid of actions, one per logical coordinate.
type Layer [][]Action

// Layers is the keymap: layer 0 is the base layer and always remains at the
// bottom of the active stack. The keymap is compile-time configuration
// consumed read-only by the engine.
type Layers []Layer

// binding is the action resolved for a coordinate at press time. The
// binding, not the live layer stack, governs the coordinate's release
// behavior: layer changes between press and release never alter what a
// release undoes.
type binding struct {
	active bool
	kind   ActionKind
	code   Code
	layer  int
	pushed bool // LayerHold push was accepted

	// Macro cursor state.
	steps []Step
	next  int
	held  []Code // codes this macro currently asserts, in press order
}

// assertedCode is one entry of the ordered asserted-code set. The count
// tracks how many holders assert the code so overlapping keys and macros
// release correctly.
type assertedCode struct {
	code  Code
	count int
}

// Engine is the layered key-action state machine. It consumes press and
// release events at logical coordinates, tracks live holds and in-flight
// macro sequencing, and produces the current set of asserted key codes.
//
// The engine is not safe for concurrent use; it is owned exclusively by the
// scan handler.
type Engine struct {
	layers Layers
	rows   int
	cols   int

	stack    []int // active layer stack, stack[0] == 0 always
	bindings []binding
	asserted []assertedCode
}

// NewEngine creates an engine over the given keymap. Every layer must have
// identical dimensions, the base layer must resolve every cell to a
// concrete action (no Transparent entries), and all layer references must
// stay within the keymap.
func NewEngine(layers Layers) (*Engine, error) {
	if len(layers) == 0 || len(layers[0]) == 0 || len(layers[0][0]) == 0 {
		return nil, fmt.Errorf("%w: empty keymap", pkg.ErrKeymapShape)
	}
	rows, cols := len(layers[0]), len(layers[0][0])
	for id, layer := range layers {
		if len(layer) != rows {
			return nil, fmt.Errorf("%w: layer %d has %d rows, want %d",
				pkg.ErrKeymapShape, id, len(layer), rows)
		}
		for r, rowActions := range layer {
			if len(rowActions) != cols {
				return nil, fmt.Errorf("%w: layer %d row %d has %d cols, want %d",
					pkg.ErrKeymapShape, id, r, len(rowActions), cols)
			}
			for c, a := range rowActions {
				if id == 0 && a.Kind == ActionTransparent {
					return nil, fmt.Errorf("%w: base layer cell (%d,%d)",
						pkg.ErrKeymapCoverage, r, c)
				}
				if a.Kind == ActionLayerHold || a.Kind == ActionLayerToggle {
					if a.Layer < 0 || a.Layer >= len(layers) {
						return nil, fmt.Errorf("%w: layer %d cell (%d,%d) references layer %d",
							pkg.ErrLayerRange, id, r, c, a.Layer)
					}
				}
			}
		}
	}

	e := &Engine{
		layers:   layers,
		rows:     rows,
		cols:     cols,
		stack:    make([]int, 1, len(layers)),
		bindings: make([]binding, rows*cols),
		asserted: make([]assertedCode, 0, rows*cols),
	}
	e.stack[0] = 0
	return e, nil
}

// Rows returns the logical row count.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the logical column count.
func (e *Engine) Cols() int { return e.cols }

// ActiveLayers returns a copy of the active layer stack, bottom first.
func (e *Engine) ActiveLayers() []int {
	out := make([]int, len(e.stack))
	copy(out, e.stack)
	return out
}

// StackDepth returns the current active stack depth.
func (e *Engine) StackDepth() int { return len(e.stack) }

// Resolve scans the active layer stack from top to bottom, skipping
// Transparent entries, and returns the first concrete action for the
// coordinate. The base layer guarantees full coverage, so resolution is
// total.
func (e *Engine) Resolve(pos matrix.Logical) Action {
	for i := len(e.stack) - 1; i >= 0; i-- {
		a := e.layers[e.stack[i]][pos.Row][pos.Col]
		if a.Kind != ActionTransparent {
			return a
		}
	}
	// Unreachable with a validated keymap.
	return NoAct()
}

// Press handles a confirmed press at a coordinate. The resolved action is
// stored as the coordinate's held binding and its effect is applied.
func (e *Engine) Press(pos matrix.Logical) {
	b := &e.bindings[pos.Row*e.cols+pos.Col]
	if b.active {
		// Unpaired press; should not occur with well-formed event streams.
		pkg.LogWarn(pkg.ComponentLayout, "press on held coordinate",
			"row", pos.Row, "col", pos.Col)
		return
	}

	a := e.Resolve(pos)
	b.active = true
	b.kind = a.Kind
	b.code = a.Code
	b.layer = a.Layer
	b.pushed = false
	b.steps = nil
	b.next = 0
	b.held = b.held[:0]

	switch a.Kind {
	case ActionKey, ActionModifier:
		e.assert(a.Code)
	case ActionLayerHold:
		b.pushed = e.push(a.Layer)
	case ActionLayerToggle:
		e.toggle(a.Layer)
	case ActionMacro:
		// The cursor advances on Tick, one step per tick.
		b.steps = a.Steps
	}
}

// Release handles a confirmed release at a coordinate, undoing the effect
// of the binding stored at press time. Releasing a coordinate with no
// stored binding is a no-op.
func (e *Engine) Release(pos matrix.Logical) {
	b := &e.bindings[pos.Row*e.cols+pos.Col]
	if !b.active {
		return
	}

	switch b.kind {
	case ActionKey, ActionModifier:
		e.deassert(b.code)
	case ActionLayerHold:
		if b.pushed {
			e.pop(b.layer)
		}
	case ActionMacro:
		// Abort the remaining steps; release whatever the macro still
		// asserts so every press stays matched by a release.
		for i := len(b.held) - 1; i >= 0; i-- {
			e.deassert(b.held[i])
		}
		b.held = b.held[:0]
		b.steps = nil
	}
	b.active = false
}

// Tick advances every in-flight macro cursor by one step. It does not
// otherwise change state.
func (e *Engine) Tick() {
	for i := range e.bindings {
		b := &e.bindings[i]
		if !b.active || b.kind != ActionMacro || b.next >= len(b.steps) {
			continue
		}
		step := b.steps[b.next]
		b.next++
		if step.Press {
			e.assert(step.Code)
			b.held = append(b.held, step.Code)
		} else {
			e.deassert(step.Code)
			b.removeHeld(step.Code)
		}
	}
}

// VisitAsserted calls fn for each asserted code in first-asserted order.
func (e *Engine) VisitAsserted(fn func(Code)) {
	for i := range e.asserted {
		fn(e.asserted[i].code)
	}
}

// assert adds one holder for a code.
func (e *Engine) assert(c Code) {
	if c == CodeNone {
		return
	}
	for i := range e.asserted {
		if e.asserted[i].code == c {
			e.asserted[i].count++
			return
		}
	}
	e.asserted = append(e.asserted, assertedCode{code: c, count: 1})
}

// deassert removes one holder for a code, dropping the entry when the last
// holder releases. Unknown codes are ignored.
func (e *Engine) deassert(c Code) {
	for i := range e.asserted {
		if e.asserted[i].code != c {
			continue
		}
		e.asserted[i].count--
		if e.asserted[i].count == 0 {
			e.asserted = append(e.asserted[:i], e.asserted[i+1:]...)
		}
		return
	}
}

// push appends a layer id to the active stack. Pushing beyond the bound is
// ignored deterministically.
func (e *Engine) push(layer int) bool {
	if len(e.stack) == cap(e.stack) {
		pkg.LogWarn(pkg.ComponentLayout, "layer stack full",
			"layer", layer, "depth", len(e.stack))
		return false
	}
	e.stack = append(e.stack, layer)
	return true
}

// pop removes the topmost occurrence of a layer id, leaving the base entry
// untouched.
func (e *Engine) pop(layer int) {
	for i := len(e.stack) - 1; i >= 1; i-- {
		if e.stack[i] == layer {
			e.stack = append(e.stack[:i], e.stack[i+1:]...)
			return
		}
	}
}

// toggle flips a layer's membership in the active stack. The base layer
// cannot be toggled out.
func (e *Engine) toggle(layer int) {
	if layer == 0 {
		pkg.LogWarn(pkg.ComponentLayout, "toggle of base layer ignored")
		return
	}
	for i := len(e.stack) - 1; i >= 1; i-- {
		if e.stack[i] == layer {
			e.stack = append(e.stack[:i], e.stack[i+1:]...)
			return
		}
	}
	e.push(layer)
}

// removeHeld drops the first occurrence of a code from a macro's held list.
func (b *binding) removeHeld(c Code) {
	for i := range b.held {
		if b.held[i] == c {
			b.held = append(b.held[:i], b.held[i+1:]...)
			return
		}
	}
}
