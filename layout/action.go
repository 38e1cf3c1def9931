package layout

// ActionKind tags the variants of [Action].
type ActionKind uint8

// Action kinds.
const (
	// ActionTransparent falls through to the next lower active layer.
	ActionTransparent ActionKind = iota

	// ActionNoOp resolves but has no effect.
	ActionNoOp

	// ActionKey asserts a simple key code while held.
	ActionKey

	// ActionModifier asserts a modifier code while held.
	ActionModifier

	// ActionMacro sequences an ordered list of press/release steps, one
	// step per tick.
	ActionMacro

	// ActionLayerHold activates a layer while the originating key is held.
	ActionLayerHold

	// ActionLayerToggle flips a layer's membership in the active stack; the
	// change persists after release.
	ActionLayerToggle
)

// String returns a human-readable action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionTransparent:
		return "transparent"
	case ActionNoOp:
		return "noop"
	case ActionKey:
		return "key"
	case ActionModifier:
		return "modifier"
	case ActionMacro:
		return "macro"
	case ActionLayerHold:
		return "layer-hold"
	case ActionLayerToggle:
		return "layer-toggle"
	}
	return "unknown"
}

// Step is one macro step: press or release of a single code.
type Step struct {
	Code  Code
	Press bool
}

// Action is the tagged variant stored in each keymap cell. Exactly one of
// the payload fields is meaningful, selected by Kind.
type Action struct {
	Kind  ActionKind
	Code  Code   // ActionKey, ActionModifier
	Layer int    // ActionLayerHold, ActionLayerToggle
	Steps []Step // ActionMacro
}

// Trans returns a transparent action.
func Trans() Action { return Action{Kind: ActionTransparent} }

// NoAct returns a no-op action.
func NoAct() Action { return Action{Kind: ActionNoOp} }

// Key returns an action asserting a simple key code. Modifier codes are
// routed to [Mod].
func Key(c Code) Action {
	if c.IsModifier() {
		return Mod(c)
	}
	return Action{Kind: ActionKey, Code: c}
}

// Mod returns an action asserting a modifier code.
func Mod(c Code) Action { return Action{Kind: ActionModifier, Code: c} }

// Hold returns an action activating the given layer while held.
func Hold(layer int) Action { return Action{Kind: ActionLayerHold, Layer: layer} }

// Toggle returns an action flipping the given layer's membership in the
// active stack.
func Toggle(layer int) Action { return Action{Kind: ActionLayerToggle, Layer: layer} }

// Macro returns an action sequencing the given steps, one per tick.
func Macro(steps ...Step) Action { return Action{Kind: ActionMacro, Steps: steps} }

// Chord returns a macro that presses the given codes in order and releases
// them in reverse order, e.g. Chord(CodeLCtrl, CodeZ) for undo.
func Chord(codes ...Code) Action {
	steps := make([]Step, 0, 2*len(codes))
	for _, c := range codes {
		steps = append(steps, Step{Code: c, Press: true})
	}
	for i := len(codes) - 1; i >= 0; i-- {
		steps = append(steps, Step{Code: codes[i], Press: false})
	}
	return Action{Kind: ActionMacro, Steps: steps}
}
