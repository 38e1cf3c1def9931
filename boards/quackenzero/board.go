// Package quackenzero describes the Quacken Zero: a split 4x12 ortholinear
// keyboard folded onto a single controller, with 6 drive and 8 sense lines.
package quackenzero

import (
	"github.com/mlgarchery/Quacken/layout"
	"github.com/mlgarchery/Quacken/matrix"
)

// Logical grid and electrical wiring dimensions.
const (
	Rows = 4
	Cols = 12

	DriveLines = 6
	SenseLines = 8
)

// LayerCount is the number of keymap layers.
const LayerCount = 3

// Keymap layer indices.
const (
	LayerBase = iota
	LayerNumNav
	LayerFn
)

// Topology returns the board's matrix topology. upsideDown selects the
// rotated line ordering for a controller soldered face down.
func Topology(upsideDown bool) matrix.Topology {
	return matrix.Topology{
		Rows:       Rows,
		Cols:       Cols,
		DriveLines: DriveLines,
		SenseLines: SenseLines,
		Folded:     true,
		Rotated:    upsideDown,
	}
}

// Keymap returns the stock three-layer keymap: a QWERTY base layer, a
// number/navigation layer on the right thumb hold, and a function-key layer
// one hold deeper.
func Keymap() layout.Layers {
	// Editing shortcuts emitted as modifier chords. Swap CodeLCtrl for
	// CodeLGUI on macOS hosts.
	cmd := layout.CodeLCtrl
	undo := layout.Chord(cmd, layout.CodeZ)
	cut := layout.Chord(cmd, layout.CodeX)
	cpy := layout.Chord(cmd, layout.CodeC)
	paste := layout.Chord(cmd, layout.CodeV)
	all := layout.Chord(cmd, layout.CodeA)
	save := layout.Chord(cmd, layout.CodeS)
	closeWin := layout.Chord(cmd, layout.CodeW)
	shiftTab := layout.Chord(layout.CodeRShift, layout.CodeTab)

	k := layout.Key
	t := layout.Trans()
	n := layout.NoAct()

	base := layout.Layer{
		{k(layout.CodeEscape), k(layout.CodeQ), k(layout.CodeW), k(layout.CodeE), k(layout.CodeR), k(layout.CodeT),
			k(layout.CodeY), k(layout.CodeU), k(layout.CodeI), k(layout.CodeO), k(layout.CodeP), k(layout.CodeBackspace)},
		{k(layout.CodeTab), k(layout.CodeA), k(layout.CodeS), k(layout.CodeD), k(layout.CodeF), k(layout.CodeG),
			k(layout.CodeH), k(layout.CodeJ), k(layout.CodeK), k(layout.CodeL), k(layout.CodeSemicolon), k(layout.CodeEnter)},
		{k(layout.CodeLShift), k(layout.CodeZ), k(layout.CodeX), k(layout.CodeC), k(layout.CodeV), k(layout.CodeB),
			k(layout.CodeN), k(layout.CodeM), k(layout.CodeComma), k(layout.CodeDot), k(layout.CodeSlash), k(layout.CodeRShift)},
		{n, n, n, k(layout.CodeLCtrl), k(layout.CodeSpace), layout.Hold(LayerNumNav),
			k(layout.CodeLGUI), k(layout.CodeSpace), k(layout.CodeRAlt), n, n, n},
	}

	numNav := layout.Layer{
		{t, k(layout.CodeTab), k(layout.CodeHome), k(layout.CodeUp), k(layout.CodeEnd), k(layout.CodePageUp),
			n, k(layout.Code7), k(layout.Code8), k(layout.Code9), n, k(layout.CodeDelete)},
		{t, k(layout.CodeCapsLock), k(layout.CodeLeft), k(layout.CodeDown), k(layout.CodeRight), k(layout.CodePageDown),
			n, k(layout.Code4), k(layout.Code5), k(layout.Code6), k(layout.Code0), t},
		{t, undo, cut, cpy, paste, shiftTab,
			n, k(layout.Code1), k(layout.Code2), k(layout.Code3), n, t},
		{n, n, n, t, k(layout.CodeSpace), t,
			layout.Hold(LayerFn), k(layout.CodeLAlt), t, n, n, n},
	}

	fn := layout.Layer{
		{t, k(layout.CodeF1), k(layout.CodeF2), k(layout.CodeF3), k(layout.CodeF4), n,
			n, k(layout.CodePause), k(layout.CodePrintScreen), t, n, t},
		{t, k(layout.CodeF5), k(layout.CodeF6), k(layout.CodeF7), k(layout.CodeF8), n,
			n, all, k(layout.CodeMediaBack), k(layout.CodeMediaForward), save, t},
		{t, k(layout.CodeF9), k(layout.CodeF10), k(layout.CodeF11), k(layout.CodeF12), n,
			n, n, n, n, closeWin, t},
		{n, n, n, t, t, t,
			t, t, t, n, n, n},
	}

	return layout.Layers{base, numNav, fn}
}
