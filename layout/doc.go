// Package layout implements the layered key-action state machine at the
// heart of the firmware.
//
// A keymap is an ordered set of [Layer] grids mapping each logical
// coordinate to an [Action]: a plain key, a modifier, a macro step
// sequence, or a layer hold/toggle. Resolution scans the active layer stack
// top-down, skipping Transparent cells; the base layer guarantees full
// coverage so every press resolves.
//
// The one correctness-critical rule is press-time binding: the action
// resolved when a key goes down is stored in a side table and governs what
// the matching release undoes, regardless of how the layer stack has
// changed in between. A key pressed through a momentary layer keeps
// emitting its code after the layer key is released, until its own release.
//
// Macros advance one step per [Engine.Tick], keeping worst-case per-tick
// cost bounded without a scheduler. Releasing the owning key mid-sequence
// releases every code the macro still asserts and cancels the remainder.
package layout
