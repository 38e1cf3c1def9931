package hid

import (
	"github.com/mlgarchery/Quacken/layout"
)

// Boot-protocol report geometry.
const (
	// ReportSize is the size of a boot keyboard report in bytes:
	// 1 modifier byte, 1 reserved byte, 6 key slots.
	ReportSize = 8

	// ReportKeys is the number of simple key code slots.
	ReportKeys = 6
)

// Report is a boot-protocol keyboard input report: a modifier bitset plus a
// fixed-capacity ordered set of simple key codes.
type Report struct {
	Modifiers uint8
	Keys      [ReportKeys]uint8

	n int // occupied key slots
}

// Clear resets the report to all keys released.
func (r *Report) Clear() {
	r.Modifiers = 0
	r.Keys = [ReportKeys]uint8{}
	r.n = 0
}

// Add folds a key code into the report. Modifier codes set their bit in the
// modifier byte; other codes occupy the next free key slot. Duplicate codes
// are kept once. When the slots are full the code is dropped (the report
// retains the first-asserted codes) and Add returns false.
func (r *Report) Add(c layout.Code) bool {
	if c == layout.CodeNone {
		return true
	}
	if bit := c.ModifierBit(); bit != 0 {
		r.Modifiers |= bit
		return true
	}
	for i := 0; i < r.n; i++ {
		if r.Keys[i] == uint8(c) {
			return true
		}
	}
	if r.n == ReportKeys {
		return false
	}
	r.Keys[r.n] = uint8(c)
	r.n++
	return true
}

// Contains reports whether the report carries the given code, either as a
// modifier bit or in a key slot.
func (r *Report) Contains(c layout.Code) bool {
	if bit := c.ModifierBit(); bit != 0 {
		return r.Modifiers&bit != 0
	}
	for i := 0; i < r.n; i++ {
		if r.Keys[i] == uint8(c) {
			return true
		}
	}
	return false
}

// Len returns the number of occupied key slots.
func (r *Report) Len() int { return r.n }

// Equal reports whether two reports would produce identical bytes on the
// wire. It is cheap, so the scheduler can skip redundant USB writes.
func (r *Report) Equal(other *Report) bool {
	return r.Modifiers == other.Modifiers && r.Keys == other.Keys
}

// MarshalTo writes the report to buf in boot-protocol layout.
// Returns the number of bytes written, or 0 if buf is too small.
func (r *Report) MarshalTo(buf []byte) int {
	if len(buf) < ReportSize {
		return 0
	}
	buf[0] = r.Modifiers
	buf[1] = 0 // Reserved
	for i := 0; i < ReportKeys; i++ {
		buf[2+i] = r.Keys[i]
	}
	return ReportSize
}
