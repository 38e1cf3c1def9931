// Package debounce filters transient switch bounce from raw matrix
// snapshots, emitting only confirmed press and release transitions.
//
// Each cell carries an independent hysteresis counter in [0, threshold].
// Sustained raw-press observations move the counter up; sustained
// raw-release observations move it down. The debounced state flips only
// when a counter saturates at either bound, so a single noisy reading can
// never flip a key. Iteration is row-major and deterministic: two
// debouncers fed identical input histories emit identical event sequences.
package debounce

import (
	"github.com/mlgarchery/Quacken/matrix"
)

// EventKind distinguishes confirmed presses from confirmed releases.
type EventKind uint8

// Event kinds.
const (
	Press EventKind = iota
	Release
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	}
	return "unknown"
}

// Event is a confirmed key state transition at a logical coordinate.
type Event struct {
	Pos  matrix.Logical
	Kind EventKind
}

// Debouncer holds the per-cell counters and the confirmed (debounced) grid.
// Memory is proportional to the grid size and independent of run length.
type Debouncer struct {
	threshold int
	debounced *matrix.Grid
	counters  []int

	// events is reused across calls so steady-state operation does not
	// allocate.
	events []Event
}

// New creates a debouncer for a rows x cols grid. A transition is confirmed
// after threshold consecutive consistent raw readings in the new state.
func New(rows, cols, threshold int) *Debouncer {
	return &Debouncer{
		threshold: threshold,
		debounced: matrix.NewGrid(rows, cols),
		counters:  make([]int, rows*cols),
		events:    make([]Event, 0, rows*cols),
	}
}

// Threshold returns the consecutive-confirmation count.
func (d *Debouncer) Threshold() int { return d.threshold }

// Debounced returns the confirmed grid. The caller must treat it as
// read-only; it is mutated by the next [Debouncer.Events] call.
func (d *Debouncer) Debounced() *matrix.Grid { return d.debounced }

// Events folds one raw snapshot into the counters and returns the confirmed
// transitions, in row-major order. The returned slice is reused by the next
// call.
func (d *Debouncer) Events(raw *matrix.Grid) []Event {
	d.events = d.events[:0]
	rows, cols := d.debounced.Rows(), d.debounced.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if raw.At(row, col) {
				if d.counters[i] < d.threshold {
					d.counters[i]++
					if d.counters[i] == d.threshold && !d.debounced.At(row, col) {
						d.debounced.Set(row, col, true)
						d.events = append(d.events, Event{
							Pos:  matrix.Logical{Row: row, Col: col},
							Kind: Press,
						})
					}
				}
			} else {
				if d.counters[i] > 0 {
					d.counters[i]--
					if d.counters[i] == 0 && d.debounced.At(row, col) {
						d.debounced.Set(row, col, false)
						d.events = append(d.events, Event{
							Pos:  matrix.Logical{Row: row, Col: col},
							Kind: Release,
						})
					}
				}
			}
		}
	}
	return d.events
}
