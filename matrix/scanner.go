package matrix

import (
	"fmt"

	"github.com/mlgarchery/Quacken/hal"
	"github.com/mlgarchery/Quacken/pkg"
)

// Scanner produces a raw snapshot of the switch matrix each call.
//
// For each drive line in fixed order it asserts the line, invokes the
// caller-supplied settle delay, samples every sense line, and deasserts the
// line before moving on. The scanner is stateless across calls; any I/O
// failure is a hardware fault with no defined recovery.
type Scanner struct {
	io     hal.Matrix
	mapper *Mapper
}

// NewScanner creates a scanner over the given matrix I/O and coordinate
// mapper. The I/O line counts must match the mapper's topology.
func NewScanner(io hal.Matrix, mapper *Mapper) (*Scanner, error) {
	t := mapper.Topology()
	if io.DriveLines() != t.DriveLines || io.SenseLines() != t.SenseLines {
		return nil, fmt.Errorf("%w: matrix I/O is %dx%d, topology wants %dx%d",
			pkg.ErrTopology, io.DriveLines(), io.SenseLines(), t.DriveLines, t.SenseLines)
	}
	return &Scanner{io: io, mapper: mapper}, nil
}

// Scan fills raw with the current switch state. settle is invoked after
// asserting each drive line to let the sense inputs stabilize; passing a
// no-op makes the scan free-running for tests.
func (s *Scanner) Scan(settle func(), raw *Grid) error {
	raw.Clear()
	t := s.mapper.Topology()
	for drive := 0; drive < t.DriveLines; drive++ {
		if err := s.io.Assert(drive); err != nil {
			return fmt.Errorf("assert drive line %d: %w", drive, err)
		}
		if settle != nil {
			settle()
		}
		for sense := 0; sense < t.SenseLines; sense++ {
			active, err := s.io.Sense(sense)
			if err != nil {
				// The sense fault is the error that matters; the line is
				// released on a best-effort basis before reporting it.
				if derr := s.io.Deassert(drive); derr != nil {
					pkg.LogDebug(pkg.ComponentMatrix, "deassert failed on fault path",
						"line", drive, "error", derr)
				}
				return fmt.Errorf("sense line %d under drive line %d: %w", sense, drive, err)
			}
			if active {
				pos := s.mapper.Map(Physical{Drive: drive, Sense: sense})
				raw.Set(pos.Row, pos.Col, true)
			}
		}
		if err := s.io.Deassert(drive); err != nil {
			return fmt.Errorf("deassert drive line %d: %w", drive, err)
		}
	}
	return nil
}
