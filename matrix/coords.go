package matrix

import (
	"fmt"

	"github.com/mlgarchery/Quacken/pkg"
)

// Topology describes the electrical wiring of the switch matrix and how it
// relates to the logical grid. It is board-specific configuration supplied
// by the surrounding system.
type Topology struct {
	// Rows and Cols are the logical grid dimensions used by the keymap.
	Rows, Cols int

	// DriveLines and SenseLines are the electrical wiring dimensions.
	DriveLines, SenseLines int

	// Folded indicates the two board halves share drive lines: the
	// electrical grid is half as wide and twice as tall as the logical
	// grid, with the second half of the sense lines addressing the far
	// half of each logical row in mirrored column order.
	Folded bool

	// Rotated indicates the controller was soldered face down; both line
	// orderings are cyclically rotated by half.
	Rotated bool
}

// Validate checks that the electrical dimensions cover the logical grid
// exactly for the configured wiring mode.
func (t Topology) Validate() error {
	if t.Rows <= 0 || t.Cols <= 0 || t.DriveLines <= 0 || t.SenseLines <= 0 {
		return fmt.Errorf("%w: non-positive dimension", pkg.ErrTopology)
	}
	if t.Folded {
		if t.SenseLines != 2*t.Rows || 2*t.DriveLines != t.Cols {
			return fmt.Errorf("%w: folded wiring needs %dx%d lines, have %dx%d",
				pkg.ErrTopology, t.Cols/2, 2*t.Rows, t.DriveLines, t.SenseLines)
		}
		return nil
	}
	if t.SenseLines != t.Rows || t.DriveLines != t.Cols {
		return fmt.Errorf("%w: wiring %dx%d does not match logical grid %dx%d",
			pkg.ErrTopology, t.DriveLines, t.SenseLines, t.Cols, t.Rows)
	}
	return nil
}

// Mapper translates electrical scan positions into logical grid positions.
// The mapping is a bijection over the full electrical grid: every physical
// cell maps to exactly one logical cell and every logical cell is reachable.
// It is pure and stateless.
type Mapper struct {
	topo Topology
}

// NewMapper creates a mapper for the given topology.
func NewMapper(topo Topology) (*Mapper, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	return &Mapper{topo: topo}, nil
}

// Topology returns the mapper's topology.
func (m *Mapper) Topology() Topology { return m.topo }

// Map translates an electrical position into its logical position.
func (m *Mapper) Map(p Physical) Logical {
	t := m.topo
	drive, sense := p.Drive, p.Sense
	if t.Rotated {
		// Face-down controller: both line orders shift by half a turn.
		drive = (drive + t.DriveLines/2) % t.DriveLines
		sense = (sense + t.SenseLines/2) % t.SenseLines
	}
	if t.Folded && sense >= t.Rows {
		// Second half: rows wrap back to the top, columns mirror into the
		// far half of the logical grid.
		return Logical{Row: sense - t.Rows, Col: t.Cols - 1 - drive}
	}
	return Logical{Row: sense, Col: drive}
}

// Unmap translates a logical position back into its electrical position.
// It is the inverse of [Mapper.Map].
func (m *Mapper) Unmap(l Logical) Physical {
	t := m.topo
	var drive, sense int
	if t.Folded && l.Col >= t.DriveLines {
		drive = t.Cols - 1 - l.Col
		sense = l.Row + t.Rows
	} else {
		drive = l.Col
		sense = l.Row
	}
	if t.Rotated {
		drive = (drive + t.DriveLines - t.DriveLines/2) % t.DriveLines
		sense = (sense + t.SenseLines - t.SenseLines/2) % t.SenseLines
	}
	return Physical{Drive: drive, Sense: sense}
}
