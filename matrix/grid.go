package matrix

// Physical identifies an electrical scan position: the index of the driven
// output line and the index of the sensed input line.
type Physical struct {
	Drive int // Driven (output) line index
	Sense int // Sensed (input) line index
}

// Logical identifies a position in the keyboard's logical grid, as used by
// the keymap.
type Logical struct {
	Row int
	Col int
}

// Grid is a fixed-size boolean snapshot over all logical coordinates.
// It is allocated once and mutated in place; the pipeline holds one raw
// instance (this cycle) and one debounced instance (confirmed state).
type Grid struct {
	rows, cols int
	cells      []bool
}

// NewGrid creates a grid of the given logical dimensions with all cells
// released.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of logical rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of logical columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the state of the cell at (row, col).
func (g *Grid) At(row, col int) bool {
	return g.cells[row*g.cols+col]
}

// Set sets the state of the cell at (row, col).
func (g *Grid) Set(row, col int, pressed bool) {
	g.cells[row*g.cols+col] = pressed
}

// Clear releases every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Equal reports whether two grids have identical dimensions and state.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
