package sim

import (
	"fmt"
	"sync"

	"github.com/mlgarchery/Quacken/pkg"
)

// Matrix is an in-memory switch matrix implementing [hal.Matrix].
//
// Tests set electrical switch state with [Matrix.Press] and [Matrix.Release]
// and may inject line faults to exercise the fatal-fault path. A sense line
// reads active only while the drive line its switch sits on is asserted, so
// scan order and settle behavior are observable.
type Matrix struct {
	mu         sync.Mutex
	driveLines int
	senseLines int
	pressed    []bool // [drive*senseLines + sense]
	asserted   []bool // currently asserted drive lines
	fault      error  // injected; returned by the next line operation
}

// NewMatrix creates a matrix with the given electrical dimensions.
func NewMatrix(driveLines, senseLines int) *Matrix {
	return &Matrix{
		driveLines: driveLines,
		senseLines: senseLines,
		pressed:    make([]bool, driveLines*senseLines),
		asserted:   make([]bool, driveLines),
	}
}

// DriveLines returns the number of driven lines.
func (m *Matrix) DriveLines() int { return m.driveLines }

// SenseLines returns the number of sensed lines.
func (m *Matrix) SenseLines() int { return m.senseLines }

// Press closes the switch at the given electrical position.
func (m *Matrix) Press(drive, sense int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pressed[drive*m.senseLines+sense] = true
}

// Release opens the switch at the given electrical position.
func (m *Matrix) Release(drive, sense int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pressed[drive*m.senseLines+sense] = false
}

// ReleaseAll opens every switch.
func (m *Matrix) ReleaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pressed {
		m.pressed[i] = false
	}
}

// InjectFault makes the next line operation return err.
func (m *Matrix) InjectFault(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fault = err
}

// Assert drives the given output line active.
func (m *Matrix) Assert(line int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFault(); err != nil {
		return err
	}
	if line < 0 || line >= m.driveLines {
		return fmt.Errorf("%w: drive line %d", pkg.ErrLineRange, line)
	}
	m.asserted[line] = true
	return nil
}

// Deassert returns the given output line to its inactive level.
func (m *Matrix) Deassert(line int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if line < 0 || line >= m.driveLines {
		return fmt.Errorf("%w: drive line %d", pkg.ErrLineRange, line)
	}
	m.asserted[line] = false
	return nil
}

// Sense samples the given input line under the currently asserted drive
// lines.
func (m *Matrix) Sense(line int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFault(); err != nil {
		return false, err
	}
	if line < 0 || line >= m.senseLines {
		return false, fmt.Errorf("%w: sense line %d", pkg.ErrLineRange, line)
	}
	for drive := 0; drive < m.driveLines; drive++ {
		if m.asserted[drive] && m.pressed[drive*m.senseLines+line] {
			return true, nil
		}
	}
	return false, nil
}

// takeFault consumes and returns the injected fault, if any.
// Caller holds mu.
func (m *Matrix) takeFault() error {
	err := m.fault
	m.fault = nil
	return err
}
