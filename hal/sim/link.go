package sim

import (
	"context"
	"sync"

	"github.com/mlgarchery/Quacken/hal"
)

// Link is an in-memory USB HID link implementing [hal.HIDLink].
//
// Tests drive the device state directly, inject busy responses to exercise
// the scheduler's retry loop, and read back every report the firmware
// transmitted.
type Link struct {
	mu       sync.Mutex
	state    hal.DeviceState
	busy     int // writes left that accept zero bytes
	writeErr error
	reports  [][]byte
	onReport func([]byte)

	irq         chan struct{}
	pollPending bool
	polls       int
	classPolls  int
}

// NewLink creates a link in the Default device state.
func NewLink() *Link {
	return &Link{irq: make(chan struct{}, 1)}
}

// SetState sets the device state.
func (l *Link) SetState(s hal.DeviceState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}

// State returns the current device state.
func (l *Link) State() hal.DeviceState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// QueueBusy makes the next n writes accept zero bytes with a nil error.
func (l *Link) QueueBusy(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = n
}

// FailWrite makes every subsequent write return err.
// Pass nil to restore normal operation.
func (l *Link) FailWrite(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeErr = err
}

// SetOnReport registers a callback invoked with each accepted report.
func (l *Link) SetOnReport(fn func([]byte)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onReport = fn
}

// Write queues a report for transmission. It returns (0, nil) while a
// queued busy response remains.
func (l *Link) Write(report []byte) (int, error) {
	l.mu.Lock()
	if l.writeErr != nil {
		err := l.writeErr
		l.mu.Unlock()
		return 0, err
	}
	if l.busy > 0 {
		l.busy--
		l.mu.Unlock()
		return 0, nil
	}
	cp := make([]byte, len(report))
	copy(cp, report)
	l.reports = append(l.reports, cp)
	fn := l.onReport
	l.mu.Unlock()

	if fn != nil {
		fn(cp)
	}
	return len(report), nil
}

// Reports returns a copy of every accepted report, oldest first.
func (l *Link) Reports() [][]byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([][]byte, len(l.reports))
	copy(out, l.reports)
	return out
}

// LastReport returns the most recently accepted report, or nil.
func (l *Link) LastReport() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.reports) == 0 {
		return nil
	}
	return l.reports[len(l.reports)-1]
}

// RaiseInterrupt latches a controller interrupt with pending class work,
// waking a [Link.WaitInterrupt] caller.
func (l *Link) RaiseInterrupt() {
	l.mu.Lock()
	l.pollPending = true
	l.mu.Unlock()

	select {
	case l.irq <- struct{}{}:
	default:
	}
}

// WaitInterrupt blocks until an interrupt is raised or the context is
// cancelled.
func (l *Link) WaitInterrupt(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.irq:
		return nil
	}
}

// Poll runs device-level protocol processing.
func (l *Link) Poll() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.polls++
	p := l.pollPending
	l.pollPending = false
	return p
}

// PollClass runs class-level protocol processing.
func (l *Link) PollClass() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.classPolls++
}

// Polls returns the number of device-level polls.
func (l *Link) Polls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.polls
}

// ClassPolls returns the number of class-level polls.
func (l *Link) ClassPolls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.classPolls
}
