package hal

import (
	"context"
	"time"
)

// DeviceState represents the USB device state as seen by the firmware.
type DeviceState uint8

// Device state values (USB 2.0 device state machine, link-visible subset).
const (
	StateDefault    DeviceState = iota // Powered, not yet addressed
	StateAddressed                     // Address assigned by the host
	StateConfigured                    // Configuration selected; reports may flow
	StateSuspended                     // Bus suspended
)

// String returns a human-readable state name.
func (s DeviceState) String() string {
	switch s {
	case StateDefault:
		return "Default"
	case StateAddressed:
		return "Addressed"
	case StateConfigured:
		return "Configured"
	case StateSuspended:
		return "Suspended"
	default:
		return "Unknown"
	}
}

// Matrix provides electrical access to the key switch matrix.
//
// Lines are identified by index in a fixed order. The scanner asserts one
// drive line at a time and samples every sense line; implementations only
// need to report the level of a sense line under the currently asserted
// drive line.
//
// On correctly initialized hardware these operations do not fail; any error
// is treated as a fatal hardware fault by the caller.
type Matrix interface {
	// DriveLines returns the number of driven (output) lines.
	DriveLines() int

	// SenseLines returns the number of sensed (input) lines.
	SenseLines() int

	// Assert drives the given output line to its active level.
	Assert(line int) error

	// Deassert returns the given output line to its inactive level.
	Deassert(line int) error

	// Sense samples the given input line.
	// Returns true if the line reads active (key pressed on the asserted
	// drive line).
	Sense(line int) (bool, error)
}

// Alarm is a one-shot hardware timer that the scan handler re-arms on every
// tick. The handler clears the pending interrupt and schedules the next
// deadline before doing any pipeline work, so processing time cannot starve
// the next tick.
type Alarm interface {
	// Schedule arms the alarm to fire after the given duration.
	Schedule(d time.Duration) error

	// ClearPending clears a latched alarm interrupt.
	ClearPending()

	// EnableInterrupt enables delivery of the alarm interrupt.
	EnableInterrupt()

	// Wait blocks until the armed alarm fires or the context is cancelled.
	Wait(ctx context.Context) error
}

// Watchdog is the liveness watchdog. It is fed only from the scan handler
// (single writer, no lock); if the handler stalls or halts, the window
// expires and the hardware resets the whole controller.
type Watchdog interface {
	// Start starts the watchdog with the given expiry window.
	Start(window time.Duration) error

	// Feed resets the watchdog window.
	Feed()
}

// HIDLink is the USB device/class handle pair used for boot-protocol
// keyboard reporting. It is the only resource shared between the scan
// handler and the USB interrupt handler; callers serialize access with a
// mutex held for the minimum duration of each call.
type HIDLink interface {
	// State returns the current device state. Reports are transmitted only
	// in [StateConfigured].
	State() DeviceState

	// Write queues a report for transmission on the interrupt IN endpoint.
	// It never blocks: it returns the number of bytes accepted, which is 0
	// with a nil error while the endpoint is busy with a previous report.
	Write(report []byte) (int, error)

	// WaitInterrupt blocks until the USB controller raises an interrupt or
	// the context is cancelled.
	WaitInterrupt(ctx context.Context) error

	// Poll runs device-level protocol processing. It returns true when
	// class-level processing is required.
	Poll() bool

	// PollClass runs class-level protocol processing (endpoint bookkeeping
	// for the keyboard interface).
	PollClass()
}
