// Package firmware composes the scan pipeline into a running keyboard
// controller.
//
// # Execution Model
//
// Two goroutines share the hardware:
//
//   - the tick loop blocks on the scan alarm and runs one pipeline pass per
//     expiry: re-arm the alarm, feed the watchdog, scan the matrix, debounce,
//     apply key events to the layer engine, assemble the boot report, and
//     transmit it when it changed
//   - the pump loop blocks on the controller interrupt and services USB
//     protocol traffic
//
// They synchronize only through the alarm mutex and the link mutex; all
// pipeline state belongs to the tick loop alone. On a microcontroller the
// same structure maps to a timer interrupt handler and a higher-priority
// USB interrupt handler.
//
// # Timing
//
// The alarm is re-armed as the first action of every tick, before any
// pipeline work, so the period is anchored to the previous expiry rather
// than to processing completion. A tick that overruns its period is logged;
// a controller that stops ticking altogether starves the watchdog, which
// resets the board.
//
// # Fault Policy
//
// Matrix line faults and alarm scheduling failures have no defined recovery.
// The controller logs the fault and latches a halted state: no further
// re-arms, no further feeds. Recovery is the watchdog reset. Transient USB
// conditions (busy endpoint, write errors) are not fatal; a busy endpoint is
// retried and a failed write is dropped, leaving the key state change to a
// later report.
package firmware
