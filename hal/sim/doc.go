// Package sim provides an in-memory implementation of every HAL interface
// for testing and host-side demos.
//
// The simulated board mirrors the observable behavior of real hardware
// closely enough to exercise the whole pipeline without a controller:
//
//   - [Matrix] models electrical switch state per (drive, sense) position;
//     a sense line only reads active while its drive line is asserted
//   - [Alarm] fires manually under test control, or on the wall clock in
//     realtime mode
//   - [Watchdog] records feeds and exposes whether starvation would have
//     reset the board
//   - [Link] records transmitted reports and can inject busy responses,
//     write failures, and device state changes
//
// Fault injection covers the firmware's whole error taxonomy: line faults,
// alarm scheduling failures, and transient USB busy.
package sim
