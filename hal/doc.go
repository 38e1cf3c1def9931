// Package hal defines the Hardware Abstraction Layer interfaces for the
// Quacken firmware core.
//
// The HAL provides a platform-agnostic boundary between the real-time input
// pipeline and the board: switch matrix I/O, the periodic scan alarm, the
// liveness watchdog, and the USB HID link. Board ports implement these
// interfaces to run the core on their controller; everything above the HAL
// is pure, deterministic Go.
//
// # Design Principles
//
// The HAL is designed to be:
//
//   - Minimal: Only expose operations the pipeline needs each tick
//   - Generic: No pin numbers, register maps, or controller assumptions
//   - Non-blocking: No call on the tick path may suspend; [HIDLink.Write]
//     reports busy by accepting zero bytes rather than waiting
//
// # Execution Contexts
//
// Two interrupt-driven contexts use the HAL: the fixed-period scan handler
// ([Alarm], [Matrix], [Watchdog], [HIDLink]) and the higher-priority USB
// handler ([HIDLink] only). The [HIDLink] and [Alarm] handles are the only
// resources shared across contexts; access is serialized by the caller.
//
// # Implementing a HAL
//
// To port the core to a new board:
//
//  1. Implement [Matrix] over the board's GPIO drive/sense lines
//  2. Implement [Alarm] over a re-armable hardware timer
//  3. Implement [Watchdog] over the controller watchdog
//  4. Implement [HIDLink] over the USB device controller's keyboard class
//
// An in-memory implementation of all four interfaces for testing is
// available in [github.com/mlgarchery/Quacken/hal/sim].
package hal
