// Package pkg provides shared utilities for the Quacken firmware core.
//
// This package contains common functionality used across the scan, layout,
// and report pipeline, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for firmware faults
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with firmware-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentSched, "tick armed", "period", period)
//
// # Errors
//
// Firmware faults are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrLineFault) {
//	    // Hardware fault; halt and let the watchdog reset the board
//	}
package pkg
