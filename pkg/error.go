package pkg

import "errors"

// Firmware errors.
var (
	// ErrLineFault indicates a failure to drive or sense a matrix line.
	ErrLineFault = errors.New("matrix line fault")

	// ErrLineRange indicates a line index outside the configured topology.
	ErrLineRange = errors.New("line index out of range")

	// ErrAlarmSchedule indicates the periodic scan alarm could not be armed.
	ErrAlarmSchedule = errors.New("scan alarm schedule failed")

	// ErrWatchdogStart indicates the watchdog could not be started.
	ErrWatchdogStart = errors.New("watchdog start failed")

	// ErrNotConfigured indicates the USB link is not in the configured state.
	ErrNotConfigured = errors.New("link not configured")

	// ErrAlreadyRunning indicates the controller is already running.
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates the controller is not running.
	ErrNotRunning = errors.New("not running")

	// ErrHalted indicates the controller latched a fatal fault and stopped
	// feeding the watchdog.
	ErrHalted = errors.New("controller halted")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTopology indicates an inconsistent electrical topology description.
	ErrTopology = errors.New("inconsistent topology")

	// ErrLayerRange indicates a layer id outside the configured keymap.
	ErrLayerRange = errors.New("layer id out of range")

	// ErrKeymapCoverage indicates a base layer cell that does not resolve to
	// a concrete action.
	ErrKeymapCoverage = errors.New("base layer not fully covered")

	// ErrKeymapShape indicates a layer grid that does not match the logical
	// matrix dimensions.
	ErrKeymapShape = errors.New("layer grid shape mismatch")
)
