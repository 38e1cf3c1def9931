package firmware

import (
	"time"

	"github.com/mlgarchery/Quacken/hal"
	"github.com/mlgarchery/Quacken/layout"
	"github.com/mlgarchery/Quacken/matrix"
	"github.com/mlgarchery/Quacken/pkg"
)

// Default timing parameters. The watchdog window is an order of magnitude
// wider than the scan period so only sustained stalls starve it.
const (
	DefaultScanPeriod        = 1 * time.Millisecond
	DefaultWatchdogWindow    = 10 * time.Millisecond
	DefaultDebounceThreshold = 5
)

// Config holds the controller's tunable parameters. The zero value selects
// the defaults.
type Config struct {
	// ScanPeriod is the fixed interval between scan ticks.
	ScanPeriod time.Duration

	// WatchdogWindow is the watchdog expiry window. The tick handler feeds
	// the watchdog every period; if ticks stop, the window elapses and the
	// hardware resets the controller.
	WatchdogWindow time.Duration

	// DebounceThreshold is the number of consecutive consistent raw
	// readings required to confirm a key transition.
	DebounceThreshold int

	// Settle is invoked after asserting each drive line, before sampling
	// the sense lines. On hardware this is a short busy-wait for the lines
	// to stabilize; nil skips the delay.
	Settle func()
}

// withDefaults returns cfg with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.ScanPeriod == 0 {
		c.ScanPeriod = DefaultScanPeriod
	}
	if c.WatchdogWindow == 0 {
		c.WatchdogWindow = DefaultWatchdogWindow
	}
	if c.DebounceThreshold == 0 {
		c.DebounceThreshold = DefaultDebounceThreshold
	}
	return c
}

// validate checks the resolved configuration.
func (c Config) validate() error {
	if c.ScanPeriod < 0 || c.WatchdogWindow < 0 || c.DebounceThreshold < 0 {
		return pkg.ErrInvalidParameter
	}
	if c.WatchdogWindow <= c.ScanPeriod {
		return pkg.ErrInvalidParameter
	}
	return nil
}

// Board bundles the hardware handles and board-specific configuration the
// controller runs on.
type Board struct {
	Matrix   hal.Matrix
	Alarm    hal.Alarm
	Watchdog hal.Watchdog
	Link     hal.HIDLink

	Topology matrix.Topology
	Keymap   layout.Layers
}
