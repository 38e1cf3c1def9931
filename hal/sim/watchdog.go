package sim

import (
	"sync"
	"time"
)

// Watchdog is an in-memory liveness watchdog implementing [hal.Watchdog].
// It records feeds so tests can verify the scan handler keeps it alive, and
// whether starvation would have reset the board.
type Watchdog struct {
	mu       sync.Mutex
	started  bool
	window   time.Duration
	feeds    int
	lastFeed time.Time
	startErr error
}

// NewWatchdog creates a watchdog.
func NewWatchdog() *Watchdog {
	return &Watchdog{}
}

// FailStart makes Start return err.
func (w *Watchdog) FailStart(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.startErr = err
}

// Start starts the watchdog with the given expiry window.
func (w *Watchdog) Start(window time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.startErr != nil {
		return w.startErr
	}
	w.started = true
	w.window = window
	w.lastFeed = time.Now()
	return nil
}

// Feed resets the watchdog window.
func (w *Watchdog) Feed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.feeds++
	w.lastFeed = time.Now()
}

// Started reports whether the watchdog has been started.
func (w *Watchdog) Started() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.started
}

// Window returns the configured expiry window.
func (w *Watchdog) Window() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.window
}

// FeedCount returns the number of feeds since creation.
func (w *Watchdog) FeedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.feeds
}

// Starved reports whether the window has elapsed since the last feed. On
// hardware this is the point where the controller resets.
func (w *Watchdog) Starved() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.started && time.Since(w.lastFeed) > w.window
}
