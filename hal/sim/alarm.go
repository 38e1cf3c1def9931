package sim

import (
	"context"
	"sync"
	"time"
)

// Alarm is an in-memory one-shot timer implementing [hal.Alarm].
//
// In the default manual mode the alarm fires only when a test calls
// [Alarm.Fire], making tick timing fully deterministic. In realtime mode
// (for the host demo) a scheduled alarm fires by itself after its duration.
type Alarm struct {
	mu       sync.Mutex
	armed    bool
	enabled  bool
	period   time.Duration
	fired    chan struct{}
	realtime bool
	timer    *time.Timer

	scheduleErr   error
	scheduleCount int
}

// NewAlarm creates a manually fired alarm.
func NewAlarm() *Alarm {
	return &Alarm{fired: make(chan struct{}, 1)}
}

// NewRealtimeAlarm creates an alarm that fires on the wall clock.
func NewRealtimeAlarm() *Alarm {
	a := NewAlarm()
	a.realtime = true
	return a
}

// FailSchedule makes every subsequent Schedule call return err.
// Pass nil to restore normal operation.
func (a *Alarm) FailSchedule(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scheduleErr = err
}

// ScheduleCount returns the number of successful Schedule calls.
func (a *Alarm) ScheduleCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scheduleCount
}

// Armed reports whether the alarm is currently armed.
func (a *Alarm) Armed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.armed
}

// Period returns the most recently scheduled duration.
func (a *Alarm) Period() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.period
}

// Schedule arms the alarm to fire after d.
func (a *Alarm) Schedule(d time.Duration) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.scheduleErr != nil {
		return a.scheduleErr
	}
	a.armed = true
	a.period = d
	a.scheduleCount++
	if a.realtime {
		if a.timer != nil {
			a.timer.Stop()
		}
		a.timer = time.AfterFunc(d, a.Fire)
	}
	return nil
}

// ClearPending clears a latched alarm interrupt.
func (a *Alarm) ClearPending() {
	select {
	case <-a.fired:
	default:
	}
}

// EnableInterrupt enables delivery of the alarm interrupt.
func (a *Alarm) EnableInterrupt() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = true
}

// Fire triggers an armed, enabled alarm. Firing a disarmed alarm is a no-op
// so tests can call it unconditionally.
func (a *Alarm) Fire() {
	a.mu.Lock()
	if !a.armed || !a.enabled {
		a.mu.Unlock()
		return
	}
	a.armed = false
	a.mu.Unlock()

	select {
	case a.fired <- struct{}{}:
	default:
	}
}

// Wait blocks until the alarm fires or the context is cancelled.
func (a *Alarm) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.fired:
		return nil
	}
}
