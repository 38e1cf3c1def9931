package firmware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mlgarchery/Quacken/debounce"
	"github.com/mlgarchery/Quacken/hal"
	"github.com/mlgarchery/Quacken/hid"
	"github.com/mlgarchery/Quacken/layout"
	"github.com/mlgarchery/Quacken/matrix"
	"github.com/mlgarchery/Quacken/pkg"
)

// Controller runs the keyboard firmware: a fixed-period scan tick driving
// the matrix/debounce/layout/report pipeline, and a USB pump servicing
// controller interrupts.
//
// The two paths run concurrently and share only the alarm and link handles,
// each guarded by its own mutex. The pipeline state (grids, counters, layer
// engine, reports) is owned exclusively by the tick path.
type Controller struct {
	cfg   Config
	board Board

	scanner   *matrix.Scanner
	debouncer *debounce.Debouncer
	engine    *layout.Engine

	// Tick-path state. No locking: only the tick goroutine touches it.
	raw       *matrix.Grid
	report    hid.Report
	lastSent  hid.Report
	reportBuf [hid.ReportSize]byte
	ticks     uint64

	// halted latches after a fatal fault. A halted tick handler neither
	// re-arms the alarm nor feeds the watchdog, so the hardware watchdog
	// starves and resets the board.
	halted bool

	alarmMu sync.Mutex
	linkMu  sync.Mutex

	running bool
	mutex   sync.RWMutex
	ctx     context.Context
	cancel  context.CancelFunc
	done    sync.WaitGroup
}

// New creates a controller for the given board. The topology must validate
// and the keymap must cover the topology's logical grid.
func New(board Board, cfg Config) (*Controller, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	mapper, err := matrix.NewMapper(board.Topology)
	if err != nil {
		return nil, err
	}
	scanner, err := matrix.NewScanner(board.Matrix, mapper)
	if err != nil {
		return nil, err
	}
	engine, err := layout.NewEngine(board.Keymap)
	if err != nil {
		return nil, err
	}
	if engine.Rows() != board.Topology.Rows || engine.Cols() != board.Topology.Cols {
		return nil, fmt.Errorf("%w: keymap is %dx%d, topology wants %dx%d",
			pkg.ErrKeymapShape, engine.Rows(), engine.Cols(),
			board.Topology.Rows, board.Topology.Cols)
	}

	return &Controller{
		cfg:       cfg,
		board:     board,
		scanner:   scanner,
		debouncer: debounce.New(board.Topology.Rows, board.Topology.Cols, cfg.DebounceThreshold),
		engine:    engine,
		raw:       matrix.NewGrid(board.Topology.Rows, board.Topology.Cols),
	}, nil
}

// Start arms the scan alarm, starts the watchdog, and launches the tick and
// pump goroutines.
func (c *Controller) Start(ctx context.Context) error {
	c.mutex.Lock()
	if c.running {
		c.mutex.Unlock()
		return pkg.ErrAlreadyRunning
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.mutex.Unlock()

	if err := c.board.Watchdog.Start(c.cfg.WatchdogWindow); err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrWatchdogStart, err)
	}

	c.alarmMu.Lock()
	err := c.board.Alarm.Schedule(c.cfg.ScanPeriod)
	if err == nil {
		c.board.Alarm.EnableInterrupt()
	}
	c.alarmMu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrAlarmSchedule, err)
	}

	c.mutex.Lock()
	c.running = true
	c.mutex.Unlock()

	pkg.LogInfo(pkg.ComponentSched, "controller started",
		"period", c.cfg.ScanPeriod,
		"watchdog", c.cfg.WatchdogWindow,
		"threshold", c.cfg.DebounceThreshold)

	c.done.Add(2)
	go c.tickLoop()
	go c.pumpLoop()

	return nil
}

// Stop cancels the tick and pump goroutines and waits for them to exit.
// The hardware watchdog keeps running; on a real board Stop is followed by
// a reset.
func (c *Controller) Stop() error {
	c.mutex.Lock()
	if !c.running {
		c.mutex.Unlock()
		return pkg.ErrNotRunning
	}
	c.running = false
	c.cancel()
	c.mutex.Unlock()

	c.done.Wait()
	pkg.LogInfo(pkg.ComponentSched, "controller stopped")
	return nil
}

// IsRunning returns true if the controller goroutines are active.
func (c *Controller) IsRunning() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.running
}

// Halted reports whether a fatal fault has latched the controller.
func (c *Controller) Halted() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.halted
}

// Ticks returns the number of completed scan ticks.
func (c *Controller) Ticks() uint64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.ticks
}

// tickLoop blocks on the alarm and runs one tick per expiry.
func (c *Controller) tickLoop() {
	defer c.done.Done()
	for {
		if err := c.board.Alarm.Wait(c.ctx); err != nil {
			return
		}
		c.Tick()
	}
}

// pumpLoop blocks on the controller interrupt and runs the pump per event.
func (c *Controller) pumpLoop() {
	defer c.done.Done()
	for {
		if err := c.board.Link.WaitInterrupt(c.ctx); err != nil {
			return
		}
		c.Pump()
	}
}

// Tick runs one scan cycle. The alarm is re-armed before any pipeline work
// so processing time never drifts the period, and the watchdog is fed only
// on the healthy path.
func (c *Controller) Tick() {
	c.mutex.RLock()
	halted := c.halted
	c.mutex.RUnlock()
	if halted {
		return
	}

	start := time.Now()

	c.alarmMu.Lock()
	c.board.Alarm.ClearPending()
	err := c.board.Alarm.Schedule(c.cfg.ScanPeriod)
	if err == nil {
		c.board.Alarm.EnableInterrupt()
	}
	c.alarmMu.Unlock()
	if err != nil {
		c.halt(fmt.Errorf("%w: %v", pkg.ErrAlarmSchedule, err))
		return
	}

	c.board.Watchdog.Feed()

	if err := c.scanner.Scan(c.cfg.Settle, c.raw); err != nil {
		c.halt(err)
		return
	}

	for _, ev := range c.debouncer.Events(c.raw) {
		switch ev.Kind {
		case debounce.Press:
			c.engine.Press(ev.Pos)
		case debounce.Release:
			c.engine.Release(ev.Pos)
		}
	}
	c.engine.Tick()

	c.report.Clear()
	truncated := false
	c.engine.VisitAsserted(func(code layout.Code) {
		if !c.report.Add(code) {
			truncated = true
		}
	})
	if truncated {
		pkg.LogDebug(pkg.ComponentReport, "report slots full, codes dropped")
	}

	c.send()

	c.mutex.Lock()
	c.ticks++
	c.mutex.Unlock()

	if elapsed := time.Since(start); elapsed > c.cfg.ScanPeriod {
		pkg.LogWarn(pkg.ComponentSched, "tick exceeded scan period",
			"elapsed", elapsed,
			"period", c.cfg.ScanPeriod)
	}
}

// send transmits the current report when the device is configured and the
// report differs from the last one accepted by the link. A busy link (zero
// bytes accepted, no error) is retried until the transfer is queued; a write
// error drops the report, leaving the change to be retransmitted by a later
// tick.
//
// The link lock is taken per attempt, never across iterations: a busy
// endpoint clears only when the pump services the completion, and the pump
// needs the same lock.
func (c *Controller) send() {
	if c.report.Equal(&c.lastSent) {
		return
	}

	n := c.report.MarshalTo(c.reportBuf[:])
	for {
		c.linkMu.Lock()
		if c.board.Link.State() != hal.StateConfigured {
			c.linkMu.Unlock()
			return
		}
		wrote, err := c.board.Link.Write(c.reportBuf[:n])
		c.linkMu.Unlock()

		if err != nil {
			pkg.LogWarn(pkg.ComponentUSB, "report write failed",
				"error", err)
			return
		}
		if wrote > 0 {
			break
		}
		// Endpoint busy with the previous transfer.
	}
	c.lastSent = c.report
}

// Pump services a controller interrupt: device-level protocol processing,
// then class-level processing when the poll reports pending work.
func (c *Controller) Pump() {
	c.linkMu.Lock()
	defer c.linkMu.Unlock()
	if c.board.Link.Poll() {
		c.board.Link.PollClass()
	}
}

// halt latches the fatal-fault state. Subsequent ticks return immediately,
// starving the watchdog so the hardware resets the board.
func (c *Controller) halt(err error) {
	pkg.LogError(pkg.ComponentSched, "fatal fault, halting",
		"error", err)
	c.mutex.Lock()
	c.halted = true
	c.mutex.Unlock()
}
