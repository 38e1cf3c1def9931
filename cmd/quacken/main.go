// Package main runs the Quacken firmware against the simulated HAL.
//
// The demo wires a Quacken Zero board out of in-memory hardware, starts the
// controller with a wall-clock scan alarm, and types a short greeting by
// closing and opening switches at their electrical positions. Every boot
// report the firmware transmits is printed as it would cross the wire.
//
// Usage:
//
//	go run ./cmd/quacken [options]
//
// Options:
//
//	-v        Enable verbose (debug) logging
//	-json     Use JSON log format
//	-rotated  Simulate a face-down controller
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlgarchery/Quacken/boards/quackenzero"
	"github.com/mlgarchery/Quacken/firmware"
	"github.com/mlgarchery/Quacken/hal"
	"github.com/mlgarchery/Quacken/hal/sim"
	"github.com/mlgarchery/Quacken/layout"
	"github.com/mlgarchery/Quacken/matrix"
	"github.com/mlgarchery/Quacken/pkg"
)

// component identifies this executable for structured logging.
const component = pkg.ComponentSched

// holdFor is how long each demo keypress stays closed. Comfortably longer
// than threshold scan periods so every press debounces.
const holdFor = 25 * time.Millisecond

func main() {
	verbose := flag.Bool("v", false, "enable verbose (debug) logging")
	jsonLog := flag.Bool("json", false, "use JSON log format")
	rotated := flag.Bool("rotated", false, "simulate a face-down controller")
	flag.Parse()

	if *verbose {
		pkg.SetLogLevel(slog.LevelDebug)
	}
	if *jsonLog {
		pkg.SetLogFormat(pkg.LogFormatJSON)
	}

	topo := quackenzero.Topology(*rotated)
	mapper, err := matrix.NewMapper(topo)
	if err != nil {
		pkg.LogError(component, "invalid topology", "error", err)
		os.Exit(1)
	}

	mtx := sim.NewMatrix(topo.DriveLines, topo.SenseLines)
	link := sim.NewLink()
	link.SetState(hal.StateConfigured)
	link.SetOnReport(func(report []byte) {
		fmt.Printf("report % X\n", report)
	})

	board := firmware.Board{
		Matrix:   mtx,
		Alarm:    sim.NewRealtimeAlarm(),
		Watchdog: sim.NewWatchdog(),
		Link:     link,
		Topology: topo,
		Keymap:   quackenzero.Keymap(),
	}

	ctrl, err := firmware.New(board, firmware.Config{})
	if err != nil {
		pkg.LogError(component, "failed to build controller", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ctrl.Start(ctx); err != nil {
		pkg.LogError(component, "failed to start controller", "error", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		typeGreeting(mtx, mapper)
	}()

	select {
	case <-done:
	case sig := <-sigCh:
		pkg.LogInfo(component, "received signal", "signal", sig)
	}

	if err := ctrl.Stop(); err != nil {
		pkg.LogError(component, "failed to stop controller", "error", err)
		os.Exit(1)
	}
	pkg.LogInfo(component, "demo finished", "ticks", ctrl.Ticks())
}

// greeting is the demo key sequence at logical grid coordinates on the base
// layer: "quack ", then 7 typed through the number layer held on the right
// thumb.
var greeting = []matrix.Logical{
	keyAt(layout.CodeQ),
	keyAt(layout.CodeU),
	keyAt(layout.CodeA),
	keyAt(layout.CodeC),
	keyAt(layout.CodeK),
	keyAt(layout.CodeSpace),
}

// typeGreeting closes and opens switches at the electrical positions behind
// each logical coordinate.
func typeGreeting(mtx *sim.Matrix, mapper *matrix.Mapper) {
	tap := func(pos matrix.Logical) {
		p := mapper.Unmap(pos)
		mtx.Press(p.Drive, p.Sense)
		time.Sleep(holdFor)
		mtx.Release(p.Drive, p.Sense)
		time.Sleep(holdFor)
	}

	for _, pos := range greeting {
		tap(pos)
	}

	// Hold the layer key and tap 7 on the number layer.
	hold := mapper.Unmap(matrix.Logical{Row: 3, Col: 5})
	mtx.Press(hold.Drive, hold.Sense)
	time.Sleep(holdFor)
	tap(matrix.Logical{Row: 0, Col: 7})
	mtx.Release(hold.Drive, hold.Sense)
	time.Sleep(holdFor)
}

// keyAt returns the base-layer coordinate emitting the given code. Panics on
// codes absent from the base layer; the demo only uses codes that exist.
func keyAt(code layout.Code) matrix.Logical {
	keymap := quackenzero.Keymap()
	for row := range keymap[quackenzero.LayerBase] {
		for col, a := range keymap[quackenzero.LayerBase][row] {
			if a.Kind == layout.ActionKey && a.Code == code {
				return matrix.Logical{Row: row, Col: col}
			}
		}
	}
	panic(fmt.Sprintf("code %#x not on base layer", code))
}
