// Package prof provides profiling utilities for host builds of the firmware
// core.
//
// The scan tick has a hard budget: the whole scan → debounce → layout →
// report pipeline must finish well inside the scan period. This package wraps
// [runtime/pprof] with simplified APIs for measuring that budget on a host
// build (the simulated HAL runs the identical pipeline). It is conditionally
// compiled using the "profile" build tag:
//
//	go test -tags profile -bench . ./...
//
// When built without the "profile" tag, all exported functions become no-ops,
// allowing profiling hooks to remain in place without overhead.
//
// # CPU Profiling
//
// CPU profiling streams samples to a file and requires explicit start/stop:
//
//	prof.StartCPU("tick.prof")
//	defer prof.StopCPU()
//	// ... drive the scan loop ...
//
// Attempting to start CPU profiling while already active returns
// [ErrCPUProfileActive].
//
// # Snapshot Profiles
//
// Other profiles capture a point-in-time snapshot, useful for verifying the
// pipeline stays allocation-free in steady state:
//
//	prof.Write(prof.ProfileHeap, "heap.prof")
//	prof.Write(prof.ProfileMutex, "mutex.prof")
//
// Block and mutex profiles require enabling at runtime:
//
//	prof.SetBlockProfileRate(1)
//	prof.SetMutexProfileFraction(1)
package prof
