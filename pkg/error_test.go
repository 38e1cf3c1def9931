package pkg

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrLineFault,
		ErrLineRange,
		ErrAlarmSchedule,
		ErrWatchdogStart,
		ErrNotConfigured,
		ErrAlreadyRunning,
		ErrNotRunning,
		ErrHalted,
		ErrInvalidParameter,
		ErrTopology,
		ErrLayerRange,
		ErrKeymapCoverage,
		ErrKeymapShape,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error %d is nil", i)
			continue
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("error %d and %d are equal", i, j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrLineFault, "matrix line fault"},
		{ErrAlarmSchedule, "scan alarm schedule failed"},
		{ErrNotConfigured, "link not configured"},
		{ErrHalted, "controller halted"},
		{ErrKeymapCoverage, "base layer not fully covered"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("error.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}
