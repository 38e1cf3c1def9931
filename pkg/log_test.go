package pkg

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// swapLogger points the package logger at a buffer for the duration of a
// test, restoring the previous logger and level afterwards.
func swapLogger(t *testing.T, logger *slog.Logger, level slog.Level) {
	t.Helper()
	prevLogger := DefaultLogger
	prevLevel := GetLogLevel()
	SetLogLevel(level)
	SetLogger(logger)
	t.Cleanup(func() {
		SetLogger(prevLogger)
		SetLogLevel(prevLevel)
	})
}

func TestSetLogLevel(t *testing.T) {
	prev := GetLogLevel()
	defer SetLogLevel(prev)

	for _, level := range []slog.Level{
		slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError,
	} {
		SetLogLevel(level)
		if got := GetLogLevel(); got != level {
			t.Errorf("GetLogLevel() = %v, want %v", got, level)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	logger.Info("scan tick")
	if !strings.Contains(buf.String(), "scan tick") {
		t.Errorf("log output missing message: %s", buf.String())
	}
}

func TestNewLoggerNilOptionsUsesPackageLevel(t *testing.T) {
	prev := GetLogLevel()
	defer SetLogLevel(prev)
	SetLogLevel(slog.LevelWarn)

	var buf bytes.Buffer
	logger := NewLogger(&buf, nil)

	// With nil options the logger tracks the package level var: records
	// below it are suppressed, raising the level is picked up live.
	logger.Info("below level")
	if buf.Len() != 0 {
		t.Errorf("suppressed record was written: %s", buf.String())
	}

	logger.Warn("at level")
	if !strings.Contains(buf.String(), "at level") {
		t.Errorf("log output missing message: %s", buf.String())
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	if logger == nil {
		t.Fatal("NewJSONLogger returned nil")
	}

	logger.Info("scan tick")
	if !strings.Contains(buf.String(), `"msg":"scan tick"`) {
		t.Errorf("JSON log output missing message: %s", buf.String())
	}
}

func TestLogFunctionsCarryComponent(t *testing.T) {
	tests := []struct {
		name      string
		log       func(Component, string, ...any)
		component Component
		want      string
	}{
		{"debug", LogDebug, ComponentMatrix, "component=matrix"},
		{"info", LogInfo, ComponentSched, "component=sched"},
		{"warn", LogWarn, ComponentLayout, "component=layout"},
		{"error", LogError, ComponentHAL, "component=hal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			swapLogger(t, NewLogger(&buf, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}), slog.LevelDebug)

			tt.log(tt.component, "pipeline message", "key", "value")
			output := buf.String()
			if !strings.Contains(output, "pipeline message") {
				t.Errorf("log output missing message: %s", output)
			}
			if !strings.Contains(output, tt.want) {
				t.Errorf("log output missing %q: %s", tt.want, output)
			}
			if !strings.Contains(output, "key=value") {
				t.Errorf("log output missing attributes: %s", output)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	swapLogger(t, NewLogger(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}), slog.LevelInfo)

	LogInfo(ComponentUSB, "replacement logger")
	if !strings.Contains(buf.String(), "replacement logger") {
		t.Error("replacement logger not used")
	}
}
