package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerTo_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "warning", "test")

	log.Info("hidden message")
	log.Warning("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message should be filtered at warning level: %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("warning message missing from output: %q", out)
	}
}

func TestNewLoggerTo_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "verbose", "test")

	log.Debug("debug message")
	log.Info("info message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Errorf("debug message should be filtered at the fallback level: %q", out)
	}
	if !strings.Contains(out, "info message") {
		t.Errorf("info message missing from output: %q", out)
	}
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewLoggerTo(&bytes.Buffer{}, "info", "test")
}
