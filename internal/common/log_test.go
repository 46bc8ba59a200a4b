package common

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoggerCapturesHistory(t *testing.T) {
	logger := Logger()
	logger.Info("capture check", "key", "value")

	entries := LogEntries()
	if len(entries) == 0 {
		t.Fatal("no entries captured")
	}
	last := entries[len(entries)-1]
	if last.Message != "capture check" || last.Level != "info" {
		t.Errorf("captured entry = %+v", last)
	}
	if last.Attrs["key"] != "value" {
		t.Errorf("attrs = %v", last.Attrs)
	}
	if last.Time.IsZero() {
		t.Error("entry time not stamped")
	}
}

func TestSinkBoundsHistory(t *testing.T) {
	s := newLogSink(3)
	for i := 0; i < 5; i++ {
		s.capture(slog.NewRecord(time.Now(), slog.LevelInfo, "m", 0))
	}
	if got := len(s.entries()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}
