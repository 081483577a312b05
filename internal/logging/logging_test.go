package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("Level(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"Info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"WARNING", LevelWarn, false},
		{"error", LevelError, false},
		{"unknown", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		result, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel('%s') error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if result != tt.expected {
			t.Errorf("ParseLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestNewDefaultOutput(t *testing.T) {
	logger := New(Config{})
	if logger.output == nil {
		t.Error("expected default output to be set")
	}
}

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(Config{Level: level, Output: buf, Prefix: "test"})
	l.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 45, 123000000, time.UTC)
	}
	return l
}

func TestLoggerLog(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	for _, want := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]", "test:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output", want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") {
		t.Error("expected DEBUG to be filtered out")
	}
	if strings.Contains(output, "[INFO]") {
		t.Error("expected INFO to be filtered out")
	}
	if !strings.Contains(output, "[WARN]") {
		t.Error("expected WARN in output")
	}
	if !strings.Contains(output, "[ERROR]") {
		t.Error("expected ERROR in output")
	}
	if logger.Enabled(LevelInfo) {
		t.Error("Enabled(info) should be false at warn level")
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo)

	logger.WithFields(map[string]any{"rows": 3, "cells": 12}).Info("drew %d frames", 2)

	want := "2024-03-01T12:30:45.123 [INFO] test: drew 2 frames {cells=12, rows=3}\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelInfo)
	child := parent.WithComponent("renderer")

	parent.Info("from parent")
	child.Info("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if strings.Contains(lines[0], "component=") {
		t.Error("parent should not carry child fields")
	}
	if !strings.Contains(lines[1], "{component=renderer}") {
		t.Errorf("child should carry component field, got %q", lines[1])
	}
}

func TestLoggerSetLevelAndOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := newTestLogger(&first, LevelError)

	logger.Info("hidden")
	logger.SetLevel(LevelInfo)
	logger.SetOutput(&second)
	logger.Info("shown")

	if first.Len() != 0 {
		t.Errorf("expected nothing in first output, got %q", first.String())
	}
	if !strings.Contains(second.String(), "shown") {
		t.Error("expected message in second output")
	}
	if logger.Level() != LevelInfo {
		t.Errorf("expected level INFO, got %v", logger.Level())
	}
}

func TestLoggerDisableEnable(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug)

	logger.Disable()
	logger.Error("hidden")
	if buf.Len() != 0 {
		t.Error("disabled logger should not write")
	}

	logger.Enable()
	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("enabled logger should write")
	}
}

func TestNullAndNilLoggers(t *testing.T) {
	Null().Error("discarded")
	if Null().Enabled(LevelError) {
		t.Error("null logger should not be enabled")
	}

	var nilLogger *Logger
	nilLogger.Info("discarded")
	if nilLogger.WithField("k", "v") != nil {
		t.Error("nil logger should stay nil")
	}
	if nilLogger.Enabled(LevelError) {
		t.Error("nil logger should not be enabled")
	}
}
