package ipformat

import (
	"context"
	"sync"
	"testing"
)

type recordedWarning struct {
	msg   string
	attrs map[string]any
}

type recordingLogger struct {
	mu       sync.Mutex
	warnings []recordedWarning
}

func (l *recordingLogger) WarnContext(_ context.Context, msg string, args ...any) {
	attrs := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		attrs[key] = args[i+1]
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, recordedWarning{msg: msg, attrs: attrs})
}

func (l *recordingLogger) lastWarning(t *testing.T) recordedWarning {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.warnings) == 0 {
		t.Fatal("no warnings recorded")
	}
	return l.warnings[len(l.warnings)-1]
}

func TestLoggerSilentOnSuccess(t *testing.T) {
	logger := &recordingLogger{}
	converter, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := converter.Convert(context.Background(), "10.0.0.1"); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(logger.warnings) != 0 {
		t.Errorf("warnings = %v, want none", logger.warnings)
	}
}

func TestLoggerWarnsOnUnrecognizedFormat(t *testing.T) {
	logger := &recordingLogger{}
	converter, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := converter.Normalize(context.Background(), "not-an-ip"); err == nil {
		t.Fatal("Normalize() expected error, got nil")
	}

	warning := logger.lastWarning(t)
	if warning.attrs["event"] != formatEventUnrecognizedFormat {
		t.Errorf("event = %v, want %q", warning.attrs["event"], formatEventUnrecognizedFormat)
	}
	if warning.attrs["input"] != "not-an-ip" {
		t.Errorf("input = %v, want %q", warning.attrs["input"], "not-an-ip")
	}
}

func TestLoggerWarnsOnMalformedNumeral(t *testing.T) {
	logger := &recordingLogger{}
	converter, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := converter.Normalize(context.Background(), "1.2.65536"); err == nil {
		t.Fatal("Normalize() expected error, got nil")
	}

	warning := logger.lastWarning(t)
	if warning.attrs["event"] != formatEventMalformedNumeral {
		t.Errorf("event = %v, want %q", warning.attrs["event"], formatEventMalformedNumeral)
	}
	if warning.attrs["rule"] != RuleOverflow {
		t.Errorf("rule = %v, want %q", warning.attrs["rule"], RuleOverflow)
	}
}

func TestLoggerWarnsOnInvalidAddress(t *testing.T) {
	logger := &recordingLogger{}
	converter, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := converter.Convert(context.Background(), "::ffff:999.1.1.1"); err == nil {
		t.Fatal("Convert() expected error, got nil")
	}

	warning := logger.lastWarning(t)
	if warning.attrs["event"] != formatEventInvalidAddress {
		t.Errorf("event = %v, want %q", warning.attrs["event"], formatEventInvalidAddress)
	}
	if warning.attrs["address"] != "999.1.1.1" {
		t.Errorf("address = %v, want %q", warning.attrs["address"], "999.1.1.1")
	}
}
