package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestLogger_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "roster-sync")

	logger.WarnContext(context.Background(), "unit skipped", "unit", "club:Winnetka 1", "records", 3, "error", errors.New("status=503"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "roster-sync" {
		t.Fatalf("missing bound field: %+v", fields)
	}
	if fields["unit"] != "club:Winnetka 1" {
		t.Fatalf("unexpected unit field: %+v", fields["unit"])
	}
	if fields["records"] != int64(3) {
		t.Fatalf("unexpected records field: %#v", fields["records"])
	}
	if fields["error"] != "status=503" {
		t.Fatalf("unexpected error field: %#v", fields["error"])
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic expected", "k", "v")
}
