package log_test

import (
	"context"
	"testing"

	"voice-task-tracker/pkg/log"
)

func TestTraceID(t *testing.T) {
	ctx := log.SetTraceID(context.Background(), "abc-123")
	if got := log.TraceIDFromContext(ctx); got != "abc-123" {
		t.Errorf("TraceIDFromContext() = %q, want %q", got, "abc-123")
	}

	if got := log.TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "bogus"},
	}
	for _, cfg := range cases {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(log.SetTraceID(context.Background(), "t"), "hello %s", "world")
	}
}
