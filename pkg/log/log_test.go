package log_test

import (
	"context"
	"testing"

	"task-console/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "error", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "unknown", Mode: "", Encoding: ""},
	}
	for _, cfg := range configs {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		ctx := log.WithRequestID(context.Background(), "req-2")
		l.Debugf(ctx, "debug %d", 1)
		l.Info(ctx, "info")
	}

	log.NewNop().Errorf(context.Background(), "discarded %v", "x")
}
