package log_test

import (
	"context"
	"testing"

	"task-planner/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "development console", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "invalid level falls back", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := log.WithRequestID(context.Background(), "req-1")
			l.Infof(ctx, "hello %s", "world")
			l.Warn(context.Background(), "warned")
		})
	}
}
