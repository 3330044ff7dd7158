package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/periodspal/periodspal-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "bogus"} {
		logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		if err != nil {
			t.Fatalf("Setup(%q) returned error: %v", level, err)
		}
		if logger == nil {
			t.Fatalf("Setup(%q) returned nil logger", level)
		}
	}
}

func TestContextCarry(t *testing.T) {
	base := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), base)

	if got := FromContext(ctx); got != base {
		t.Error("FromContext did not return the stored logger")
	}

	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without stored logger should fall back to default")
	}

	def := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if got := FromContextOrDefault(context.Background(), def); got != def {
		t.Error("FromContextOrDefault should fall back to the provided default")
	}

	if got := FromContextOrDefault(ctx, def); got != base {
		t.Error("FromContextOrDefault should prefer the stored logger")
	}
}
