package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		env     string
		debug   bool
		enabled slog.Level
		muted   slog.Level
	}{
		{env: "", enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{env: "debug", enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{env: "WARN", enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{env: "error", enabled: slog.LevelError, muted: slog.LevelWarn},
		{env: "bogus", enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{env: "error", debug: true, enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("DAO_LOG_LEVEL", tt.env)
			log := NewLogger(&config.RuntimeConfig{Debug: tt.debug})

			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.muted))
		})
	}
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/vote.go", shortPath("/home/dev/src/dao-cli/internal/usecase/vote.go"))
	assert.Equal(t, "vote.go", shortPath("/elsewhere/vote.go"))
}

func TestReplaceAttr_RedactsKeys(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: replaceAttr}))

	log.Info("connected", "private_key", "0xdeadbeef", "address", "0x8ba1f109551bD432803012645Ac136ddd64DBA72")

	out := buf.String()
	assert.NotContains(t, out, "0xdeadbeef")
	assert.Contains(t, out, "private_key="+redacted)
	assert.Contains(t, out, "address=0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	assert.NotContains(t, out, "time=")
}
