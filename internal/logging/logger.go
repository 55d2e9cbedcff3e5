package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/wire"
	"github.com/soccerdao/dao-cli/internal/domain/config"
)

// EnvLogLevel selects the log level: debug, info, warn or error
const EnvLogLevel = "DAO_LOG_LEVEL"

const redacted = "[redacted]"

var LoggingSet = wire.NewSet(
	NewLogger,
)

// secretKeys are attribute keys whose values never reach the log
var secretKeys = map[string]bool{
	"private_key": true,
	"privateKey":  true,
	"PRIVATE_KEY": true,
}

// NewLogger creates the stderr logger. --debug wins over DAO_LOG_LEVEL and
// adds source locations.
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(os.Getenv(EnvLogLevel)),
		ReplaceAttr: replaceAttr,
	}
	if cfg != nil && cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey && len(groups) == 0:
		return slog.Attr{}
	case a.Key == slog.SourceKey:
		if source, ok := a.Value.Any().(*slog.Source); ok {
			source.File = shortPath(source.File)
		}
	case secretKeys[a.Key]:
		return slog.String(a.Key, redacted)
	}
	return a
}

// shortPath trims a source path to the module-relative part
func shortPath(file string) string {
	if _, rel, ok := strings.Cut(filepath.ToSlash(file), "dao-cli/"); ok {
		return rel
	}
	return filepath.Base(file)
}
