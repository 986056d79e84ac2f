package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// SetupLog installs the default logger on stderr. Its level follows LOG_LEVEL
// changes in the sources file, and every record carries the service name.
func SetupLog(cfg *Config) {
	var lv slog.LevelVar
	lv.Set(cfg.GetLogLevel())
	cfg.OnLogLevelChange(func(level slog.Level) { lv.Set(level) })
	slog.SetDefault(newLogger(cfg, os.Stderr, &lv))
}

func newLogger(cfg *Config, w io.Writer, lv slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lv}
	var h slog.Handler
	if cfg.GetLogFormat() == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("service", cfg.GetServiceName())
}

// StartRun tags the default logger with a fresh run_id and returns the id.
func StartRun() string {
	id := uuid.NewString()
	slog.SetDefault(slog.Default().With("run_id", id))
	return id
}
