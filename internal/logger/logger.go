package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/loottable/internal/config"
)

// Setup installs the default slog logger for cfg, writing to stdout.
func Setup(cfg *config.Config) *slog.Logger {
	return New(cfg, os.Stdout)
}

// New returns a logger writing to w and makes it the slog default. Production
// logs are JSON; every other environment gets logfmt-style text.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithError attaches err to every record written through the returned logger.
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
