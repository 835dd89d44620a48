package config

import (
	"context"
	"log/slog"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store logger in context.
type loggerKey struct{}

// WithConfig returns a context carrying the config.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the config from the context, falling back to
// defaults when none was stored.
func GetConfig(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return Default()
}

// WithLogger returns a context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		DataDir:       DefaultDataDir,
		DraftFile:     DefaultDraftFile,
		RankingsFile:  DefaultRankingsFile,
		Port:          DefaultPort,
		Watch:         true,
		SessionSecret: defaultSessionSecret(),
		OutputFormat:  DefaultOutput,
	}
}
