// Package commands implements the mdtidy subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/mdtidy/mdtidy/internal/cli/output"
	"github.com/mdtidy/mdtidy/pkg/lint"
)

type settingsKey struct{}
type rendererKey struct{}
type loggerKey struct{}

// WithSettings stores the settings snapshot in the context.
func WithSettings(ctx context.Context, s *lint.Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// WithRenderer stores the renderer in the context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func settingsFrom(ctx context.Context) *lint.Settings {
	if s, ok := ctx.Value(settingsKey{}).(*lint.Settings); ok {
		return s
	}
	return lint.NewSettings()
}

func rendererFrom(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return nil
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
