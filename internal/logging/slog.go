package logging

import (
	"context"
	"log/slog"
)

// SlogLogger writes through log/slog. The module name is kept outside the
// handler so nested With("module", ...) calls produce one joined
// attribute instead of duplicate keys.
type SlogLogger struct {
	l      *slog.Logger
	module string
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.l.Enabled(ctx, level) {
		return
	}
	args = withArgs(ctx, args)
	if s.module != "" {
		args = append([]any{slog.String(ModuleKey, s.module)}, args...)
	}
	s.l.Log(ctx, level, msg, args...)
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelDebug, msg, args)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelInfo, msg, args)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelWarn, msg, args)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelError, msg, args)
}

func (s *SlogLogger) With(args ...any) Logger {
	module, rest := splitModule(s.module, args)
	l := s.l
	if len(rest) > 0 {
		l = l.With(rest...)
	}
	return &SlogLogger{l: l, module: module}
}
