package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ZerologLogger writes through zerolog with the same module joining as
// SlogLogger.
type ZerologLogger struct {
	l      zerolog.Logger
	module string
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) emit(ctx context.Context, e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	if ctx != nil {
		e = e.Ctx(ctx)
	}
	if z.module != "" {
		e = e.Str(ModuleKey, z.module)
	}
	e.Fields(withArgs(ctx, args)).Msg(msg)
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.emit(ctx, z.l.Debug(), msg, args)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.emit(ctx, z.l.Info(), msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.emit(ctx, z.l.Warn(), msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.emit(ctx, z.l.Error(), msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	module, rest := splitModule(z.module, args)
	l := z.l
	if len(rest) > 0 {
		l = l.With().Fields(rest).Logger()
	}
	return &ZerologLogger{l: l, module: module}
}
