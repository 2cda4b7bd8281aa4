package main

import (
	"io"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/apstndb/protoform/parser"
)

const traceInputWidth = 20

// ParseLogger adapts a zap logger to a parse tracer.
func ParseLogger(l *zap.Logger) parser.Tracer {
	return parser.TracerFunc(func(ev parser.TraceEvent) {
		f := []zap.Field{
			zap.String("parser", ev.Name),
			zap.String("input", runewidth.Truncate(ev.Input, traceInputWidth, "...")),
			zap.Int("consumed", ev.Consumed),
		}

		if ev.OK() {
			l.Debug("parser matched", f...)
			return
		}
		l.Debug("parser failed", append(f, zap.Stringer("kind", ev.Err.Kind), zap.String("error", ev.Err.Message))...)
	})
}

// newParseLogger creates a development logger writing to w.
func newParseLogger(w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
