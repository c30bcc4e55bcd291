// Package log is the structured event log used across the storefront. Every
// entry carries a dotted action name and an optional field map.
package log

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(New(os.Stdout, os.Getenv("LOG_LEVEL")))
}

// New builds a JSON logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string) *zap.Logger {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil || level == "" {
		_ = lvl.UnmarshalText([]byte(defaultLevel))
	}
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:    "ts",
		LevelKey:   "level",
		MessageKey: "action",
		EncodeTime: zapcore.RFC3339TimeEncoder,
		EncodeLevel: func(l zapcore.Level, pe zapcore.PrimitiveArrayEncoder) {
			pe.AppendString(l.String())
		},
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
}

// SetOutput replaces the process logger. Used for log files and tests.
func SetOutput(w io.Writer, level string) {
	current.Store(New(w, level))
}

func L() *zap.Logger { return current.Load() }

func write(lvl zapcore.Level, kind, action string, err error, fields map[string]any) {
	zf := make([]zap.Field, 0, 3)
	if kind != "" {
		zf = append(zf, zap.String("kind", kind))
	}
	if err != nil {
		zf = append(zf, zap.String("err", err.Error()))
	}
	if len(fields) > 0 {
		zf = append(zf, zap.Any("fields", fields))
	}
	if ce := L().Check(lvl, action); ce != nil {
		ce.Write(zf...)
	}
}

func Info(action string, fields map[string]any) { write(zapcore.InfoLevel, "", action, nil, fields) }
func Audit(action string, fields map[string]any) {
	write(zapcore.InfoLevel, "audit", action, nil, fields)
}
func Security(action string, fields map[string]any) {
	write(zapcore.WarnLevel, "security", action, nil, fields)
}
func Error(action string, err error, fields map[string]any) {
	write(zapcore.ErrorLevel, "", action, err, fields)
}

// Debug is for developer-facing integration faults that are not user errors.
func Debug(action string, fields map[string]any) { write(zapcore.DebugLevel, "", action, nil, fields) }

func Sync() { _ = L().Sync() }
