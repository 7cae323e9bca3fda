package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured log field.
type Field = zap.Field

// Logger is the structured logger passed through the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger that adds fields to every entry.
	With(fields ...Field) Logger

	Sync() error
}

type zapLogger struct {
	base *zap.Logger
}

// New builds the process logger. pretty selects the colored development
// encoder, otherwise JSON production output is used. Every entry carries
// service=quizapp. Unknown levels keep info.
func New(level string, pretty bool) Logger {
	var cfg zap.Config
	if pretty {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if lvl, ok := parseLevel(level); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	base, err := cfg.Build(
		zap.AddStacktrace(zapcore.DPanicLevel),
		zap.Fields(zap.String("service", "quizapp")),
	)
	if err != nil {
		panic(err)
	}
	return &zapLogger{base: base}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zapLogger{base: zap.NewNop()}
}

// parseLevel accepts the QUIZAPP_LOG_LEVEL values debug, info, warn and error
// in any case.
func parseLevel(lvl string) (zapcore.Level, bool) {
	switch s := strings.ToLower(strings.TrimSpace(lvl)); s {
	case "debug", "info", "warn", "error":
		l, err := zapcore.ParseLevel(s)
		return l, err == nil
	default:
		return zapcore.InfoLevel, false
	}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.base.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.base.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.base.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.base.Error(msg, fields...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{base: l.base.With(fields...)}
}

func (l *zapLogger) Sync() error { return l.base.Sync() }

// Generic field constructors, so callers never import zap.
func String(key, val string) Field                 { return zap.String(key, val) }
func Int(key string, val int) Field                { return zap.Int(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Bool(key string, val bool) Field              { return zap.Bool(key, val) }
func Strings(key string, val []string) Field       { return zap.Strings(key, val) }
func Error(err error) Field                        { return zap.Error(err) }

// Quiz domain fields.
func Component(name string) Field { return zap.String("component", name) }
func UserID(id string) Field      { return zap.String("user_id", id) }
func Subject(name string) Field   { return zap.String("subject", name) }
func TestID(id string) Field      { return zap.String("test_id", id) }
func BookmarkID(id string) Field  { return zap.String("bookmark_id", id) }
