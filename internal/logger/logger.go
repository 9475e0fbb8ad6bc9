package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger *zap.SugaredLogger

// Init initializes the global logger. With json=false output is
// console-encoded for local development.
func Init(level string, json bool) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	if !json {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	defaultLogger = l.Sugar()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns the default logger
func Get() *zap.SugaredLogger {
	if defaultLogger == nil {
		Init("info", true)
	}
	return defaultLogger
}

// Sync flushes buffered log entries. Call before exit.
func Sync() {
	_ = Get().Sync()
}

// Info logs at info level with alternating key/value pairs
func Info(msg string, args ...any) {
	Get().Infow(msg, args...)
}

// Debug logs at debug level
func Debug(msg string, args ...any) {
	Get().Debugw(msg, args...)
}

// Warn logs at warn level
func Warn(msg string, args ...any) {
	Get().Warnw(msg, args...)
}

// Error logs at error level
func Error(msg string, args ...any) {
	Get().Errorw(msg, args...)
}

// Fatal logs at error level and exits
func Fatal(msg string, args ...any) {
	Get().Errorw(msg, args...)
	Sync()
	os.Exit(1)
}

// With returns a logger with the given attributes
func With(args ...any) *zap.SugaredLogger {
	return Get().With(args...)
}
