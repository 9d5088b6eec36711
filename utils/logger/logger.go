package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger atomic.Pointer[zap.Logger]
	fallback     = zap.Must(zap.NewProduction())
)

// Init initializes the global Zap logger. Production environments get the JSON
// encoder, everything else the colored console encoder.
func Init(environment, level string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return err
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := config.Build()
	if err != nil {
		return err
	}
	globalLogger.Store(l.With(zap.String("service", "verified-commerce")))

	return nil
}

// Set replaces the global logger, mainly for tests.
func Set(l *zap.Logger) {
	globalLogger.Store(l)
}

// Get returns the global logger, falling back to a production logger before Init.
func Get() *zap.Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	return fallback
}

// Close flushes the logger
func Close() error {
	if l := globalLogger.Load(); l != nil {
		return l.Sync()
	}
	return nil
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Fatal logs at fatal level and exits
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}
