package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the printf-style surface fasthttp and goose expect, plus the
// structured key/value calls used across the service.
type Logger interface {
	Info(msg string, values ...any)
	Warn(msg string, values ...any)
	Error(msg string, values ...any)
	Debug(msg string, values ...any)
	Fatal(err error, values ...any)
	Printf(format string, args ...interface{})
}

func init() {
	if _, err := NewLogger(configFor(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))); err != nil {
		panic(err)
	}
}

// Configure rebuilds the package logger once the real configuration is known.
func Configure(appEnv, level string) error {
	_, err := NewLogger(configFor(appEnv, level))
	return err
}

func configFor(appEnv, level string) zap.Config {
	var config zap.Config
	if appEnv == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(strings.TrimSpace(level)); err == nil && level != "" {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	return config
}

func Info(msg string, values ...any) {
	GetLogger().Info(msg, values...)
}

func Warn(msg string, values ...any) {
	GetLogger().Warn(msg, values...)
}

func Error(msg string, values ...any) {
	GetLogger().Error(msg, values...)
}

func Debug(msg string, values ...any) {
	GetLogger().Debug(msg, values...)
}

func Fatal(err error, values ...any) {
	GetLogger().Fatal(err, values...)
}

// Sync flushes buffered entries; call it before the process exits.
func Sync() {
	_ = GetLogger().log.Sync()
}
