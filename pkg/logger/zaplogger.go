package logger

import (
	"sync"

	"go.uber.org/zap"
)

type ZapLogger struct {
	log *zap.SugaredLogger
}

var (
	zapLogger *ZapLogger
	mu        sync.RWMutex
)

func NewLogger(config zap.Config) (*ZapLogger, error) {
	l, err := config.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, err
	}
	mu.Lock()
	zapLogger = &ZapLogger{log: l.Sugar()}
	mu.Unlock()
	return zapLogger, nil
}

func GetLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()
	if zapLogger == nil {
		panic("logger not initialized")
	}
	return zapLogger
}

// Named returns a child logger tagged with the component name.
func (l *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{log: l.log.Named(name)}
}

func (l *ZapLogger) Fatal(err error, values ...any) {
	l.log.Fatalw(err.Error(), values...)
}

func (l *ZapLogger) Info(message string, values ...any) {
	l.log.Infow(message, values...)
}

func (l *ZapLogger) Warn(message string, values ...any) {
	l.log.Warnw(message, values...)
}

func (l *ZapLogger) Error(message string, values ...any) {
	l.log.Errorw(message, values...)
}

func (l *ZapLogger) Debug(message string, values ...any) {
	l.log.Debugw(message, values...)
}

func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}
