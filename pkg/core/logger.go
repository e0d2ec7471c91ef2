package core

import "go.uber.org/zap"

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// ZapLogger adapts a zap SugaredLogger to the Logger interface
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a Logger backed by zap
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func (zl *ZapLogger) Printf(format string, args ...interface{}) {
	zl.sugar.Infof(format, args...)
}

// SilentLogger discards all output, for tests
type SilentLogger struct{}

func (SilentLogger) Printf(format string, args ...interface{}) {}
