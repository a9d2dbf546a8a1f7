package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Debug mode logs everything in a
// human readable form, otherwise only warnings and above are written.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// OrNop never returns nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if nil == l {
		return zap.NewNop()
	}
	return l
}
