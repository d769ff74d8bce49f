package app

import (
	"github.com/advdv/petite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment.
// Uses JSON encoding; PETITE_LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogRequest(r *petite.Request) {
	l.Logger.Debug("request",
		zap.String("method", r.Method),
		zap.String("uri", r.URL.RequestURI()),
		zap.String("remote_addr", r.RemoteAddr))
}

func (l zapLogger) LogServerError(err error) {
	l.Logger.Error("server error", zap.Error(err))
}

func (l zapLogger) LogFlushError(err error) {
	l.Logger.Error("error while flushing response", zap.Error(err))
}

// NewZapLogger adapts a zap logger to [petite.Logger].
func NewZapLogger(l *zap.Logger) petite.Logger {
	return zapLogger{l.Named("petite")}
}
