package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New membuat zap logger produksi (JSON, timestamp ISO8601).
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Must panic kalau logger gagal dibuat; dipakai di main saja.
func Must(log *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return log
}
