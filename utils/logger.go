package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// InitLogger must be called once at startup. LOG_LEVEL and LOG_FORMAT
// (json|console) control the output.
func InitLogger() {
	level := zapcore.InfoLevel
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if os.Getenv("LOG_FORMAT") == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, _ = cfg.Build()
}

// L returns the process logger. Safe before InitLogger (falls back to a
// no-op logger so tests don't have to set one up).
func L() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
