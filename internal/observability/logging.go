package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/icconsult/customer-service/internal/config"
)

// NewLogger creates a structured zap.Logger configured via env settings.
// Unknown levels fall back to info.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	zapCfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
		Development: false,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:    "message",
			LevelKey:      "level",
			TimeKey:       "ts",
			NameKey:       "logger",
			StacktraceKey: "stacktrace",
			EncodeLevel:   zapcore.LowercaseLevelEncoder,
			EncodeTime:    zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}

// ParseLevel maps a level name to a zap level. "trace" maps to debug.
func ParseLevel(name string) zapcore.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "trace" {
		return zapcore.DebugLevel
	}
	level := zapcore.InfoLevel
	if err := level.Set(name); err != nil {
		return zapcore.InfoLevel
	}
	return level
}
