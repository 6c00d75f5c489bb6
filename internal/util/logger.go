package util

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the service logger. "test" gives a no-op logger for handler tests.
func NewLogger(env string) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	switch strings.ToLower(env) {
	case "production":
		logger = zap.Must(zap.NewProduction()).Sugar()
	case "test":
		return zap.NewNop().Sugar()
	default:
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	defer logger.Sync()

	return logger
}

// NewCLILogger logs to stderr without caller and stack noise. Debug output is only
// shown when verbose is set.
func NewCLILogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return zap.Must(cfg.Build()).Sugar()
}
