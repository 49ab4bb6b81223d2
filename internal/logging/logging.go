// Package logging builds the zap logger used by the CLI and the runner.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Off disables logging.
const Off = "off"

// New returns a console logger writing to stderr at level, or a no-op
// logger when level is empty or "off".
func New(level string) (*zap.Logger, error) {
	level = strings.TrimSpace(level)
	if level == "" || strings.EqualFold(level, Off) {
		return zap.NewNop(), nil
	}

	var parsed zapcore.Level
	if err := parsed.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named("verity"), nil
}
