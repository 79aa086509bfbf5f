// Package logging builds the structured logger used by the unitconv CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console-encoded zap logger writing to stderr. Verbose
// mode lowers the level to debug; otherwise only warnings and errors
// surface, keeping command output clean for piping.
func New(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Encoding = "console"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		// Fallback to a basic logger.
		logger = zap.NewNop()
	}
	return logger
}
