// Package logging builds the zap logger used across studentdb.
// Stdout belongs to the interactive menu, so logs only go to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger writing to file at level.
// An empty file yields a no-op logger. verbose forces debug level.
func New(file, level string, verbose bool) (*zap.Logger, error) {
	if file == "" {
		return zap.NewNop(), nil
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{file}
	config.ErrorOutputPaths = []string{file}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
