// Package logging sets up the file-backed zap logger. The TUI owns the
// terminal, so diagnostics never go to stdout or stderr while the
// program runs.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens a logger appending to path. Debug mode switches to the
// human-readable development encoder at debug level; otherwise JSON at
// info level. The returned closer flushes and closes the log file.
func New(path string, debug bool) (*zap.Logger, func(), error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var encoder zapcore.Encoder
	level := zapcore.InfoLevel
	if debug {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(file), level)
	logger := zap.New(core)

	closer := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closer, nil
}
