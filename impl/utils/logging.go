package utils

import (
	"fmt"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"path/filepath"
)

// OpenLogFile creates logFile along with its parent directories. An existing
// file is truncated.
func OpenLogFile(logFile string) (*os.File, error) {
	dir, _ := filepath.Split(logFile)
	if dir != "" {
		if e := os.MkdirAll(dir, os.ModePerm); e != nil {
			return nil, fmt.Errorf("could not create parent directories for %s: %w", logFile, e)
		}
	}

	f, e := os.Create(logFile)
	if e != nil {
		return nil, fmt.Errorf("could not open file %s to write logs into: %w", logFile, e)
	}
	return f, nil
}

// NewLogger writes console-encoded logs to logFile, or to stderr when logFile
// is empty. Debug entries are dropped unless debug is set. The returned close
// function flushes the logger and releases the log file.
func NewLogger(logFile string, debug bool) (*zap.Logger, func() error, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	if logFile == "" {
		logger := zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
		return logger, func() error {
			// syncing a terminal fails on some platforms
			_ = logger.Sync()
			return nil
		}, nil
	}

	f, e := OpenLogFile(logFile)
	if e != nil {
		return nil, nil, e
	}
	logger := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(f), level))
	return logger, func() error {
		return multierr.Append(logger.Sync(), f.Close())
	}, nil
}

// ExitWithError logs message and terminates the process.
func ExitWithError(logger *zap.Logger, message string) {
	logger.Error(message)
	_ = logger.Sync()
	os.Exit(1)
}
