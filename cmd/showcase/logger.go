package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/npratt/showcase/internal/config"
)

// TUILoggerResult contains the results of setting up logging for TUI mode.
type TUILoggerResult struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *TUILoggerResult) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupTUILogger creates a logger that writes to a rotating file instead of
// stderr, so log output cannot corrupt the preview.
func SetupTUILogger(path string, level slog.Leveler, rotationCfg config.LogRotationConfig) *TUILoggerResult {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotationCfg.MaxSizeMB,
		MaxBackups: rotationCfg.MaxBackups,
		MaxAge:     rotationCfg.MaxAgeDays,
		Compress:   rotationCfg.Compress,
	}

	return &TUILoggerResult{
		Logger:   slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
		LogFile:  w,
		FilePath: path,
	}
}
