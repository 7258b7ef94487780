package main

import(
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger logs text to stderr, or JSON to a rotated file if dir is set. The returned
// func closes the file.
func newLogger(level string, dir string) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log_level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if dir == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() error { return nil }, nil
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "xcscore.slog"),
		MaxSize:    32, // MB
		MaxBackups: 3,
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 512
	}

	return slog.New(slog.NewJSONHandler(w, opts)), w.Close, nil
}
