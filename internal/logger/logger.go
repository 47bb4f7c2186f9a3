// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It discards all output until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Writer  io.Writer // Destination. Default: os.Stderr
	Verbose bool      // Log at debug level instead of warn
}

// Init replaces L with a text logger writing to opts.Writer.
func Init(opts Options) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}

	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
