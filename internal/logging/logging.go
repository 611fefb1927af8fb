// Package logging sets up the watson CLI logger: a charmbracelet/log
// handler behind log/slog, writing logfmt records with credentials masked.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// New returns a logger writing to w. Debug records, which include every
// request the SDK makes, are only written when debug is set.
func New(w io.Writer, debug bool) *slog.Logger {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}
	charmLogger := charmlog.NewWithOptions(NewWriter(w), charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "watson",
		Formatter:       charmlog.LogfmtFormatter,
	})
	return slog.New(charmLogger)
}

// Setup installs New(w, debug) as the default slog logger and returns it.
func Setup(w io.Writer, debug bool) *slog.Logger {
	logger := New(w, debug)
	slog.SetDefault(logger)
	return logger
}

// RecoverPanic is a common function to handle panics gracefully.
// It logs the error, creates a panic log file with stack trace,
// and executes an optional cleanup function.
func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		slog.Error("panic", "in", name, "error", fmt.Sprint(r))

		timestamp := time.Now().Format("20060102-150405")
		filename := fmt.Sprintf("watson-panic-%s-%s.log", name, timestamp)

		file, err := os.Create(filename)
		if err != nil {
			slog.Error("failed to create panic log file", "path", filename, "error", err)
		} else {
			defer file.Close()
			fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
			fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
			fmt.Fprintf(file, "Stack Trace:\n%s\n", string(debug.Stack()))
			slog.Info("panic details written", "path", filename)
		}

		if cleanup != nil {
			cleanup()
		}
	}
}
