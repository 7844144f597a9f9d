package internal

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})
var loggerPtr atomic.Pointer[slog.Logger]

// Stores the logger shared by ptex and its subpackages. A nil
// logger restores the default silent behavior.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = nopLogger }
	loggerPtr.Store(logger)
}

func Logger() *slog.Logger {
	logger := loggerPtr.Load()
	if logger == nil { return nopLogger }
	return logger
}
