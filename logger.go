package ptex

import "log/slog"

import "github.com/tinne26/ptex/internal"

// SetLogger configures the logger for ptex and all its subpackages.
// By default, ptex produces no log output.
// 
// Log levels used by ptex:
//  - [slog.LevelDebug]: offscreen allocations and nine-patch renders.
//  - [slog.LevelWarn]: degenerate nine-patch descriptors.
// 
// Example:
//   ptex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//       Level: slog.LevelDebug,
//   })))
// 
// Pass nil to restore the default silent behavior. Safe for concurrent use.
func SetLogger(logger *slog.Logger) {
	internal.SetLogger(logger)
}

// Returns the logger currently used by ptex.
func Logger() *slog.Logger {
	return internal.Logger()
}
