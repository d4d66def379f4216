// Package obslog is the module's structured-logging facade: a single,
// process-wide zerolog.Logger reached through package-level functions so
// the CLI and the C ABI boundary share one sink and one level without
// threading a logger value through every call.
//
// Nothing under package ensnorm imports this package. The pipeline is pure
// (no I/O, spec.md §5); only cmd/ensnorm and cabi log, and only at their own
// boundaries, to report a pipeline call that failed.
package obslog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
)

// Configure replaces the process-wide logger, routing output to w at the
// given level. Called once, from the CLI's main, before any other obslog
// use, with the level parsed from its `-log-level` flag; main then calls
// SetJSON(false, ...) to select the console writer.
func Configure(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// SetJSON switches the process-wide logger between structured JSON (for
// machine consumption) and the human-readable console writer (the default),
// preserving the configured level.
func SetJSON(json bool, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	level := log.GetLevel()
	if json {
		log = zerolog.New(w).With().Timestamp().Logger().Level(level)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().Level(level)
	}
}

// Logger returns the current process-wide logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &log
}

// Debug logs a debug-level event. The CLI uses it to report an input that
// failed to process; silent at the default (info) level.
func Debug() *zerolog.Event { return Logger().Debug() }

// Info logs an info-level event.
func Info() *zerolog.Event { return Logger().Info() }

// Error logs an error-level event. The C ABI entry points use it for a
// pipeline call that returned an error; an undersized output buffer is
// reported through the return code only and is not logged.
func Error() *zerolog.Event { return Logger().Error() }
