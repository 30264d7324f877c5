// Package logger is the one piece of ambient diagnostic logging this
// module carries: a lazily-initialized charmbracelet/log sink for the
// batch-orchestration layer (App.BatchParse) and the panic-recovery
// helper in internal/middleware. The single-parse core never imports it,
// so a frozen App stays free of the global state a package-level logger
// necessarily carries.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	sink *log.Logger
	once sync.Once
)

// get lazily builds the package's one logger instance. Nothing forces
// initialization at import time, so a program that never hits a failing
// batch parse never pays for a logger at all.
func get() *log.Logger {
	once.Do(func() {
		sink = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
		})
	})
	return sink
}

// SetOutput redirects where the package logger writes, for tests that want
// to capture or silence it instead of writing to the real stderr.
func SetOutput(w io.Writer) {
	get().SetOutput(w)
}

// Debug logs a structured debug line. App.BatchParse uses this to record
// one failed Outcome (index, argv, error) without aborting the rest of the
// batch.
func Debug(msg string, keyvals ...any) {
	get().Debug(msg, keyvals...)
}

// Error logs a structured error line. internal/middleware's
// SafeCallWithResult uses this to record a recovered panic's message and
// stack before turning it into an ordinary error value.
func Error(msg string, keyvals ...any) {
	get().Error(msg, keyvals...)
}
