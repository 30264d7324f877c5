// Package middleware provides the one panic-recovery primitive the batch
// orchestration layer needs: turning a panic from a single parse into that
// item's error rather than losing the rest of a concurrent batch. The
// single-parse core never recovers from a panic; a build-time misuse panic
// (see internal/model) is meant to abort the program, not be swallowed
// here.
package middleware

import (
	"fmt"
	"runtime/debug"

	"cliarg/internal/logger"
)

// SafeCallWithResult runs fn, converting any panic into (zero value, error)
// instead of letting it escape the calling goroutine. internal/concurrency's
// BatchRun wraps every worker-pool task with this, so one malformed argv
// can't take the rest of the pool down with it.
func SafeCallWithResult[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered in batch parse", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
