// Package concurrency provides worker-pool utilities for running a single
// frozen App against many independent argument vectors at once. The
// parser itself stays synchronous and single-threaded per parse (see the
// engine's concurrency model): a frozen App is immutable and safe to
// share, so fanning out many parses of it is purely a caller-side
// scheduling concern, not something the matcher or validator need to know
// about.
package concurrency

import (
	"runtime"

	"github.com/panjf2000/ants/v2"

	"cliarg/internal/middleware"
)

// Parser is the minimal surface BatchRun needs from a frozen App: a
// function from one argv to one result, kept generic over T so this
// package has no dependency on the root cliarg package (which itself
// depends on internal/match, internal/validate, ...).
type Parser[T any] func(argv []string) (T, error)

// Outcome pairs one input argv with the result of parsing it, preserving
// its original index so BatchRun's output can be matched back to input
// even though parses complete out of order.
type Outcome[T any] struct {
	Index int
	Argv  []string
	Value T
	Err   error
}

// Options configures BatchRun's worker pool.
type Options struct {
	// Workers bounds concurrent parses. Zero or negative means
	// runtime.NumCPU().
	Workers int
}

// BatchRun runs parse against every element of argvs concurrently over a
// bounded ants pool, returning one Outcome per input in the same order as
// argvs regardless of completion order. Intended for bulk validation of
// many candidate command lines against one already-frozen App, e.g. a
// test suite or a config migration tool replaying recorded invocations.
// Each call is wrapped with middleware.SafeCallWithResult so a panic from
// one malformed argv turns into that one Outcome's Err rather than taking
// the whole pool down; this is a batch-orchestration concern only, distinct
// from the single-parse core, which never recovers from a panic.
func BatchRun[T any](argvs [][]string, parse Parser[T], opts Options) []Outcome[T] {
	results := make([]Outcome[T], len(argvs))
	if len(argvs) == 0 {
		return results
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(argvs) {
		workers = len(argvs)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		// A pool only fails to construct on an invalid size, which
		// cannot happen given the clamp above; fall back to serial
		// execution rather than panic on a caller-facing API.
		for i, argv := range argvs {
			v, perr := middleware.SafeCallWithResult(func() (T, error) { return parse(argv) })
			results[i] = Outcome[T]{Index: i, Argv: argv, Value: v, Err: perr}
		}
		return results
	}
	defer pool.Release()

	done := make(chan struct{}, len(argvs))
	for i, argv := range argvs {
		i, argv := i, argv
		submitErr := pool.Submit(func() {
			v, perr := middleware.SafeCallWithResult(func() (T, error) { return parse(argv) })
			results[i] = Outcome[T]{Index: i, Argv: argv, Value: v, Err: perr}
			done <- struct{}{}
		})
		if submitErr != nil {
			v, perr := middleware.SafeCallWithResult(func() (T, error) { return parse(argv) })
			results[i] = Outcome[T]{Index: i, Argv: argv, Value: v, Err: perr}
			done <- struct{}{}
		}
	}
	for range argvs {
		<-done
	}
	return results
}
