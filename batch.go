package cliarg

import (
	"cliarg/internal/concurrency"
	"cliarg/internal/logger"
)

// BatchOutcome pairs one input argv with the ArgMatches or error produced
// by parsing it, preserving its original index.
type BatchOutcome struct {
	Index   int
	Argv    []string
	Matches *ArgMatches
	Err     error
}

// BatchParse parses every element of argvs against a concurrently. a is
// frozen once up front and then treated as read-only, per the engine's
// concurrency model: many independent parses of the same immutable App
// may safely run in parallel, even though any one parse itself is purely
// synchronous. workers bounds concurrency; zero or negative means
// runtime.NumCPU().
func (a *App) BatchParse(argvs [][]string, workers int) []BatchOutcome {
	a.registerBuiltins()
	a.m.Freeze()

	raw := concurrency.BatchRun(argvs, a.Parse, concurrency.Options{Workers: workers})

	out := make([]BatchOutcome, len(raw))
	for i, r := range raw {
		out[i] = BatchOutcome{Index: r.Index, Argv: r.Argv, Matches: r.Value, Err: r.Err}
		if r.Err != nil {
			logger.Debug("batch parse failed", "index", r.Index, "argv", r.Argv, "error", r.Err)
		}
	}
	return out
}
