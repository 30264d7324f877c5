// Package accum holds the in-flight parse result: for each argument id,
// how many times it occurred, the values gathered for it in order, and
// where each value came from.
package accum

import (
	"errors"
	"strings"

	"cliarg/internal/model"
)

// Origin identifies where a value came from.
type Origin int

const (
	OriginCLI Origin = iota
	OriginDefault
	OriginDefaultMissing
	OriginEnv
)

// ErrEmptyValue is returned by Push when forbidEmptyValues rejects "".
var ErrEmptyValue = errors.New("empty value not allowed")

// ErrMaxValues is returned by Push when the upper bound is already met.
var ErrMaxValues = errors.New("maximum value count exceeded")

// Entry is the per-argument accumulated state.
type Entry struct {
	Occurrences int
	Values      []string
	Origins     []Origin
	FirstIndex  int
	everSeen    bool
	envPresent  bool
}

// Accumulator is scoped to exactly one parse; on failure it is discarded.
type Accumulator struct {
	entries map[string]*Entry
}

// New creates an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{entries: map[string]*Entry{}}
}

func (a *Accumulator) entry(id string) *Entry {
	e, ok := a.entries[id]
	if !ok {
		e = &Entry{FirstIndex: -1}
		a.entries[id] = e
	}
	return e
}

// Occurrence records a bare occurrence of id (flag bump, or an option
// about to start gathering values) at the given token position.
func (a *Accumulator) Occurrence(id string, pos int) {
	e := a.entry(id)
	e.Occurrences++
	e.everSeen = true
	if e.FirstIndex < 0 {
		e.FirstIndex = pos
	}
}

// Push appends a value for id. maxValues < 0 means unbounded.
func (a *Accumulator) Push(id, value string, origin Origin, forbidEmpty bool, maxValues int) error {
	if value == "" && forbidEmpty {
		return ErrEmptyValue
	}
	e := a.entry(id)
	if maxValues >= 0 && len(e.Values) >= maxValues {
		return ErrMaxValues
	}
	e.Values = append(e.Values, value)
	e.Origins = append(e.Origins, origin)
	return nil
}

// Entry exposes the raw entry for id, if any token touched it.
func (a *Accumulator) Entry(id string) (*Entry, bool) {
	e, ok := a.entries[id]
	return e, ok
}

// Values returns the values collected so far for id, or nil if none.
func (a *Accumulator) Values(id string) []string {
	e, ok := a.entries[id]
	if !ok {
		return nil
	}
	return e.Values
}

// Present reports whether id was ever touched by a CLI token (an
// Occurrence; Push alone does not count) or resolved from the
// environment, independent of
// declared-default fallbacks, which are resolved lazily at query time
// instead.
func (a *Accumulator) Present(id string) bool {
	e, ok := a.entries[id]
	return ok && (e.everSeen || e.envPresent)
}

// PushEnv records value(s) resolved from the environment/config source for
// id, splitting on delim first when useDelimiter is set. Unlike Occurrence,
// this never bumps the occurrence count: Occurrences() must keep reporting
// how many times an Arg was typed on the command line, per spec.
func (a *Accumulator) PushEnv(id, value string, useDelimiter bool, delim rune) {
	e := a.entry(id)
	pieces := []string{value}
	if useDelimiter {
		pieces = strings.Split(value, string(delim))
	}
	e.Values = append(e.Values, pieces...)
	for range pieces {
		e.Origins = append(e.Origins, OriginEnv)
	}
	e.envPresent = true
	if e.FirstIndex < 0 {
		e.FirstIndex = 1 << 30
	}
}

// Finalize applies the default-missing-value rule: an Arg that occurred
// but collected no values gets its configured default-missing value, with
// origin DefaultMissing, provided min_values is zero. This mutates stored
// values (unlike plain default_value, which is resolved lazily at query
// time so that occurrence counts stay accurate per the spec's invariant).
func (a *Accumulator) Finalize(app *model.App) {
	for _, arg := range app.Args {
		e, ok := a.entries[arg.ID]
		if !ok || !e.everSeen {
			continue
		}
		if len(e.Values) != 0 {
			continue
		}
		if arg.DefaultMissingValue != nil && arg.EffectiveMinValues() == 0 {
			e.Values = append(e.Values, *arg.DefaultMissingValue)
			e.Origins = append(e.Origins, OriginDefaultMissing)
		}
	}
}
