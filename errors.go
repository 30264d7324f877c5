package cliarg

import (
	"cliarg/internal/perr"
	"cliarg/internal/style"
)

// ErrorKind identifies why a parse failed, or why it stopped short of
// failing (HelpDisplayed, VersionDisplayed).
type ErrorKind = perr.Kind

const (
	MissingRequiredArgument = perr.MissingRequiredArgument
	ArgumentConflict        = perr.ArgumentConflict
	UnknownArgument         = perr.UnknownArgument
	NoEquals                = perr.NoEquals
	EmptyValue              = perr.EmptyValue
	TooFewValues            = perr.TooFewValues
	TooManyValues           = perr.TooManyValues
	InvalidValue            = perr.InvalidValue
	HelpDisplayed           = perr.HelpDisplayed
	VersionDisplayed        = perr.VersionDisplayed
)

// ParseError wraps the internal perr.Error, giving callers a stable public
// type to type-assert or inspect without reaching into internal packages.
type ParseError struct {
	inner *perr.Error
}

// Error renders the canonical multi-line diagnostic text.
func (e *ParseError) Error() string { return e.inner.Render() }

// Kind reports which of the closed set of outcomes this is.
func (e *ParseError) Kind() ErrorKind { return e.inner.Kind }

// IsHelp reports whether this "error" is really a --help short-circuit.
func (e *ParseError) IsHelp() bool { return e.inner.Kind == perr.HelpDisplayed }

// IsVersion reports whether this "error" is really a --version short-circuit.
func (e *ParseError) IsVersion() bool { return e.inner.Kind == perr.VersionDisplayed }

// Suggestion returns the "did you mean" candidate attached to an
// UnknownArgument error, or "" if none was found.
func (e *ParseError) Suggestion() string { return e.inner.Suggestion }

// Pretty renders the same text as Error but with ANSI coloring applied,
// for callers printing straight to an interactive terminal. The plain
// Error() string remains the bit-exact schema the spec documents; this is
// purely an opt-in presentation layer on top of it.
func (e *ParseError) Pretty() string { return style.Error(e.Error()) }
