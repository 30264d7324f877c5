// Package perr defines the closed set of parse error kinds and the
// canonical, bit-exact text rendering downstream tooling depends on.
package perr

import (
	"strings"

	"cliarg/internal/model"
)

// Kind is the closed set of error kinds a parse can produce.
type Kind int

const (
	MissingRequiredArgument Kind = iota
	ArgumentConflict
	UnknownArgument
	NoEquals
	EmptyValue
	TooFewValues
	TooManyValues
	InvalidValue
	HelpDisplayed
	VersionDisplayed
)

func (k Kind) String() string {
	switch k {
	case MissingRequiredArgument:
		return "MissingRequiredArgument"
	case ArgumentConflict:
		return "ArgumentConflict"
	case UnknownArgument:
		return "UnknownArgument"
	case NoEquals:
		return "NoEquals"
	case EmptyValue:
		return "EmptyValue"
	case TooFewValues:
		return "TooFewValues"
	case TooManyValues:
		return "TooManyValues"
	case InvalidValue:
		return "InvalidValue"
	case HelpDisplayed:
		return "HelpDisplayed"
	case VersionDisplayed:
		return "VersionDisplayed"
	default:
		return "Unknown"
	}
}

// Error is a structured parse failure. HelpDisplayed and VersionDisplayed
// are carried through the same type but are not failures: callers check
// Kind before treating an Error as an exit-code-2 condition.
type Error struct {
	Kind Kind

	// Message is the single line that follows "error: ". Left empty for
	// HelpDisplayed/VersionDisplayed, whose Rendered holds the help or
	// version text verbatim instead.
	Message string

	// ListItems render one per line, each indented four spaces,
	// immediately under Message (used by MissingRequiredArgument).
	ListItems []string

	// Hints are optional tab-indented lines shown between the message
	// and the USAGE block (the "Did you mean" / escape-hatch blocks).
	Hints []string

	// UsageLines are the lines shown under "USAGE:", each indented four
	// spaces in the final render.
	UsageLines []string

	// OffendingIDs/OffendingTokens record the ids and display tokens
	// involved, for programmatic inspection beyond the rendered string.
	OffendingIDs    []string
	OffendingTokens []string
	Suggestion      string

	// Rendered overrides the computed string entirely; used for
	// HelpDisplayed/VersionDisplayed where there is no "error:" framing.
	Rendered string

	// TargetApp is the App level that raised HelpDisplayed/VersionDisplayed,
	// so the caller renders help/version text for the subcommand the user
	// actually asked about rather than always the root App.
	TargetApp *model.App
}

func (e *Error) Error() string { return e.Render() }

// Render produces the canonical multi-line string: a message line (with
// its list items directly beneath), optional hint lines, a USAGE block,
// and the fixed closing line, each group separated by a single blank line.
func (e *Error) Render() string {
	if e.Kind == HelpDisplayed || e.Kind == VersionDisplayed {
		return e.Rendered
	}
	if e.Rendered != "" {
		return e.Rendered
	}

	var segments []string

	msg := "error: " + e.Message
	if len(e.ListItems) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		for _, item := range e.ListItems {
			b.WriteString("\n    ")
			b.WriteString(item)
		}
		msg = b.String()
	}
	segments = append(segments, msg)

	for _, hint := range e.Hints {
		segments = append(segments, "\t"+hint)
	}

	if len(e.UsageLines) > 0 {
		var b strings.Builder
		b.WriteString("USAGE:")
		for _, line := range e.UsageLines {
			b.WriteString("\n    ")
			b.WriteString(line)
		}
		segments = append(segments, b.String())
	}

	segments = append(segments, "For more information try --help")

	return strings.Join(segments, "\n\n") + "\n"
}

// New constructs a plain error with a single usage line.
func New(kind Kind, message, usageLine string) *Error {
	return &Error{Kind: kind, Message: message, UsageLines: []string{usageLine}}
}
