package cliarg

import (
	"strings"

	json "github.com/goccy/go-json"

	"cliarg/internal/accum"
	"cliarg/internal/model"
)

// ArgMatches is the finalized, read-only projection of one parse returned
// by App.Parse. It borrows no mutable model state and outlives the input
// argument vector.
type ArgMatches struct {
	app *model.App
	acc *accum.Accumulator
	sub *SubcommandMatch
}

// SubcommandMatch pairs a matched child App's name with its own
// ArgMatches, mirroring ArgMatches.Subcommand's (name, matches) pair.
type SubcommandMatch struct {
	Name    string
	Matches *ArgMatches
}

// IsPresent reports whether id was satisfied: for an Arg, by a CLI
// occurrence, an environment-resolved value, or a declared default value;
// for a Group id, by any one of its members being present.
func (m *ArgMatches) IsPresent(id string) bool {
	if g, ok := m.app.Group(id); ok {
		for _, member := range g.Args {
			if m.IsPresent(member) {
				return true
			}
		}
		return false
	}
	if m.acc.Present(id) {
		return true
	}
	arg, ok := m.app.Arg(id)
	return ok && arg.DefaultValue != nil
}

// Value returns the first value recorded for id, falling back to the
// declared default when the Arg never occurred at all. A Group id returns
// the first value of its first present member.
func (m *ArgMatches) Value(id string) (string, bool) {
	vs := m.Values(id)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Values returns every value recorded for id, in the order they were
// gathered (CLI values first, defaults only when nothing occurred at
// all). A Group id yields the concatenation of its members' values in
// the group's declaration-registration order.
func (m *ArgMatches) Values(id string) []string {
	if g, ok := m.app.Group(id); ok {
		var out []string
		for _, member := range g.Args {
			out = append(out, m.Values(member)...)
		}
		return out
	}
	if m.acc.Present(id) {
		vs := m.acc.Values(id)
		out := make([]string, len(vs))
		copy(out, vs)
		return out
	}
	if arg, ok := m.app.Arg(id); ok && arg.DefaultValue != nil {
		return []string{*arg.DefaultValue}
	}
	return nil
}

// Occurrences reports how many times id appeared on the command line
// itself; environment-resolved and defaulted values never contribute, per
// the Occurrence glossary entry. A Group id sums its members' counts.
func (m *ArgMatches) Occurrences(id string) int {
	if g, ok := m.app.Group(id); ok {
		total := 0
		for _, member := range g.Args {
			total += m.Occurrences(member)
		}
		return total
	}
	if e, ok := m.acc.Entry(id); ok {
		return e.Occurrences
	}
	return 0
}

// Subcommand returns the matched child subcommand's name and its own
// ArgMatches, or ok=false if no subcommand matched at this level.
func (m *ArgMatches) Subcommand() (name string, matches *ArgMatches, ok bool) {
	if m.sub == nil {
		return "", nil, false
	}
	return m.sub.Name, m.sub.Matches, true
}

// RenderArgv reconstructs a minimal argv that reproduces these matches,
// using canonical long forms, "=" for RequireEquals Args, and the
// configured delimiter for UseDelimiter Args. Feeding the result back
// through the same App's Parse is expected to yield an equal ArgMatches,
// per the round-trip property.
func (m *ArgMatches) RenderArgv(bin string) []string {
	out := []string{bin}
	for _, arg := range m.app.Args {
		if arg.BuiltinHelp || arg.BuiltinVersion {
			continue
		}
		if arg.Kind == model.KindPositional || !m.acc.Present(arg.ID) {
			continue
		}
		out = append(out, renderOption(arg, m)...)
	}
	for _, arg := range m.app.Positionals() {
		if !m.acc.Present(arg.ID) {
			continue
		}
		out = append(out, m.acc.Values(arg.ID)...)
	}
	if m.sub != nil {
		out = append(out, m.sub.Matches.RenderArgv(m.sub.Name)...)
	}
	return out
}

// argDump is the JSON shape one Arg's matched state marshals to via
// Export: occurrence count plus every gathered value, in CLI order.
type argDump struct {
	Occurrences int      `json:"occurrences"`
	Values      []string `json:"values"`
}

// dump is the JSON shape an ArgMatches marshals to via Export, recursively
// including a matched subcommand's own dump under its name.
type dump struct {
	Args       map[string]argDump `json:"args"`
	Subcommand *namedDump         `json:"subcommand,omitempty"`
}

type namedDump struct {
	Name    string `json:"name"`
	Matches dump   `json:"matches"`
}

func (m *ArgMatches) toDump() dump {
	d := dump{Args: make(map[string]argDump, len(m.app.Args))}
	for _, arg := range m.app.Args {
		if !m.acc.Present(arg.ID) {
			continue
		}
		d.Args[arg.ID] = argDump{Occurrences: m.Occurrences(arg.ID), Values: m.Values(arg.ID)}
	}
	if m.sub != nil {
		d.Subcommand = &namedDump{Name: m.sub.Name, Matches: m.sub.Matches.toDump()}
	}
	return d
}

// Export marshals the matched (CLI- and environment-sourced, not
// defaulted) argument state to JSON, for callers that want to log or ship
// a parse result rather than query it live. Declared defaults are
// intentionally excluded: Export reports what actually happened on the
// command line, which Value/Values blur with configured fallbacks.
func (m *ArgMatches) Export() ([]byte, error) {
	return json.Marshal(m.toDump())
}

func renderOption(arg *model.Arg, m *ArgMatches) []string {
	tok := arg.CanonicalToken()
	if arg.Kind == model.KindFlag {
		out := make([]string, m.Occurrences(arg.ID))
		for i := range out {
			out[i] = tok
		}
		return out
	}
	values := m.acc.Values(arg.ID)
	if arg.UseDelimiter {
		joined := strings.Join(values, string(arg.Delimiter))
		if arg.RequireEquals {
			return []string{tok + "=" + joined}
		}
		return []string{tok, joined}
	}
	var out []string
	for _, v := range values {
		if arg.RequireEquals {
			out = append(out, tok+"="+v)
		} else {
			out = append(out, tok, v)
		}
	}
	return out
}
