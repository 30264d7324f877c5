package model

import "strings"

// memberToken renders a group member the way it appears inside a combined
// group token: bare name for a positional, canonical flag form otherwise.
func memberToken(arg *Arg) string {
	if arg.Kind == KindPositional {
		name := arg.ValueName
		if name == "" {
			name = arg.ID
		}
		return name
	}
	return arg.CanonicalToken()
}

// GroupToken renders a group the way usage lines and required-argument
// lists cite it: its members' bare tokens joined by '|' inside one pair of
// angle brackets, e.g. "<base|--delete>". The same formula covers an
// all-options group ("<--a|--b>") and a mixed group; no special case is
// needed between the two.
func (a *App) GroupToken(g *ArgGroup) string {
	parts := make([]string, 0, len(g.Args))
	for _, id := range g.Args {
		if arg, ok := a.byID[id]; ok {
			parts = append(parts, memberToken(arg))
		}
	}
	return "<" + strings.Join(parts, "|") + ">"
}

// RequiredSurfaceUsageLine renders the App's generic USAGE: line: required
// groups as their combined token, other required args by their own usage
// snippet, a single "[OPTIONS]" bucket for whatever optional non-positional
// surface remains, then any positionals not already covered by a required
// group. This is the fallback used by every error whose diagnosis is not
// itself scoped to one particular argument.
func (a *App) RequiredSurfaceUsageLine() string {
	var segs []string
	covered := map[string]bool{}

	for _, g := range a.Groups {
		if !g.Required {
			continue
		}
		segs = append(segs, a.GroupToken(g))
		for _, m := range g.Args {
			covered[m] = true
		}
	}

	for _, arg := range a.Args {
		if arg.Required && !covered[arg.ID] {
			segs = append(segs, arg.UsageSnippet())
			covered[arg.ID] = true
		}
	}

	hasOptional := false
	for _, arg := range a.Args {
		if arg.BuiltinHelp || arg.BuiltinVersion {
			continue
		}
		if arg.Kind != KindPositional && !covered[arg.ID] {
			hasOptional = true
		}
	}
	if hasOptional {
		segs = append(segs, "[OPTIONS]")
	}

	for _, p := range a.positionals {
		if !covered[p.ID] {
			segs = append(segs, p.UsageSnippet())
		}
	}

	if len(segs) == 0 {
		return a.BinName
	}
	return a.BinName + " " + strings.Join(segs, " ")
}
