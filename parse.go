package cliarg

import (
	"cliarg/internal/match"
	"cliarg/internal/perr"
	"cliarg/internal/render"
	"cliarg/internal/style"
	"cliarg/internal/validate"
)

// Parse is an alias for TryGetMatchesFrom, the entry point named in §6.
func (a *App) Parse(argv []string) (*ArgMatches, error) {
	return a.TryGetMatchesFrom(argv)
}

// TryGetMatchesFrom freezes a (idempotent) and matches argv against it,
// returning a finalized ArgMatches or the first error encountered. A
// *ParseError is always returned as the error value; help/version
// short-circuits also surface this way, distinguished by (*ParseError).Kind.
func (a *App) TryGetMatchesFrom(argv []string) (*ArgMatches, error) {
	a.registerBuiltins()
	a.m.Freeze()

	res, mErr := match.Run(a.m, argv)
	if mErr != nil {
		return nil, wrapOutcome(a, mErr)
	}

	if vErr := a.finalizeAndValidate(res); vErr != nil {
		return nil, wrapOutcome(a, vErr)
	}

	return buildMatches(a, res), nil
}

// wrapOutcome renders HelpDisplayed/VersionDisplayed to their fixed-schema
// text before wrapping, leaving every other kind's already-computed
// Render() output untouched.
func wrapOutcome(root *App, e *perr.Error) error {
	target := e.TargetApp
	if target == nil {
		target = root.m
	}
	switch e.Kind {
	case perr.HelpDisplayed:
		e.Rendered = render.Help(target)
	case perr.VersionDisplayed:
		e.Rendered = render.Version(target)
	}
	return &ParseError{inner: e}
}

// finalizeAndValidate resolves environment defaults and runs the
// Validator over res, then recurses into the matched subcommand (if any)
// using its own App's env source and SubcommandsNegateReqs setting.
func (a *App) finalizeAndValidate(res *match.Result) *perr.Error {
	if a.env != nil {
		applyEnv(a, res)
	}

	skipRequired := res.Subcommand != nil && a.m.Settings.SubcommandsNegateReqs
	if err := validate.Run(res, skipRequired); err != nil {
		return err
	}

	if res.Subcommand != nil {
		if child := a.childFor(res.Subcommand.App.Name); child != nil {
			return child.finalizeAndValidate(res.Subcommand)
		}
	}
	return nil
}

// applyEnv resolves a's attached environment source for every Arg that no
// CLI token touched, pushing a hit with accum.OriginEnv so it counts as
// present for required/conflict/group checks without inflating the Arg's
// CLI occurrence count.
func applyEnv(a *App, res *match.Result) {
	for _, arg := range a.m.Args {
		if res.Acc.Present(arg.ID) {
			continue
		}
		if v, ok := a.env.Value(arg); ok {
			res.Acc.PushEnv(arg.ID, v, arg.UseDelimiter, arg.Delimiter)
		}
	}
}

// childFor looks up the App builder for a matched subcommand name. The
// model layer already resolved the name to a frozen *model.App; this just
// finds the matching *App wrapper so its own env source and settings can
// be applied during the recursive finalize/validate/build passes.
func (a *App) childFor(name string) *App {
	for _, c := range a.children {
		if c.m.Name == name {
			return c
		}
	}
	return nil
}

// buildMatches projects a successful match.Result tree into the public
// ArgMatches tree, pairing each level with the App wrapper that declared
// it (needed for default-value/group resolution at query time).
func buildMatches(a *App, res *match.Result) *ArgMatches {
	mm := &ArgMatches{app: res.App, acc: res.Acc}
	if res.Subcommand != nil {
		child := a.childFor(res.Subcommand.App.Name)
		var childMatches *ArgMatches
		if child != nil {
			childMatches = buildMatches(child, res.Subcommand)
		} else {
			childMatches = &ArgMatches{app: res.Subcommand.App, acc: res.Subcommand.Acc}
		}
		mm.sub = &SubcommandMatch{Name: res.Subcommand.App.Name, Matches: childMatches}
	}
	return mm
}

// Help renders the fixed help schema for a without running a parse.
func (a *App) Help() string {
	a.registerBuiltins()
	a.m.Freeze()
	return render.Help(a.m)
}

// HelpPretty renders Help with ANSI section headers and width-wrapped to
// the current terminal (or to width, when positive).
func (a *App) HelpPretty(width int) string {
	return style.Help(a.Help(), width)
}
