// Package validate runs the post-accumulation checks — required-ness,
// conflicts, group cardinality, requires, and value counts — against a
// completed match.Result, in the fixed order the spec mandates, returning
// the first violation found.
package validate

import (
	"fmt"
	"sort"

	"cliarg/internal/accum"
	"cliarg/internal/match"
	"cliarg/internal/model"
	"cliarg/internal/perr"
)

// Run validates one App's share of a match.Result. skipRequired is set when
// a child subcommand matched and the App's SubcommandsNegateReqs setting is
// on: only the required-argument and required-group pass is skipped, every
// other pass still runs.
func Run(res *match.Result, skipRequired bool) *perr.Error {
	app, acc := res.App, res.Acc

	if !skipRequired {
		if err := checkRequired(app, acc); err != nil {
			return err
		}
	}
	if err := checkConflicts(app, acc); err != nil {
		return err
	}
	if err := checkGroupCardinality(app, acc); err != nil {
		return err
	}
	if err := checkRequires(app, acc); err != nil {
		return err
	}
	if err := checkValueCounts(app, acc); err != nil {
		return err
	}
	return nil
}

func present(acc *accum.Accumulator, id string) bool { return acc.Present(id) }

// groupSatisfied reports whether any member of g is present: it occurred
// on the command line or was resolved from the environment.
func groupSatisfied(acc *accum.Accumulator, g *model.ArgGroup) bool {
	for _, m := range g.Args {
		if present(acc, m) {
			return true
		}
	}
	return false
}

func checkRequired(app *model.App, acc *accum.Accumulator) *perr.Error {
	var missing []string
	handledByGroup := map[string]bool{}

	for _, g := range app.Groups {
		if !g.Required {
			continue
		}
		for _, m := range g.Args {
			handledByGroup[m] = true
		}
		if !groupSatisfied(acc, g) {
			missing = append(missing, app.GroupToken(g))
		}
	}

	for _, arg := range app.Args {
		if !arg.Required || handledByGroup[arg.ID] {
			continue
		}
		if !present(acc, arg.ID) {
			missing = append(missing, arg.CanonicalToken())
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return &perr.Error{
		Kind:       perr.MissingRequiredArgument,
		Message:    "The following required arguments were not provided:",
		ListItems:  missing,
		UsageLines: []string{app.RequiredSurfaceUsageLine()},
	}
}

// checkConflicts visits present args in the order they first occurred on
// the command line, so the earlier-typed argument is named first in the
// message, e.g. "--delete" before "<base>" for `--delete base`.
func checkConflicts(app *model.App, acc *accum.Accumulator) *perr.Error {
	ordered := append([]*model.Arg(nil), app.Args...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return firstIndex(acc, ordered[i].ID) < firstIndex(acc, ordered[j].ID)
	})

	for _, arg := range ordered {
		if !present(acc, arg.ID) {
			continue
		}
		for other := range app.SymmetricConflicts(arg.ID) {
			if !present(acc, other) {
				continue
			}
			otherArg, _ := app.Arg(other)
			return &perr.Error{
				Kind:       perr.ArgumentConflict,
				Message:    fmt.Sprintf("The argument '%s' cannot be used with '%s'", arg.CanonicalToken(), otherArg.CanonicalToken()),
				UsageLines: []string{app.RequiredSurfaceUsageLine()},
			}
		}
	}
	return nil
}

func firstIndex(acc *accum.Accumulator, id string) int {
	if e, ok := acc.Entry(id); ok {
		return e.FirstIndex
	}
	return 1 << 30
}

func checkGroupCardinality(app *model.App, acc *accum.Accumulator) *perr.Error {
	for _, g := range app.Groups {
		if g.Multiple {
			continue
		}
		var presentMembers []string
		for _, m := range g.Args {
			if present(acc, m) {
				presentMembers = append(presentMembers, m)
			}
		}
		if len(presentMembers) >= 2 {
			a, _ := app.Arg(presentMembers[0])
			b, _ := app.Arg(presentMembers[1])
			return &perr.Error{
				Kind:       perr.ArgumentConflict,
				Message:    fmt.Sprintf("The argument '%s' cannot be used with '%s'", a.CanonicalToken(), b.CanonicalToken()),
				UsageLines: []string{app.RequiredSurfaceUsageLine()},
			}
		}
	}
	return nil
}

func checkRequires(app *model.App, acc *accum.Accumulator) *perr.Error {
	for _, arg := range app.Args {
		if !present(acc, arg.ID) {
			continue
		}
		for _, reqID := range arg.Requires {
			if present(acc, reqID) {
				continue
			}
			reqArg, _ := app.Arg(reqID)
			return &perr.Error{
				Kind:       perr.MissingRequiredArgument,
				Message:    "The following required arguments were not provided:",
				ListItems:  []string{reqArg.CanonicalToken()},
				UsageLines: []string{app.RequiredSurfaceUsageLine()},
			}
		}
	}
	return nil
}

func checkValueCounts(app *model.App, acc *accum.Accumulator) *perr.Error {
	for _, arg := range app.Args {
		if !present(acc, arg.ID) {
			continue
		}
		values := acc.Values(arg.ID)
		n := len(values)
		minVals := arg.EffectiveMinValues()

		if n < minVals {
			if n == 0 {
				return &perr.Error{
					Kind:       perr.EmptyValue,
					Message:    fmt.Sprintf("The argument '%s' requires a value but none was supplied", arg.CanonicalToken()),
					UsageLines: []string{app.RequiredSurfaceUsageLine()},
				}
			}
			return &perr.Error{
				Kind:       perr.TooFewValues,
				Message:    fmt.Sprintf("The argument '%s' requires at least %d values but %d were provided", arg.CanonicalToken(), minVals, n),
				UsageLines: []string{app.RequiredSurfaceUsageLine()},
			}
		}

		maxVals := arg.EffectiveMaxValues()
		if maxVals >= 0 && n > maxVals {
			return &perr.Error{
				Kind:       perr.TooManyValues,
				Message:    fmt.Sprintf("The argument '%s' accepts at most %d values but %d were provided", arg.CanonicalToken(), maxVals, n),
				UsageLines: []string{app.RequiredSurfaceUsageLine()},
			}
		}
	}
	return nil
}
