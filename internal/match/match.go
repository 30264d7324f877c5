// Package match resolves a lexed token stream against a frozen model.App,
// recording occurrences and values into an accum.Accumulator and handing
// off to a child App the moment a subcommand name is recognized.
package match

import (
	"fmt"
	"strings"

	"cliarg/internal/accum"
	"cliarg/internal/lex"
	"cliarg/internal/model"
	"cliarg/internal/perr"
	"cliarg/internal/suggest"
	"cliarg/pkg/fuzzy"
)

// subcommandMatcher ranks an unresolved first positional against a
// declared subcommand name list. It favors recall over the single
// best-or-nothing answer suggest.Best gives flag names, since subcommand
// trees are typically small and a short ranked list is more useful than
// silence when nothing is an unambiguous edit-distance winner.
var subcommandMatcher = fuzzy.NewCachedMatcher(fuzzy.NewMatcher(false, 3, 0.45))

// Result is the outcome of matching one App's share of the argument vector.
// Subcommand is non-nil when a positional resolved to a declared child App;
// in that case everything after the subcommand name belongs to it, not to
// the parent's Acc.
type Result struct {
	App        *model.App
	Acc        *accum.Accumulator
	Subcommand *Result
}

// Run lexes and matches argv (argv[0] is the conventional program name,
// skipped by the lexer) against app, which must already be frozen.
func Run(app *model.App, argv []string) (*Result, *perr.Error) {
	shortRunes := map[rune]bool{}
	for _, arg := range app.Args {
		if arg.Short != 0 {
			shortRunes[arg.Short] = true
		}
	}
	tokens := lex.Lex(argv, shortRunes)

	acc := accum.New()
	m := &matcher{app: app, acc: acc, argv: argv}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if m.awaiting != nil && m.continuesGathering(tok) {
			if perrErr := m.consumeGathered(tok); perrErr != nil {
				return nil, perrErr
			}
			continue
		}
		m.awaiting = nil

		switch tok.Kind {
		case lex.KindValueEscape:
			// consumed as a marker only; nothing to record.

		case lex.KindLongFlag:
			if err := m.resolveLong(tok); err != nil {
				return nil, err
			}

		case lex.KindShortCluster:
			if err := m.resolveShortCluster(tok); err != nil {
				return nil, err
			}

		case lex.KindPositional, lex.KindStdin:
			sub, err := m.resolvePositional(tok, argv)
			if err != nil {
				return nil, err
			}
			if sub != nil {
				acc.Finalize(app)
				return &Result{App: app, Acc: acc, Subcommand: sub}, nil
			}
		}
	}

	acc.Finalize(app)
	return &Result{App: app, Acc: acc}, nil
}

type matcher struct {
	app      *model.App
	acc      *accum.Accumulator
	argv     []string
	awaiting *model.Arg

	positionalIdx int
	anyPositional bool
}

// continuesGathering decides, per the hyphen-leading-value boundary rule,
// whether tok should be fed to the option currently awaiting values rather
// than resolved fresh. A token produced after a "--" escape is never
// subject to this check: it is always delivered as-is.
func (m *matcher) continuesGathering(tok lex.Token) bool {
	arg := m.awaiting
	if len(m.acc.Values(arg.ID)) >= effectiveCap(arg) {
		return false
	}
	if tok.Kind == lex.KindValueEscape {
		return false
	}
	if m.postEscape(tok) {
		return true
	}
	if arg.RequireDelimiter && len(m.acc.Values(arg.ID)) > 0 {
		return false
	}
	if tok.Raw != "-" && tok.Raw != "--" && strings.HasPrefix(tok.Raw, "-") && !arg.AllowHyphenValues {
		return false
	}
	return true
}

func effectiveCap(arg *model.Arg) int {
	max := arg.EffectiveMaxValues()
	if max < 0 {
		return 1 << 30
	}
	return max
}

// postEscape reports whether tok was produced after a "--" escape. The
// token's own shape cannot tell: the lexer also emits hyphen-leading
// barewords such as "-2" (when '2' is not a declared short) as plain
// positionals before any escape. So it looks back through argv for a "--"
// ahead of tok's position, the same element the lexer treats as the escape.
func (m *matcher) postEscape(tok lex.Token) bool {
	for i := 1; i < tok.Pos && i < len(m.argv); i++ {
		if m.argv[i] == "--" {
			return true
		}
	}
	return false
}

func (m *matcher) consumeGathered(tok lex.Token) *perr.Error {
	arg := m.awaiting
	value := tok.Raw
	if err := m.pushSplit(arg, value, accum.OriginCLI); err != nil {
		return err
	}
	if arg.RequireDelimiter || len(m.acc.Values(arg.ID)) >= effectiveCap(arg) {
		m.awaiting = nil
	}
	return nil
}

// pushSplit pushes value into arg's accumulator entry, splitting on the
// configured delimiter first when UseDelimiter is set.
func (m *matcher) pushSplit(arg *model.Arg, value string, origin accum.Origin) *perr.Error {
	pieces := []string{value}
	if arg.UseDelimiter {
		pieces = strings.Split(value, string(arg.Delimiter))
	}
	for _, p := range pieces {
		err := m.acc.Push(arg.ID, p, origin, arg.ForbidEmptyValues, arg.EffectiveMaxValues())
		if err == accum.ErrEmptyValue {
			return perr.New(perr.EmptyValue,
				fmt.Sprintf("The argument '%s' requires a value but none was supplied", arg.CanonicalToken()),
				m.usageLine(""))
		}
		if err == accum.ErrMaxValues {
			return perr.New(perr.TooManyValues,
				fmt.Sprintf("The argument '%s' was provided more than the maximum number of values", arg.CanonicalToken()),
				m.usageLine(""))
		}
	}
	return nil
}

// builtinSignal reports whether arg is one of the auto-registered
// --help/--version flags, returning the short-circuiting non-failure error
// that should abort matching the instant it occurs. Ordinary flags yield nil.
func builtinSignal(app *model.App, arg *model.Arg) *perr.Error {
	switch {
	case arg.BuiltinHelp:
		return &perr.Error{Kind: perr.HelpDisplayed, TargetApp: app}
	case arg.BuiltinVersion:
		return &perr.Error{Kind: perr.VersionDisplayed, TargetApp: app}
	default:
		return nil
	}
}

func (m *matcher) resolveLong(tok lex.Token) *perr.Error {
	arg, candidates, ok := m.app.ResolveLong(tok.Name)
	if !ok {
		return m.unknownLong(tok, candidates)
	}

	if arg.Kind == model.KindFlag {
		if tok.InlineValue != nil {
			return perr.New(perr.UnknownArgument,
				fmt.Sprintf("The argument '--%s' does not take a value but one was supplied: '%s'", tok.Name, *tok.InlineValue),
				m.usageLine(""))
		}
		m.acc.Occurrence(arg.ID, tok.Pos)
		return builtinSignal(m.app, arg)
	}

	if arg.RequireEquals && tok.InlineValue == nil {
		if arg.EffectiveMinValues() > 0 {
			return perr.New(perr.NoEquals,
				fmt.Sprintf("Equal sign is needed when assigning values to '%s'.", arg.RequireEqualsToken()),
				m.usageLine(""))
		}
		// min_values=0 means nothing requires an equals sign here: a bare
		// "--config" with no "=value" at all is a valid zero-value
		// occurrence, left for the Accumulator's default-missing pass.
		m.acc.Occurrence(arg.ID, tok.Pos)
		return builtinSignal(m.app, arg)
	}

	m.acc.Occurrence(arg.ID, tok.Pos)
	if tok.InlineValue != nil {
		if err := m.pushSplit(arg, *tok.InlineValue, accum.OriginCLI); err != nil {
			return err
		}
		m.awaiting = nil
		return nil
	}
	m.awaiting = arg
	return nil
}

func (m *matcher) unknownLong(tok lex.Token, candidates []string) *perr.Error {
	if len(candidates) > 1 {
		ranked := suggest.Ranked(tok.Name, candidates, len(candidates))
		if len(ranked) == 0 {
			ranked = candidates
		}
		return &perr.Error{
			Kind:       perr.UnknownArgument,
			Message:    fmt.Sprintf("'--%s' is ambiguous", tok.Name),
			Hints:      []string{"Did you mean one of: " + strings.Join(ranked, ", ") + "?"},
			UsageLines: []string{m.usageLine("")},
		}
	}
	best, ok := suggest.Best(tok.Name, m.app.AllLongNames())
	e := &perr.Error{
		Kind:       perr.UnknownArgument,
		Message:    fmt.Sprintf("Found argument '--%s' which wasn't expected, or isn't valid in this context", tok.Name),
		UsageLines: nil,
	}
	escapeHint := fmt.Sprintf("If you tried to supply `--%s` as a value rather than a flag, use `-- --%s`", tok.Name, tok.Name)
	if ok {
		e.Suggestion = best
		if suggested, found := m.app.ArgByLong(best); found {
			e.Hints = []string{fmt.Sprintf("Did you mean '%s'?", suggested.CanonicalToken()), escapeHint}
			e.UsageLines = []string{m.usageLine(suggested.UsageSnippet())}
		} else {
			e.Hints = []string{fmt.Sprintf("Did you mean '--%s'?", best), escapeHint}
		}
	} else {
		e.Hints = []string{escapeHint}
	}
	if len(e.UsageLines) == 0 {
		e.UsageLines = []string{m.usageLine("")}
	}
	return e
}

func (m *matcher) resolveShortCluster(tok lex.Token) *perr.Error {
	chars := tok.Chars
	for idx := 0; idx < len(chars); idx++ {
		r := chars[idx]
		arg, ok := m.app.ResolveShort(r)
		if !ok {
			return &perr.Error{
				Kind:       perr.UnknownArgument,
				Message:    fmt.Sprintf("Found argument '-%c' which wasn't expected, or isn't valid in this context", r),
				UsageLines: []string{m.usageLine("")},
			}
		}

		if arg.Kind == model.KindFlag {
			m.acc.Occurrence(arg.ID, tok.Pos)
			if sig := builtinSignal(m.app, arg); sig != nil {
				return sig
			}
			continue
		}

		m.acc.Occurrence(arg.ID, tok.Pos)
		remainder := strings.TrimPrefix(string(chars[idx+1:]), "=")
		if remainder != "" {
			if err := m.pushSplit(arg, remainder, accum.OriginCLI); err != nil {
				return err
			}
			m.awaiting = nil
		} else {
			m.awaiting = arg
		}
		return nil
	}
	return nil
}

func (m *matcher) resolvePositional(tok lex.Token, argv []string) (*Result, *perr.Error) {
	value := tok.Value

	if !m.anyPositional && !m.postEscape(tok) {
		if sub, ok := m.app.Subcommand(value); ok {
			childArgv := append([]string{value}, argv[tok.Pos+1:]...)
			res, err := Run(sub, childArgv)
			if err != nil {
				return nil, err
			}
			return res, nil
		}
	}

	positionals := m.app.Positionals()
	if m.positionalIdx >= len(positionals) {
		e := &perr.Error{
			Kind:       perr.UnknownArgument,
			Message:    fmt.Sprintf("Found argument '%s' which wasn't expected, or isn't valid in this context", value),
			UsageLines: []string{m.usageLine("")},
		}
		if !m.anyPositional {
			if hint, ok := m.subcommandHint(value); ok {
				e.Hints = []string{hint}
			}
		}
		return nil, e
	}

	posArg := positionals[m.positionalIdx]
	m.acc.Occurrence(posArg.ID, tok.Pos)
	if err := m.pushSplit(posArg, value, accum.OriginCLI); err != nil {
		return nil, err
	}
	m.anyPositional = true

	if len(m.acc.Values(posArg.ID)) >= effectiveCap(posArg) {
		m.positionalIdx++
	} else {
		m.awaiting = posArg
	}
	return nil, nil
}

// subcommandHint ranks value against the App's declared subcommand names
// and returns a "Did you mean" hint for the top-scoring candidate, when
// the App has any subcommands to suggest at all.
func (m *matcher) subcommandHint(value string) (string, bool) {
	names := make([]string, 0, len(m.app.Subcommands))
	for _, sub := range m.app.Subcommands {
		names = append(names, sub.Name)
	}
	if len(names) == 0 {
		return "", false
	}
	ranked := subcommandMatcher.MatchMultiple(value, names)
	if len(ranked) == 0 {
		return "", false
	}
	return fmt.Sprintf("Did you mean subcommand '%s'?", ranked[0].Target), true
}

// usageLine builds the USAGE: line for an error. focus, when non-empty, is
// appended verbatim after the binary name in place of the App's generic
// required-surface summary: used only when a diagnosis is scoped to one
// specific argument, such as an unknown-flag suggestion.
func (m *matcher) usageLine(focus string) string {
	if focus != "" {
		return m.app.BinName + " " + focus
	}
	return m.app.RequiredSurfaceUsageLine()
}
