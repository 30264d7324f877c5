// Package model describes the immutable, builder-assembled shape of a
// command line application: its arguments, groups and subcommands.
//
// A Model is mutated freely while an application is being declared and
// becomes read-only the moment Freeze is called (which happens exactly
// once, lazily, on first parse). Every other package in this module treats
// a frozen App as a value type it may share across goroutines.
package model

import (
	"fmt"
	"sort"
)

// Kind discriminates the three shapes an Arg can take.
type Kind int

const (
	// KindFlag takes no value; its presence alone is the signal.
	KindFlag Kind = iota
	// KindOption takes one or more values, addressed by --long/-short.
	KindOption
	// KindPositional is addressed purely by position in the remaining
	// (non-option) tokens.
	KindPositional
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// Arg is a single declared argument: flag, option, or positional. All three
// share one record with a Kind discriminator rather than a type hierarchy,
// since the capability set the matcher queries is small and flat.
type Arg struct {
	ID      string
	Short   rune // 0 means "no short form"
	Long    string
	Aliases []string
	Kind    Kind

	TakesValue        bool
	MultipleValues    bool
	NumberOfValues    *int
	MinValues         *int
	MaxValues         *int
	UseDelimiter      bool
	Delimiter         rune
	RequireDelimiter  bool
	RequireEquals     bool
	AllowHyphenValues bool
	ForbidEmptyValues bool

	DefaultValue        *string
	DefaultMissingValue *string
	EnvVar              string

	Required      bool
	ConflictsWith []string
	Requires      []string
	Groups        []string

	HelpHeading  string
	DisplayOrder int
	ValueName    string
	About        string

	// PositionalIndex orders Kind == KindPositional args. Freeze sorts them
	// by any index the caller set (ties keep declaration order) and then
	// renumbers them 0, 1, 2, ... Zero-valued otherwise.
	PositionalIndex int

	// BuiltinHelp/BuiltinVersion mark the auto-registered --help/-h and
	// --version/-V flags (see App.DisableHelpFlag/DisableVersionFlag). Matching
	// one short-circuits the parse with HelpDisplayed/VersionDisplayed
	// instead of running validation.
	BuiltinHelp    bool
	BuiltinVersion bool
}

// EffectiveMaxValues returns the most specific upper bound implied by
// NumberOfValues/MaxValues, or -1 when there is none.
func (a *Arg) EffectiveMaxValues() int {
	if a.NumberOfValues != nil {
		return *a.NumberOfValues
	}
	if a.MaxValues != nil {
		return *a.MaxValues
	}
	if !a.MultipleValues && a.TakesValue {
		return 1
	}
	return -1
}

// EffectiveMinValues returns the lower bound on collected values.
func (a *Arg) EffectiveMinValues() int {
	if a.NumberOfValues != nil {
		return *a.NumberOfValues
	}
	if a.MinValues != nil {
		return *a.MinValues
	}
	if a.TakesValue {
		return 1
	}
	return 0
}

// CanonicalToken renders the Arg the way usage lines and error messages
// refer to it: "--delete" for a long-capable option/flag, "-x" when only a
// short form exists, "<base>" for a positional.
func (a *Arg) CanonicalToken() string {
	switch a.Kind {
	case KindPositional:
		name := a.ValueName
		if name == "" {
			name = a.ID
		}
		return "<" + name + ">"
	default:
		if a.Long != "" {
			return "--" + a.Long
		}
		if a.Short != 0 {
			return "-" + string(a.Short)
		}
		return a.ID
	}
}

// UsageSnippet renders the piece of a USAGE: line that describes this Arg on
// its own: "--option <opt>..." for a multi-valued option, "<base>" for a
// positional, with an ellipsis appended whenever more than one value may be
// collected.
func (a *Arg) UsageSnippet() string {
	if a.Kind == KindPositional {
		tok := a.CanonicalToken()
		if a.MultipleValues {
			tok += "..."
		}
		return tok
	}
	tok := a.CanonicalToken()
	if a.TakesValue {
		name := a.ValueName
		if name == "" {
			name = a.ID
		}
		tok += " <" + name + ">"
		if a.MultipleValues {
			tok += "..."
		}
	}
	return tok
}

// RequireEqualsToken renders the "--name=<value>" form shown in the
// require-equals diagnostic.
func (a *Arg) RequireEqualsToken() string {
	name := a.ValueName
	if name == "" {
		name = a.ID
	}
	return a.CanonicalToken() + "=<" + name + ">"
}

// ArgGroup is a named set of Args with cardinality rules. A group id may
// also be queried as if it were an argument id (see the root package's
// ArgMatches).
type ArgGroup struct {
	ID       string
	Args     []string
	Required bool
	Multiple bool
}

// Settings holds the App-level configuration switches from the builder
// surface (see the Settings table in the parser's reference docs).
type Settings struct {
	InferLongArgs         bool
	SubcommandsNegateReqs bool
	DeriveDisplayOrder    bool
}

// App is a named unit holding args, groups and child subcommands. It is
// mutated by the builder, then frozen once before the first parse.
type App struct {
	Name    string
	BinName string
	Version string
	About   string

	Args        []*Arg
	Groups      []*ArgGroup
	Subcommands []*App
	Settings    Settings

	nextHelpHeading  string
	nextDisplayOrder int
	displayCounter   int

	frozen bool

	byID      map[string]*Arg
	byLong    map[string]*Arg // long name or alias -> Arg
	byShort   map[rune]*Arg
	byGroup   map[string]*ArgGroup
	subByName map[string]*App

	positionals []*Arg // ordered by PositionalIndex

	// conflicts is the symmetric closure of every Arg's ConflictsWith,
	// computed once at freeze time so the validator never has to walk
	// the raw declarations twice.
	conflicts map[string]map[string]bool
}

// NewApp creates an empty, mutable App description.
func NewApp(name string) *App {
	return &App{
		Name:    name,
		BinName: name,
		byGroup: map[string]*ArgGroup{},
	}
}

// SetNextHelpHeading applies a default help heading to Args declared after
// this call until changed again (NextHelpHeading builder setting).
func (a *App) SetNextHelpHeading(heading string) { a.nextHelpHeading = heading }

// SetNextDisplayOrder applies a default display-order counter to Args
// declared after this call (NextDisplayOrder builder setting).
func (a *App) SetNextDisplayOrder(order int) { a.nextDisplayOrder = order }

// AddArg appends an Arg declaration, applying any pending heading/order
// defaults that have not been explicitly overridden by the caller.
func (a *App) AddArg(arg *Arg) *Arg {
	if arg.HelpHeading == "" {
		arg.HelpHeading = a.nextHelpHeading
	}
	if arg.DisplayOrder == 0 {
		if a.nextDisplayOrder != 0 {
			arg.DisplayOrder = a.nextDisplayOrder
		} else {
			a.displayCounter++
			arg.DisplayOrder = a.displayCounter
		}
	}
	a.Args = append(a.Args, arg)
	a.frozen = false
	return arg
}

// AddGroup appends an ArgGroup declaration.
func (a *App) AddGroup(g *ArgGroup) *ArgGroup {
	a.Groups = append(a.Groups, g)
	a.frozen = false
	return g
}

// AddSubcommand registers a child App, invoked when its name is seen as
// the first positional token.
func (a *App) AddSubcommand(child *App) *App {
	a.Subcommands = append(a.Subcommands, child)
	a.frozen = false
	return child
}

// misuse is raised for programmer errors in the model itself: these abort
// the program rather than surface as a parse error, matching the build-time
// misuse contract.
func misuse(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}

// Freeze validates the model and builds the lookup tables the matcher and
// validator rely on. It is idempotent and safe to call from multiple
// goroutines holding distinct *App values built from the same builder
// sequence, but a single *App must be frozen before it is shared.
func (a *App) Freeze() *App {
	if a.frozen {
		return a
	}

	a.byID = make(map[string]*Arg, len(a.Args))
	a.byLong = make(map[string]*Arg, len(a.Args))
	a.byShort = make(map[rune]*Arg, len(a.Args))
	a.byGroup = make(map[string]*ArgGroup, len(a.Groups))
	a.subByName = make(map[string]*App, len(a.Subcommands))
	a.positionals = nil

	for _, arg := range a.Args {
		if _, dup := a.byID[arg.ID]; dup {
			misuse("Argument id '%s' is already in use", arg.ID)
		}
		a.byID[arg.ID] = arg

		if arg.Long != "" {
			a.byLong[arg.Long] = arg
		}
		for _, alias := range arg.Aliases {
			a.byLong[alias] = arg
		}
		if arg.Short != 0 {
			a.byShort[arg.Short] = arg
		}
		if arg.Kind == KindPositional {
			a.positionals = append(a.positionals, arg)
		}
	}

	sort.SliceStable(a.positionals, func(i, j int) bool {
		return a.positionals[i].PositionalIndex < a.positionals[j].PositionalIndex
	})
	for i, p := range a.positionals {
		p.PositionalIndex = i
	}

	for _, g := range a.Groups {
		if _, dup := a.byGroup[g.ID]; dup {
			misuse("Argument group name must be unique\n\n\t'%s' is already in use", g.ID)
		}
		if _, clash := a.byID[g.ID]; clash {
			misuse("Argument group name '%s' must not conflict with argument name", g.ID)
		}
		a.byGroup[g.ID] = g
		for _, member := range g.Args {
			if _, ok := a.byID[member]; !ok {
				misuse("Argument group '%s' contains non-existent argument", g.ID)
			}
		}
	}

	// An Arg naming a group via Groups that collides with another arg id
	// is the same misuse, just discovered from the other direction.
	for _, arg := range a.Args {
		for _, gid := range arg.Groups {
			if gid == arg.ID {
				continue
			}
			if _, isArg := a.byID[gid]; isArg {
				misuse("Argument group name '%s' must not conflict with argument name", gid)
			}
		}
	}

	a.conflicts = make(map[string]map[string]bool, len(a.Args))
	addConflict := func(x, y string) {
		if a.conflicts[x] == nil {
			a.conflicts[x] = map[string]bool{}
		}
		a.conflicts[x][y] = true
	}
	for _, arg := range a.Args {
		for _, other := range arg.ConflictsWith {
			addConflict(arg.ID, other)
			addConflict(other, arg.ID)
		}
	}

	for _, child := range a.Subcommands {
		a.subByName[child.Name] = child.Freeze()
	}

	a.frozen = true
	return a
}

// Arg looks up a declared argument by id.
func (a *App) Arg(id string) (*Arg, bool) {
	arg, ok := a.byID[id]
	return arg, ok
}

// Group looks up a declared group by id.
func (a *App) Group(id string) (*ArgGroup, bool) {
	g, ok := a.byGroup[id]
	return g, ok
}

// Positionals returns the declared positionals in index order.
func (a *App) Positionals() []*Arg { return a.positionals }

// Subcommand looks up a child App by its declared name.
func (a *App) Subcommand(name string) (*App, bool) {
	sub, ok := a.subByName[name]
	return sub, ok
}

// ResolveLong resolves a long flag name to an Arg, first by exact match or
// alias, then (if enabled) by unambiguous prefix. It returns the matched
// Arg, the list of candidate longs when the match was ambiguous, and
// whether any match was found at all.
func (a *App) ResolveLong(name string) (arg *Arg, candidates []string, ok bool) {
	if arg, ok := a.byLong[name]; ok {
		return arg, nil, true
	}
	if !a.Settings.InferLongArgs {
		return nil, nil, false
	}
	var matches []*Arg
	var names []string
	for long, candidate := range a.byLong {
		if len(long) > len(name) && long[:len(name)] == name {
			matches = append(matches, candidate)
			names = append(names, long)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil, true
	}
	if len(matches) > 1 {
		sort.Strings(names)
		return nil, names, false
	}
	return nil, nil, false
}

// ResolveShort resolves a single short-flag rune.
func (a *App) ResolveShort(r rune) (*Arg, bool) {
	arg, ok := a.byShort[r]
	return arg, ok
}

// ArgByLong looks up an Arg by its exact long name or alias, used to turn a
// suggestion candidate (itself drawn from AllLongNames) back into an Arg.
func (a *App) ArgByLong(name string) (*Arg, bool) {
	arg, ok := a.byLong[name]
	return arg, ok
}

// AllLongNames returns every declared long name and alias, used as the
// candidate pool for "did you mean" suggestions.
func (a *App) AllLongNames() []string {
	names := make([]string, 0, len(a.byLong))
	for name := range a.byLong {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SymmetricConflicts returns the set of ids that conflict with id.
func (a *App) SymmetricConflicts(id string) map[string]bool {
	return a.conflicts[id]
}

// GroupsContaining returns every group that lists id as a member.
func (a *App) GroupsContaining(id string) []*ArgGroup {
	var out []*ArgGroup
	for _, g := range a.Groups {
		for _, m := range g.Args {
			if m == id {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
