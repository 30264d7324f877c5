package cliarg

import (
	"cliarg/internal/envsource"
	"cliarg/internal/model"
)

// App is the fluent builder and parse entry point for one command (or one
// level of a subcommand tree). The zero value is not usable; construct one
// with NewApp.
type App struct {
	m *model.App

	noHelpFlag    bool
	noVersionFlag bool
	env           *envsource.Source

	parent   *App
	children []*App
}

// NewApp creates a new App named name. The name also becomes the default
// binary name shown in usage lines; override it with Bin if argv[0] should
// not be trusted (tests, or a renamed binary).
func NewApp(name string) *App {
	return &App{m: model.NewApp(name)}
}

// Bin overrides the binary name shown in USAGE: lines.
func (a *App) Bin(name string) *App {
	a.m.BinName = name
	return a
}

// Version sets the string reported by the auto-registered --version flag.
func (a *App) Version(v string) *App {
	a.m.Version = v
	return a
}

// About sets the one-line description shown in generated help.
func (a *App) About(text string) *App {
	a.m.About = text
	return a
}

// InferLongArgs enables unambiguous-prefix resolution of long flags, so
// "--verb" matches a sole "--verbose" declaration.
func (a *App) InferLongArgs() *App {
	a.m.Settings.InferLongArgs = true
	return a
}

// SubcommandsNegateReqs marks that a subcommand invocation relieves the
// parent App of its own required-argument obligations.
func (a *App) SubcommandsNegateReqs() *App {
	a.m.Settings.SubcommandsNegateReqs = true
	return a
}

// DeriveDisplayOrder sorts help entries by each Arg's DisplayOrder instead
// of alphabetically. Args with no explicit DisplayOrder get one from
// declaration order; an explicit DisplayOrder is kept.
func (a *App) DeriveDisplayOrder() *App {
	a.m.Settings.DeriveDisplayOrder = true
	return a
}

// NextHelpHeading applies heading to every Arg declared after this call,
// until changed again.
func (a *App) NextHelpHeading(heading string) *App {
	a.m.SetNextHelpHeading(heading)
	return a
}

// NextDisplayOrder applies order to every Arg declared after this call,
// until changed again.
func (a *App) NextDisplayOrder(order int) *App {
	a.m.SetNextDisplayOrder(order)
	return a
}

// WithEnvSource attaches the environment/config-file default resolver
// consulted for Args that declare Env(name) or that the caller otherwise
// wants resolved against it. Without one, only CLI values and declared
// Default()s are ever seen.
func (a *App) WithEnvSource(s *envsource.Source) *App {
	a.env = s
	return a
}

// DisableHelpFlag suppresses the auto-registered --help/-h flag.
func (a *App) DisableHelpFlag() *App {
	a.noHelpFlag = true
	return a
}

// DisableVersionFlag suppresses the auto-registered --version/-V flag.
func (a *App) DisableVersionFlag() *App {
	a.noVersionFlag = true
	return a
}

// Arg declares a new argument identified by id and returns its builder.
// Kind defaults to KindOption (TakesValue) until Flag() or Positional() is
// called on the returned builder.
func (a *App) Arg(id string) *Arg {
	m := &model.Arg{ID: id, Kind: model.KindOption, TakesValue: true}
	a.m.AddArg(m)
	return &Arg{m: m}
}

// Group declares a named set of Args with shared cardinality rules.
func (a *App) Group(id string) *Group {
	m := &model.ArgGroup{ID: id}
	a.m.AddGroup(m)
	return &Group{m: m}
}

// Subcommand declares a child App, selected when its name is seen as the
// first positional token of the parent.
func (a *App) Subcommand(name string) *App {
	child := &App{m: model.NewApp(name), env: a.env, parent: a}
	a.m.AddSubcommand(child.m)
	a.children = append(a.children, child)
	return child
}

// registerBuiltins adds --help/-h and --version/-V unless disabled, and
// recurses into subcommands. Freeze calls this once per App before
// delegating to the model's own Freeze.
func (a *App) registerBuiltins() {
	if !a.noHelpFlag {
		if _, ok := a.m.Arg("help"); !ok {
			a.m.AddArg(&model.Arg{
				ID: "help", Long: "help", Short: 'h', Kind: model.KindFlag,
				About: "Print help information", BuiltinHelp: true,
			})
		}
	}
	if a.m.Version != "" && !a.noVersionFlag {
		if _, ok := a.m.Arg("version"); !ok {
			a.m.AddArg(&model.Arg{
				ID: "version", Long: "version", Short: 'V', Kind: model.KindFlag,
				About: "Print version information", BuiltinVersion: true,
			})
		}
	}
	for _, child := range a.children {
		child.registerBuiltins()
	}
}
