package cliarg

import "cliarg/internal/model"

// Arg is the fluent builder for one declared argument. Every method
// returns the same *Arg so calls chain; the underlying model.Arg is
// mutated in place and already registered with its owning App.
type Arg struct {
	m *model.Arg
}

// Short sets the single-character form, e.g. Short('v') for -v.
func (b *Arg) Short(r rune) *Arg {
	b.m.Short = r
	return b
}

// Long sets the long form, e.g. Long("verbose") for --verbose.
func (b *Arg) Long(name string) *Arg {
	b.m.Long = name
	return b
}

// Aliases registers additional long names that resolve to this Arg.
func (b *Arg) Aliases(names ...string) *Arg {
	b.m.Aliases = append(b.m.Aliases, names...)
	return b
}

// Flag marks this Arg as a boolean flag: no value, presence is the signal.
func (b *Arg) Flag() *Arg {
	b.m.Kind = model.KindFlag
	b.m.TakesValue = false
	return b
}

// TakesValue marks this Arg as an option that consumes one or more
// following tokens as its value(s). Args default to this shape already;
// call it explicitly for readability at declaration sites.
func (b *Arg) TakesValue() *Arg {
	b.m.Kind = model.KindOption
	b.m.TakesValue = true
	return b
}

// Positional marks this Arg as addressed purely by position rather than
// by flag. index controls ordering relative to other positionals (lower
// values come first); ties fall back to declaration order.
func (b *Arg) Positional(index int) *Arg {
	b.m.Kind = model.KindPositional
	b.m.TakesValue = true
	b.m.PositionalIndex = index
	return b
}

// MultipleValues allows more than one value to be collected across
// repeated occurrences or a single multi-token gather.
func (b *Arg) MultipleValues() *Arg {
	b.m.MultipleValues = true
	return b
}

// NumberOfValues pins both the minimum and maximum collected value count
// to exactly n.
func (b *Arg) NumberOfValues(n int) *Arg {
	b.m.NumberOfValues = &n
	return b
}

// MinValues sets the minimum collected value count.
func (b *Arg) MinValues(n int) *Arg {
	b.m.MinValues = &n
	return b
}

// MaxValues sets the maximum collected value count.
func (b *Arg) MaxValues(n int) *Arg {
	b.m.MaxValues = &n
	return b
}

// UseDelimiter splits each raw token on sep before storing values, e.g.
// "-1,2,3" with UseDelimiter(',') stores three values from one token.
func (b *Arg) UseDelimiter(sep rune) *Arg {
	b.m.UseDelimiter = true
	b.m.Delimiter = sep
	return b
}

// RequireDelimiter forces value-gathering to stop after exactly one raw
// token (itself still split by the delimiter), never consuming a second
// whitespace-separated token the way ordinary multi-value gathering does.
func (b *Arg) RequireDelimiter() *Arg {
	b.m.RequireDelimiter = true
	return b
}

// RequireEquals requires "--name=value" form; "--name value" is rejected
// with a NoEquals error instead of being treated as two tokens. With
// MinValues(0), a bare "--name" is accepted as a zero-value occurrence and
// the following token is not taken as its value.
func (b *Arg) RequireEquals() *Arg {
	b.m.RequireEquals = true
	return b
}

// AllowHyphenValues permits a value beginning with '-' (such as a
// negative number) to be consumed by this Arg instead of being rejected
// by the hyphen-leading-value boundary rule.
func (b *Arg) AllowHyphenValues() *Arg {
	b.m.AllowHyphenValues = true
	return b
}

// ForbidEmptyValues rejects an explicitly empty string value ("--x=").
func (b *Arg) ForbidEmptyValues() *Arg {
	b.m.ForbidEmptyValues = true
	return b
}

// Default sets the value substituted when the Arg never occurred at all.
// Resolved lazily at query time, so a defaulted Arg's Occurrences() stays
// zero: the value came from configuration, not from the command line.
func (b *Arg) Default(value string) *Arg {
	b.m.DefaultValue = &value
	return b
}

// DefaultMissing sets the value substituted when the Arg occurred but
// collected zero values (only meaningful when MinValues is 0), e.g. a
// "--color[=WHEN]" flag used bare. Applied eagerly at Finalize, since the
// occurrence already happened.
func (b *Arg) DefaultMissing(value string) *Arg {
	b.m.DefaultMissingValue = &value
	return b
}

// Env names the environment variable consulted, via the App's attached
// envsource.Source, when the Arg never occurred on the command line.
func (b *Arg) Env(name string) *Arg {
	b.m.EnvVar = name
	return b
}

// Required marks this Arg as mandatory unless satisfied through a group
// it belongs to or relieved by SubcommandsNegateReqs.
func (b *Arg) Required() *Arg {
	b.m.Required = true
	return b
}

// ConflictsWith declares ids that must not be present alongside this Arg.
func (b *Arg) ConflictsWith(ids ...string) *Arg {
	b.m.ConflictsWith = append(b.m.ConflictsWith, ids...)
	return b
}

// Requires declares ids that must also be present whenever this Arg is.
func (b *Arg) Requires(ids ...string) *Arg {
	b.m.Requires = append(b.m.Requires, ids...)
	return b
}

// Group records, for misuse-checking, that this Arg
// belongs to the named groups. It does not by itself make the Arg a
// member for cardinality purposes — declare membership from the group
// side with Group.Args, the one source of truth Freeze and the validator
// consult.
func (b *Arg) Group(ids ...string) *Arg {
	b.m.Groups = append(b.m.Groups, ids...)
	return b
}

// HelpHeading overrides the NextHelpHeading default for this one Arg.
func (b *Arg) HelpHeading(heading string) *Arg {
	b.m.HelpHeading = heading
	return b
}

// DisplayOrder overrides the NextDisplayOrder default for this one Arg.
func (b *Arg) DisplayOrder(order int) *Arg {
	b.m.DisplayOrder = order
	return b
}

// ValueName sets the placeholder shown in usage text, e.g. "FILE" in
// "--output <FILE>". Defaults to the Arg's id when unset.
func (b *Arg) ValueName(name string) *Arg {
	b.m.ValueName = name
	return b
}

// About sets the one-line help description shown next to this Arg.
func (b *Arg) About(text string) *Arg {
	b.m.About = text
	return b
}
