package cliarg

import "cliarg/internal/model"

// Group is the fluent builder for a named set of Args sharing cardinality
// rules. Membership is declared here, via Args, which is what Freeze and
// the validator actually consult.
type Group struct {
	m *model.ArgGroup
}

// Args declares the member Arg ids. Call after every member has been
// declared with App.Arg, since Freeze checks each id exists.
func (g *Group) Args(ids ...string) *Group {
	g.m.Args = append(g.m.Args, ids...)
	return g
}

// Required demands at least one member be present.
func (g *Group) Required() *Group {
	g.m.Required = true
	return g
}

// Multiple permits more than one member to be present at once. Without
// it, two present members is an ArgumentConflict.
func (g *Group) Multiple() *Group {
	g.m.Multiple = true
	return g
}
