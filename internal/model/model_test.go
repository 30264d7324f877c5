package model

import (
	"strings"
	"testing"
)

func intp(n int) *int { return &n }

func TestEffectiveMinMaxValues(t *testing.T) {
	tests := []struct {
		name    string
		arg     Arg
		wantMin int
		wantMax int
	}{
		{"flag takes no value", Arg{Kind: KindFlag}, 0, -1},
		{"plain option", Arg{Kind: KindOption, TakesValue: true}, 1, 1},
		{"multiple values, no bound", Arg{Kind: KindOption, TakesValue: true, MultipleValues: true}, 1, -1},
		{"explicit number_of_values", Arg{Kind: KindOption, TakesValue: true, NumberOfValues: intp(3)}, 3, 3},
		{"explicit min/max", Arg{Kind: KindOption, TakesValue: true, MinValues: intp(0), MaxValues: intp(2)}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arg.EffectiveMinValues(); got != tt.wantMin {
				t.Errorf("EffectiveMinValues() = %d, want %d", got, tt.wantMin)
			}
			if got := tt.arg.EffectiveMaxValues(); got != tt.wantMax {
				t.Errorf("EffectiveMaxValues() = %d, want %d", got, tt.wantMax)
			}
		})
	}
}

func TestCanonicalToken(t *testing.T) {
	tests := []struct {
		name string
		arg  Arg
		want string
	}{
		{"long form", Arg{Kind: KindOption, Long: "delete"}, "--delete"},
		{"short only", Arg{Kind: KindFlag, Short: 'x'}, "-x"},
		{"positional with value name", Arg{Kind: KindPositional, ValueName: "path"}, "<path>"},
		{"positional falls back to id", Arg{Kind: KindPositional, ID: "base"}, "<base>"},
		{"neither long nor short falls back to id", Arg{Kind: KindFlag, ID: "mystery"}, "mystery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arg.CanonicalToken(); got != tt.want {
				t.Errorf("CanonicalToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsageSnippet(t *testing.T) {
	tests := []struct {
		name string
		arg  Arg
		want string
	}{
		{"flag", Arg{Kind: KindFlag, Long: "verbose"}, "--verbose"},
		{"option with value", Arg{Kind: KindOption, Long: "output", TakesValue: true, ValueName: "file"}, "--output <file>"},
		{"multi-value option", Arg{Kind: KindOption, Long: "tag", TakesValue: true, MultipleValues: true, ValueName: "tag"}, "--tag <tag>..."},
		{"positional", Arg{Kind: KindPositional, ValueName: "src"}, "<src>"},
		{"multi positional", Arg{Kind: KindPositional, ValueName: "file", MultipleValues: true}, "<file>..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arg.UsageSnippet(); got != tt.want {
				t.Errorf("UsageSnippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequireEqualsToken(t *testing.T) {
	arg := Arg{Kind: KindOption, Long: "config", ValueName: "path"}
	if got, want := arg.RequireEqualsToken(), "--config=<path>"; got != want {
		t.Errorf("RequireEqualsToken() = %q, want %q", got, want)
	}
}

func TestFreezeDuplicateArgIDPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on duplicate argument id")
		}
		if !strings.Contains(r.(string), "already in use") {
			t.Errorf("panic message = %q, want mention of 'already in use'", r)
		}
	}()

	a := NewApp("app")
	a.AddArg(&Arg{ID: "name", Long: "name"})
	a.AddArg(&Arg{ID: "name", Long: "other-name"})
	a.Freeze()
}

func TestFreezeDuplicateGroupIDPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on duplicate group id")
		}
		msg := r.(string)
		if !strings.Contains(msg, "Argument group name must be unique") || !strings.Contains(msg, "'dupe' is already in use") {
			t.Errorf("panic message = %q, want the exact duplicate-group sentence", msg)
		}
	}()

	a := NewApp("app")
	a.AddGroup(&ArgGroup{ID: "dupe"})
	a.AddGroup(&ArgGroup{ID: "dupe"})
	a.Freeze()
}

func TestFreezeGroupNameConflictsWithArgPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when group id collides with an argument id")
		}
		if !strings.Contains(r.(string), "must not conflict with argument name") {
			t.Errorf("panic message = %q, want mention of argument-name conflict", r)
		}
	}()

	a := NewApp("app")
	a.AddArg(&Arg{ID: "force", Long: "force"})
	a.AddGroup(&ArgGroup{ID: "force"})
	a.Freeze()
}

func TestFreezeGroupMemberMustExist(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when a group member id is undeclared")
		}
		if !strings.Contains(r.(string), "contains non-existent argument") {
			t.Errorf("panic message = %q", r)
		}
	}()

	a := NewApp("app")
	a.AddGroup(&ArgGroup{ID: "g", Args: []string{"ghost"}})
	a.Freeze()
}

func TestFreezeIsIdempotent(t *testing.T) {
	a := NewApp("app")
	a.AddArg(&Arg{ID: "name", Long: "name"})
	a.Freeze()
	arg, ok := a.Arg("name")
	if !ok {
		t.Fatal("expected arg 'name' to resolve after first freeze")
	}
	a.Freeze()
	arg2, ok := a.Arg("name")
	if !ok || arg2 != arg {
		t.Fatal("second Freeze should be a no-op returning the same tables")
	}
}

func TestPositionalsOrderedByIndex(t *testing.T) {
	a := NewApp("app")
	a.AddArg(&Arg{ID: "second", Kind: KindPositional, PositionalIndex: 1})
	a.AddArg(&Arg{ID: "first", Kind: KindPositional, PositionalIndex: 0})
	a.Freeze()

	pos := a.Positionals()
	if len(pos) != 2 {
		t.Fatalf("expected 2 positionals, got %d", len(pos))
	}
	if pos[0].ID != "first" || pos[1].ID != "second" {
		t.Errorf("positionals not ordered by index: got [%s, %s]", pos[0].ID, pos[1].ID)
	}
}

func TestResolveLongExactAndPrefix(t *testing.T) {
	a := NewApp("app")
	a.Settings.InferLongArgs = true
	a.AddArg(&Arg{ID: "delete", Long: "delete"})
	a.AddArg(&Arg{ID: "debug", Long: "debug"})
	a.Freeze()

	if arg, _, ok := a.ResolveLong("delete"); !ok || arg.ID != "delete" {
		t.Errorf("exact match failed: arg=%v ok=%v", arg, ok)
	}

	// "del" is an unambiguous prefix of only "delete".
	if arg, cands, ok := a.ResolveLong("del"); !ok || arg == nil || arg.ID != "delete" || cands != nil {
		t.Errorf("unambiguous prefix match failed: arg=%v cands=%v ok=%v", arg, cands, ok)
	}

	// "de" is ambiguous between "delete" and "debug".
	if arg, cands, ok := a.ResolveLong("de"); ok || arg != nil || len(cands) != 2 {
		t.Errorf("ambiguous prefix should report both candidates: arg=%v cands=%v ok=%v", arg, cands, ok)
	}
}

func TestResolveLongPrefixDisabled(t *testing.T) {
	a := NewApp("app")
	a.AddArg(&Arg{ID: "delete", Long: "delete"})
	a.Freeze()

	if _, _, ok := a.ResolveLong("del"); ok {
		t.Error("prefix inference must be off by default")
	}
}

func TestSymmetricConflicts(t *testing.T) {
	a := NewApp("app")
	a.AddArg(&Arg{ID: "a", Long: "a", ConflictsWith: []string{"b"}})
	a.AddArg(&Arg{ID: "b", Long: "b"})
	a.Freeze()

	if !a.SymmetricConflicts("a")["b"] {
		t.Error("expected a to conflict with b")
	}
	if !a.SymmetricConflicts("b")["a"] {
		t.Error("expected conflict to be symmetrized onto b even though only a declared it")
	}
}

func TestGroupsContaining(t *testing.T) {
	a := NewApp("app")
	a.AddArg(&Arg{ID: "x", Long: "x"})
	a.AddGroup(&ArgGroup{ID: "g", Args: []string{"x"}})
	a.Freeze()

	groups := a.GroupsContaining("x")
	if len(groups) != 1 || groups[0].ID != "g" {
		t.Errorf("GroupsContaining(x) = %v, want [g]", groups)
	}
	if got := a.GroupsContaining("y"); len(got) != 0 {
		t.Errorf("GroupsContaining(y) = %v, want empty", got)
	}
}

func TestGroupTokenMixedMembers(t *testing.T) {
	a := NewApp("app")
	a.AddArg(&Arg{ID: "base", Kind: KindPositional, ValueName: "base"})
	a.AddArg(&Arg{ID: "delete", Kind: KindOption, Long: "delete"})
	a.AddGroup(&ArgGroup{ID: "g", Args: []string{"base", "delete"}})
	a.Freeze()

	g, _ := a.Group("g")
	if got, want := a.GroupToken(g), "<base|--delete>"; got != want {
		t.Errorf("GroupToken() = %q, want %q", got, want)
	}
}

func TestRequiredSurfaceUsageLine(t *testing.T) {
	a := NewApp("tool")
	a.AddArg(&Arg{ID: "verbose", Kind: KindFlag, Long: "verbose"})
	a.AddArg(&Arg{ID: "name", Kind: KindOption, Long: "name", TakesValue: true, Required: true, ValueName: "name"})
	a.AddArg(&Arg{ID: "file", Kind: KindPositional, ValueName: "file"})
	a.Freeze()

	got := a.RequiredSurfaceUsageLine()
	want := "tool --name <name> [OPTIONS] <file>"
	if got != want {
		t.Errorf("RequiredSurfaceUsageLine() = %q, want %q", got, want)
	}
}

func TestRequiredSurfaceUsageLineNoArgs(t *testing.T) {
	a := NewApp("tool")
	a.Freeze()
	if got, want := a.RequiredSurfaceUsageLine(), "tool"; got != want {
		t.Errorf("RequiredSurfaceUsageLine() = %q, want %q", got, want)
	}
}

func TestRequiredSurfaceUsageLineRequiredGroupCoversMembers(t *testing.T) {
	a := NewApp("tool")
	a.AddArg(&Arg{ID: "a", Kind: KindOption, Long: "a"})
	a.AddArg(&Arg{ID: "b", Kind: KindOption, Long: "b"})
	a.AddGroup(&ArgGroup{ID: "g", Required: true, Args: []string{"a", "b"}})
	a.Freeze()

	got := a.RequiredSurfaceUsageLine()
	want := "tool <--a|--b>"
	if got != want {
		t.Errorf("RequiredSurfaceUsageLine() = %q, want %q (group members must not double-count as [OPTIONS])", got, want)
	}
}
