package render

import (
	"strings"
	"testing"

	"cliarg/internal/model"
)

func TestVersion(t *testing.T) {
	app := model.NewApp("app")
	app.Version = "1.2.3"
	if got, want := Version(app), "app 1.2.3\n"; got != want {
		t.Errorf("Version() = %q, want %q", got, want)
	}
}

func TestHelpBannerWithVersionAndAbout(t *testing.T) {
	app := model.NewApp("app")
	app.Version = "1.0.0"
	app.About = "does things"
	app.Freeze()

	got := Help(app)
	if !strings.HasPrefix(got, "app 1.0.0\n\ndoes things\n\nUSAGE:\n") {
		t.Errorf("Help() banner = %q, want it to start with name/version/about/USAGE", got)
	}
}

func TestHelpBannerWithoutVersion(t *testing.T) {
	app := model.NewApp("app")
	app.Freeze()

	got := Help(app)
	if !strings.HasPrefix(got, "app\n\nUSAGE:\n") {
		t.Errorf("Help() = %q, want it to start with bare name when Version is unset", got)
	}
}

func TestHelpListsPositionalsUnderArgs(t *testing.T) {
	app := model.NewApp("app")
	app.AddArg(&model.Arg{ID: "file", Kind: model.KindPositional, ValueName: "file", About: "input file"})
	app.Freeze()

	got := Help(app)
	if !strings.Contains(got, "ARGS:\n    <file>    input file\n") {
		t.Errorf("Help() = %q, want an ARGS: section listing <file>", got)
	}
}

func TestHelpGroupsOptionsByHeading(t *testing.T) {
	app := model.NewApp("app")
	app.AddArg(&model.Arg{ID: "verbose", Kind: model.KindFlag, Long: "verbose"})
	app.SetNextHelpHeading("Network")
	app.AddArg(&model.Arg{ID: "timeout", Kind: model.KindOption, Long: "timeout", TakesValue: true, ValueName: "secs"})
	app.Freeze()

	got := Help(app)
	if !strings.Contains(got, "\nOPTIONS:\n") {
		t.Errorf("Help() = %q, want a default OPTIONS: section for the unheaded flag", got)
	}
	if !strings.Contains(got, "\nNETWORK:\n") {
		t.Errorf("Help() = %q, want a NETWORK: section for the headed option", got)
	}
	if !strings.Contains(got, "--timeout <SECS>") {
		t.Errorf("Help() = %q, want the option's value name uppercased", got)
	}
}

func TestHelpShortAndLongTogether(t *testing.T) {
	app := model.NewApp("app")
	app.AddArg(&model.Arg{ID: "output", Kind: model.KindOption, Short: 'o', Long: "output", TakesValue: true, ValueName: "file"})
	app.Freeze()

	got := Help(app)
	if !strings.Contains(got, "-o, --output <FILE>") {
		t.Errorf("Help() = %q, want combined short/long entry", got)
	}
}

func TestHelpShortOnly(t *testing.T) {
	app := model.NewApp("app")
	app.AddArg(&model.Arg{ID: "verbose", Kind: model.KindFlag, Short: 'v'})
	app.Freeze()

	got := Help(app)
	if !strings.Contains(got, "    -v\n") {
		t.Errorf("Help() = %q, want a bare '-v' entry", got)
	}
}

func TestWriteEntriesAlignsByDisplayWidth(t *testing.T) {
	var b strings.Builder
	writeEntries(&b, []entry{
		{left: "-v", about: "verbose"},
		{left: "--output <FILE>", about: "output path"},
	})
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), b.String())
	}
	// Both "about" columns should start at the same character offset.
	idxA := strings.Index(lines[0], "verbose")
	idxB := strings.Index(lines[1], "output path")
	if idxA != idxB {
		t.Errorf("about columns not aligned: %d vs %d in %q", idxA, idxB, lines)
	}
}

func TestSortEntriesByDeclarationOrderWhenDerived(t *testing.T) {
	entries := []entry{
		{left: "zzz", order: 2},
		{left: "aaa", order: 1},
	}
	sortEntries(entries, true)
	if entries[0].left != "aaa" || entries[1].left != "zzz" {
		t.Errorf("sortEntries(byDeclarationOrder=true) = %v, want declaration order", entries)
	}
}

func TestSortEntriesAlphabeticalByDefault(t *testing.T) {
	entries := []entry{
		{left: "zzz", order: 1},
		{left: "aaa", order: 2},
	}
	sortEntries(entries, false)
	if entries[0].left != "aaa" || entries[1].left != "zzz" {
		t.Errorf("sortEntries(byDeclarationOrder=false) = %v, want alphabetical order", entries)
	}
}
