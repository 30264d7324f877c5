// Package render produces the fixed-schema help and version text defined
// for the core engine's external interface. Actual layout, coloring, and
// terminal-width wrapping are explicitly out of the core's scope; this is
// the one plain-text rendering the schema commits to, used both for the
// auto-registered --help/-h short-circuit and for callers who want help
// text without invoking a parse.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"cliarg/internal/model"
)

// Version renders the "<bin> <version>\n" line shown by --version.
func Version(app *model.App) string {
	return fmt.Sprintf("%s %s\n", app.BinName, app.Version)
}

// Help renders the full schema: a name/version banner, USAGE:, an ARGS:
// section for positionals, and one OPTIONS: section per distinct help
// heading (the default, unheaded one labeled "OPTIONS").
func Help(app *model.App) string {
	var b strings.Builder

	if app.Version != "" {
		fmt.Fprintf(&b, "%s %s\n\n", app.BinName, app.Version)
	} else {
		fmt.Fprintf(&b, "%s\n\n", app.BinName)
	}
	if app.About != "" {
		fmt.Fprintf(&b, "%s\n\n", app.About)
	}

	fmt.Fprintf(&b, "USAGE:\n    %s\n", app.RequiredSurfaceUsageLine())

	positionals := app.Positionals()
	if len(positionals) > 0 {
		b.WriteString("\nARGS:\n")
		writeEntries(&b, positionalEntries(app, positionals))
	}

	for _, heading := range headingOrder(app) {
		label := heading
		if label == "" {
			label = "OPTIONS"
		}
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(label))
		writeEntries(&b, optionEntries(app, heading))
	}

	return b.String()
}

type entry struct {
	left  string
	about string
	order int
}

func positionalEntries(app *model.App, positionals []*model.Arg) []entry {
	out := make([]entry, 0, len(positionals))
	for _, arg := range positionals {
		out = append(out, entry{left: arg.CanonicalToken(), about: arg.About, order: arg.DisplayOrder})
	}
	sortEntries(out, app.Settings.DeriveDisplayOrder)
	return out
}

func optionEntries(app *model.App, heading string) []entry {
	var out []entry
	for _, arg := range app.Args {
		if arg.Kind == model.KindPositional || arg.HelpHeading != heading {
			continue
		}
		left := arg.Long
		if arg.Short != 0 {
			if left != "" {
				left = fmt.Sprintf("-%c, --%s", arg.Short, arg.Long)
			} else {
				left = fmt.Sprintf("-%c", arg.Short)
			}
		} else {
			left = "--" + left
		}
		if arg.TakesValue {
			name := arg.ValueName
			if name == "" {
				name = arg.ID
			}
			left += " <" + strings.ToUpper(name) + ">"
		}
		out = append(out, entry{left: left, about: arg.About, order: arg.DisplayOrder})
	}
	sortEntries(out, app.Settings.DeriveDisplayOrder)
	return out
}

func sortEntries(entries []entry, byDeclarationOrder bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if byDeclarationOrder {
			return entries[i].order < entries[j].order
		}
		return entries[i].left < entries[j].left
	})
}

// headingOrder returns each distinct HelpHeading in first-declaration
// order, with the default "" heading wherever it first appears.
func headingOrder(app *model.App) []string {
	var order []string
	seen := map[string]bool{}
	for _, arg := range app.Args {
		if arg.Kind == model.KindPositional {
			continue
		}
		if !seen[arg.HelpHeading] {
			seen[arg.HelpHeading] = true
			order = append(order, arg.HelpHeading)
		}
	}
	return order
}

// writeEntries column-aligns each entry's help text. Padding is measured
// in display cells via go-runewidth rather than bytes or runes, so a
// value name containing a wide (e.g. CJK) character still lines up.
func writeEntries(b *strings.Builder, entries []entry) {
	width := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.left); w > width {
			width = w
		}
	}
	for _, e := range entries {
		if e.about == "" {
			fmt.Fprintf(b, "    %s\n", e.left)
			continue
		}
		pad := width - runewidth.StringWidth(e.left) + 4
		fmt.Fprintf(b, "    %s%s%s\n", e.left, strings.Repeat(" ", pad), e.about)
	}
}
