// Package style provides optional ANSI presentation for the plain-text
// error and help schemas the core engine commits to. The engine itself
// never imports this package: §1 places coloring and layout outside the
// parser's contract, and §6 only specifies the plain text. This is the
// bundled, swappable presentation layer callers may opt into on top of
// that plain text, in the spirit of the teacher's own internal/ui color
// helpers.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

var (
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
)

// TerminalWidth reports the current stdout terminal width, falling back
// to 80 columns when stdout is not a terminal (piped output, tests).
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// Error colorizes a canonical ParseError rendering: the leading "error:"
// line in bold red, hint lines in yellow, and the "USAGE:" header in
// cyan. Every other line, including the fixed closing line, passes
// through unchanged so the bit-exact schema stays intact once color
// codes are stripped.
func Error(rendered string) string {
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "error: "):
			lines[i] = errorStyle.Render("error:") + line[len("error:"):]
		case strings.HasPrefix(line, "\t"):
			lines[i] = hintStyle.Render(line)
		case line == "USAGE:":
			lines[i] = headerStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Help colorizes a canonical Help rendering's section headers
// (USAGE:, ARGS:, OPTIONS:, and any custom heading) and wraps lines
// wider than width, 0 meaning TerminalWidth().
func Help(rendered string, width int) string {
	if width <= 0 {
		width = TerminalWidth()
	}
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && strings.HasSuffix(trimmed, ":") && trimmed == strings.ToUpper(trimmed) && line == trimmed {
			lines[i] = headerStyle.Render(line)
		}
	}
	return wordwrap.String(strings.Join(lines, "\n"), width)
}
