package style

import (
	"strings"
	"testing"
)

func TestErrorPreservesLineCount(t *testing.T) {
	rendered := "error: bad thing\n\n\tDid you mean 'x'?\n\nUSAGE:\n    app <x>\n\nFor more information try --help\n"
	got := Error(rendered)
	if strings.Count(got, "\n") != strings.Count(rendered, "\n") {
		t.Errorf("Error() changed line count: got %d newlines, want %d", strings.Count(got, "\n"), strings.Count(rendered, "\n"))
	}
}

func TestErrorLeavesClosingLineUnchanged(t *testing.T) {
	rendered := "error: bad thing\n\nUSAGE:\n    app <x>\n\nFor more information try --help\n"
	got := Error(rendered)
	if !strings.Contains(got, "For more information try --help") {
		t.Errorf("Error() = %q, want the fixed closing line preserved verbatim", got)
	}
}

func TestErrorKeepsMessageTextRecognizable(t *testing.T) {
	rendered := "error: The argument '--a' cannot be used with '--b'\n\nUSAGE:\n    app\n\nFor more information try --help\n"
	got := Error(rendered)
	if !strings.Contains(got, "The argument '--a' cannot be used with '--b'") {
		t.Errorf("Error() = %q, want the message text still present (styling must not corrupt content)", got)
	}
}

func TestHelpWrapsToRequestedWidth(t *testing.T) {
	rendered := "app\n\nUSAGE:\n    app [OPTIONS]\n"
	got := Help(rendered, 40)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 40 {
			t.Errorf("Help() produced a line longer than the requested width: %q (%d chars)", line, len(line))
		}
	}
}

func TestHelpZeroWidthFallsBackToTerminalWidth(t *testing.T) {
	rendered := "app\n\nUSAGE:\n    app [OPTIONS]\n"
	// Must not panic and must return non-empty text when width is
	// unspecified; the exact fallback column count depends on the
	// environment's terminal, which is not asserted here.
	got := Help(rendered, 0)
	if got == "" {
		t.Error("Help() with width=0 returned empty text")
	}
}

func TestTerminalWidthHasASaneFallback(t *testing.T) {
	w := TerminalWidth()
	if w <= 0 {
		t.Errorf("TerminalWidth() = %d, want a positive width", w)
	}
}
