// Package lex turns a raw argument vector into a stream of classified
// tokens. Classification is almost purely syntactic, but disambiguating a
// bare numeric negative ("-2") from a short cluster needs to know whether
// the first character is itself a declared short flag, so Lex accepts the
// set of declared short runes rather than being fully model-blind.
package lex

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies the shape of a classified token.
type Kind int

const (
	KindLongFlag Kind = iota
	KindShortCluster
	KindPositional
	KindValueEscape
	KindStdin
)

// Token is one classified element of the argument vector. Raw preserves
// the original text for error reporting and for the hyphen-leading value
// boundary check, which inspects the raw text regardless of Kind.
type Token struct {
	Kind Kind
	Raw  string
	Pos  int

	// KindLongFlag
	Name        string
	InlineValue *string

	// KindShortCluster: every rune after the leading '-', unsplit. A
	// literal '=' may appear among them; the matcher strips at most one
	// once it knows which short started collecting a value.
	Chars []rune

	// KindPositional / KindStdin
	Value string
}

// Lex classifies argv (argv[0] is the conventional program name and is
// skipped). shortRunes is the set of declared short flag characters,
// consulted only to decide whether an all-digit cluster like "-2" should
// be treated as a short cluster instead of a bare positional value.
func Lex(argv []string, shortRunes map[rune]bool) []Token {
	var tokens []Token
	escaped := false

	for i, raw := range argv {
		if i == 0 {
			continue
		}
		// Normalize to NFC so a short flag declared with a precomposed
		// rune still matches an equivalent decomposed sequence typed by
		// a different keyboard layout or pasted from a different source;
		// classification and scalar-codepoint short matching below both
		// assume one canonical form per character.
		raw = norm.NFC.String(raw)
		if escaped {
			tokens = append(tokens, Token{Kind: KindPositional, Raw: raw, Pos: i, Value: raw})
			continue
		}

		switch {
		case raw == "--":
			tokens = append(tokens, Token{Kind: KindValueEscape, Raw: raw, Pos: i})
			escaped = true

		case raw == "-":
			tokens = append(tokens, Token{Kind: KindStdin, Raw: raw, Pos: i, Value: "-"})

		case len(raw) > 2 && raw[0] == '-' && raw[1] == '-':
			name := raw[2:]
			var inline *string
			if idx := indexByte(name, '='); idx >= 0 {
				v := name[idx+1:]
				name = name[:idx]
				inline = &v
			}
			if name == "" {
				tokens = append(tokens, Token{Kind: KindPositional, Raw: raw, Pos: i, Value: raw})
				continue
			}
			tokens = append(tokens, Token{Kind: KindLongFlag, Raw: raw, Pos: i, Name: name, InlineValue: inline})

		case len(raw) > 1 && raw[0] == '-':
			rest := []rune(raw[1:])
			if isShortCluster(rest, shortRunes) {
				tokens = append(tokens, Token{Kind: KindShortCluster, Raw: raw, Pos: i, Chars: rest})
			} else {
				tokens = append(tokens, Token{Kind: KindPositional, Raw: raw, Pos: i, Value: raw})
			}

		default:
			tokens = append(tokens, Token{Kind: KindPositional, Raw: raw, Pos: i, Value: raw})
		}
	}

	return tokens
}

// isShortCluster decides whether runes following a single leading '-'
// should be read as a short cluster: true unless they are all digits,
// unless the very first rune is itself a declared short flag.
func isShortCluster(runes []rune, shortRunes map[rune]bool) bool {
	if len(runes) == 0 {
		return false
	}
	if shortRunes[runes[0]] {
		return true
	}
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
