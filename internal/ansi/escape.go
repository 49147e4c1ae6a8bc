// Package ansi measures the visible width of terminal text. Escape
// sequences occupy no display columns but are kept intact, so callers can
// pad colorized lines to a common width without disturbing the styling.
package ansi

import "unicode/utf8"

// Scanner recognizes CSI-style escape sequences: ESC '[', a run of
// parameter bytes, and a single final byte. The final-byte class is a
// field so callers can narrow it (for example to SGR 'm' only) or extend
// it; the zero predicate means the default class.
type Scanner struct {
	// Final reports whether b terminates a sequence. When nil, the full
	// CSI final-byte range 0x40-0x7E is accepted.
	Final func(b byte) bool
}

func (sc Scanner) isFinal(b byte) bool {
	if sc.Final != nil {
		return sc.Final(b)
	}
	return b >= 0x40 && b <= 0x7e
}

// EscapeLen returns the length in bytes of the escape sequence starting at
// position i, or 0 if no well-formed sequence starts there. An incomplete
// or malformed prefix is never consumed; the caller treats s[i] as an
// ordinary visible character.
func (sc Scanner) EscapeLen(s string, i int) int {
	if i >= len(s) || s[i] != 0x1b {
		return 0
	}
	if i+1 >= len(s) || s[i+1] != '[' {
		return 0
	}
	j := i + 2
	for j < len(s) {
		c := s[j]
		if sc.isFinal(c) {
			return j + 1 - i
		}
		if c < 0x20 || c > 0x3f {
			// Not a parameter or intermediate byte; the sequence is
			// malformed and everything stays visible.
			return 0
		}
		j++
	}
	// Ran off the end before a final byte.
	return 0
}

// Strip removes all recognized escape sequences from the string.
func (sc Scanner) Strip(s string) string {
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			break
		}
		i++
	}
	if i == len(s) {
		return s
	}
	b := make([]byte, 0, len(s))
	b = append(b, s[:i]...)
	for i < len(s) {
		if n := sc.EscapeLen(s, i); n > 0 {
			i += n
			continue
		}
		b = append(b, s[i])
		i++
	}
	return string(b)
}

// Width returns the visible width of a string: the rune count after escape
// sequences are stripped.
func (sc Scanner) Width(s string) int {
	return utf8.RuneCountInString(sc.Strip(s))
}

// Strip removes escape sequences using the default scanner.
func Strip(s string) string {
	return Scanner{}.Strip(s)
}

// Width returns the visible width of a string using the default scanner.
func Width(s string) int {
	return Scanner{}.Width(s)
}
