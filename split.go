package catcol

import "strings"

// splitLines splits a text on '\n' treated as a line terminator rather
// than a separator: "a\n" is one line, "a\n\n" is two (the second empty),
// and the empty text is a single empty line so a joiner always has
// something to pair against.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if strings.HasSuffix(s, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// nonEmpty filters out empty lines, preserving order.
func nonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// terminated reports whether either text ends with a line terminator. The
// combined output carries a trailing newline exactly when one of its
// inputs did.
func terminated(a, b string) bool {
	return strings.HasSuffix(a, "\n") || strings.HasSuffix(b, "\n")
}
