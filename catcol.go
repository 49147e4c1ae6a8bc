// Package catcol combines two texts into one, line by line: as padded
// columns, joined with a single space, or paired by non-empty lines.
// Column alignment measures visible width with terminal escape sequences
// skipped, so colorized text stays aligned when rendered.
//
//	left := "Text cat\nby line.\nTest line."
//	right := "Concat text.\nTwo line.\nMin.\nMax"
//	out := catcol.New().Fill(' ').Repeat(1).CombineCol(left, right)
//	fmt.Println(out)
//
//	// Text cat   Concat text.
//	// by line.   Two line.
//	// Test line. Min.
//	//            Max
package catcol

import (
	"strings"

	"github.com/interpretive-systems/catcol/internal/ansi"
)

// Combiner holds the padding configuration for CombineCol: the fill
// character and how many extra fills follow the width padding. Fill and
// Repeat return modified copies; the zero value pads with single spaces.
type Combiner struct {
	fill   rune
	repeat int
}

// New returns a Combiner with default padding: spaces, no extra repeat.
func New() Combiner {
	return Combiner{fill: ' '}
}

// Fill returns a copy of the Combiner using r as the fill character.
func (c Combiner) Fill(r rune) Combiner {
	c.fill = r
	return c
}

// Repeat returns a copy of the Combiner appending n extra fill characters
// after the width padding. Negative counts are treated as zero.
func (c Combiner) Repeat(n int) Combiner {
	if n < 0 {
		n = 0
	}
	c.repeat = n
	return c
}

func (c Combiner) fillString() string {
	if c.fill == 0 {
		return " "
	}
	return string(c.fill)
}

// CombineCol combines two texts into columns. The first text drives the
// column width: each of its lines is padded to the visible width of its
// widest line, plus the configured repeat, before the matching line of b
// is appended. Escape sequences contribute nothing to width and pass
// through verbatim. When b has no line at an index, or its line is empty,
// no padding is appended at all, so no output line carries trailing fill
// with nothing after it. When a is exhausted first, the left column is
// entirely fill.
func (c Combiner) CombineCol(a, b string) *Text {
	linesA := splitLines(a)
	linesB := splitLines(b)
	fill := c.fillString()

	maxWidth := 0
	for _, line := range linesA {
		if w := ansi.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	n := len(linesA)
	if len(linesB) > n {
		n = len(linesB)
	}
	return newText(n, terminated(a, b), func(i int) string {
		var sb strings.Builder
		width := 0
		if i < len(linesA) {
			sb.WriteString(linesA[i])
			width = ansi.Width(linesA[i])
		}
		if i < len(linesB) && linesB[i] != "" {
			sb.WriteString(strings.Repeat(fill, maxWidth-width+c.repeat))
			sb.WriteString(linesB[i])
		}
		return sb.String()
	})
}

// CatToCol joins two texts line by line with a single space and no
// width-based padding. Unlike CombineCol, the space is emitted even when
// the right-hand line is empty, so a blank partner line leaves a visible
// trailing space. Surplus lines on either side pass through, prefixed
// with the space when they come from b.
func CatToCol(a, b string) *Text {
	linesA := splitLines(a)
	linesB := splitLines(b)

	n := len(linesA)
	if len(linesB) > n {
		n = len(linesB)
	}
	return newText(n, terminated(a, b), func(i int) string {
		switch {
		case i >= len(linesB):
			return linesA[i]
		case i >= len(linesA):
			return " " + linesB[i]
		default:
			return linesA[i] + " " + linesB[i]
		}
	})
}

// ByPairs joins the non-empty lines of two texts in order, one pair per
// output line with a single space between, stopping when either side runs
// out of non-empty lines. Blank lines and surplus pairs are dropped.
func ByPairs(a, b string) *Text {
	linesA := nonEmpty(splitLines(a))
	linesB := nonEmpty(splitLines(b))

	n := len(linesA)
	if len(linesB) < n {
		n = len(linesB)
	}
	return newText(n, terminated(a, b), func(i int) string {
		return linesA[i] + " " + linesB[i]
	})
}
