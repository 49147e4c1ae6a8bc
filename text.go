package catcol

import (
	"io"
	"strings"
)

// Text is a lazily produced combined text. It is forward-only and single
// pass: each output line is built as it is pulled and the cursor never
// rewinds. Abandoning it after partial consumption needs no cleanup.
type Text struct {
	row     func(i int) string
	n       int
	i       int
	newline bool // terminate the final row
}

func newText(n int, newline bool, row func(i int) string) *Text {
	return &Text{row: row, n: n, newline: newline && n > 0}
}

// Next returns the next fragment of the combined text: one output line,
// including its terminator when one follows. ok is false once the text
// is exhausted.
func (t *Text) Next() (fragment string, ok bool) {
	if t.i >= t.n {
		return "", false
	}
	row := t.row(t.i)
	t.i++
	if t.i < t.n || t.newline {
		return row + "\n", true
	}
	return row, true
}

// String materializes the remainder of the text.
func (t *Text) String() string {
	var b strings.Builder
	for {
		frag, ok := t.Next()
		if !ok {
			return b.String()
		}
		b.WriteString(frag)
	}
}

// WriteTo streams the remainder of the text to w.
func (t *Text) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for {
		frag, ok := t.Next()
		if !ok {
			return n, nil
		}
		written, err := io.WriteString(w, frag)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
}
