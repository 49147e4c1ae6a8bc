package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/catcol"
)

func baseModelForTest() model {
	return model{
		left:  Pane{Name: "a.txt", Text: "alpha\nbeta"},
		right: Pane{Name: "b.txt", Text: "one\ntwo\nthree"},
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRenderBody_ColMode(t *testing.T) {
	m := baseModelForTest()
	// repeat is 0 here, so the widest left line gets no separator at all.
	got := m.renderBody(40)
	want := []string{"alphaone", "beta two", "     three"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %q", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderBody_ClipsToWidth(t *testing.T) {
	m := baseModelForTest()
	for _, line := range m.renderBody(4) {
		if len([]rune(line)) > 4 {
			t.Fatalf("line %q exceeds width 4", line)
		}
	}
}

func TestUpdate_ModeCycle(t *testing.T) {
	var m tea.Model = baseModelForTest()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = m.Update(keyMsg('m'))
	if got := m.(model).mode; got != modeCat {
		t.Fatalf("expected cat mode, got %v", got)
	}
	m, _ = m.Update(keyMsg('m'))
	if got := m.(model).mode; got != modePairs {
		t.Fatalf("expected pairs mode, got %v", got)
	}
	m, _ = m.Update(keyMsg('m'))
	if got := m.(model).mode; got != modeCol {
		t.Fatalf("expected col mode, got %v", got)
	}
}

func TestUpdate_RepeatBounds(t *testing.T) {
	var m tea.Model = baseModelForTest()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = m.Update(keyMsg('-'))
	if got := m.(model).repeat; got != 0 {
		t.Fatalf("repeat went negative: %d", got)
	}
	m, _ = m.Update(keyMsg('+'))
	m, _ = m.Update(keyMsg('+'))
	if got := m.(model).repeat; got != 2 {
		t.Fatalf("expected repeat 2, got %d", got)
	}
}

func TestCombined_Dispatch(t *testing.T) {
	m := baseModelForTest()
	m.mode = modeCat
	if got, want := m.combined().String(), catcol.CatToCol(m.left.Text, m.right.Text).String(); got != want {
		t.Fatalf("cat: got %q, want %q", got, want)
	}
	m.mode = modePairs
	if got, want := m.combined().String(), catcol.ByPairs(m.left.Text, m.right.Text).String(); got != want {
		t.Fatalf("pairs: got %q, want %q", got, want)
	}
}

func TestView_ShowsTitleAndStatus(t *testing.T) {
	var m tea.Model = baseModelForTest()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	view := m.(model).View()
	if !strings.Contains(view, "catcol | a.txt + b.txt") {
		t.Fatalf("missing title in view:\n%s", view)
	}
	if !strings.Contains(view, "mode:col") {
		t.Fatalf("missing status in view:\n%s", view)
	}
}
