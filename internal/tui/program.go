// Package tui is an interactive preview for combined texts: the two
// inputs are rendered through the selected joiner and the mode, fill and
// repeat can be changed live.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/catcol"
)

// Pane is one input text and the name it is shown under.
type Pane struct {
	Name string
	Text string
}

type mode int

const (
	modeCol mode = iota
	modeCat
	modePairs
	modeCount
)

func (m mode) String() string {
	switch m {
	case modeCat:
		return "cat"
	case modePairs:
		return "pairs"
	default:
		return "col"
	}
}

// fillCycle is what the 'f' key rotates through.
var fillCycle = []rune{' ', '.', '·', '╍'}

var (
	dividerStyle = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

type model struct {
	left     Pane
	right    Pane
	mode     mode
	fillIdx  int
	repeat   int
	width    int
	height   int
	showHelp bool
	vp       viewport.Model
}

// Run instantiates and runs the Bubble Tea program.
func Run(left, right Pane) error {
	m := model{left: left, right: right, repeat: 1}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "h", "esc":
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = true
		case "m":
			m.mode = (m.mode + 1) % modeCount
			m.refresh()
		case "f":
			m.fillIdx = (m.fillIdx + 1) % len(fillCycle)
			m.refresh()
		case "+", "=":
			m.repeat++
			m.refresh()
		case "-":
			if m.repeat > 0 {
				m.repeat--
				m.refresh()
			}
		case "j", "down":
			m.vp.LineDown(1)
		case "k", "up":
			m.vp.LineUp(1)
		case "pgdown", "ctrl+d":
			m.vp.HalfViewDown()
		case "pgup", "ctrl+u":
			m.vp.HalfViewUp()
		case "g":
			m.vp.GotoTop()
		case "G":
			m.vp.GotoBottom()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = m.width
		m.vp.Height = m.height - 4 // top bar + two rules + bottom bar
		if m.vp.Height < 1 {
			m.vp.Height = 1
		}
		m.refresh()
		return m, nil
	}
	return m, nil
}

// combined builds the output text for the current mode and configuration.
func (m model) combined() *catcol.Text {
	switch m.mode {
	case modeCat:
		return catcol.CatToCol(m.left.Text, m.right.Text)
	case modePairs:
		return catcol.ByPairs(m.left.Text, m.right.Text)
	default:
		c := catcol.New().Fill(fillCycle[m.fillIdx]).Repeat(m.repeat)
		return c.CombineCol(m.left.Text, m.right.Text)
	}
}

// renderBody produces the combined lines clipped to the given width,
// escape-aware so styled input does not bleed past the edge.
func (m model) renderBody(width int) []string {
	out := strings.TrimSuffix(m.combined().String(), "\n")
	lines := strings.Split(out, "\n")
	clipped := make([]string, len(lines))
	for i, line := range lines {
		clipped[i] = ansi.Truncate(line, width, "")
	}
	return clipped
}

func (m *model) refresh() {
	m.vp.SetContent(strings.Join(m.renderBody(m.width), "\n"))
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	top := "catcol | " + m.left.Name + " + " + m.right.Name
	hr := dividerStyle.Render(strings.Repeat("─", m.width))

	var b strings.Builder
	b.WriteString(top)
	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')
	if m.showHelp {
		b.WriteString(strings.Join(m.helpLines(), "\n"))
	} else {
		b.WriteString(m.vp.View())
	}
	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')
	b.WriteString(m.bottomBar())
	return b.String()
}

func (m model) bottomBar() string {
	cfg := "mode:" + m.mode.String()
	if m.mode == modeCol {
		cfg += fmt.Sprintf("  fill:%q  repeat:%d", fillCycle[m.fillIdx], m.repeat)
	}
	hints := "m mode  f fill  +/- repeat  j/k scroll  h help  q quit"
	return statusStyle.Render(cfg) + "  " + dividerStyle.Render(hints)
}

func (m model) helpLines() []string {
	return []string{
		"m        cycle join mode (col, cat, pairs)",
		"f        cycle fill character",
		"+ / -    more / less repeat padding (col mode)",
		"j / k    scroll down / up",
		"g / G    jump to top / bottom",
		"h / esc  close help",
		"q        quit",
	}
}
