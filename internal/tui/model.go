// Package tui is the interactive chart viewer.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/daogrowth/internal/chart"
)

// Tab is one chart screen in the viewer.
type Tab struct {
	Name        string
	Description string
	Spec        chart.Spec
}

const (
	defaultWidth  = 100
	defaultHeight = 30
)

type Model struct {
	tabs     []Tab
	active   int
	width    int
	height   int
	showHelp bool
	summary  bool
}

func NewModel(tabs []Tab) Model {
	return Model{tabs: tabs, width: defaultWidth, height: defaultHeight}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "s":
		m.summary = !m.summary
	case "tab", "right", "l":
		m.active = m.nextTab(1)
	case "shift+tab", "left", "h":
		m.active = m.nextTab(-1)
	}
	return m, nil
}

func (m Model) nextTab(step int) int {
	if len(m.tabs) == 0 {
		return 0
	}
	n := len(m.tabs)
	return ((m.active+step)%n + n) % n
}

func (m Model) View() string {
	if len(m.tabs) == 0 {
		return errorStyle.Render("  no charts to show") + "\n"
	}
	if m.showHelp {
		return renderHelp(m.tabs)
	}

	header := m.renderTabs(m.width)
	sep := separatorStyle.Render(strings.Repeat("─", max(m.width, 1)))
	footer := renderFooter(m.width)

	spec := m.tabs[m.active].Spec
	chartH := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	sections := []string{header, sep}
	if m.summary {
		summary := renderSummary(spec.Series, m.width)
		chartH -= lipgloss.Height(summary) + 1
		sections = append(sections, chart.RenderTerminal(spec, m.width, chartH), sep, summary)
	} else {
		sections = append(sections, chart.RenderTerminal(spec, m.width, chartH))
	}
	sections = append(sections, sep, footer)

	return strings.Join(sections, "\n")
}

func (m Model) renderTabs(w int) string {
	parts := []string{headerBrandStyle.Render(" daogrowth ")}
	for i, tab := range m.tabs {
		if i == m.active {
			parts = append(parts, tabActiveStyle.Render(tab.Name))
		} else {
			parts = append(parts, tabInactiveStyle.Render(tab.Name))
		}
	}
	return truncateLine(strings.Join(parts, "  "), w)
}

func truncateLine(s string, w int) string {
	if w <= 0 || lipgloss.Width(s) <= w {
		return s
	}
	return ansi.Truncate(s, w, "…")
}

// Run opens the viewer in the alternate screen and blocks until the user quits.
func Run(tabs []Tab) error {
	program := tea.NewProgram(NewModel(tabs), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
