// Package tui provides a terminal picker for choosing between ambiguous cheatsheets.
// It uses the Bubble Tea framework with a fuzzy-filtered, keyboard-driven list.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/toozej/cheatsheet/internal/cheatsheet"
)

const maxDisplay = 8

type model struct {
	textInput       textinput.Model
	pattern         string
	candidates      []cheatsheet.CandidateFile
	filteredResults []cheatsheet.CandidateFile
	cursor          int
	chosen          *cheatsheet.CandidateFile
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#874BFD")).
			PaddingLeft(4)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Pick shows candidates and lets the user choose one.
// The boolean is false when the user cancelled without choosing.
func Pick(candidates []cheatsheet.CandidateFile, pattern string) (cheatsheet.CandidateFile, bool, error) {
	p := tea.NewProgram(newModel(candidates, pattern), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return cheatsheet.CandidateFile{}, false, fmt.Errorf("failed to run picker: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.chosen == nil {
		return cheatsheet.CandidateFile{}, false, nil
	}
	return *m.chosen, true, nil
}

func newModel(candidates []cheatsheet.CandidateFile, pattern string) model {
	ti := textinput.New()
	ti.Placeholder = "Filter matches..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return model{
		textInput:       ti,
		pattern:         pattern,
		candidates:      candidates,
		filteredResults: candidates,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if len(m.filteredResults) > 0 && m.cursor < len(m.filteredResults) {
				chosen := m.filteredResults[m.cursor]
				m.chosen = &chosen
				return m, tea.Quit
			}

		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "ctrl+j":
			if m.cursor < len(m.filteredResults)-1 {
				m.cursor++
			}

		default:
			m.textInput, cmd = m.textInput.Update(msg)
			m.filterResults()
			if m.cursor >= len(m.filteredResults) {
				m.cursor = len(m.filteredResults) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
	}

	return m, cmd
}

func (m *model) filterResults() {
	query := m.textInput.Value()
	if query == "" {
		m.filteredResults = m.candidates
		return
	}

	names := make([]string, len(m.candidates))
	for i, c := range m.candidates {
		names[i] = c.Name
	}

	matches := fuzzy.RankFindNormalizedFold(query, names)
	m.filteredResults = make([]cheatsheet.CandidateFile, len(matches))
	for i, match := range matches {
		m.filteredResults[i] = m.candidates[match.OriginalIndex]
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cheatsheet"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Several files match %q\n\n", m.pattern))

	b.WriteString("Filter: ")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if len(m.filteredResults) == 0 {
		b.WriteString("No files left.\n")
	} else {
		shown := min(len(m.filteredResults), maxDisplay)
		for i := 0; i < shown; i++ {
			c := m.filteredResults[i]
			if m.cursor == i {
				b.WriteString("▶ " + selectedStyle.Render(c.Name) + "\n")
				b.WriteString(pathStyle.Render(c.Path) + "\n")
				continue
			}
			b.WriteString("  " + c.Name + "\n")
		}
		if len(m.filteredResults) > shown {
			b.WriteString(fmt.Sprintf("\n... and %d more\n", len(m.filteredResults)-shown))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/ctrl+k up • ↓/ctrl+j down • enter open • ctrl+c/esc cancel"))

	return b.String()
}
