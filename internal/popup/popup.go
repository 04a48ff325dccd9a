// Package popup implements the hotkey-triggered history picker: a terminal
// overlay listing recent captures with search-as-you-type. Selecting an
// entry writes it back to the system clipboard. The picker opens its own
// store handle and never writes to it.
package popup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olajoao/sticky-one/internal/entry"
)

// MaxEntries caps how much history the picker loads.
const MaxEntries = 50

const previewLen = 60

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Writer is the clipboard write half the picker needs on confirmation.
type Writer interface {
	WriteEntry(*entry.Entry) error
}

// Model is the bubbletea model for the picker.
type Model struct {
	input    textinput.Model
	entries  []*entry.Entry
	filtered []int // indexes into entries
	selected int
	writer   Writer
	err      error
}

// New builds the picker over a pre-loaded entry list, newest first.
func New(entries []*entry.Entry, writer Writer) Model {
	input := textinput.New()
	input.Placeholder = "search"
	input.Focus()

	m := Model{
		input:   input,
		entries: entries,
		writer:  writer,
	}
	m.refilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit

	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil

	case "enter":
		if e := m.selectedEntry(); e != nil {
			m.err = m.writer.WriteEntry(e)
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("clipboard history"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("no entries"))
		b.WriteString("\n")
	}
	for pos, idx := range m.filtered {
		e := m.entries[idx]
		line := fmt.Sprintf("%s %s", typeStyle.Render(string(e.Type)), e.Preview(previewLen))
		if pos == m.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · enter copy · esc close"))
	return b.String()
}

// Err returns the clipboard write failure from the confirmed selection, if
// any, for the caller to report after the program exits.
func (m Model) Err() error {
	return m.err
}

func (m Model) selectedEntry() *entry.Entry {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return nil
	}
	return m.entries[m.filtered[m.selected]]
}

// refilter recomputes the visible set from the search input: a
// case-insensitive substring match over text content. Image entries have no
// content and only show while the query is empty.
func (m *Model) refilter() {
	query := strings.ToLower(m.input.Value())
	m.filtered = m.filtered[:0]
	for i, e := range m.entries {
		if query == "" || strings.Contains(strings.ToLower(e.Content), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	m.selected = 0
}
