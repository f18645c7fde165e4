// ABOUTME: Bubble Tea model for the filterable candidate list
// ABOUTME: Typing narrows with fuzzy.Find; arrows move, enter picks, esc aborts

package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const maxVisible = 10

var (
	promptStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	descStyle     = lipgloss.NewStyle().Faint(true)
)

// item pairs a display label with the candidate's original index, so a
// filtered selection still maps back to the resolver's ordering.
type item struct {
	label string
	desc  string
	index int
}

// model implements tea.Model with value semantics.
type model struct {
	items     []item
	visible   []item
	cursor    int
	scrollOff int
	filter    string
	choice    int
	aborted   bool
}

func newModel(items []item) model {
	m := model{items: items, choice: -1}
	m.applyFilter()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.visible) > 0 {
			m.choice = m.visible[m.cursor].index
		}
		return m, tea.Quit
	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
			m.adjustScroll()
		}
	case tea.KeyDown, tea.KeyCtrlN:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.adjustScroll()
		}
	case tea.KeyBackspace:
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case tea.KeySpace:
		m.filter += " "
		m.applyFilter()
	case tea.KeyRunes:
		m.filter += string(key.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Which entry? ") + m.filter + "\n")

	end := min(m.scrollOff+maxVisible, len(m.visible))
	for i := m.scrollOff; i < end; i++ {
		it := m.visible[i]
		line := fmt.Sprintf("  %s  %s", it.label, descStyle.Render(it.desc))
		if i == m.cursor {
			line = selectedStyle.Render("> " + it.label + "  " + it.desc)
		}
		b.WriteString(line + "\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(descStyle.Render("  no matches") + "\n")
	}
	return b.String()
}

func (m *model) applyFilter() {
	m.cursor = 0
	m.scrollOff = 0
	if m.filter == "" {
		m.visible = m.items
		return
	}

	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.label
	}
	matches := fuzzy.Find(m.filter, labels)
	m.visible = make([]item, len(matches))
	for i, match := range matches {
		m.visible[i] = m.items[match.Index]
	}
}

func (m *model) adjustScroll() {
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+maxVisible {
		m.scrollOff = m.cursor - maxVisible + 1
	}
}
