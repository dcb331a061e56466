package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	pickerHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
	pickerItemStyle     = lipgloss.NewStyle().PaddingLeft(4)
	pickerSelectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
)

type pickerItem string

func (i pickerItem) FilterValue() string { return string(i) }
func (i pickerItem) Title() string       { return string(i) }
func (i pickerItem) Description() string { return "" }

type pickerModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case tea.KeyMsg:
		// Don't hijack keys while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.choice = ""
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = string(i)
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	help := pickerHelpStyle.Render("↑/↓: navigate • /: filter • enter: open • q: cancel")
	return fmt.Sprintf("%s\n%s", m.list.View(), help)
}

// PickNote shows an interactive, fuzzy-filterable list of titles and returns
// the chosen one. The empty string means the user cancelled.
func PickNote(titles []string) (string, error) {
	items := make([]list.Item, len(titles))
	for i, t := range titles {
		items[i] = pickerItem(t)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.NormalTitle = pickerItemStyle
	delegate.Styles.SelectedTitle = pickerSelectedStyle

	l := list.New(items, delegate, 40, 14)
	l.Title = "Notes"
	l.Styles.Title = pickerTitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	m := pickerModel{list: l}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}
	return final.(pickerModel).choice, nil
}
