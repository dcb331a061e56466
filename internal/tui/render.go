package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleCursor = lipgloss.NewStyle().
			Reverse(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
)

// View implements tea.Model: one frame from the editor, styled for the
// terminal. The underlying frame computation is pure; Bubble Tea diffs the
// returned string against the previous render.
func (m *Model) View() string {
	width := m.viewWidth()
	f := m.editor.Frame(m.cfg.CommandTitle, m.cfg.FillChar)

	rows := f.Rows
	status := f.Status

	// Multi-line status (the help text) grows upward over the fill area;
	// the last status line stays on the bottom row. The cursor row is
	// never trimmed away: excess status lines drop from the top instead.
	if extra := len(status) - 1; extra > 0 {
		maxTrim := len(rows) - f.CursorRow
		if maxTrim < 0 {
			maxTrim = 0
		}
		if extra > maxTrim {
			status = status[extra-maxTrim:]
			extra = maxTrim
		}
		rows = rows[:len(rows)-extra]
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(runewidth.Truncate(f.Title, width, "")))
	b.WriteByte('\n')

	for i, row := range rows {
		if i+1 == f.CursorRow {
			b.WriteString(renderCursorRow(row, f.CursorCol))
		} else {
			b.WriteString(row)
		}
		b.WriteByte('\n')
	}

	for i, line := range status {
		b.WriteString(styleStatus.Render(runewidth.Truncate(line, width, "")))
		if i < len(status)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// renderCursorRow draws the cursor as a reverse-video cell. With the cursor
// just past the last character the reversed cell is a trailing space.
func renderCursorRow(row string, col int) string {
	rs := []rune(row)
	if col < 0 {
		col = 0
	}
	if col >= len(rs) {
		return string(rs) + styleCursor.Render(" ")
	}
	return string(rs[:col]) + styleCursor.Render(string(rs[col])) + string(rs[col+1:])
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	// Mirrors the fallback the editor uses before the first resize.
	return 80
}
