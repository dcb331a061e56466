package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotcli/jot/internal/editor"
	"github.com/jotcli/jot/internal/history"
	"github.com/jotcli/jot/internal/keybinds"
)

// handleKeyPress resolves a key through the keybind registry for the active
// mode; unbound printable keys fall through to literal insertion.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	context := keybinds.ContextEdit
	if m.editor.Mode() == editor.ModeCommand {
		context = keybinds.ContextCommand
	}

	if action, ok := m.keys.Match(context, msg.String()); ok {
		return m.runAction(action)
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		for _, r := range msg.Runes {
			// Pasted tabs go through the tab codec like typed ones.
			if r == '\t' {
				m.editor.InsertTab()
				continue
			}
			m.editor.InsertRune(r)
		}
	case tea.KeySpace:
		m.editor.InsertRune(' ')
	}
	return nil
}

func (m *Model) runAction(action keybinds.Action) tea.Cmd {
	switch action {
	case keybinds.ActionQuitForce:
		m.outcome = OutcomeAborted
		return tea.Quit
	case keybinds.ActionToggleMode:
		m.editor.ToggleMode()
	case keybinds.ActionCursorUp:
		m.editor.MoveUp()
	case keybinds.ActionCursorDown:
		m.editor.MoveDown()
	case keybinds.ActionCursorLeft:
		m.editor.MoveLeft()
	case keybinds.ActionCursorRight:
		m.editor.MoveRight()
	case keybinds.ActionNewline:
		m.editor.Newline()
	case keybinds.ActionBackspace:
		m.editor.Backspace()
	case keybinds.ActionInsertTab:
		m.editor.InsertTab()
	case keybinds.ActionSubmitCommand:
		return m.submitCommand()
	}
	return nil
}

// submitCommand runs the command interpreter and performs the side effects
// it asks for.
func (m *Model) submitCommand() tea.Cmd {
	before := m.editor.Title()
	effect := m.editor.SubmitCommand(m.store)
	if m.editor.Title() != before {
		m.record(history.EventRenamed, m.editor.Title())
	}
	switch effect {
	case editor.EffectQuit:
		return m.finishSave()
	case editor.EffectDelete:
		return m.finishDelete()
	case editor.EffectCopy:
		if err := clipboard.WriteAll(m.editor.Text()); err != nil {
			m.editor.SetStatus(fmt.Sprintf("copy failed: %v", err))
		} else {
			m.editor.SetStatus("copied to clipboard")
		}
	}
	return nil
}

// finishSave persists the note and ends the session. A storage failure keeps
// the session alive with the error on the status line.
func (m *Model) finishSave() tea.Cmd {
	if err := m.store.Save(m.editor.Title(), m.editor.Text()); err != nil {
		m.saveErr = err
		m.editor.SetStatus(fmt.Sprintf("save failed: %v", err))
		return nil
	}
	m.saveErr = nil
	m.record(history.EventSaved, m.editor.Title())
	m.outcome = OutcomeSaved
	return tea.Quit
}

func (m *Model) finishDelete() tea.Cmd {
	if m.store.Exists(m.editor.Title()) {
		if err := m.store.Delete(m.editor.Title()); err != nil {
			m.editor.SetStatus(fmt.Sprintf("delete failed: %v", err))
			return nil
		}
	}
	m.record(history.EventDeleted, m.editor.Title())
	m.outcome = OutcomeDeleted
	return tea.Quit
}
