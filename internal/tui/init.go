package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/history"
	"github.com/jotcli/jot/internal/keybinds"
	"github.com/jotcli/jot/internal/note"
)

// Run opens the editor for one note and blocks until the session ends. It
// returns how the session ended and the note's final title (the title
// command may have renamed it).
func Run(cfg config.Config, store *note.Store, hist *history.Manager, title, content string) (Outcome, string, error) {
	keys, err := loadKeybinds()
	if err != nil {
		return OutcomeAborted, title, err
	}

	if hist != nil {
		_ = hist.Record(history.EventOpened, title)
	}

	m := New(cfg, store, hist, keys, title, content)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return OutcomeAborted, title, fmt.Errorf("editor failed: %w", err)
	}

	fm := final.(*Model)
	return fm.Outcome(), fm.Title(), fm.SaveErr()
}

// loadKeybinds builds the registry: defaults plus the user's overrides when
// a keybinds file exists.
func loadKeybinds() (*keybinds.Registry, error) {
	keys := keybinds.NewDefaultRegistry()
	userCfg, err := keybinds.LoadConfig(config.KeybindsFile)
	if err != nil {
		return nil, err
	}
	if err := keybinds.ApplyConfig(keys, userCfg); err != nil {
		return nil, err
	}
	return keys, nil
}
