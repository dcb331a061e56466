package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/editor"
	"github.com/jotcli/jot/internal/history"
	"github.com/jotcli/jot/internal/keybinds"
	"github.com/jotcli/jot/internal/note"
)

// Outcome describes how an editing session ended.
type Outcome int

const (
	// OutcomeAborted means the session was force-quit without saving.
	OutcomeAborted Outcome = iota
	// OutcomeSaved means the note was saved (or skipped as blank) on quit.
	OutcomeSaved
	// OutcomeDeleted means the note was permanently deleted.
	OutcomeDeleted
)

// Model is the Bubble Tea model for one editing session. All editing state
// lives in the editor aggregate; the model adds the storage and history
// side effects and the key-to-action mapping.
type Model struct {
	editor *editor.Editor
	store  *note.Store
	hist   *history.Manager // nil when history is unavailable
	keys   *keybinds.Registry
	cfg    config.Config

	width   int
	outcome Outcome
	saveErr error
}

// New creates a model for a note. Content is the preloaded note body, empty
// for a new note.
func New(cfg config.Config, store *note.Store, hist *history.Manager, keys *keybinds.Registry, title, content string) Model {
	return Model{
		editor: editor.New(title, content, cfg.Tabstop),
		store:  store,
		hist:   hist,
		keys:   keys,
		cfg:    cfg,
	}
}

// Outcome reports how the session ended. Only meaningful after the program
// has finished.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Title returns the note's title, which the title command may have changed.
func (m *Model) Title() string {
	return m.editor.Title()
}

// SaveErr returns the error from the final save, if any.
func (m *Model) SaveErr() error {
	return m.saveErr
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Bubble Tea delivers messages one at a time on
// a single goroutine, so every key event mutates editor state synchronously
// and in order, followed by exactly one View.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.Resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *Model) record(event history.Event, title string) {
	if m.hist == nil {
		return
	}
	// History is best-effort; a failed insert must not block exit.
	_ = m.hist.Record(event, title)
}
