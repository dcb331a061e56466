package keybinds

// Action represents an editor operation that can be triggered by a key.
type Action string

// Context represents the editor mode in which a binding is active.
type Context string

const (
	// ContextGlobal bindings apply in every mode.
	ContextGlobal Context = "global"
	// ContextEdit bindings apply while editing text.
	ContextEdit Context = "edit"
	// ContextCommand bindings apply while the command line is open.
	ContextCommand Context = "command"
)

const (
	// ActionQuitForce exits immediately without saving.
	ActionQuitForce Action = "quit_force"
	// ActionToggleMode switches between edit and command mode.
	ActionToggleMode Action = "toggle_mode"

	// Edit-mode actions.
	ActionCursorUp    Action = "cursor_up"
	ActionCursorDown  Action = "cursor_down"
	ActionCursorLeft  Action = "cursor_left"
	ActionCursorRight Action = "cursor_right"
	ActionNewline     Action = "newline"
	ActionBackspace   Action = "backspace"
	ActionInsertTab   Action = "insert_tab"

	// Command-mode actions.
	ActionSubmitCommand Action = "submit_command"
)

// knownActions is the set accepted from user keybind files.
var knownActions = map[Action]bool{
	ActionQuitForce:     true,
	ActionToggleMode:    true,
	ActionCursorUp:      true,
	ActionCursorDown:    true,
	ActionCursorLeft:    true,
	ActionCursorRight:   true,
	ActionNewline:       true,
	ActionBackspace:     true,
	ActionInsertTab:     true,
	ActionSubmitCommand: true,
}
