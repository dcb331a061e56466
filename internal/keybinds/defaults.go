package keybinds

// NewDefaultRegistry creates a registry with the stock bindings.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerEditBindings(r)
	registerCommandBindings(r)

	return r
}

func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "esc", ActionToggleMode)
}

func registerEditBindings(r *Registry) {
	r.RegisterMultiple(ContextEdit, []string{"up", "ctrl+p"}, ActionCursorUp)
	r.RegisterMultiple(ContextEdit, []string{"down", "ctrl+n"}, ActionCursorDown)
	r.RegisterMultiple(ContextEdit, []string{"left", "ctrl+b"}, ActionCursorLeft)
	r.RegisterMultiple(ContextEdit, []string{"right", "ctrl+f"}, ActionCursorRight)
	r.Register(ContextEdit, "enter", ActionNewline)
	r.Register(ContextEdit, "backspace", ActionBackspace)
	r.Register(ContextEdit, "tab", ActionInsertTab)
}

func registerCommandBindings(r *Registry) {
	r.Register(ContextCommand, "enter", ActionSubmitCommand)
	r.Register(ContextCommand, "backspace", ActionBackspace)
}
