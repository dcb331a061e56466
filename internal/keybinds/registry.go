package keybinds

import "strings"

// Registry maps keys to actions per context.
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
	}
}

// Register adds a keybinding to the registry, replacing any previous binding
// for the same key in the same context.
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers several keys for the same action.
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Match resolves a key in the given context, falling back to the global
// context. Returns the action and whether a binding was found.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return "", false
}

// GetBinding returns the key(s) bound to an action in a context.
func (r *Registry) GetBinding(context Context, action Action) []string {
	var keys []string
	if contextBindings, ok := r.bindings[context]; ok {
		for key, act := range contextBindings {
			if act == action {
				keys = append(keys, key)
			}
		}
	}
	if len(keys) == 0 {
		if globalBindings, ok := r.bindings[ContextGlobal]; ok {
			for key, act := range globalBindings {
				if act == action {
					keys = append(keys, key)
				}
			}
		}
	}
	return keys
}

// GetBindingString returns a human-readable list of keys for an action.
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}
