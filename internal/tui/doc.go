/*
Package tui runs one note-editing session on top of Bubble Tea.

The package follows the Model-Update-View pattern:
  - model.go: session state (editor aggregate, store, history, keybinds)
  - keys.go: key routing through the keybind registry and command effects
  - render.go: turning editor frames into styled terminal output
  - init.go: program wiring and the Run entry point

All editing semantics (buffer, cursor, viewport, modes, commands) live in
the editor package, which knows nothing about terminals; this package only
maps keys in and frames out. Bubble Tea's single-goroutine event loop
guarantees keystrokes are applied in arrival order with a render after each
one.
*/
package tui
