// Package keybinds maps terminal keys to editor actions per input mode,
// with user overrides layered over the defaults from an optional
// keybinds.yaml in the config directory.
package keybinds
