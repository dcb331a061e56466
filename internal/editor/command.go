package editor

import (
	"fmt"
	"strings"
)

// Effect is what a handled command asks the surrounding program to do beyond
// mutating editor state.
type Effect int

const (
	EffectNone   Effect = iota
	EffectQuit          // save the note and exit
	EffectDelete        // permanently delete the note and exit without saving
	EffectCopy          // copy the note body to the system clipboard
)

// Store is the slice of note storage the command interpreter needs for the
// title command.
type Store interface {
	Exists(title string) bool
	Rename(oldTitle, newTitle string) error
}

const helpText = `Commands:
  q, quit       save the note and exit
  t, title ...  rename the note
  copy          copy the note to the clipboard
  delete        delete the note permanently
  help          show this message`

// SubmitCommand interprets the accumulated command buffer. Commands are
// matched against a fixed, ordered list on the first whitespace-separated
// token; the command buffer is cleared regardless of outcome.
func (e *Editor) SubmitCommand(st Store) Effect {
	input := string(e.cmd)
	e.cmd = e.cmd[:0]

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return EffectNone
	}

	switch fields[0] {
	case "quit", "q":
		if len(fields) == 1 {
			return EffectQuit
		}
	case "title", "t":
		if len(fields) == 1 {
			e.status = "title: missing argument"
			return EffectNone
		}
		e.renameTo(strings.Join(fields[1:], " "), st)
		return EffectNone
	case "delete":
		if len(fields) == 1 {
			return EffectDelete
		}
	case "copy":
		if len(fields) == 1 {
			return EffectCopy
		}
	case "help":
		if len(fields) == 1 {
			e.status = helpText
			return EffectNone
		}
	}

	e.status = fmt.Sprintf("unknown command: %s", input)
	return EffectNone
}

// renameTo changes the note title, refusing duplicates and surfacing storage
// errors as status text. The persisted file, if any, moves with the title.
func (e *Editor) renameTo(title string, st Store) {
	if title == e.title {
		return
	}
	if st.Exists(title) {
		e.status = fmt.Sprintf("a note named %q already exists", title)
		return
	}
	if st.Exists(e.title) {
		if err := st.Rename(e.title, title); err != nil {
			e.status = fmt.Sprintf("rename failed: %v", err)
			return
		}
	}
	e.title = title
}
