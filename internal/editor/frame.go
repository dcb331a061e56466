package editor

import "strings"

// Frame is the complete desired screen state for one render: a pure value
// computed from buffer, cursor, viewport, mode and pending status text. The
// tui package turns it into styled terminal output.
type Frame struct {
	// Title is the unstyled title-line text.
	Title string

	// Rows holds the visible buffer slice, horizontally scrolled and with
	// tab markers shown as spaces, padded with fill-character rows. Its
	// length is always the text-area height.
	Rows []string

	// Status is the bottom-line content: the command prompt and buffer in
	// command mode, or one-shot status/help text (possibly several lines,
	// drawn from the bottom up). Empty in edit mode with nothing pending.
	Status []string

	// CursorRow and CursorCol are the cursor's screen coordinates,
	// including the title-line offset.
	CursorRow int
	CursorCol int
}

// Frame computes the current frame. Pending status text is consumed: it
// appears on exactly one frame and is cleared here.
func (e *Editor) Frame(prompt, fill string) Frame {
	width := e.width
	if width <= 0 {
		width = 80
	}
	rows := e.textRows()

	// Horizontal scroll is stateless: every visible line shifts by the
	// same offset so the cursor column stays on screen.
	offset := 0
	if e.cursor.Col >= width {
		offset = e.cursor.Col - width + 1
	}

	f := Frame{
		Title:     e.title,
		Rows:      make([]string, rows),
		CursorRow: e.cursor.Row - e.view.Top + 1,
		CursorCol: e.cursor.Col - offset,
	}

	for i := 0; i < rows; i++ {
		bufRow := e.view.Top + i
		if bufRow >= e.buf.LineCount() {
			f.Rows[i] = fill
			continue
		}
		f.Rows[i] = displayLine(e.buf.Line(bufRow), offset, width)
	}

	switch {
	case e.status != "":
		f.Status = strings.Split(e.status, "\n")
		e.status = ""
	case e.mode == ModeCommand:
		f.Status = []string{prompt + string(e.cmd)}
	}

	return f
}

// displayLine slices one buffer line to the visible window and substitutes a
// single space for each tab marker. The stored line is never altered.
func displayLine(line []rune, offset, width int) string {
	if offset >= len(line) {
		return ""
	}
	end := offset + width
	if end > len(line) {
		end = len(line)
	}
	out := make([]rune, end-offset)
	for i, r := range line[offset:end] {
		if r == tabMarker {
			r = ' '
		}
		out[i] = r
	}
	return string(out)
}
