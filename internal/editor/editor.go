package editor

// Mode represents the editor's input mode.
type Mode int

const (
	ModeEdit Mode = iota
	ModeCommand
)

// Cursor is the logical position in the buffer. Row is always a valid line
// index; Col is in [0, LineLen(Row)], where LineLen(Row) means "after the
// last character".
type Cursor struct {
	Row int
	Col int
}

// Viewport is the vertically-visible slice of the buffer. Top and Bottom are
// inclusive row indices. Horizontal scroll carries no state; it is derived
// per frame from the cursor column and the terminal width.
type Viewport struct {
	Top    int
	Bottom int
}

// Editor owns the buffer, cursor, viewport, mode and command buffer for one
// note. It is a plain state machine with no terminal knowledge; the tui
// package feeds it key actions and renders its frames.
type Editor struct {
	buf     *Buffer
	cursor  Cursor
	view    Viewport
	mode    Mode
	title   string
	cmd     []rune
	status  string
	tabstop int

	// Terminal dimensions, captured from resize events.
	width  int
	height int
}

// New creates an editor for a note. Empty content yields a single empty
// line. Width and height may be zero until the first resize arrives.
func New(title, content string, tabstop int) *Editor {
	var buf *Buffer
	if content == "" {
		buf = NewBuffer(tabstop)
	} else {
		buf = NewBufferFromText(content, tabstop)
	}
	return &Editor{
		buf:     buf,
		mode:    ModeEdit,
		title:   title,
		tabstop: tabstop,
	}
}

// textRows is the number of terminal rows available to buffer content: the
// full height minus the title row and the command/status row.
func (e *Editor) textRows() int {
	rows := e.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Resize records the terminal dimensions and re-clamps the viewport so the
// cursor stays visible.
func (e *Editor) Resize(width, height int) {
	e.width = width
	e.height = height
	e.view.Bottom = e.view.Top + e.textRows() - 1
	if e.cursor.Row > e.view.Bottom {
		e.view.Bottom = e.cursor.Row
		e.view.Top = e.view.Bottom - e.textRows() + 1
	}
	if e.view.Top < 0 {
		e.view.Top = 0
		e.view.Bottom = e.textRows() - 1
	}
}

// Mode returns the active input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Title returns the note's current title.
func (e *Editor) Title() string {
	return e.title
}

// Buffer exposes the underlying buffer for rendering and saving.
func (e *Editor) Buffer() *Buffer {
	return e.buf
}

// Cursor returns the logical cursor position.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// View returns the current viewport bounds.
func (e *Editor) View() Viewport {
	return e.view
}

// CommandBuffer returns the characters typed so far in command mode.
func (e *Editor) CommandBuffer() string {
	return string(e.cmd)
}

// SetStatus sets the one-shot status text shown on the next frame.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
}

// ToggleMode switches between edit and command mode. Both directions clear
// the command buffer; entering command mode also drops stale status text.
func (e *Editor) ToggleMode() Mode {
	e.cmd = e.cmd[:0]
	if e.mode == ModeEdit {
		e.mode = ModeCommand
		e.status = ""
	} else {
		e.mode = ModeEdit
	}
	return e.mode
}

// InsertRune inserts a printable rune at the cursor in edit mode, or appends
// it to the command buffer in command mode.
func (e *Editor) InsertRune(r rune) {
	if e.mode == ModeCommand {
		e.cmd = append(e.cmd, r)
		return
	}
	// A cursor resting inside a marker run snaps to the run's start, so
	// the run stays whole and the rune lands in front of the tab.
	col := e.buf.RunStart(e.cursor.Row, e.cursor.Col)
	e.buf.Insert(e.cursor.Row, col, []rune{r})
	e.cursor.Col = col + 1
}

// InsertTab inserts one logical tab at the cursor. Ignored in command mode.
func (e *Editor) InsertTab() {
	if e.mode == ModeCommand {
		return
	}
	col := e.buf.RunStart(e.cursor.Row, e.cursor.Col)
	n := e.buf.InsertTab(e.cursor.Row, col)
	e.cursor.Col = col + n
}

// Newline splits the current line at the cursor and moves to the start of
// the new line, scrolling if it falls below the viewport.
func (e *Editor) Newline() {
	if e.mode == ModeCommand {
		return
	}
	e.buf.SplitLine(e.cursor.Row, e.buf.RunStart(e.cursor.Row, e.cursor.Col))
	e.cursor.Row++
	e.cursor.Col = 0
	if e.cursor.Row > e.view.Bottom {
		e.view.Top++
		e.view.Bottom++
	}
}

// Backspace deletes backwards. At column zero it joins the current line with
// the previous one; otherwise it removes the cell (or whole tab run) before
// the cursor. In command mode it pops the last command-buffer rune.
func (e *Editor) Backspace() {
	if e.mode == ModeCommand {
		if len(e.cmd) > 0 {
			e.cmd = e.cmd[:len(e.cmd)-1]
		}
		return
	}
	if e.cursor.Col == 0 {
		if e.cursor.Row == 0 {
			return
		}
		joinCol := e.buf.JoinWithPrevious(e.cursor.Row)
		e.cursor.Row--
		e.cursor.Col = joinCol
		if e.cursor.Row < e.view.Top {
			e.view.Top--
			e.view.Bottom--
		}
		return
	}
	start, _ := e.buf.DeleteAt(e.cursor.Row, e.cursor.Col-1)
	e.cursor.Col = start
}

// MoveLeft moves the cursor one cell left, stopping at column zero.
func (e *Editor) MoveLeft() {
	if e.mode == ModeCommand {
		return
	}
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
}

// MoveRight moves the cursor one cell right, stopping just past the last
// character. It never wraps to the next line.
func (e *Editor) MoveRight() {
	if e.mode == ModeCommand {
		return
	}
	if e.cursor.Col < e.buf.LineLen(e.cursor.Row) {
		e.cursor.Col++
	}
}

// MoveDown moves the cursor one line down, clamping the column to the new
// line's length and following with a one-line scroll when the cursor crosses
// the viewport's bottom bound.
func (e *Editor) MoveDown() {
	if e.mode == ModeCommand {
		return
	}
	if e.cursor.Row == e.buf.LineCount()-1 {
		return
	}
	e.cursor.Row++
	if l := e.buf.LineLen(e.cursor.Row); e.cursor.Col > l {
		e.cursor.Col = l
	}
	if e.cursor.Row > e.view.Bottom {
		e.view.Top++
		e.view.Bottom++
	}
}

// MoveUp is the symmetric counterpart of MoveDown.
func (e *Editor) MoveUp() {
	if e.mode == ModeCommand {
		return
	}
	if e.cursor.Row == 0 {
		return
	}
	e.cursor.Row--
	if l := e.buf.LineLen(e.cursor.Row); e.cursor.Col > l {
		e.cursor.Col = l
	}
	if e.cursor.Row < e.view.Top {
		e.view.Top--
		e.view.Bottom--
	}
}

// Text returns the persisted form of the note body.
func (e *Editor) Text() string {
	return e.buf.Text()
}
