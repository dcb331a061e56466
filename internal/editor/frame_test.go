package editor

import (
	"strings"
	"testing"
)

func TestFramePadsShortBufferWithFill(t *testing.T) {
	e := New("note", "only line", 4)
	e.Resize(40, 10)

	f := e.Frame("cmd: ", "~")
	if f.Title != "note" {
		t.Errorf("title = %q, want %q", f.Title, "note")
	}
	if len(f.Rows) != 8 {
		t.Fatalf("rows = %d, want 8", len(f.Rows))
	}
	if f.Rows[0] != "only line" {
		t.Errorf("row 0 = %q", f.Rows[0])
	}
	for i := 1; i < len(f.Rows); i++ {
		if f.Rows[i] != "~" {
			t.Errorf("row %d = %q, want fill", i, f.Rows[i])
		}
	}
}

func TestFrameShowsTabMarkersAsSpaces(t *testing.T) {
	e := New("note", "a\tb", 4)
	e.Resize(40, 10)

	f := e.Frame("cmd: ", "~")
	if f.Rows[0] != "a    b" {
		t.Errorf("row 0 = %q, want %q", f.Rows[0], "a    b")
	}
	// Rendering must not alter the stored line.
	if got := e.Text(); got != "a\tb" {
		t.Errorf("stored text = %q, want %q", got, "a\tb")
	}
}

func TestFrameHorizontalScroll(t *testing.T) {
	e := New("note", strings.Repeat("x", 30)+"Z", 4)
	e.Resize(10, 10)
	for i := 0; i < 31; i++ {
		e.MoveRight()
	}

	f := e.Frame("cmd: ", "~")
	// Cursor at col 31, width 10: visible window is cols 22..31.
	if f.Rows[0] != "xxxxxxxxZ" {
		t.Errorf("row 0 = %q", f.Rows[0])
	}
	if f.CursorCol != 9 {
		t.Errorf("cursor col = %d, want 9", f.CursorCol)
	}
	if f.CursorRow != 1 {
		t.Errorf("cursor row = %d, want 1", f.CursorRow)
	}
}

func TestFrameCursorCoordinatesIncludeTitleOffset(t *testing.T) {
	e := New("note", "a\nb\nc", 4)
	e.Resize(40, 10)
	e.MoveDown()

	f := e.Frame("cmd: ", "~")
	if f.CursorRow != 2 || f.CursorCol != 0 {
		t.Errorf("cursor = (%d, %d), want (2, 0)", f.CursorRow, f.CursorCol)
	}
}

func TestFrameCommandPrompt(t *testing.T) {
	e := New("note", "", 4)
	e.Resize(40, 10)
	e.ToggleMode()
	for _, r := range "ti" {
		e.InsertRune(r)
	}

	f := e.Frame("cmd: ", "~")
	if len(f.Status) != 1 || f.Status[0] != "cmd: ti" {
		t.Errorf("status = %q, want [cmd: ti]", f.Status)
	}
}

func TestFrameConsumesStatusOnce(t *testing.T) {
	e := New("note", "", 4)
	e.Resize(40, 10)
	e.SetStatus("boom")

	f := e.Frame("cmd: ", "~")
	if len(f.Status) != 1 || f.Status[0] != "boom" {
		t.Fatalf("status = %q, want [boom]", f.Status)
	}

	f = e.Frame("cmd: ", "~")
	if f.Status != nil {
		t.Errorf("status shown twice: %q", f.Status)
	}
}

func TestFrameMultiLineStatus(t *testing.T) {
	e := New("note", "", 4)
	e.Resize(40, 10)
	e.ToggleMode()
	e.SetStatus("line one\nline two")

	f := e.Frame("cmd: ", "~")
	if len(f.Status) != 2 || f.Status[0] != "line one" || f.Status[1] != "line two" {
		t.Errorf("status = %q", f.Status)
	}
}
