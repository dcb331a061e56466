package editor

import "strings"

// Buffer is an ordered sequence of lines, each a sequence of runes. Tabs are
// stored as marker runs (see tabs.go). A Buffer always contains at least one
// line, possibly empty.
type Buffer struct {
	lines   [][]rune
	tabstop int
}

// NewBuffer creates a buffer with a single empty line.
func NewBuffer(tabstop int) *Buffer {
	return &Buffer{
		lines:   [][]rune{{}},
		tabstop: tabstop,
	}
}

// NewBufferFromText creates a buffer from persisted note text, expanding tabs
// line by line.
func NewBufferFromText(text string, tabstop int) *Buffer {
	raw := strings.Split(text, "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = ExpandTabs(l, tabstop)
	}
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	return &Buffer{lines: lines, tabstop: tabstop}
}

// LineCount returns the number of lines in the buffer. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of line row in cells.
func (b *Buffer) LineLen(row int) int {
	return len(b.lines[row])
}

// Line returns line row. The returned slice is the buffer's own storage and
// must not be mutated by the caller.
func (b *Buffer) Line(row int) []rune {
	return b.lines[row]
}

// Insert places rs into line row at position col. The caller guarantees
// 0 <= col <= LineLen(row).
func (b *Buffer) Insert(row, col int, rs []rune) {
	line := b.lines[row]
	out := make([]rune, 0, len(line)+len(rs))
	out = append(out, line[:col]...)
	out = append(out, rs...)
	out = append(out, line[col:]...)
	b.lines[row] = out
}

// InsertTab inserts one logical tab (a full marker run) at row/col and
// returns the number of cells inserted.
func (b *Buffer) InsertTab(row, col int) int {
	run := make([]rune, b.tabstop)
	for i := range run {
		run[i] = tabMarker
	}
	b.Insert(row, col, run)
	return b.tabstop
}

// RunStart returns the position where a structural edit at col can happen
// without splitting a tab-marker run: the start of the run containing col,
// or col itself when it is not inside a run. Insert, InsertTab and SplitLine
// callers must snap through this so marker runs stay whole.
func (b *Buffer) RunStart(row, col int) int {
	line := b.lines[row]
	if col >= len(line) || line[col] != tabMarker {
		return col
	}
	blockStart := col
	for blockStart > 0 && line[blockStart-1] == tabMarker {
		blockStart--
	}
	return blockStart + (col-blockStart)/b.tabstop*b.tabstop
}

// SplitLine breaks line row at col: everything from col onward becomes a new
// line inserted immediately after row. With col at the end of the line the
// new line is empty.
func (b *Buffer) SplitLine(row, col int) {
	line := b.lines[row]
	rest := make([]rune, len(line)-col)
	copy(rest, line[col:])
	b.lines[row] = line[:col:col]
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = rest
}

// JoinWithPrevious appends line row to line row-1 and removes line row,
// returning the column where the two lines met. A no-op returning 0 if row
// is the first line.
func (b *Buffer) JoinWithPrevious(row int) int {
	if row == 0 {
		return 0
	}
	joinCol := len(b.lines[row-1])
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return joinCol
}

// DeleteAt removes the character at col in line row. When that character is
// part of a tab-marker run, the whole run of tabstop markers is removed
// together. It returns the column of the first removed cell and the number
// of cells removed, so the caller can retreat the cursor by the full run.
func (b *Buffer) DeleteAt(row, col int) (start, removed int) {
	line := b.lines[row]
	if col < 0 || col >= len(line) {
		return col, 0
	}
	start, end := col, col+1
	if line[col] == tabMarker {
		start = b.RunStart(row, col)
		// The window never crosses a non-marker cell, so a stray short
		// run (say, marker runes read back from disk) costs at most
		// its own cells.
		end = col + 1
		for end < start+b.tabstop && end < len(line) && line[end] == tabMarker {
			end++
		}
	}
	b.lines[row] = append(line[:start], line[end:]...)
	return start, end - start
}

// Text returns the persisted form of the whole buffer: tabs collapsed, lines
// joined with a single newline and no trailing newline.
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = CollapseTabs(l, b.tabstop)
	}
	return strings.Join(parts, "\n")
}
