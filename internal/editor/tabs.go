package editor

import "strings"

// tabMarker is the placeholder rune standing in for one cell of an expanded
// tab. A private-use codepoint, so it can never collide with note text.
const tabMarker = ''

// ExpandTabs converts a raw line into its in-memory form: every literal tab
// becomes a run of exactly tabstop marker runes, which keeps column
// arithmetic uniform for the cursor and buffer operations.
func ExpandTabs(raw string, tabstop int) []rune {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		if r == '\t' {
			for i := 0; i < tabstop; i++ {
				out = append(out, tabMarker)
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// CollapseTabs converts an in-memory line back into its persisted form,
// collapsing every run of tabstop consecutive markers into a single tab.
// CollapseTabs(ExpandTabs(s, n), n) == s for any s and any positive n.
func CollapseTabs(line []rune, tabstop int) string {
	var b strings.Builder
	run := 0
	for _, r := range line {
		if r == tabMarker {
			run++
			if run == tabstop {
				b.WriteByte('\t')
				run = 0
			}
			continue
		}
		// Editing operations keep marker runs whole, so a partial run
		// should not occur. Degrade to spaces rather than leak markers
		// into the saved file.
		for ; run > 0; run-- {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	for ; run > 0; run-- {
		b.WriteByte(' ')
	}
	return b.String()
}
