package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jotcli/jot/internal/history"
	"github.com/jotcli/jot/internal/note"
)

func newTestStore(t *testing.T, titles ...string) *note.Store {
	t.Helper()
	s := note.NewStore(t.TempDir())
	for _, title := range titles {
		if err := s.Save(title, "body"); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestListNotes(t *testing.T) {
	s := newTestStore(t, "beta", "alpha")
	var sb strings.Builder
	if err := ListNotes(&sb, s); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if got := sb.String(); got != "alpha\nbeta\n" {
		t.Errorf("output = %q", got)
	}
}

func TestListNotesEmpty(t *testing.T) {
	s := newTestStore(t)
	var sb strings.Builder
	if err := ListNotes(&sb, s); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if !strings.Contains(sb.String(), "no notes") {
		t.Errorf("output = %q", sb.String())
	}
}

func TestDeleteNote(t *testing.T) {
	s := newTestStore(t, "doomed")
	hist, err := history.NewManager(filepath.Join(t.TempDir(), "jot.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer hist.Close()

	var sb strings.Builder
	if err := DeleteNote(&sb, s, hist, "doomed"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if s.Exists("doomed") {
		t.Error("note still exists")
	}
	if !strings.Contains(sb.String(), "Deleted") {
		t.Errorf("output = %q", sb.String())
	}

	entries, err := hist.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Event != history.EventDeleted {
		t.Errorf("history = %+v", entries)
	}
}

func TestDeleteNoteMissing(t *testing.T) {
	s := newTestStore(t)
	var sb strings.Builder
	if err := DeleteNote(&sb, s, nil, "ghost"); err == nil {
		t.Error("deleting a missing note did not error")
	}
}

func TestFindTitles(t *testing.T) {
	s := newTestStore(t, "groceries", "meeting notes", "garden plan")

	got, err := FindTitles(s, "gro")
	if err != nil {
		t.Fatalf("FindTitles: %v", err)
	}
	if len(got) == 0 || got[0] != "groceries" {
		t.Errorf("FindTitles(gro) = %q, want groceries first", got)
	}

	all, err := FindTitles(s, "")
	if err != nil {
		t.Fatalf("FindTitles: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("FindTitles(\"\") = %q, want all titles", all)
	}
}

func TestPrintHistory(t *testing.T) {
	hist, err := history.NewManager(filepath.Join(t.TempDir(), "jot.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer hist.Close()
	_ = hist.Record(history.EventSaved, "a note")

	var sb strings.Builder
	if err := PrintHistory(&sb, hist, 10); err != nil {
		t.Fatalf("PrintHistory: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "saved") || !strings.Contains(out, "a note") {
		t.Errorf("output = %q", out)
	}
}
