package note

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("groceries", "milk\neggs"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, found, err := s.Load("groceries")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("note not found after save")
	}
	if got != "milk\neggs" {
		t.Errorf("body = %q, want %q", got, "milk\neggs")
	}
}

func TestSaveSkipsBlankBody(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("empty", "  \n\t \n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if s.Exists("empty") {
		t.Error("blank note was written")
	}
}

func TestSaveRejectsBadTitles(t *testing.T) {
	s := newTestStore(t)
	for _, title := range []string{"", "   ", "a/b", `a\b`, "../escape"} {
		if err := s.Save(title, "body"); err == nil {
			t.Errorf("Save(%q) accepted invalid title", title)
		}
	}
}

func TestLoadMissingNote(t *testing.T) {
	s := newTestStore(t)
	_, found, err := s.Load("ghost")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("missing note reported as found")
	}
}

func TestListSortedTitlesOnly(t *testing.T) {
	s := newTestStore(t)
	for _, title := range []string{"beta", "alpha"} {
		if err := s.Save(title, "x"); err != nil {
			t.Fatal(err)
		}
	}
	// Non-note files are ignored.
	if err := os.WriteFile(filepath.Join(s.Dir(), "stray.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	titles, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(titles) != 2 || titles[0] != "alpha" || titles[1] != "beta" {
		t.Errorf("List = %q, want [alpha beta]", titles)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("doomed", "x"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("doomed"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Exists("doomed") {
		t.Error("note still exists after delete")
	}
	if err := s.Delete("doomed"); err == nil {
		t.Error("deleting a missing note did not error")
	}
}

func TestRename(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("old", "body"); err != nil {
		t.Fatal(err)
	}
	if err := s.Rename("old", "new"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if s.Exists("old") {
		t.Error("old title still exists")
	}
	got, found, _ := s.Load("new")
	if !found || got != "body" {
		t.Errorf("new note = (%q, %v)", got, found)
	}
}

func TestRenameRefusesExistingTarget(t *testing.T) {
	s := newTestStore(t)
	_ = s.Save("a", "x")
	_ = s.Save("b", "y")
	if err := s.Rename("a", "b"); err == nil {
		t.Error("rename over an existing note did not error")
	}
}
