// Package note persists notes as plain text files, one file per title.
package note

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jotcli/jot/internal/config"
)

// Extension is appended to titles to form file names.
const Extension = ".txt"

// Store reads and writes notes under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store over dir. The directory must already exist
// (config.Initialize creates it).
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(title string) string {
	return filepath.Join(s.dir, title+Extension)
}

// validTitle rejects titles that would escape the notes directory or
// produce unusable file names.
func validTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if strings.ContainsAny(title, `/\`) {
		return fmt.Errorf("title must not contain path separators: %q", title)
	}
	return nil
}

// Exists reports whether a note with the given title is stored.
func (s *Store) Exists(title string) bool {
	_, err := os.Stat(s.path(title))
	return err == nil
}

// List returns all stored titles, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	var titles []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		titles = append(titles, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(titles)
	return titles, nil
}

// Load returns the note body and whether the note exists.
func (s *Store) Load(title string) (string, bool, error) {
	data, err := os.ReadFile(s.path(title))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read note %q: %w", title, err)
	}
	return string(data), true, nil
}

// Save writes the note body. Bodies that are empty after trimming
// whitespace are not written; an existing file is left untouched.
func (s *Store) Save(title, text string) error {
	if err := validTitle(title); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := os.WriteFile(s.path(title), []byte(text), config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write note %q: %w", title, err)
	}
	return nil
}

// Delete permanently removes a note.
func (s *Store) Delete(title string) error {
	if err := os.Remove(s.path(title)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no note named %q", title)
		}
		return fmt.Errorf("failed to delete note %q: %w", title, err)
	}
	return nil
}

// Rename moves a note to a new title. The target must not exist.
func (s *Store) Rename(oldTitle, newTitle string) error {
	if err := validTitle(newTitle); err != nil {
		return err
	}
	if s.Exists(newTitle) {
		return fmt.Errorf("a note named %q already exists", newTitle)
	}
	if err := os.Rename(s.path(oldTitle), s.path(newTitle)); err != nil {
		return fmt.Errorf("failed to rename note %q: %w", oldTitle, err)
	}
	return nil
}
