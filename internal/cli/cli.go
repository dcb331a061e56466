// Package cli implements the non-editor subcommands: listing, deleting and
// finding notes, and printing activity history.
package cli

import (
	"fmt"
	"io"

	"github.com/sahilm/fuzzy"

	"github.com/jotcli/jot/internal/history"
	"github.com/jotcli/jot/internal/note"
)

// ListNotes prints all stored titles, one per line.
func ListNotes(w io.Writer, store *note.Store) error {
	titles, err := store.List()
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		fmt.Fprintln(w, "no notes yet")
		return nil
	}
	for _, title := range titles {
		fmt.Fprintln(w, title)
	}
	return nil
}

// DeleteNote permanently removes a note and records the deletion.
func DeleteNote(w io.Writer, store *note.Store, hist *history.Manager, title string) error {
	if err := store.Delete(title); err != nil {
		return err
	}
	if hist != nil {
		_ = hist.Record(history.EventDeleted, title)
	}
	fmt.Fprintf(w, "Deleted %q\n", title)
	return nil
}

// FindTitles ranks stored titles against a fuzzy query, best match first.
// An empty query returns all titles in stored order.
func FindTitles(store *note.Store, query string) ([]string, error) {
	titles, err := store.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return titles, nil
	}

	matches := fuzzy.Find(query, titles)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = titles[m.Index]
	}
	return out, nil
}

// PrintHistory prints the most recent activity entries, newest first.
func PrintHistory(w io.Writer, hist *history.Manager, limit int) error {
	entries, err := hist.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no activity yet")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-8s %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Event, e.Title)
	}
	return nil
}
