package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/cli"
	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/history"
	"github.com/jotcli/jot/internal/note"
	"github.com/jotcli/jot/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jot [title]",
	Short: "jot - terminal notes editor",
	Long: `jot is a small terminal notes editor.

Run without arguments to start a new note titled with the current
timestamp, or pass a title to open (or create) that note. Inside the
editor, esc opens the command line: quit saves and exits, title renames,
delete removes the note, help lists the rest.

Examples:
  jot                      # New note titled with the current time
  jot "meeting notes"      # Open or create a note
  jot list                 # Print all stored titles
  jot find gro             # Fuzzy-find a note and open it
  jot delete "old note"    # Delete without opening
  jot history              # Recent note activity`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Initialize()
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		title := defaultTitle()
		if len(args) > 0 {
			title = args[0]
		}
		return runEditor(cfg, title)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all stored note titles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Initialize()
		if err != nil {
			return err
		}
		return cli.ListNotes(cmd.OutOrStdout(), note.NewStore(cfg.Directory))
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Permanently delete a note without opening it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Initialize()
		if err != nil {
			return err
		}
		hist := openHistory()
		defer closeHistory(hist)
		return cli.DeleteNote(cmd.OutOrStdout(), note.NewStore(cfg.Directory), hist, args[0])
	},
}

var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Fuzzy-find a note and open it",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Initialize()
		if err != nil {
			return err
		}
		store := note.NewStore(cfg.Directory)

		titles, err := cli.FindTitles(store, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(titles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no matching notes")
			return nil
		}

		choice, err := cli.PickNote(titles)
		if err != nil {
			return err
		}
		if choice == "" {
			return nil
		}
		return runEditor(cfg, choice)
	},
}

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent note activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Initialize(); err != nil {
			return err
		}
		hist, err := history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer hist.Close()

		if historyClear {
			if err := hist.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		}
		return cli.PrintHistory(cmd.OutOrStdout(), hist, historyLimit)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Clear all history")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(historyCmd)
}

// runEditor loads the note and runs an editing session to completion.
func runEditor(cfg config.Config, title string) error {
	store := note.NewStore(cfg.Directory)

	content, _, err := store.Load(title)
	if err != nil {
		return err
	}

	hist := openHistory()
	defer closeHistory(hist)

	outcome, finalTitle, err := tui.Run(cfg, store, hist, title, content)
	if err != nil {
		return err
	}
	if outcome == tui.OutcomeDeleted {
		fmt.Printf("Deleted %q\n", finalTitle)
	}
	return nil
}

// openHistory is best-effort: editing works without the activity log.
func openHistory() *history.Manager {
	hist, err := history.NewManager(config.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return nil
	}
	return hist
}

func closeHistory(hist *history.Manager) {
	if hist != nil {
		hist.Close()
	}
}

// defaultTitle names unnamed notes after the moment they were started.
func defaultTitle() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
