package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mysteries/internal/registry"
	"github.com/vovakirdan/mysteries/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show the play journal",
	Long: `Display the latest journal entries, for all games or for one game.
With a game, its visit statistics are shown too. For the wheel, the
fortunes revealed so far are tallied.

Examples:
  mysteries history
  mysteries history quiz --limit 50
  mysteries history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the journal (for the given game, or everything)")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'mysteries list' to see available games.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Journal cleared.")
		return
	}

	var entries []storage.Entry
	if gameID == "" {
		entries, err = store.Recent(flagLimit)
		fmt.Println("Journal - all games")
	} else {
		entries, err = store.ForGame(gameID, flagLimit)
		fmt.Printf("Journal - %s\n", registry.Title(gameID))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No visits recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mysteries' to open the kiosk.")
		return
	}

	fmt.Printf("  %-16s  %-20s  %-10s  %s\n", "When", "Game", "Event", "Detail")
	fmt.Printf("  %-16s  %-20s  %-10s  %s\n", "----", "----", "-----", "------")
	for _, e := range entries {
		fmt.Printf("  %-16s  %-20s  %-10s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			registry.Title(e.GameID),
			string(e.Kind),
			e.Detail,
		)
	}

	if gameID == "" {
		return
	}

	st, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Visits: %d  Completed: %d  Idle resets: %d\n", st.Visits, st.Completions, st.IdleResets)

	if st.Reveals == 0 {
		return
	}
	counts, err := store.FortuneCounts()
	if err != nil {
		return
	}
	fortunes := make([]string, 0, len(counts))
	for f := range counts {
		fortunes = append(fortunes, f)
	}
	sort.Slice(fortunes, func(i, j int) bool {
		if counts[fortunes[i]] != counts[fortunes[j]] {
			return counts[fortunes[i]] > counts[fortunes[j]]
		}
		return fortunes[i] < fortunes[j]
	})

	fmt.Println()
	fmt.Println("Fortunes revealed:")
	for _, f := range fortunes {
		fmt.Printf("  %3d  %s\n", counts[f], f)
	}
}
