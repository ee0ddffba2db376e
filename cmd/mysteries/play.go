package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mysteries/internal/platform/tui"
	"github.com/vovakirdan/mysteries/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a single game",
	Long: `Start the specified game directly. Leaving it, or the idle timeout,
exits the program instead of showing the menu.

Examples:
  mysteries play quiz
  mysteries play stars
  mysteries play wheel --seed 7`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mysteries list' to see available games.")
		os.Exit(1)
	}

	k, err := newKiosk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer k.Close()

	opts := k.opts
	opts.StartGame = gameID
	opts.QuitOnMenu = true

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		k.Close()
		os.Exit(1)
	}
}
