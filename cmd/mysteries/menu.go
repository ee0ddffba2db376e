package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mysteries/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the kiosk menu",
	Long: `Open the kiosk menu to pick a game. This is also what runs when no
command is given.

Controls:
  Up/Down, j/k   - Move
  Enter/Space    - Select, answer, look, spin
  1-3            - Pick an entry or an answer directly
  Mouse click    - Pick, tap the sky, spin
  B/Esc          - Back to menu
  Tab            - Journal (from the menu)
  Q/Ctrl+C       - Quit`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	k, err := newKiosk()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer k.Close()

	if err := tui.Run(k.opts); err != nil {
		k.opts.Logger.Error("kiosk stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		k.Close()
		os.Exit(1)
	}
}
