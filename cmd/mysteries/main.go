// mysteries is a terminal kiosk presenting three mini-games about the
// Mithraic mysteries: a quiz through the seven grades, a constellation hunt
// and Fortuna's wheel.
//
// Usage:
//
//	mysteries                  - Start the kiosk menu
//	mysteries menu             - Same as above
//	mysteries play <game>      - Play one game, exit when leaving it
//	mysteries list             - List available games
//	mysteries history [game]   - Show the play journal
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible outcomes
//	--db <path>       - Set journal path (default: ~/.mysteries/journal.db)
//	--content <path>  - Load quiz, star and fortune content from a YAML file
//	--log <path>      - Write logs to a file
//
// Flags fall back to MYSTERIES_FPS, MYSTERIES_DB, MYSTERIES_CONTENT and
// MYSTERIES_LOG, which may also come from a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mysteries/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/mysteries/internal/games/quiz"
	_ "github.com/vovakirdan/mysteries/internal/games/stars"
	_ "github.com/vovakirdan/mysteries/internal/games/wheel"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagContentPath string
	flagLogPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mysteries",
	Short: "Mysteries of Mithras - a terminal kiosk",
	Long: `Mysteries of Mithras is a kiosk with three mini-games:

  Quiz of Mithras     - climb the seven grades of initiation
  Starry Sky Mystery  - find the constellations of the mysteries
  Fortune Wheel       - let Fortuna reveal your fate

An idle visitor is warned after four minutes and returned to the menu
after five.

Examples:
  mysteries
  mysteries play stars
  mysteries history wheel
  mysteries --content ./museum.yaml --db /var/lib/kiosk/journal.db`,
	PersistentPreRunE: applyEnv,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, default 30)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to journal database (default ~/.mysteries/journal.db)")
	rootCmd.PersistentFlags().StringVar(&flagContentPath, "content", "", "Path to custom content YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default: no logging)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
}

// applyEnv fills every flag the user did not set from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("content") {
		flagContentPath = env.ContentPath
	}
	if !flags.Changed("log") {
		flagLogPath = env.LogPath
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
