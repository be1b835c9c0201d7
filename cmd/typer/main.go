// typer is a terminal typing game: words drift across the screen and each one
// typed before it reaches the edge scores a point.
//
// Usage:
//
//	typer play               - Play a round
//	typer menu               - Start menu with category and difficulty pickers
//	typer categories         - List word categories
//	typer scores [category]  - Show high scores
//	typer results            - Show the results log
//	typer serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.typer/scores.db)
//	--results <path>     - Set results log path (default: ~/.typer/results.txt)
//	--words-dir <path>   - Directory with <category>.txt word lists
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-typer/internal/config"
	// Import the game to register it
	_ "github.com/vovakirdan/tui-typer/internal/games/typer"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagResultsPath string
	flagWordsDir    string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typer",
	Short: "Typer - A typing game in your terminal",
	Long: `Typer is a terminal typing game. Words drift from left to right;
type one and press Enter to clear it before it crosses the screen.

Available commands:
  play        - Play a round directly
  menu        - Interactive start menu
  categories  - Show the word categories
  scores      - View high scores
  results     - View the results log
  serve       - Start SSH server for remote play

Examples:
  typer play
  typer play --category food --difficulty hard
  typer menu
  typer serve --ssh :2222
  typer scores technology`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env is fine
		_ = godotenv.Load()

		paths := config.DefaultPaths()
		if flagDBPath == "" {
			flagDBPath = paths.DB
		}
		if flagResultsPath == "" {
			flagResultsPath = paths.Results
		}
		if flagWordsDir == "" {
			flagWordsDir = paths.WordsDir
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.typer/scores.db, env "+config.EnvDBPath+")")
	rootCmd.PersistentFlags().StringVar(&flagResultsPath, "results", "", "Path to results log (default ~/.typer/results.txt, env "+config.EnvResultsPath+")")
	rootCmd.PersistentFlags().StringVar(&flagWordsDir, "words-dir", "", "Directory of <category>.txt word lists (default ~/.typer/words, env "+config.EnvWordsDir+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
