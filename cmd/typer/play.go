package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-typer/internal/games/typer"
	"github.com/vovakirdan/tui-typer/internal/platform/tui"
	"github.com/vovakirdan/tui-typer/internal/registry"
	"github.com/vovakirdan/tui-typer/internal/words"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCategory   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round right away.

Controls:
  Letters     - Type
  Backspace   - Delete
  Enter       - Submit the typed word
  Esc         - Pause / resume
  R           - Restart (paused or after game over)
  Q           - Leave (paused or after game over)
  Ctrl+C      - Quit

Difficulty options:
  easy   - Slower words, longer gaps, two extra lives
  normal - The configured values
  hard   - Faster words, shorter gaps
  fixed  - No speed-up over time

Examples:
  typer play
  typer play --category technology
  typer play --difficulty hard
  typer play --config ./my-typer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom typer config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().StringVar(&flagCategory, "category", "", "Word category (see 'typer categories')")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagCategory != "" {
		if _, ok := words.NormalizeCategory(flagCategory); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", flagCategory)
			fmt.Fprintln(os.Stderr, "Run 'typer categories' to see available categories.")
			os.Exit(1)
		}
	}

	a := openApp(true)

	// Settings apply to games created from here on
	typer.SetConfigPath(flagConfig)
	typer.SetDifficultyPreset(flagDifficulty)
	typer.SetCategory(flagCategory)

	game, err := registry.Create(typer.ID)
	if err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, a.recorder(), runtimeConfig())

	// Close store before potential exit
	a.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
