package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/games/typer"
	"github.com/vovakirdan/tui-typer/internal/platform/tui"
	"github.com/vovakirdan/tui-typer/internal/registry"
	"github.com/vovakirdan/tui-typer/internal/words"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start typer with the interactive menu",
	Long: `Start typer in interactive menu mode.

Pick a category and difficulty, then start a round. Leaving a round
returns to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change category or difficulty
  Enter/Space     - Select
  Q               - Quit

Examples:
  typer menu
  typer menu --category food --difficulty easy
  typer menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a := openApp(true)
	defer a.close()

	typer.SetConfigPath(flagConfig)

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		a.logger.Warn("Unknown difficulty, using normal", "preset", flagDifficulty)
	}
	category, _ := words.NormalizeCategory(flagCategory)

	categories := a.source.Categories()
	cfg := runtimeConfig()
	rec := a.recorder()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(a.store, cfg, categories, category, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config
		category, preset = menuResult.Category, menuResult.Preset

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(a.store, cfg.ScreenW, cfg.ScreenH, categories, category)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return // User quit from scoreboard
			}
			continue

		case tui.MenuChoiceResults:
			goBack, resErr := tui.RunResults(a.results, cfg.ScreenW, cfg.ScreenH)
			if resErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", resErr)
			}
			if !goBack {
				return
			}
			continue

		case tui.MenuChoiceStart:
		default:
			return
		}

		game, err := registry.Create(typer.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}
		if c, ok := game.(registry.Configurable); ok {
			c.Configure(category, string(preset))
		}

		// Update seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		quit, err := tui.Run(game, rec, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if quit {
			return
		}

		// Loop back to menu
	}
}
