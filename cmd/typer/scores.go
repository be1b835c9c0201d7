package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-typer/internal/words"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [category]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores, for one category or across all of them.

Examples:
  typer scores
  typer scores food
  typer scores food --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	category := ""
	if len(args) == 1 {
		name, ok := words.NormalizeCategory(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'typer categories' to see available categories.")
			os.Exit(1)
		}
		category = name
	}

	a := openApp(false)
	if a.store == nil {
		a.close()
		os.Exit(1)
	}
	defer a.close()

	title := category
	if title == "" {
		title = "All categories"
	}

	if flagClear {
		if err := a.store.ClearScores(category); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores - %s\n", title)
		return
	}

	scores, err := a.store.TopScores(category, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'typer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-14s  %s\n", "Rank", "Score", "Words", "Category", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-14s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-14s  %s\n", i+1, entry.Score, entry.Words, entry.Category, dateStr)
	}

	fmt.Println()
	stats, err := a.store.AllCategoryStats()
	if err != nil {
		return
	}
	if category != "" {
		if s, ok := stats[category]; ok {
			fmt.Printf("Best: %d  Games: %d  Average: %.1f  Words: %d\n", s.HighScore, s.GamesCount, s.AvgScore, s.TotalWords)
		}
		return
	}
	for _, c := range a.source.Categories() {
		if s, ok := stats[c]; ok {
			fmt.Printf("  %-14s best %d over %d games\n", c, s.HighScore, s.GamesCount)
		}
	}
}
