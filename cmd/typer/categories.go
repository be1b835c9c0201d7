package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-typer/internal/words"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List word categories",
	Long: `Shows the word categories and how many words each one has.

Lists in --words-dir (or ` + "`~/.typer/words`" + `) named <category>.txt
replace the built-in ones.`,
	Args: cobra.NoArgs,
	Run:  runCategories,
}

func runCategories(_ *cobra.Command, _ []string) {
	a := openApp(false)
	defer a.close()

	cats := a.source.Categories()
	if len(cats) == 0 {
		fmt.Println("No categories available.")
		return
	}

	fmt.Println("Categories:")
	fmt.Println()

	// Calculate column widths
	maxLen := len("Category")
	for _, c := range cats {
		maxLen = max(maxLen, len(c))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Category", "Words")
	fmt.Printf("  %-*s  %s\n", maxLen, "--------", "-----")

	for _, c := range cats {
		list := words.Load(a.source, c, a.logger)
		fmt.Printf("  %-*s  %d\n", maxLen, c, len(list))
	}

	fmt.Println()
	fmt.Println("Run 'typer play --category <name>' to play one.")
}
