package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagResultLines int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the results log",
	Long: `Print the last lines of the results log, one per finished round.

Examples:
  typer results
  typer results -n 50
  typer results -n 0   # everything`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVarP(&flagResultLines, "lines", "n", 20, "Number of lines to show (0 = all)")
}

func runResults(_ *cobra.Command, _ []string) {
	a := openApp(false)
	defer a.close()

	if a.results == nil {
		return
	}

	lines, err := a.results.Tail(flagResultLines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading results: %v\n", err)
		return
	}
	if len(lines) == 0 {
		fmt.Println("No results yet.")
		return
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}
