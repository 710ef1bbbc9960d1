package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/dino-dash/internal/storage"
)

// printRunSummary prints the best runs of the session after the game exits.
// Nothing is printed when no run finished.
func printRunSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if stats.Runs == 0 {
		return nil
	}

	runs, err := store.TopRuns(5)
	if err != nil {
		return err
	}

	// Display runs
	fmt.Fprintf(w, "Dino Dash - %d run(s), best %d, average %.1f\n", stats.Runs, stats.BestScore, stats.AvgScore)
	fmt.Fprintln(w, "================================")
	fmt.Fprintf(w, "%-6s %-8s %-8s %-8s\n", "Rank", "Score", "Passed", "Time")
	fmt.Fprintln(w, "--------------------------------")
	for i, r := range runs {
		fmt.Fprintf(w, "#%-5d %-8d %-8d %.1fs\n", i+1, r.Score, r.Passed, r.ElapsedMs/1000)
	}

	return nil
}
