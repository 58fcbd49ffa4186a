package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jetty-boot/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the saved name and high score",
	Long: `Display the persisted player name and high score.

Examples:
  jettyboot scores
  jettyboot scores --backend sqlite`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := store.Load()
	if err != nil && !errors.Is(err, storage.ErrMalformedRecord) {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	fmt.Println("High Score - Jetty Boot")
	fmt.Println()

	if rec.Name == "" && rec.HighScore == 0 {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jettyboot' to set the first high score!")
		return
	}

	fmt.Printf("  %-6s  %s\n", "Name", rec.Name)
	fmt.Printf("  %-6s  %d\n", "Score", rec.HighScore)

	// Only the sqlite backend keeps a save time
	if sq, ok := store.(*storage.SQLiteStore); ok {
		updated, err := sq.UpdatedAt()
		if err == nil && !updated.IsZero() {
			fmt.Printf("  %-6s  %s\n", "Date", updated.Local().Format("2006-01-02 15:04"))
		}
	}
}
