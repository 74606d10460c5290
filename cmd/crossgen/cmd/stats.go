package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/crossplay/wordgrid/internal/cache"
	"github.com/spf13/cobra"
)

var (
	statsDB string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display layout cache statistics",
	Long: `Display statistics about the local layout cache database.

Shows information about:
  - Total cached layouts
  - Smallest and largest word lists cached
  - Entry counts grouped by word-list size

Examples:
  # Show stats for default cache location
  crossgen stats

  # Show stats for custom cache database
  crossgen stats --db /path/to/layout_cache.db`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDB, "db", "d", "", "path to layout cache database (default: ./layout_cache.db)")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := statsDB
	if dbPath == "" {
		dbPath = "./layout_cache.db"
	}

	if verbosity > 0 {
		fmt.Printf("Reading cache database: %s\n", dbPath)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("cache database not found at %s", dbPath)
	}

	layoutCache, err := cache.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	defer layoutCache.Close()

	fmt.Printf("\nLayout Cache Statistics\n")
	fmt.Printf("=======================\n")
	fmt.Printf("Database: %s\n\n", dbPath)

	stats, err := layoutCache.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Total cached layouts: %d\n", stats.TotalEntries)
	if stats.TotalEntries == 0 {
		fmt.Println("  No cached layouts found")
		return nil
	}
	fmt.Printf("Smallest word list:   %d words\n", stats.SmallestWords)
	fmt.Printf("Largest word list:    %d words\n\n", stats.LargestWords)

	hist, err := layoutCache.SizeHistogram()
	if err != nil {
		return err
	}

	fmt.Println("Cached Layouts by Word-List Size:")
	fmt.Println("----------------------------------")

	sizes := make([]int, 0, len(hist))
	for size := range hist {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	for _, size := range sizes {
		fmt.Printf("  %3d words: %d layout(s)\n", size, hist[size])
	}

	return nil
}
