package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/crossplay/wordgrid/internal/cache"
	"github.com/crossplay/wordgrid/internal/db"
	"github.com/crossplay/wordgrid/pkg/crossword"
	"github.com/crossplay/wordgrid/pkg/output"
	"github.com/crossplay/wordgrid/pkg/wordlist"
	"github.com/spf13/cobra"
)

var (
	buildWordlist          string
	buildOutput            string
	buildBoundaryExclusion bool
	buildCache             string
	buildNoCache           bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a crossword layout from a word list",
	Long: `Build constructs a single crossword-style layout from a list of words:
it enumerates candidate letter crossings, selects a conflict-free subset,
places every word on a grid, and writes the rendered result as JSON.

Examples:
  # Build a layout from a word list file
  crossgen build --words ./words.txt --output ./layout.json

  # Build with the boundary-exclusion placement rule enabled
  crossgen build --words ./words.txt --boundary-exclusion`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildWordlist, "words", "w", "", "path to word list file, one word per line (required)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output JSON file path (default: stdout)")
	buildCmd.Flags().BoolVar(&buildBoundaryExclusion, "boundary-exclusion", false, "reject placements where words touch outside a sanctioned crossing")
	buildCmd.Flags().StringVar(&buildCache, "cache", "./layout_cache.db", "path to local layout cache database")
	buildCmd.Flags().BoolVar(&buildNoCache, "no-cache", false, "skip the local layout cache entirely")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if buildWordlist == "" {
		return fmt.Errorf("--words flag is required")
	}

	if verbosity > 0 {
		fmt.Printf("Loading word list from: %s\n", buildWordlist)
	}

	words, err := wordlist.Load(buildWordlist)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}

	if verbosity > 0 {
		fmt.Printf("Loaded %d words\n", len(words))
	}

	var layoutCache *cache.LayoutCache
	hash := db.WordListHash(words)

	if !buildNoCache {
		layoutCache, err = cache.Open(buildCache)
		if err != nil {
			return fmt.Errorf("failed to open layout cache: %w", err)
		}
		defer layoutCache.Close()

		if grid, entriesJSON, ok := layoutCache.Get(hash); ok {
			if verbosity > 0 {
				fmt.Println("Cache hit, skipping search")
			}
			return writeLayout(words, grid, entriesJSON, buildOutput)
		}
	}

	cfg := crossword.Config{BoundaryExclusion: buildBoundaryExclusion}
	if verbosity >= 2 {
		cfg.OnEdge = func(prev, next string) {
			fmt.Printf("  %s -> %s\n", prev, next)
		}
	}

	start := time.Now()
	result, err := crossword.Construct(words, cfg)
	if err != nil {
		if err == crossword.ErrNoFeasibleLayout {
			fmt.Fprintln(os.Stderr, "no feasible layout exists for this word list")
			return err
		}
		return fmt.Errorf("failed to build layout: %w", err)
	}

	if verbosity > 0 {
		fmt.Printf("Built layout in %s (%d crossings used)\n", time.Since(start), len(result.Crossings))
	}

	data, err := output.ToJSON(words, result)
	if err != nil {
		return fmt.Errorf("failed to format layout as JSON: %w", err)
	}

	if layoutCache != nil {
		entries := output.FormatJSON(words, result).Entries
		if entriesJSON, err := json.Marshal(entries); err == nil {
			layoutCache.Save(hash, len(words), result.Grid, string(entriesJSON))
		}
	}

	if buildOutput == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(buildOutput), 0755); err != nil && filepath.Dir(buildOutput) != "." {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(buildOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Wrote layout to %s\n", buildOutput)
	return nil
}

// writeLayout reassembles a cached grid/entries pair into the same JSON
// shape a fresh build produces, and writes it to path (stdout if empty).
func writeLayout(words []string, grid, entriesJSON, path string) error {
	var entries []output.EntryJSON
	if err := json.Unmarshal([]byte(entriesJSON), &entries); err != nil {
		return fmt.Errorf("failed to decode cached entries: %w", err)
	}

	layoutJSON := output.LayoutJSON{Words: words, Grid: grid, Entries: entries}
	data, err := json.MarshalIndent(layoutJSON, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format cached layout as JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Wrote layout to %s\n", path)
	return nil
}
