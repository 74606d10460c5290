package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/crossplay/wordgrid/pkg/wordlist"
	"github.com/spf13/cobra"
)

var (
	validateInput string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate word list files",
	Long: `Validate one or more word list files for the contract a build requires:

  - At least one word present
  - No duplicate words

Examples:
  # Validate a single word list file
  crossgen validate --input words.txt

  # Validate all word lists in a directory
  crossgen validate --input ./wordlists`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "input file or directory to validate (required)")
	validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if verbosity > 0 {
		fmt.Printf("Validating: %s\n", validateInput)
	}

	info, err := os.Stat(validateInput)
	if err != nil {
		return fmt.Errorf("failed to access input path: %w", err)
	}

	var filesToValidate []string
	if info.IsDir() {
		files, err := filepath.Glob(filepath.Join(validateInput, "*.txt"))
		if err != nil {
			return fmt.Errorf("failed to list directory: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no .txt files found in directory: %s", validateInput)
		}
		filesToValidate = files
	} else {
		filesToValidate = []string{validateInput}
	}

	totalFiles := len(filesToValidate)
	invalidFiles := 0
	validFiles := 0

	for _, filePath := range filesToValidate {
		if verbosity > 0 {
			fmt.Printf("\nValidating: %s\n", filePath)
		}

		errs, err := validateWordListFile(filePath)
		if err != nil {
			fmt.Printf("ERROR %s: %v\n", filepath.Base(filePath), err)
			invalidFiles++
			continue
		}
		if len(errs) > 0 {
			fmt.Printf("INVALID %s\n", filepath.Base(filePath))
			for _, e := range errs {
				fmt.Printf("  - %s\n", e)
			}
			invalidFiles++
			continue
		}

		if verbosity > 0 {
			fmt.Printf("VALID %s\n", filepath.Base(filePath))
		}
		validFiles++
	}

	fmt.Printf("\n")
	fmt.Printf("Validation Summary:\n")
	fmt.Printf("  Total files:   %d\n", totalFiles)
	fmt.Printf("  Valid:         %d\n", validFiles)
	fmt.Printf("  Invalid:       %d\n", invalidFiles)

	if invalidFiles > 0 {
		os.Exit(1)
	}

	return nil
}

// validateWordListFile checks a single word list file against the two
// contract violations Construct rejects: an empty list, and any word
// appearing twice.
func validateWordListFile(filePath string) ([]string, error) {
	words, err := wordlist.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	var errs []string

	if len(words) == 0 {
		errs = append(errs, "word list is empty")
		return errs, nil
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			errs = append(errs, fmt.Sprintf("duplicate word: %q", w))
			continue
		}
		seen[w] = true
	}

	return errs, nil
}
