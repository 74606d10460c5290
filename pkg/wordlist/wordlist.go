// Package wordlist loads the plain word lists crossgen builds layouts
// from: one word per line, no score or metadata attached.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a word list from path, one word per line. Blank lines are
// skipped; surrounding whitespace is trimmed and words are lower-cased
// to match the casing crossword.Construct expects.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wordlist file: %w", err)
	}

	return words, nil
}
