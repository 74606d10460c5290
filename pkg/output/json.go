package output

import (
	"encoding/json"

	"github.com/crossplay/wordgrid/pkg/crossword"
)

// EntryJSON represents a single numbered word entry in the JSON format.
type EntryJSON struct {
	Number      int    `json:"number"`
	Word        string `json:"word"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
}

// LayoutJSON represents a constructed layout in the JSON format for export.
type LayoutJSON struct {
	Words   []string    `json:"words"`
	Grid    string      `json:"grid"`
	Entries []EntryJSON `json:"entries"`
}

// FormatJSON converts a crossword.Result to LayoutJSON.
func FormatJSON(words []string, result *crossword.Result) *LayoutJSON {
	numbered := crossword.NumberEntries(result.Layout)

	entries := make([]EntryJSON, len(numbered))
	for i, e := range numbered {
		entries[i] = EntryJSON{
			Number:      e.Number,
			Word:        e.Word,
			Row:         e.Row,
			Col:         e.Col,
			Orientation: e.Orientation.String(),
		}
	}

	return &LayoutJSON{
		Words:   words,
		Grid:    result.Grid,
		Entries: entries,
	}
}

// ToJSON converts a crossword.Result to indented JSON bytes.
func ToJSON(words []string, result *crossword.Result) ([]byte, error) {
	layoutJSON := FormatJSON(words, result)
	return json.MarshalIndent(layoutJSON, "", "  ")
}
