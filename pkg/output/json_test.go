package output

import (
	"encoding/json"
	"testing"

	"github.com/crossplay/wordgrid/pkg/crossword"
)

func buildSample(t *testing.T) ([]string, *crossword.Result) {
	t.Helper()
	words := []string{"cat", "act"}
	result, err := crossword.Construct(words, crossword.Config{})
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}
	return words, result
}

func TestFormatJSON(t *testing.T) {
	words, result := buildSample(t)

	layoutJSON := FormatJSON(words, result)

	if len(layoutJSON.Words) != 2 {
		t.Errorf("Words = %v, want 2 entries", layoutJSON.Words)
	}
	if layoutJSON.Grid != result.Grid {
		t.Errorf("Grid = %q, want %q", layoutJSON.Grid, result.Grid)
	}
	if len(layoutJSON.Entries) != 2 {
		t.Fatalf("Entries = %v, want 2 entries", layoutJSON.Entries)
	}

	for _, e := range layoutJSON.Entries {
		if e.Orientation != "horizontal" && e.Orientation != "vertical" {
			t.Errorf("entry %q has unexpected orientation %q", e.Word, e.Orientation)
		}
	}
}

func TestToJSON_RoundTrips(t *testing.T) {
	words, result := buildSample(t)

	data, err := ToJSON(words, result)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded LayoutJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal ToJSON() output: %v", err)
	}

	if decoded.Grid != result.Grid {
		t.Errorf("decoded Grid = %q, want %q", decoded.Grid, result.Grid)
	}
	if len(decoded.Entries) != 2 {
		t.Errorf("decoded Entries = %v, want 2 entries", decoded.Entries)
	}
}
