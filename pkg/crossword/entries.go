package crossword

import "sort"

// NumberedEntry is a single placed word with the conventional crossword
// clue number of the cell it starts at. It is not part of the core
// layout model — it is derived from a finished Layout purely for
// presentation, the way a solver's on-screen grid numbers its clues.
type NumberedEntry struct {
	Number      int
	Word        string
	Row         int
	Col         int
	Orientation Orientation
}

// NumberEntries assigns clue numbers to every placed word with a
// row-major scan: cells that anchor at least one word are visited in
// row-major order (top to bottom, left to right) and numbered
// sequentially. Two words anchored at the same cell
// (one across, one down) share a number, matching conventional crossword
// numbering. Coordinates are normalized the same way Render normalizes
// them, so a NumberedEntry's (Row, Col) indexes directly into Render's
// output.
func NumberEntries(layout *Layout) []NumberedEntry {
	if len(layout.Words) == 0 {
		return nil
	}

	minRow, minCol, _, _ := boundingBox(layout)

	anchorCells := make(map[Cell]bool)
	for _, a := range layout.Words {
		anchorCells[Cell{Row: a.Row - minRow, Col: a.Col - minCol}] = true
	}

	cells := make([]Cell, 0, len(anchorCells))
	for c := range anchorCells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	numbers := make(map[Cell]int, len(cells))
	for i, c := range cells {
		numbers[c] = i + 1
	}

	entries := make([]NumberedEntry, 0, len(layout.Words))
	for word, a := range layout.Words {
		cell := Cell{Row: a.Row - minRow, Col: a.Col - minCol}
		entries = append(entries, NumberedEntry{
			Number:      numbers[cell],
			Word:        word,
			Row:         cell.Row,
			Col:         cell.Col,
			Orientation: a.Orientation,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Number != entries[j].Number {
			return entries[i].Number < entries[j].Number
		}
		if entries[i].Orientation != entries[j].Orientation {
			return entries[i].Orientation == Horizontal
		}
		return entries[i].Word < entries[j].Word
	})

	return entries
}
