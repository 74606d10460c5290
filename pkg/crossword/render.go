package crossword

import "strings"

// EmptyGlyph is shown for any grid cell with no occupant.
const EmptyGlyph = '-'

// Render normalizes layout's coordinates so the minimum row and column
// become zero, then emits a rectangular character grid: the canonical
// (first) occupant's character for occupied cells, EmptyGlyph otherwise.
// Rows are newline-separated, including a trailing newline after the
// last row.
func Render(layout *Layout) string {
	if len(layout.Coords) == 0 {
		return ""
	}

	minRow, minCol, maxRow, maxCol := boundingBox(layout)
	height := maxRow - minRow + 1
	width := maxCol - minCol + 1

	rows := make([][]byte, height)
	for r := range rows {
		row := make([]byte, width)
		for c := range row {
			row[c] = EmptyGlyph
		}
		rows[r] = row
	}

	for cell, occupants := range layout.Coords {
		rows[cell.Row-minRow][cell.Col-minCol] = occupants[0].Char
	}

	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// boundingBox returns the min/max row and column across every occupied
// cell of layout.
func boundingBox(layout *Layout) (minRow, minCol, maxRow, maxCol int) {
	first := true
	for cell := range layout.Coords {
		if first {
			minRow, maxRow = cell.Row, cell.Row
			minCol, maxCol = cell.Col, cell.Col
			first = false
			continue
		}
		if cell.Row < minRow {
			minRow = cell.Row
		}
		if cell.Row > maxRow {
			maxRow = cell.Row
		}
		if cell.Col < minCol {
			minCol = cell.Col
		}
		if cell.Col > maxCol {
			maxCol = cell.Col
		}
	}
	return
}
