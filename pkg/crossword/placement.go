package crossword

import "fmt"

// placeWord attempts to add word to layout at the given anchor. It
// mutates layout in place; callers that need to abandon a partial
// attempt simply discard the whole layout and start a fresh one rather
// than trying to undo a partial placement.
//
// Idempotence: re-placing the same word at the same anchor and
// orientation succeeds without changing state. Re-placing it at a
// different anchor or orientation fails.
func placeWord(layout *Layout, word string, anchor Anchor, cfg Config) error {
	if existing, ok := layout.Words[word]; ok {
		if existing == anchor {
			return nil
		}
		return errSubsetInfeasible
	}

	cells := cellsFor(anchor.Row, anchor.Col, len(word), anchor.Orientation)

	if cfg.BoundaryExclusion {
		before, after := endpointCells(anchor, len(word))
		if cellOccupied(layout, before) || cellOccupied(layout, after) {
			return errSubsetInfeasible
		}
	}

	// A pre-pass determines, for each cell, whether it is an existing
	// single-occupant crossing (in which case this word's letter must
	// agree and the existing occupant must run the other way) before any
	// mutation happens.
	isCrossing := make([]bool, len(cells))
	for i, cell := range cells {
		occ := layout.Coords[cell]
		switch len(occ) {
		case 0:
			isCrossing[i] = false
		case 1:
			if occ[0].Char != word[i] || occ[0].Orientation == anchor.Orientation {
				return errSubsetInfeasible
			}
			isCrossing[i] = true
		default:
			return errSubsetInfeasible
		}
	}

	if cfg.BoundaryExclusion {
		for i, cell := range cells {
			if isCrossing[i] {
				continue
			}
			p1, p2 := perpendicularNeighbors(cell, anchor.Orientation)
			if cellOccupied(layout, p1) || cellOccupied(layout, p2) {
				return errSubsetInfeasible
			}
		}
	}

	for i, cell := range cells {
		layout.Coords[cell] = append(layout.Coords[cell], Occupant{
			Char:        word[i],
			Word:        word,
			LetterIndex: i,
			Orientation: anchor.Orientation,
		})
	}
	layout.Words[word] = anchor
	return nil
}

func cellOccupied(layout *Layout, cell Cell) bool {
	return len(layout.Coords[cell]) > 0
}

// endpointCells returns the cell immediately before the word's start and
// immediately after its end, along its own axis.
func endpointCells(anchor Anchor, length int) (before, after Cell) {
	if anchor.Orientation == Horizontal {
		return Cell{Row: anchor.Row, Col: anchor.Col - 1}, Cell{Row: anchor.Row, Col: anchor.Col + length}
	}
	return Cell{Row: anchor.Row - 1, Col: anchor.Col}, Cell{Row: anchor.Row + length, Col: anchor.Col}
}

// perpendicularNeighbors returns the two cells adjacent to cell along the
// axis perpendicular to orientation.
func perpendicularNeighbors(cell Cell, orientation Orientation) (Cell, Cell) {
	if orientation == Horizontal {
		return Cell{Row: cell.Row - 1, Col: cell.Col}, Cell{Row: cell.Row + 1, Col: cell.Col}
	}
	return Cell{Row: cell.Row, Col: cell.Col - 1}, Cell{Row: cell.Row, Col: cell.Col + 1}
}

// cellAtIndex returns the grid cell a word placed at anchor occupies at
// the given letter index.
func cellAtIndex(anchor Anchor, index int) Cell {
	if anchor.Orientation == Horizontal {
		return Cell{Row: anchor.Row, Col: anchor.Col + index}
	}
	return Cell{Row: anchor.Row + index, Col: anchor.Col}
}

// placeAll performs the breadth-first placement of the word-crossing
// graph: word[0] anchors the layout at (0, 0); every other word's anchor
// is derived from the tree edge that first discovers it in a BFS of the
// graph.
//
// Crossings in subset that end up as non-tree edges of the BFS (possible
// when the word-crossing graph has a cycle) are not used to derive any
// anchor, but still must land on the same cell they claim to cross at —
// otherwise that crossing never actually lands on the grid. placeAll
// checks every crossing in subset after the BFS completes and fails the
// whole attempt if any does not coincide.
func placeAll(words []string, orientationMap map[string]Orientation, subset []Crossing, cfg Config) (*Layout, error) {
	layout := newLayout()
	w0 := words[0]

	if err := placeWord(layout, w0, Anchor{Row: 0, Col: 0, Orientation: orientationMap[w0]}, cfg); err != nil {
		return nil, err
	}

	graph := buildWordGraph(words, subset)
	lookup := buildCrossingLookup(subset)

	visited := map[string]bool{w0: true}
	queue := []string{w0}

	for len(queue) > 0 {
		prev := queue[0]
		queue = queue[1:]

		for _, next := range graph.sortedNeighbors(prev) {
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)

			indices, ok := lookup[unorderedDirectedPair{prev, next}]
			if !ok {
				return nil, errSubsetInfeasible
			}
			prevIdx, nextIdx := indices[0], indices[1]

			prevAnchor := layout.Words[prev]
			nextOrientation := orientationMap[next]

			var nextAnchor Anchor
			switch {
			case prevAnchor.Orientation == Horizontal && nextOrientation == Vertical:
				nextAnchor = Anchor{
					Row:         prevAnchor.Row - nextIdx,
					Col:         prevAnchor.Col + prevIdx,
					Orientation: Vertical,
				}
			case prevAnchor.Orientation == Vertical && nextOrientation == Horizontal:
				nextAnchor = Anchor{
					Row:         prevAnchor.Row + prevIdx,
					Col:         prevAnchor.Col - nextIdx,
					Orientation: Horizontal,
				}
			default:
				// A contract violation: the feasibility solver's bipartite
				// coloring guarantees adjacent words in the word-crossing
				// graph always get perpendicular orientations.
				return nil, fmt.Errorf("%w: %q and %q", ErrInvalidOrientationPair, prev, next)
			}

			if cfg.OnEdge != nil {
				cfg.OnEdge(prev, next)
			}

			if err := placeWord(layout, next, nextAnchor, cfg); err != nil {
				return nil, errSubsetInfeasible
			}
		}
	}

	for _, c := range subset {
		anchorA := layout.Words[c.WordA]
		anchorB := layout.Words[c.WordB]
		if cellAtIndex(anchorA, c.IndexA) != cellAtIndex(anchorB, c.IndexB) {
			return nil, errSubsetInfeasible
		}
	}

	return layout, nil
}
