package crossword

import (
	"errors"
	"fmt"
)

// Result is the outcome of a successful Construct call: the placed
// layout, its rendered grid, and the subset of crossings that produced it.
type Result struct {
	Layout    *Layout
	Grid      string
	Crossings []Crossing
}

// Construct runs the full layout-construction pipeline: overlap
// enumeration, conflict-graph construction, a deterministic maximal
// independent set, and a decreasing-cardinality subset search that stops
// at the first subset whose word-crossing graph is connected and
// bipartite and whose BFS placement succeeds.
//
// Construct returns ErrNoFeasibleLayout (an expected outcome, not an
// exceptional one) if the search exhausts every subset without success.
// ErrEmptyWordList, ErrDuplicateWord, and ErrInvalidOrientationPair are
// contract violations on the input or on an internal invariant; Construct
// is single-threaded, synchronous, and deterministic, so identical input
// always produces an identical Result or an identical error.
func Construct(words []string, cfg Config) (*Result, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	if dup := firstDuplicate(words); dup != "" {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, dup)
	}

	crossings := enumerateOverlaps(words)
	graph := buildConflictGraph(crossings)
	maximal := maximalIndependentSet(graph)

	var result *Result
	var hardErr error
	subsetsByDecreasingSize(maximal, func(subset []Crossing) bool {
		_, orientationMap, err := solveFeasibility(words, subset)
		if err != nil {
			return false
		}

		layout, err := placeAll(words, orientationMap, subset, cfg)
		if err != nil {
			if errors.Is(err, ErrInvalidOrientationPair) {
				hardErr = err
				return true
			}
			return false
		}

		result = &Result{Layout: layout, Grid: Render(layout), Crossings: subset}
		return true
	})

	if hardErr != nil {
		return nil, hardErr
	}
	if result == nil {
		return nil, ErrNoFeasibleLayout
	}
	return result, nil
}

func firstDuplicate(words []string) string {
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			return w
		}
		seen[w] = true
	}
	return ""
}
