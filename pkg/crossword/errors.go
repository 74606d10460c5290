package crossword

import "errors"

var (
	// ErrNoFeasibleLayout is returned by Construct when the search
	// completed without finding a subset that produces a valid layout.
	// This is not an exceptional condition: an exhausted search over a
	// word list with no workable crossing is an ordinary, expected outcome.
	ErrNoFeasibleLayout = errors.New("crossword: no maximal set could be realized")

	// ErrDuplicateWord is a contract violation: the input word list
	// contained the same word twice.
	ErrDuplicateWord = errors.New("crossword: word list contains a duplicate word")

	// ErrEmptyWordList is a contract violation: Construct requires at
	// least one word to anchor the layout.
	ErrEmptyWordList = errors.New("crossword: word list is empty")

	// ErrInvalidOrientationPair is a contract violation: the placement
	// engine reached two crossing words with the same orientation, which
	// the feasibility solver's bipartite coloring is supposed to rule
	// out. Construct returns it wrapped with the offending words rather
	// than panicking, since callers driving an HTTP or CLI surface need a
	// reportable error even for an internal inconsistency.
	ErrInvalidOrientationPair = errors.New("crossword: invalid orientation pair during placement")
)

// errSubsetInfeasible signals, internally to the search loop, that a
// candidate subset of crossings cannot produce a layout (disconnected or
// non-bipartite word-crossing graph, or a placement conflict). It is
// never returned from Construct; the caller only ever sees
// ErrNoFeasibleLayout if every subset fails this way.
var errSubsetInfeasible = errors.New("crossword: subset is not feasible")
