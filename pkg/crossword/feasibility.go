package crossword

import "sort"

// wordGraph is the undirected word-crossing graph: nodes are words,
// edges are selected crossings.
type wordGraph map[string]map[string]bool

func buildWordGraph(words []string, subset []Crossing) wordGraph {
	g := make(wordGraph, len(words))
	for _, w := range words {
		g[w] = make(map[string]bool)
	}
	for _, c := range subset {
		g[c.WordA][c.WordB] = true
		g[c.WordB][c.WordA] = true
	}
	return g
}

// sortedNeighbors returns a word's neighbors in lexicographic order, so
// a BFS over the graph visits them in the same order on every run.
func (g wordGraph) sortedNeighbors(word string) []string {
	neighbors := make([]string, 0, len(g[word]))
	for n := range g[word] {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// isConnected reports whether every word in words is reachable from
// words[0] via the graph's edges.
func (g wordGraph) isConnected(words []string) bool {
	if len(words) == 0 {
		return true
	}
	visited := map[string]bool{words[0]: true}
	queue := []string{words[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.sortedNeighbors(cur) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	for _, w := range words {
		if !visited[w] {
			return false
		}
	}
	return true
}

// twoColor runs a BFS 2-coloring of the graph starting at root, assigning
// color 0 to root. It returns the coloring and false if the graph is not
// bipartite (an edge connects two same-colored nodes). Only the component
// containing root is colored, which suffices because connectivity over
// all words is required before this runs.
func (g wordGraph) twoColor(root string) (map[string]int, bool) {
	colors := map[string]int{root: 0}
	queue := []string{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.sortedNeighbors(cur) {
			if c, ok := colors[n]; ok {
				if c == colors[cur] {
					return nil, false
				}
				continue
			}
			colors[n] = 1 - colors[cur]
			queue = append(queue, n)
		}
	}
	return colors, true
}

// orientations turns a 2-coloring into an orientation assignment:
// color 0 -> horizontal, color 1 -> vertical.
func orientations(colors map[string]int) map[string]Orientation {
	out := make(map[string]Orientation, len(colors))
	for word, c := range colors {
		if c == 0 {
			out[word] = Horizontal
		} else {
			out[word] = Vertical
		}
	}
	return out
}

// solveFeasibility builds the word-crossing graph for subset, requires it
// to be connected over all input words, and 2-colors it for an
// orientation assignment. It returns errSubsetInfeasible if either check
// fails.
func solveFeasibility(words []string, subset []Crossing) (wordGraph, map[string]Orientation, error) {
	graph := buildWordGraph(words, subset)
	if !graph.isConnected(words) {
		return nil, nil, errSubsetInfeasible
	}
	colors, bipartite := graph.twoColor(words[0])
	if !bipartite {
		return nil, nil, errSubsetInfeasible
	}
	return graph, orientations(colors), nil
}

// crossingLookup records, for a subset, both directions of each crossing
// so the placement engine can answer "where does wordA cross wordB" from
// either side in O(1).
type crossingLookup map[unorderedDirectedPair][2]int

type unorderedDirectedPair struct {
	from, to string
}

func buildCrossingLookup(subset []Crossing) crossingLookup {
	lookup := make(crossingLookup, len(subset)*2)
	for _, c := range subset {
		lookup[unorderedDirectedPair{c.WordA, c.WordB}] = [2]int{c.IndexA, c.IndexB}
		lookup[unorderedDirectedPair{c.WordB, c.WordA}] = [2]int{c.IndexB, c.IndexA}
	}
	return lookup
}
