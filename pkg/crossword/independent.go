package crossword

import "sort"

// sortedNodes returns the graph's crossings in a fixed lexicographic
// total order, so that picking by "smallest remaining node" always
// breaks ties the same way and two runs over the same input agree.
func (g *conflictGraph) sortedNodes() []Crossing {
	nodes := make([]Crossing, len(g.nodes))
	copy(nodes, g.nodes)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Less(nodes[j]) })
	return nodes
}

// maximalIndependentSet computes a deterministic maximal (not maximum)
// independent set: the first node in sorted order seeds the set, then
// the smallest remaining node that is not adjacent to any chosen node is
// added, repeating until no node remains eligible. The result is itself
// returned in sorted order.
func maximalIndependentSet(g *conflictGraph) []Crossing {
	sorted := g.sortedNodes()
	if len(sorted) == 0 {
		return nil
	}

	excluded := make(map[Crossing]bool) // chosen nodes and their neighbors
	var chosen []Crossing

	seed := sorted[0]
	chosen = append(chosen, seed)
	excluded[seed] = true
	for n := range g.neighbors(seed) {
		excluded[n] = true
	}

	for _, candidate := range sorted[1:] {
		if excluded[candidate] {
			continue
		}
		chosen = append(chosen, candidate)
		excluded[candidate] = true
		for n := range g.neighbors(candidate) {
			excluded[n] = true
		}
	}

	sort.Slice(chosen, func(i, j int) bool { return chosen[i].Less(chosen[j]) })
	return chosen
}

// subsetsByDecreasingSize calls visit with every subset of set, from the
// full set (size n) down to single-element subsets (size 1), and within
// a size from the lexicographically first combination of element indices
// to the last. It stops as soon as visit returns true.
//
// set is assumed already sorted; the indices chosen at each size are
// therefore lexicographic over the sorted crossings too, so the search
// always tries the same subset first on the same input.
func subsetsByDecreasingSize(set []Crossing, visit func([]Crossing) bool) {
	n := len(set)
	for size := n; size >= 1; size-- {
		if combinationsOfSize(set, size, visit) {
			return
		}
	}
}

// combinationsOfSize enumerates all size-element combinations of set's
// indices in lexicographic order, calling visit with each. It returns
// true as soon as visit signals a match (true), short-circuiting the
// remaining combinations.
func combinationsOfSize(set []Crossing, size int, visit func([]Crossing) bool) bool {
	n := len(set)
	if size > n {
		return false
	}

	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}

	for {
		subset := make([]Crossing, size)
		for i, idx := range indices {
			subset[i] = set[idx]
		}
		if visit(subset) {
			return true
		}

		// Advance indices to the next combination in lexicographic order.
		i := size - 1
		for i >= 0 && indices[i] == n-size+i {
			i--
		}
		if i < 0 {
			return false
		}
		indices[i]++
		for j := i + 1; j < size; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
