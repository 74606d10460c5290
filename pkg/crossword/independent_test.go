package crossword

import "testing"

func TestMaximalIndependentSet_PicksLexicographicallyFirst(t *testing.T) {
	crossings := enumerateOverlaps([]string{"ab", "ba"})
	g := buildConflictGraph(crossings)
	got := maximalIndependentSet(g)

	want := Crossing{WordA: "ab", IndexA: 0, WordB: "ba", IndexB: 1}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("maximalIndependentSet() = %v, want [%v]", got, want)
	}
}

func TestMaximalIndependentSet_NoConflicts(t *testing.T) {
	crossings := enumerateOverlaps([]string{"abc", "cde", "efg"})
	g := buildConflictGraph(crossings)
	got := maximalIndependentSet(g)
	if len(got) != len(crossings) {
		t.Fatalf("maximalIndependentSet() = %v, want all %d crossings", got, len(crossings))
	}
}

func TestMaximalIndependentSet_Empty(t *testing.T) {
	g := buildConflictGraph(nil)
	if got := maximalIndependentSet(g); got != nil {
		t.Errorf("maximalIndependentSet(empty graph) = %v, want nil", got)
	}
}

func TestSubsetsByDecreasingSize_Order(t *testing.T) {
	set := []Crossing{
		{WordA: "a", IndexA: 0, WordB: "b", IndexB: 0},
		{WordA: "a", IndexA: 0, WordB: "c", IndexB: 0},
		{WordA: "a", IndexA: 0, WordB: "d", IndexB: 0},
	}

	var sizes []int
	subsetsByDecreasingSize(set, func(subset []Crossing) bool {
		sizes = append(sizes, len(subset))
		return false // never match, so every subset is visited
	})

	// 1 subset of size 3, 3 of size 2, 3 of size 1 = 7 total, strictly
	// decreasing in size.
	if len(sizes) != 7 {
		t.Fatalf("visited %d subsets, want 7", len(sizes))
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] > sizes[i-1] {
			t.Fatalf("sizes not decreasing: %v", sizes)
		}
	}
	if sizes[0] != 3 {
		t.Errorf("first subset size = %d, want 3", sizes[0])
	}
}

func TestSubsetsByDecreasingSize_StopsEarly(t *testing.T) {
	set := []Crossing{
		{WordA: "a", IndexA: 0, WordB: "b", IndexB: 0},
		{WordA: "a", IndexA: 0, WordB: "c", IndexB: 0},
	}
	var visited int
	subsetsByDecreasingSize(set, func(subset []Crossing) bool {
		visited++
		return true // match immediately
	})
	if visited != 1 {
		t.Errorf("visited %d subsets before stopping, want 1", visited)
	}
}
