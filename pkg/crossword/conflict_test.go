package crossword

import "testing"

func TestBuildConflictGraph_DuplicateWordPair(t *testing.T) {
	crossings := enumerateOverlaps([]string{"ab", "ba"})
	g := buildConflictGraph(crossings)

	c1 := Crossing{WordA: "ab", IndexA: 0, WordB: "ba", IndexB: 1}
	c2 := Crossing{WordA: "ab", IndexA: 1, WordB: "ba", IndexB: 0}

	if !g.neighbors(c1)[c2] {
		t.Errorf("expected %v and %v to conflict (duplicate word pair)", c1, c2)
	}
}

func TestBuildConflictGraph_SameLetterSlot(t *testing.T) {
	// "aba" crosses "xax" and "yay" through their middle 'a', and both
	// crossings pin aba's index 0 -- a same-letter-slot conflict.
	c1 := Crossing{WordA: "aba", IndexA: 0, WordB: "xax", IndexB: 1}
	c2 := Crossing{WordA: "aba", IndexA: 0, WordB: "yay", IndexB: 1}
	g := buildConflictGraph([]Crossing{c1, c2})
	if !g.neighbors(c1)[c2] {
		t.Errorf("expected %v and %v to conflict (same letter slot)", c1, c2)
	}
}

func TestBuildConflictGraph_NoConflict(t *testing.T) {
	crossings := enumerateOverlaps([]string{"abc", "cde", "efg"})
	g := buildConflictGraph(crossings)
	for _, c := range crossings {
		if len(g.neighbors(c)) != 0 {
			t.Errorf("expected no conflicts among chain crossings, %v has neighbors %v", c, g.neighbors(c))
		}
	}
}
