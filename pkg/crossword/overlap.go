package crossword

// enumerateOverlaps produces every candidate crossing between distinct
// pairs of words in the input list: every shared letter between two
// different words is one candidate crossing. The ordering is
// deterministic: outer over the earlier word's position, inner over the
// later word's position, then over the letter indices of each in turn.
func enumerateOverlaps(words []string) []Crossing {
	var crossings []Crossing
	for a := 0; a < len(words)-1; a++ {
		wordA := words[a]
		for b := a + 1; b < len(words); b++ {
			wordB := words[b]
			for i := 0; i < len(wordA); i++ {
				for j := 0; j < len(wordB); j++ {
					if wordA[i] == wordB[j] {
						crossings = append(crossings, Crossing{
							WordA:  wordA,
							IndexA: i,
							WordB:  wordB,
							IndexB: j,
						})
					}
				}
			}
		}
	}
	return crossings
}
