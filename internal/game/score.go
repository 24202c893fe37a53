package game

import "github.com/verte-zerg/tuibee/internal/puzzle"

// PangramBonus is added to a word that uses all seven letters.
const PangramBonus = 7

// Score returns the points for an accepted word and whether it is a
// pangram. Four-letter words earn 1 point; longer words earn one point
// per letter.
func Score(word string) (points int, pangram bool) {
	word = Normalize(word)
	switch n := len(word); {
	case n < MinWordLength:
		return 0, false
	case n == MinWordLength:
		points = 1
	default:
		points = n
	}
	if IsPangram(word) {
		points += PangramBonus
		pangram = true
	}
	return points, pangram
}

// IsPangram reports whether word has exactly seven distinct letters.
func IsPangram(word string) bool {
	var seen [26]bool
	distinct := 0
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			continue
		}
		if !seen[ch-'A'] {
			seen[ch-'A'] = true
			distinct++
		}
	}
	return distinct == puzzle.Size
}

// TotalScore sums the points of every word.
func TotalScore(words []string) int {
	total := 0
	for _, w := range words {
		p, _ := Score(w)
		total += p
	}
	return total
}
