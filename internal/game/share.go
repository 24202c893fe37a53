package game

import (
	"fmt"
	"strings"
)

// ShareSummary is the data included in a shared result.
type ShareSummary struct {
	Date       string
	Score      int
	Rank       string
	WordsFound int
}

// FormatShare renders a plain-text summary suitable for pasting.
func FormatShare(s ShareSummary) string {
	noun := "words"
	if s.WordsFound == 1 {
		noun = "word"
	}
	lines := []string{
		fmt.Sprintf("Spelling Bee %s", s.Date),
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Rank: %s", s.Rank),
		fmt.Sprintf("Found %d %s", s.WordsFound, noun),
	}
	return strings.Join(lines, "\n")
}

// Rules describes how to play.
const Rules = `Rules:
  • Each word must contain the center letter
  • Words must be 4 letters or longer
  • Letters can be reused
  • Scoring:
    - 4 letters = 1 point
    - 5+ letters = 1 point per letter
    - Using all 7 letters = 7 bonus points`
