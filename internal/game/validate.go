// Package game implements the word validation, scoring and ranking rules
// and the engine that applies them to a daily session.
package game

import (
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/tuibee/internal/puzzle"
)

// MinWordLength is the shortest accepted word.
const MinWordLength = 4

// WordList answers dictionary membership. Implementations must be
// case-insensitive or receive upper-case input.
type WordList interface {
	Contains(word string) bool
}

// Rejection is the outcome of validating a word. The zero value means
// the word was accepted.
type Rejection int

const (
	Accepted Rejection = iota
	TooShort
	MissingCenterLetter
	AlreadyFound
	InvalidLetters
	NotInWordList
)

var rejectionNames = map[Rejection]string{
	Accepted:            "Accepted",
	TooShort:            "TooShort",
	MissingCenterLetter: "MissingCenterLetter",
	AlreadyFound:        "AlreadyFound",
	InvalidLetters:      "InvalidLetters",
	NotInWordList:       "NotInWordList",
}

var rejectionMessages = map[Rejection]string{
	TooShort:            "Words must be at least 4 letters long",
	MissingCenterLetter: "Word must contain center letter",
	AlreadyFound:        "Word already found",
	InvalidLetters:      "Invalid letters used",
	NotInWordList:       "Not in word list",
}

func (r Rejection) String() string {
	if name, ok := rejectionNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Message is the user-facing text for a rejection.
func (r Rejection) Message() string {
	return rejectionMessages[r]
}

// Normalize upper-cases and trims a submitted word.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Validate checks word against the puzzle. Checks run in a fixed order
// and the first failure is returned. Validate never mutates found.
func Validate(word string, letters puzzle.Letters, found map[string]struct{}, dict WordList) Rejection {
	word = Normalize(word)
	if utf8.RuneCountInString(word) < MinWordLength {
		return TooShort
	}
	if strings.IndexByte(word, letters.Center) < 0 {
		return MissingCenterLetter
	}
	if _, ok := found[word]; ok {
		return AlreadyFound
	}
	for i := 0; i < len(word); i++ {
		if !letters.Contains(word[i]) {
			return InvalidLetters
		}
	}
	if dict == nil || !dict.Contains(word) {
		return NotInWordList
	}
	return Accepted
}
