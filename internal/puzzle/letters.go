// Package puzzle derives the daily seven-letter puzzle from a date.
package puzzle

import (
	"fmt"
	"strings"
)

// OuterCount is the number of letters surrounding the center.
const OuterCount = 6

// Size is the total number of puzzle letters.
const Size = OuterCount + 1

// Letters is one day's puzzle: a required center letter and six outer
// letters. All seven are distinct uppercase A-Z.
type Letters struct {
	Center byte
	Outer  [OuterCount]byte
}

// All returns the seven letters, center first.
func (l Letters) All() []byte {
	out := make([]byte, 0, Size)
	out = append(out, l.Center)
	out = append(out, l.Outer[:]...)
	return out
}

// Contains reports whether b is one of the puzzle letters.
func (l Letters) Contains(b byte) bool {
	if b == l.Center {
		return true
	}
	for _, o := range l.Outer {
		if o == b {
			return true
		}
	}
	return false
}

// OuterStrings returns the outer letters as one-character strings.
func (l Letters) OuterStrings() []string {
	out := make([]string, 0, OuterCount)
	for _, o := range l.Outer {
		out = append(out, string(o))
	}
	return out
}

// String renders the puzzle as "E ARTSLN".
func (l Letters) String() string {
	return string(l.Center) + " " + string(l.Outer[:])
}

// IsZero reports whether l is unset.
func (l Letters) IsZero() bool {
	return l.Center == 0
}

// Parse builds Letters from a center and outer letters, validating the
// puzzle invariants. Input is case-insensitive.
func Parse(center string, outer []string) (Letters, error) {
	var l Letters
	center = strings.ToUpper(strings.TrimSpace(center))
	if len(center) != 1 || !isUpper(center[0]) {
		return l, fmt.Errorf("invalid center letter %q", center)
	}
	if len(outer) != OuterCount {
		return l, fmt.Errorf("got %d outer letters; expected %d", len(outer), OuterCount)
	}
	l.Center = center[0]
	seen := map[byte]struct{}{l.Center: {}}
	for i, o := range outer {
		o = strings.ToUpper(strings.TrimSpace(o))
		if len(o) != 1 || !isUpper(o[0]) {
			return Letters{}, fmt.Errorf("invalid outer letter %q", o)
		}
		if _, dup := seen[o[0]]; dup {
			return Letters{}, fmt.Errorf("duplicate letter %q", o)
		}
		seen[o[0]] = struct{}{}
		l.Outer[i] = o[0]
	}
	return l, nil
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsVowel reports whether b is one of AEIOU.
func IsVowel(b byte) bool {
	switch b {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
