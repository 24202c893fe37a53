// Package dictionary loads the puzzle word list and answers membership queries.
package dictionary

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrLoadFailed wraps any failure to read a word list.
var ErrLoadFailed = errors.New("dictionary load failed")

//go:embed default_words.txt
var embeddedWords string

// Dictionary is a set of upper-case words.
type Dictionary struct {
	words map[string]struct{}
}

// New builds a dictionary from words, normalizing case and dropping
// entries rejected by FilterLatin.
func New(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = normalize(w)
		if !FilterLatin(w) {
			continue
		}
		d.words[w] = struct{}{}
	}
	return d
}

// Empty returns a dictionary that rejects every word.
func Empty() *Dictionary {
	return &Dictionary{words: map[string]struct{}{}}
}

// Default returns the word list compiled into the binary.
func Default() *Dictionary {
	d, err := Read(strings.NewReader(embeddedWords))
	if err != nil {
		return Empty()
	}
	return d
}

// Contains reports whether word is in the dictionary. Case-insensitive.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[normalize(word)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Load reads one word per line from the provided file path.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read parses a newline-delimited word list. Lines are trimmed and
// upper-cased; empty lines are skipped.
func Read(r io.Reader) (*Dictionary, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	d := New(words)
	if d.Len() == 0 {
		return nil, fmt.Errorf("%w: word list is empty", ErrLoadFailed)
	}
	return d, nil
}

func normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
