package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadNormalizesLines(t *testing.T) {
	d, err := Read(strings.NewReader("  rates\n\nStare\nTEARS  \n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 words, got %d", d.Len())
	}
	for _, w := range []string{"RATES", "rates", "stare", "TEARS"} {
		if !d.Contains(w) {
			t.Fatalf("expected %q to be present", w)
		}
	}
	if d.Contains("ASTER") {
		t.Fatalf("unexpected word present")
	}
}

func TestFilterLatin(t *testing.T) {
	if !FilterLatin("HELLO") {
		t.Fatalf("expected HELLO to pass")
	}
	for _, word := range []string{"RÉSUMÉ", "NAÏVE", "DON'T", "CO-OP", ""} {
		if FilterLatin(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
}

func TestEmptyRejectsEverything(t *testing.T) {
	if Empty().Contains("RATES") {
		t.Fatalf("empty dictionary should reject")
	}
	var d *Dictionary
	if d.Contains("RATES") || d.Len() != 0 {
		t.Fatalf("nil dictionary should behave as empty")
	}
}

func TestDefaultIsPopulated(t *testing.T) {
	d := Default()
	if d.Len() == 0 {
		t.Fatalf("expected embedded word list")
	}
	if !d.Contains("rates") {
		t.Fatalf("expected embedded list to contain RATES")
	}
}
