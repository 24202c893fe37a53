package puzzle

import (
	"math/rand"

	"github.com/verte-zerg/tuibee/internal/rng"
)

const (
	vowelCount     = 2
	consonantCount = 5
)

// RareLetterBoost multiplies the weight of letters whose English
// frequency is below rareThreshold. Tunable; not part of any stored format.
const RareLetterBoost = 3

// rareThreshold is 2% expressed in hundredths of a percent.
const rareThreshold = 200

type letterWeight struct {
	letter byte
	weight int
}

// English letter frequencies in hundredths of a percent.
var (
	vowelFreq = []letterWeight{
		{'A', 817}, {'E', 1270}, {'I', 697}, {'O', 751}, {'U', 276},
	}
	consonantFreq = []letterWeight{
		{'B', 149}, {'C', 278}, {'D', 425}, {'F', 223}, {'G', 202},
		{'H', 609}, {'J', 15}, {'K', 77}, {'L', 403}, {'M', 241},
		{'N', 675}, {'P', 193}, {'Q', 10}, {'R', 599}, {'S', 633},
		{'T', 906}, {'V', 98}, {'W', 236}, {'X', 15}, {'Y', 197},
		{'Z', 7},
	}
)

// HashDate folds a date string into a non-negative seed using the
// classic 31-multiplier string hash truncated to a signed 32-bit value.
func HashDate(date string) int64 {
	var h int32
	for i := 0; i < len(date); i++ {
		h = h*31 + int32(date[i])
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// Generate returns the puzzle for a YYYY-MM-DD date. The result depends
// only on the string, so every caller sees the same letters for a day.
func Generate(date string) Letters {
	r := rng.New(HashDate(date))

	picked := make([]byte, 0, Size)
	picked = append(picked, sample(r, vowelFreq, vowelCount)...)
	picked = append(picked, sample(r, consonantFreq, consonantCount)...)

	for i := len(picked) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		picked[i], picked[j] = picked[j], picked[i]
	}

	var l Letters
	l.Center = picked[0]
	copy(l.Outer[:], picked[1:])
	return l
}

// sample draws n distinct letters from pool, weighted by frequency.
// The pools are fixed and larger than n, so the draw never runs dry.
func sample(r *rng.RNG, pool []letterWeight, n int) []byte {
	remaining := make([]letterWeight, len(pool))
	for i, lw := range pool {
		w := lw.weight
		if w < rareThreshold {
			w *= RareLetterBoost
		}
		remaining[i] = letterWeight{letter: lw.letter, weight: w}
	}

	out := make([]byte, 0, n)
	for len(out) < n {
		total := 0
		for _, lw := range remaining {
			total += lw.weight
		}
		target := r.Next() * float64(total)
		idx := len(remaining) - 1
		acc := 0
		for i, lw := range remaining {
			acc += lw.weight
			if target < float64(acc) {
				idx = i
				break
			}
		}
		out = append(out, remaining[idx].letter)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}

// Shuffle returns a permutation of the outer letters for display. It
// does not change which letters are valid.
func Shuffle(outer [OuterCount]byte, rnd *rand.Rand) [OuterCount]byte {
	out := outer
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
