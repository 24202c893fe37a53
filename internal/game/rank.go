package game

import (
	"fmt"
	"strings"
)

// MaxProgress is the highest value ProgressFor returns.
const MaxProgress = 4

// Rank is a named score tier.
type Rank struct {
	Name      string
	Threshold int
}

// RankTable is an ordered list of tiers with non-decreasing thresholds,
// starting at 0.
type RankTable []Rank

// DefaultRanks returns the standard tiers.
func DefaultRanks() RankTable {
	return RankTable{
		{Name: "Beginner", Threshold: 0},
		{Name: "Good Start", Threshold: 4},
		{Name: "Moving Up", Threshold: 11},
		{Name: "Good", Threshold: 18},
		{Name: "Solid", Threshold: 33},
		{Name: "Nice", Threshold: 56},
		{Name: "Great", Threshold: 89},
		{Name: "Amazing", Threshold: 111},
		{Name: "Genius", Threshold: 155},
		{Name: "Queen Bee", Threshold: 222},
	}
}

// NewRankTable validates ranks and returns them as a table.
func NewRankTable(ranks []Rank) (RankTable, error) {
	if len(ranks) == 0 {
		return nil, fmt.Errorf("rank table is empty")
	}
	if ranks[0].Threshold != 0 {
		return nil, fmt.Errorf("first rank threshold must be 0, got %d", ranks[0].Threshold)
	}
	seen := make(map[string]struct{}, len(ranks))
	for i, r := range ranks {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("rank %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate rank name %q", name)
		}
		seen[name] = struct{}{}
		if i > 0 && r.Threshold < ranks[i-1].Threshold {
			return nil, fmt.Errorf("rank %q threshold %d is below previous %d", name, r.Threshold, ranks[i-1].Threshold)
		}
	}
	out := make(RankTable, len(ranks))
	copy(out, ranks)
	return out, nil
}

func (t RankTable) index(score int) int {
	idx := 0
	for i, r := range t {
		if r.Threshold <= score {
			idx = i
		}
	}
	return idx
}

// RankFor returns the last tier whose threshold is at most score.
func (t RankTable) RankFor(score int) Rank {
	return t[t.index(score)]
}

// ProgressFor returns how far score is through its tier, from 0 to
// MaxProgress. The top tier always reports MaxProgress.
func (t RankTable) ProgressFor(score int) int {
	idx := t.index(score)
	if idx == len(t)-1 {
		return MaxProgress
	}
	lo, hi := t[idx].Threshold, t[idx+1].Threshold
	if hi <= lo {
		return MaxProgress
	}
	p := (score - lo) * (MaxProgress + 1) / (hi - lo)
	if p > MaxProgress {
		p = MaxProgress
	}
	if p < 0 {
		p = 0
	}
	return p
}

// Next returns the tier after the one score is in, if any.
func (t RankTable) Next(score int) (Rank, bool) {
	idx := t.index(score)
	if idx == len(t)-1 {
		return Rank{}, false
	}
	return t[idx+1], true
}

// Top returns the highest tier.
func (t RankTable) Top() Rank {
	return t[len(t)-1]
}

// Names lists tier names in order.
func (t RankTable) Names() []string {
	out := make([]string, len(t))
	for i, r := range t {
		out[i] = r.Name
	}
	return out
}

// RankUp reports whether moving from prev to next is a promotion.
func RankUp(prev, next Rank) bool {
	return next.Name != prev.Name && next.Threshold >= prev.Threshold
}
