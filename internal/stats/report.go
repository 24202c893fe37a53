package stats

import (
	"context"
	"sort"

	"github.com/verte-zerg/tuibee/internal/model"
)

// DayLister returns recorded daily results.
type DayLister interface {
	ListDays(ctx context.Context, cfg model.StatsConfig) ([]model.DayResult, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Stats model.Stats
	Days  []model.DayResult
	Ranks []string
}

// BuildReport loads and prepares data for stats rendering. Corrupt
// stats are reported as empty along with the error.
func BuildReport(ctx context.Context, days DayLister, tracker *Tracker, ranks []string, cfg model.StatsConfig) (Report, error) {
	report := Report{Ranks: ranks}
	st, loadErr := tracker.Load(ctx)
	report.Stats = st

	list, err := days.ListDays(ctx, cfg)
	if err != nil {
		return report, err
	}
	report.Days = list
	return report, loadErr
}

// TopRankRate is the share of played days that reached the top tier.
func (r Report) TopRankRate() float64 {
	if r.Stats.Played == 0 {
		return 0
	}
	return float64(r.Stats.TopRankAchievements) / float64(r.Stats.Played)
}

// AverageScore is the mean best score across listed days.
func (r Report) AverageScore() float64 {
	if len(r.Days) == 0 {
		return 0
	}
	total := 0
	for _, d := range r.Days {
		total += d.Score
	}
	return float64(total) / float64(len(r.Days))
}

// BestDay returns the highest scoring listed day.
func (r Report) BestDay() (model.DayResult, bool) {
	if len(r.Days) == 0 {
		return model.DayResult{}, false
	}
	best := r.Days[0]
	for _, d := range r.Days[1:] {
		if d.Score > best.Score {
			best = d
		}
	}
	return best, true
}

// Scores returns day scores oldest first.
func (r Report) Scores() []float64 {
	out := make([]float64, len(r.Days))
	for i, d := range r.Days {
		out[i] = float64(d.Score)
	}
	return out
}

// DistributionRows lists known ranks in table order, followed by any
// stored rank names no longer in the table.
func (r Report) DistributionRows() []DistributionRow {
	rows := make([]DistributionRow, 0, len(r.Ranks))
	seen := map[string]struct{}{}
	for _, name := range r.Ranks {
		rows = append(rows, DistributionRow{Rank: name, Days: r.Stats.RankDistribution[name]})
		seen[name] = struct{}{}
	}
	var extra []string
	for name := range r.Stats.RankDistribution {
		if _, ok := seen[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		rows = append(rows, DistributionRow{Rank: name, Days: r.Stats.RankDistribution[name]})
	}
	return rows
}

// DistributionRow is one rank bucket.
type DistributionRow struct {
	Rank string
	Days int
}
