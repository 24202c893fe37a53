// Package stats tracks cross-day statistics and renders reports.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/store"
)

// ErrCorrupt reports stored stats that could not be decoded.
var ErrCorrupt = errors.New("corrupt stats")

const dateLayout = "2006-01-02"

// Tracker owns the persisted Stats record. It is not safe for
// concurrent use.
type Tracker struct {
	kv      store.KV
	order   map[string]int
	topRank string
	stats   model.Stats
	loaded  bool
}

// NewTracker returns a tracker for the rank names in ranks, lowest
// first. The last name is the top tier.
func NewTracker(kv store.KV, ranks []string) *Tracker {
	t := &Tracker{kv: kv, order: make(map[string]int, len(ranks))}
	for i, name := range ranks {
		t.order[name] = i
	}
	if len(ranks) > 0 {
		t.topRank = ranks[len(ranks)-1]
	}
	return t
}

// Load reads and migrates the stored stats. Missing stats start empty.
// Corrupt stats also start empty; the returned error wraps ErrCorrupt.
// A migrated record is written back once.
func (t *Tracker) Load(ctx context.Context) (model.Stats, error) {
	t.stats = emptyStats()
	t.loaded = true

	raw, ok, err := t.kv.Get(ctx, store.KeyStats)
	if err != nil {
		return t.Stats(), fmt.Errorf("failed to read stats: %w", err)
	}
	if !ok {
		return t.Stats(), nil
	}
	st, migrated, err := decode(raw)
	if err != nil {
		return t.Stats(), err
	}
	t.stats = st
	if migrated {
		if err := t.save(ctx); err != nil {
			return t.Stats(), err
		}
	}
	return t.Stats(), nil
}

// Stats returns a copy of the current stats.
func (t *Tracker) Stats() model.Stats {
	out := t.stats
	out.RankDistribution = make(map[string]int, len(t.stats.RankDistribution))
	for k, v := range t.stats.RankDistribution {
		out.RankDistribution[k] = v
	}
	return out
}

// RecordPlay credits today with rank. Callers pass the current rank
// after every accepted word.
//
// Each day holds exactly one distribution credit, moved to the highest
// rank reached. A lower rank later the same day, as after a reset, is
// ignored. Reaching the top tier counts once per day.
func (t *Tracker) RecordPlay(ctx context.Context, today, rank string) (model.Stats, error) {
	var loadErr error
	if !t.loaded {
		if _, err := t.Load(ctx); err != nil {
			loadErr = err
		}
	}
	st := &t.stats
	if st.RankDistribution == nil {
		st.RankDistribution = map[string]int{}
	}

	if st.LastPlayedDate != today {
		if !(st.LastRank == t.topRank && isNextDay(st.LastPlayedDate, today)) {
			st.CurrentStreak = 0
		}
		st.Played++
		st.LastPlayedDate = today
		st.LastRank = ""
	}

	if rank != st.LastRank && !t.below(rank, st.LastRank) {
		if st.LastRank != "" {
			st.RankDistribution[st.LastRank]--
			if st.RankDistribution[st.LastRank] <= 0 {
				delete(st.RankDistribution, st.LastRank)
			}
		}
		st.RankDistribution[rank]++
		st.LastRank = rank

		if rank == t.topRank {
			st.TopRankAchievements++
			st.CurrentStreak++
			if st.CurrentStreak > st.MaxStreak {
				st.MaxStreak = st.CurrentStreak
			}
		}
	}

	if err := t.save(ctx); err != nil {
		return t.Stats(), err
	}
	return t.Stats(), loadErr
}

// below reports whether rank sits under the day's recorded rank.
// Unknown names never compare.
func (t *Tracker) below(rank, recorded string) bool {
	if recorded == "" {
		return false
	}
	ri, ok := t.order[rank]
	if !ok {
		return false
	}
	di, ok := t.order[recorded]
	if !ok {
		return false
	}
	return ri < di
}

func (t *Tracker) save(ctx context.Context) error {
	data, err := json.Marshal(encode(t.stats))
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := t.kv.Set(ctx, store.KeyStats, string(data)); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

func emptyStats() model.Stats {
	return model.Stats{
		SchemaVersion:    SchemaVersion,
		RankDistribution: map[string]int{},
	}
}

func isNextDay(prev, today string) bool {
	p, err := time.Parse(dateLayout, prev)
	if err != nil {
		return false
	}
	d, err := time.Parse(dateLayout, today)
	if err != nil {
		return false
	}
	return p.AddDate(0, 0, 1).Equal(d)
}
