package stats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/verte-zerg/tuibee/internal/store"
)

const topRank = "Queen Bee"

var defaultRanks = []string{
	"Beginner", "Good Start", "Moving Up", "Good", "Solid",
	"Nice", "Great", "Amazing", "Genius", topRank,
}

func TestRecordPlaySingleCreditPerDay(t *testing.T) {
	tr := NewTracker(store.NewMemory(), defaultRanks)
	ctx := context.Background()
	for _, rank := range []string{"Beginner", "Good Start", "Moving Up", "Good", "Good", "Solid"} {
		if _, err := tr.RecordPlay(ctx, "2024-02-01", rank); err != nil {
			t.Fatalf("record %s: %v", rank, err)
		}
	}
	st := tr.Stats()
	if st.Played != 1 {
		t.Fatalf("expected 1 played, got %d", st.Played)
	}
	total := 0
	for _, c := range st.RankDistribution {
		total += c
	}
	if total != 1 || st.RankDistribution["Solid"] != 1 {
		t.Fatalf("expected single Solid credit, got %v", st.RankDistribution)
	}
	if st.LastRank != "Solid" {
		t.Fatalf("expected last rank Solid, got %q", st.LastRank)
	}
}

func TestRecordPlayNewDayStartsFreshCredit(t *testing.T) {
	tr := NewTracker(store.NewMemory(), defaultRanks)
	ctx := context.Background()
	_, _ = tr.RecordPlay(ctx, "2024-02-01", "Good")
	_, _ = tr.RecordPlay(ctx, "2024-02-02", "Beginner")
	_, _ = tr.RecordPlay(ctx, "2024-02-02", "Good Start")
	st := tr.Stats()
	if st.Played != 2 {
		t.Fatalf("expected 2 played, got %d", st.Played)
	}
	if st.RankDistribution["Good"] != 1 || st.RankDistribution["Good Start"] != 1 || st.RankDistribution["Beginner"] != 0 {
		t.Fatalf("unexpected distribution: %v", st.RankDistribution)
	}
}

func TestTopRankCountedOncePerDay(t *testing.T) {
	tr := NewTracker(store.NewMemory(), defaultRanks)
	ctx := context.Background()
	_, _ = tr.RecordPlay(ctx, "2024-02-01", "Genius")
	_, _ = tr.RecordPlay(ctx, "2024-02-01", topRank)
	_, _ = tr.RecordPlay(ctx, "2024-02-01", topRank)
	st := tr.Stats()
	if st.TopRankAchievements != 1 || st.CurrentStreak != 1 || st.MaxStreak != 1 {
		t.Fatalf("unexpected top rank counters: %+v", st)
	}
}

func TestLowerRankSameDayKeepsCredit(t *testing.T) {
	tr := NewTracker(store.NewMemory(), defaultRanks)
	ctx := context.Background()
	for _, rank := range []string{"Good", topRank, "Beginner", "Good Start", "Genius", topRank} {
		if _, err := tr.RecordPlay(ctx, "2024-02-01", rank); err != nil {
			t.Fatalf("record %s: %v", rank, err)
		}
	}
	st := tr.Stats()
	if st.TopRankAchievements != 1 || st.CurrentStreak != 1 || st.MaxStreak != 1 {
		t.Fatalf("expected top rank counted once, got %+v", st)
	}
	if st.LastRank != topRank || st.RankDistribution[topRank] != 1 || len(st.RankDistribution) != 1 {
		t.Fatalf("expected single top rank credit, got %+v", st)
	}
}

func TestLowerRankSameDayDoesNotMoveCredit(t *testing.T) {
	tr := NewTracker(store.NewMemory(), defaultRanks)
	ctx := context.Background()
	_, _ = tr.RecordPlay(ctx, "2024-02-01", "Solid")
	_, _ = tr.RecordPlay(ctx, "2024-02-01", "Good Start")
	st := tr.Stats()
	if st.LastRank != "Solid" || st.RankDistribution["Solid"] != 1 || st.RankDistribution["Good Start"] != 0 {
		t.Fatalf("expected credit to stay on Solid, got %+v", st)
	}
}

func TestStreakPolicy(t *testing.T) {
	tr := NewTracker(store.NewMemory(), defaultRanks)
	ctx := context.Background()
	_, _ = tr.RecordPlay(ctx, "2024-02-01", topRank)
	_, _ = tr.RecordPlay(ctx, "2024-02-02", topRank)
	if st := tr.Stats(); st.CurrentStreak != 2 || st.MaxStreak != 2 {
		t.Fatalf("expected streak 2, got %+v", st)
	}

	// A played day below the top tier ends the streak on the next day.
	_, _ = tr.RecordPlay(ctx, "2024-02-03", "Genius")
	_, _ = tr.RecordPlay(ctx, "2024-02-04", topRank)
	if st := tr.Stats(); st.CurrentStreak != 1 || st.MaxStreak != 2 {
		t.Fatalf("expected streak reset to 1, got %+v", st)
	}

	// A skipped day ends the streak too.
	_, _ = tr.RecordPlay(ctx, "2024-02-06", topRank)
	if st := tr.Stats(); st.CurrentStreak != 1 || st.TopRankAchievements != 4 {
		t.Fatalf("expected gap to reset streak, got %+v", st)
	}
}

func TestRecordPlayPersists(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	tr := NewTracker(kv, defaultRanks)
	_, _ = tr.RecordPlay(ctx, "2024-02-01", "Good")

	reloaded := NewTracker(kv, defaultRanks)
	st, err := reloaded.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.Played != 1 || st.LastRank != "Good" || st.RankDistribution["Good"] != 1 {
		t.Fatalf("stats not persisted: %+v", st)
	}
	_, _ = reloaded.RecordPlay(ctx, "2024-02-01", "Solid")
	st = reloaded.Stats()
	if st.Played != 1 || st.RankDistribution["Good"] != 0 || st.RankDistribution["Solid"] != 1 {
		t.Fatalf("reloaded tracker double counted: %+v", st)
	}
}

func TestLoadMigratesWins(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	_ = kv.Set(ctx, store.KeyStats, `{"played":4,"wins":2,"currentStreak":1,"maxStreak":2,"rankDistribution":{"Queen Bee":2,"Good":2},"lastPlayedDate":"2024-01-03"}`)

	st, err := NewTracker(kv, defaultRanks).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.TopRankAchievements != 2 || st.Played != 4 || st.SchemaVersion != SchemaVersion || st.LastRank != "" {
		t.Fatalf("unexpected migrated stats: %+v", st)
	}

	raw, _, _ := kv.Get(ctx, store.KeyStats)
	var rec map[string]any
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("decode stored: %v", err)
	}
	if _, ok := rec["wins"]; ok {
		t.Fatalf("expected wins field to be dropped after migration: %s", raw)
	}
	if rec["queenBees"] != float64(2) || rec["schemaVersion"] != float64(SchemaVersion) {
		t.Fatalf("expected migrated record to be written back: %s", raw)
	}
}

func TestLoadBackfillsMissingFields(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	_ = kv.Set(ctx, store.KeyStats, `{"played":1,"queenBees":0}`)
	st, err := NewTracker(kv, defaultRanks).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.RankDistribution == nil {
		t.Fatalf("expected rank distribution to be backfilled")
	}
}

func TestLoadCorruptFallsBackToEmpty(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	_ = kv.Set(ctx, store.KeyStats, `[]`)
	tr := NewTracker(kv, defaultRanks)
	st, err := tr.Load(ctx)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if st.Played != 0 || len(st.RankDistribution) != 0 {
		t.Fatalf("expected empty stats, got %+v", st)
	}
	if _, err := tr.RecordPlay(ctx, "2024-02-01", "Good"); err != nil {
		t.Fatalf("record after corrupt load: %v", err)
	}
	if _, err := NewTracker(kv, defaultRanks).Load(ctx); err != nil {
		t.Fatalf("expected corrupt record to be replaced, got %v", err)
	}
}
