package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/tuibee/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "tuibee.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestKVRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := st.Get(ctx, KeyTheme); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := st.Set(ctx, KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Set(ctx, KeyTheme, "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := st.Get(ctx, KeyTheme)
	if err != nil || !ok || v != "light" {
		t.Fatalf("expected light, got %q ok=%v err=%v", v, ok, err)
	}
	if err := st.Delete(ctx, KeyTheme); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := st.Get(ctx, KeyTheme); ok {
		t.Fatalf("expected key to be deleted")
	}
}

func TestRecordDayKeepsBestScore(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.RecordDay(ctx, model.DayResult{Date: "2024-01-02", Letters: "E ARTSLN", Score: 12, Rank: "Moving Up", WordsFound: 3}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := st.RecordDay(ctx, model.DayResult{Date: "2024-01-02", Letters: "E ARTSLN", Score: 5, Rank: "Good Start", WordsFound: 1}); err != nil {
		t.Fatalf("record lower: %v", err)
	}
	if err := st.RecordDay(ctx, model.DayResult{Date: "2024-01-01", Letters: "A BCDEFG", Score: 1, Rank: "Beginner", WordsFound: 1}); err != nil {
		t.Fatalf("record other day: %v", err)
	}

	days, err := st.ListDays(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2024-01-01" || days[1].Date != "2024-01-02" {
		t.Fatalf("unexpected order: %+v", days)
	}
	if days[1].Score != 12 || days[1].Rank != "Moving Up" {
		t.Fatalf("lower score replaced higher one: %+v", days[1])
	}
}

func TestListDaysFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		date := time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if err := st.RecordDay(ctx, model.DayResult{Date: date, Score: i, Rank: "Beginner"}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	since := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	days, err := st.ListDays(ctx, model.StatsConfig{Since: &since, Last: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 2 || days[0].Date != "2024-01-04" || days[1].Date != "2024-01-05" {
		t.Fatalf("unexpected days: %+v", days)
	}
}

func TestMemoryKV(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	if err := m.Set(ctx, KeyLastPlayed, "2024-01-01"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, _ := m.Get(ctx, KeyLastPlayed); !ok || v != "2024-01-01" {
		t.Fatalf("unexpected value %q ok=%v", v, ok)
	}
	_ = m.Delete(ctx, KeyLastPlayed)
	if _, ok, _ := m.Get(ctx, KeyLastPlayed); ok {
		t.Fatalf("expected key removed")
	}
}
