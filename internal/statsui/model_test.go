package statsui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/stats"
)

type recordingLoader struct {
	calls  []model.StatsConfig
	report stats.Report
	err    error
}

func (l *recordingLoader) load(_ context.Context, cfg model.StatsConfig) (stats.Report, error) {
	l.calls = append(l.calls, cfg)
	return l.report, l.err
}

func sampleReport() stats.Report {
	return stats.Report{
		Ranks: []string{"Beginner", "Good", "Queen Bee"},
		Stats: model.Stats{
			Played:              3,
			TopRankAchievements: 1,
			CurrentStreak:       1,
			MaxStreak:           1,
			RankDistribution:    map[string]int{"Good": 2, "Queen Bee": 1},
			LastPlayedDate:      "2024-01-03",
			LastRank:            "Queen Bee",
		},
		Days: []model.DayResult{
			{Date: "2024-01-02", Letters: "A BCDEFG", Score: 30, Rank: "Good", WordsFound: 6},
			{Date: "2024-01-03", Letters: "O PQRSTU", Score: 240, Rank: "Queen Bee", WordsFound: 40, Pangrams: 2},
		},
	}
}

func sized(m *Model) *Model {
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestOverviewShowsCards(t *testing.T) {
	l := &recordingLoader{report: sampleReport()}
	m := sized(NewModel(l.load, model.StatsConfig{}))
	out := m.View()
	for _, want := range []string{"Overview", "Played", "Max Streak", "Last played 2024-01-03: Queen Bee"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in view:\n%s", want, out)
		}
	}
}

func TestRanksTab(t *testing.T) {
	l := &recordingLoader{report: sampleReport()}
	m := sized(NewModel(l.load, model.StatsConfig{}))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabRanks {
		t.Fatalf("expected ranks tab, got %d", m.activeTab)
	}
	out := m.View()
	if !strings.Contains(out, "Queen Bee") || !strings.Contains(out, "Beginner") {
		t.Fatalf("expected rank rows in view:\n%s", out)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabHistory {
		t.Fatalf("expected tab wrap to history, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "2024-01-03") {
		t.Fatalf("expected history rows")
	}
}

func TestFilterApplyReloads(t *testing.T) {
	l := &recordingLoader{report: sampleReport()}
	m := sized(NewModel(l.load, model.StatsConfig{}))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.filterInputs[0].SetValue("2024-01-02")
	m.filterInputs[1].SetValue("5")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter mode to close")
	}
	last := l.calls[len(l.calls)-1]
	if last.Since == nil || last.Since.Format("2006-01-02") != "2024-01-02" || last.Last != 5 {
		t.Fatalf("unexpected reload config: %+v", last)
	}
}

func TestFilterRejectsBadInput(t *testing.T) {
	l := &recordingLoader{report: sampleReport()}
	m := sized(NewModel(l.load, model.StatsConfig{}))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m.filterInputs[1].SetValue("-1")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.filterMode || m.filterError == "" {
		t.Fatalf("expected filter error")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.filterMode {
		t.Fatalf("expected esc to cancel")
	}
}

func TestLoadErrorShown(t *testing.T) {
	l := &recordingLoader{report: stats.Report{}, err: errors.New("stats corrupt")}
	m := sized(NewModel(l.load, model.StatsConfig{}))
	out := m.View()
	if !strings.Contains(out, "stats corrupt") || !strings.Contains(out, "No games played yet.") {
		t.Fatalf("expected error and empty state:\n%s", out)
	}
}

func TestQuitKey(t *testing.T) {
	l := &recordingLoader{report: sampleReport()}
	m := NewModel(l.load, model.StatsConfig{})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("expected quit")
	}
}
