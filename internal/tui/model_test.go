package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuibee/internal/dictionary"
	"github.com/verte-zerg/tuibee/internal/game"
	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/puzzle"
	"github.com/verte-zerg/tuibee/internal/session"
	"github.com/verte-zerg/tuibee/internal/store"
)

const testDay = "2024-06-01"

func newTestModel(t *testing.T, today func() string) (*Model, *store.Memory) {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemory()
	sessions := session.New(kv)
	letters, err := puzzle.Parse("E", []string{"A", "R", "T", "S", "L", "N"})
	if err != nil {
		t.Fatalf("parse letters: %v", err)
	}
	if err := sessions.Save(ctx, &model.Session{Date: testDay, Letters: letters}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	engine := game.NewEngine(game.Options{
		Dict:     dictionary.New([]string{"RATES", "ANTLERS"}),
		Sessions: sessions,
		Logger:   zerolog.Nop(),
	})
	engine.Start(ctx, testDay)
	m := NewModel(Options{Engine: engine, Prefs: kv, Today: today, Logger: zerolog.Nop()})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, kv
}

func typeRunes(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestTypingKeepsOnlyPuzzleLetters(t *testing.T) {
	m, _ := newTestModel(t, nil)
	typeRunes(m, "raxtes1")
	if got := string(m.input); got != "RATES" {
		t.Fatalf("expected RATES, got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := string(m.input); got != "RATE" {
		t.Fatalf("expected RATE after backspace, got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.input) != 0 {
		t.Fatalf("expected input cleared")
	}
}

func TestSubmitAcceptedWord(t *testing.T) {
	m, _ := newTestModel(t, nil)
	typeRunes(m, "rates")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected toast expiry command")
	}
	if len(m.input) != 0 {
		t.Fatalf("expected input cleared after acceptance")
	}
	if v := m.engine.View(); v.Score != 5 {
		t.Fatalf("expected score 5, got %d", v.Score)
	}
	if len(m.toasts.items) == 0 || m.toasts.items[0].note.Kind != game.NotifyAccepted {
		t.Fatalf("expected accepted toast, got %+v", m.toasts.items)
	}
	if !strings.Contains(m.words.View(), "R") {
		t.Fatalf("expected found word in list")
	}
}

func TestSubmitRejectedKeepsInput(t *testing.T) {
	m, _ := newTestModel(t, nil)
	typeRunes(m, "star")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if string(m.input) != "STAR" {
		t.Fatalf("expected input kept after rejection, got %q", string(m.input))
	}
	if len(m.toasts.items) != 1 || m.toasts.items[0].note.Message != game.MissingCenterLetter.Message() {
		t.Fatalf("unexpected toasts %+v", m.toasts.items)
	}
}

func TestPangramToastIsSticky(t *testing.T) {
	m, _ := newTestModel(t, nil)
	typeRunes(m, "antlers")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !hasToast(m, game.NotifyPangram) {
		t.Fatalf("expected pangram toast, got %+v", m.toasts.items)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if hasToast(m, game.NotifyPangram) || !hasToast(m, game.NotifyAccepted) {
		t.Fatalf("expected esc to dismiss only sticky toasts, got %+v", m.toasts.items)
	}
}

func hasToast(m *Model, kind game.NotificationKind) bool {
	for _, item := range m.toasts.items {
		if item.note.Kind == kind {
			return true
		}
	}
	return false
}

func TestToastQueueKeepsNewest(t *testing.T) {
	var q toastQueue
	for i := 0; i < 5; i++ {
		q.push([]game.Notification{{Kind: game.NotifyRejected, Message: "x"}})
	}
	if len(q.items) != maxToasts || q.items[0].id != 3 {
		t.Fatalf("unexpected queue %+v", q.items)
	}
	q.expire(4)
	if len(q.items) != 2 {
		t.Fatalf("expected expire to remove toast")
	}
}

func TestThemeTogglePersists(t *testing.T) {
	m, kv := newTestModel(t, nil)
	if m.theme.name != ThemeDark {
		t.Fatalf("expected dark theme by default")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	got, ok, err := kv.Get(context.Background(), store.KeyTheme)
	if err != nil || !ok || got != ThemeLight {
		t.Fatalf("expected stored light theme, got %q ok=%v err=%v", got, ok, err)
	}

	again := NewModel(Options{Engine: m.engine, Prefs: kv, Logger: zerolog.Nop()})
	if again.theme.name != ThemeLight {
		t.Fatalf("expected stored theme to load, got %s", again.theme.name)
	}
	explicit := NewModel(Options{Engine: m.engine, Prefs: kv, Theme: ThemeDark, Logger: zerolog.Nop()})
	if explicit.theme.name != ThemeDark {
		t.Fatalf("expected explicit theme to win")
	}
}

func TestRulesModal(t *testing.T) {
	m, _ := newTestModel(t, nil)
	typeRunes(m, "?")
	if !m.showRules || !strings.Contains(m.View(), "center letter") {
		t.Fatalf("expected rules modal")
	}
	typeRunes(m, "r")
	if m.showRules || len(m.input) != 0 {
		t.Fatalf("expected key to close modal without typing")
	}
}

func TestShareModal(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(m.View(), "Spelling Bee 2024-06-01") {
		t.Fatalf("expected share text in view")
	}
}

func TestShuffleKeepsCenter(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	v := m.engine.View()
	if v.Center != 'E' || len(m.input) != 0 {
		t.Fatalf("unexpected state after shuffle: center=%c input=%q", v.Center, string(m.input))
	}
}

func TestDayTickStartsNewPuzzle(t *testing.T) {
	day := testDay
	m, _ := newTestModel(t, func() string { return day })
	typeRunes(m, "rates")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(dayTickMsg{})
	if m.engine.Today() != testDay {
		t.Fatalf("expected same day on unchanged date")
	}
	day = "2024-06-02"
	_, cmd := m.Update(dayTickMsg{})
	if cmd == nil {
		t.Fatalf("expected rescheduled day check")
	}
	if m.engine.Today() != day || len(m.engine.FoundWords()) != 0 {
		t.Fatalf("expected fresh puzzle for %s", day)
	}
	if !hasToast(m, game.NotifyNewDay) {
		t.Fatalf("expected new-day toast, got %+v", m.toasts.items)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
