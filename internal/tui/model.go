// Package tui provides the Bubble Tea Spelling Bee interface.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuibee/internal/game"
	"github.com/verte-zerg/tuibee/internal/store"
)

const (
	dayCheckInterval = time.Minute
	maxInputLen      = 20
	wordsHeight      = 6
	contentRatio     = 0.70
)

type dayTickMsg time.Time

// Options configures the game UI. Theme overrides the stored theme
// when set.
type Options struct {
	Engine *game.Engine
	Prefs  store.KV
	Theme  string
	Today  func() string
	Logger zerolog.Logger
}

// Model implements the Bubble Tea game UI.
type Model struct {
	engine *game.Engine
	prefs  store.KV
	today  func() string
	log    zerolog.Logger

	keys   keyMap
	help   help.Model
	words  viewport.Model
	toasts toastQueue
	theme  theme

	input     []rune
	showRules bool
	share     string

	width  int
	height int
}

// NewModel constructs the game UI. The engine must already be started.
func NewModel(opts Options) *Model {
	m := &Model{
		engine: opts.Engine,
		prefs:  opts.Prefs,
		today:  opts.Today,
		log:    opts.Logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		words:  viewport.New(0, wordsHeight),
	}
	m.theme = themeByName(m.resolveTheme(opts.Theme))
	m.refreshWords()
	return m
}

func (m *Model) resolveTheme(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if m.prefs == nil {
		return ThemeDark
	}
	stored, ok, err := m.prefs.Get(context.Background(), store.KeyTheme)
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to load theme")
		return ThemeDark
	}
	if !ok || !ValidTheme(stored) {
		return ThemeDark
	}
	return stored
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.scheduleDayCheck()
}

func (m *Model) scheduleDayCheck() tea.Cmd {
	if m.today == nil {
		return nil
	}
	return tea.Tick(dayCheckInterval, func(t time.Time) tea.Msg {
		return dayTickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshWords()
		return m, nil
	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil
	case dayTickMsg:
		notes := m.engine.Tick(context.Background(), m.today())
		if len(notes) > 0 {
			m.input = nil
			m.refreshWords()
		}
		return m, tea.Batch(m.toasts.push(notes), m.scheduleDayCheck())
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.showRules || m.share != "" {
		m.showRules = false
		m.share = ""
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.Delete):
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		if len(m.input) > 0 {
			m.input = nil
		} else {
			m.toasts.dismiss()
		}
		return m, nil
	case key.Matches(msg, m.keys.Shuffle):
		m.engine.Shuffle()
		return m, nil
	case key.Matches(msg, m.keys.Rules):
		m.showRules = true
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Share):
		m.share = m.engine.Share()
		return m, nil
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.words, cmd = m.words.Update(msg)
		return m, cmd
	case msg.Type == tea.KeyRunes:
		m.handleRunes(msg.Runes)
		return m, nil
	default:
		return m, nil
	}
}

// handleRunes appends typed letters, keeping only letters of the puzzle.
func (m *Model) handleRunes(runes []rune) {
	letters := m.engine.Letters()
	for _, r := range runes {
		if len(m.input) >= maxInputLen {
			return
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' || !letters.Contains(byte(r)) {
			continue
		}
		m.input = append(m.input, r)
	}
}

func (m *Model) submit() tea.Cmd {
	word := string(m.input)
	out := m.engine.Submit(context.Background(), word)
	if out.Accepted() {
		m.input = nil
		m.refreshWords()
	}
	return m.toasts.push(out.Notifications)
}

func (m *Model) toggleTheme() {
	name := nextTheme(m.theme.name)
	m.theme = themeByName(name)
	m.refreshWords()
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Set(context.Background(), store.KeyTheme, name); err != nil {
		m.log.Error().Err(err).Msg("failed to save theme")
	}
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * contentRatio)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) refreshWords() {
	v := m.engine.View()
	width := m.contentWidth()
	m.words.Width = width
	m.words.SetContent(wrapStyledRunes(buildWordRunes(v.FoundWords, v.Pangrams, m.theme), width))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showRules {
		return m.renderModal(game.Rules)
	}
	if m.share != "" {
		return m.renderModal(m.share)
	}
	content := m.renderContent()
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.help.View(m.keys)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderContent() string {
	v := m.engine.View()
	sections := []string{
		m.theme.muted.Render("Spelling Bee " + v.Date),
		renderProgress(v, m.theme),
		"",
		m.renderInput(),
		"",
		renderHive(v.Center, v.Outer, m.theme),
		"",
		m.theme.muted.Render(wordCount(len(v.FoundWords))),
		m.words.View(),
	}
	if toasts := m.toasts.render(m.theme); len(toasts) > 0 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, toasts...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *Model) renderInput() string {
	if len(m.input) == 0 {
		return m.theme.muted.Render("type a word")
	}
	return renderStyledRunes(buildInputRunes(m.input, m.engine.Letters(), m.theme)) + m.theme.muted.Render("_")
}

func (m *Model) renderModal(text string) string {
	body := strings.TrimSpace(text) + "\n\n" + m.theme.muted.Render("press any key")
	box := m.theme.modal.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func wordCount(n int) string {
	if n == 1 {
		return "You have found 1 word"
	}
	return "You have found " + strconv.Itoa(n) + " words"
}
