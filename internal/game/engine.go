package game

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/puzzle"
)

// SessionStore persists the daily session.
type SessionStore interface {
	Load(ctx context.Context, today string) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	Reset(ctx context.Context, today string, letters puzzle.Letters) (*model.Session, error)
}

// StatsRecorder receives the current rank after each accepted word.
type StatsRecorder interface {
	RecordPlay(ctx context.Context, today, rank string) (model.Stats, error)
}

// HistoryRecorder stores the best result per day.
type HistoryRecorder interface {
	RecordDay(ctx context.Context, r model.DayResult) error
}

// Options configures an Engine. Sessions and Dict are required.
type Options struct {
	Ranks    RankTable
	Dict     WordList
	Sessions SessionStore
	Stats    StatsRecorder
	History  HistoryRecorder
	Logger   zerolog.Logger
	Rand     *rand.Rand
}

// Outcome is the result of one submission.
type Outcome struct {
	Word          string
	Rejection     Rejection
	Points        int
	Pangram       bool
	RankUp        bool
	Notifications []Notification
}

// Accepted reports whether the word was added.
func (o Outcome) Accepted() bool {
	return o.Rejection == Accepted
}

// View is everything the UI needs to draw the current state.
type View struct {
	Date         string
	Center       byte
	Outer        [puzzle.OuterCount]byte
	Score        int
	Rank         Rank
	Progress     int
	NextRank     *Rank
	PointsToNext int
	FoundWords   []string
	Pangrams     map[string]bool
}

// Engine applies the game rules to one day's session. It is not safe
// for concurrent use.
type Engine struct {
	ranks    RankTable
	dict     WordList
	sessions SessionStore
	stats    StatsRecorder
	history  HistoryRecorder
	log      zerolog.Logger
	rnd      *rand.Rand

	today   string
	letters puzzle.Letters
	display [puzzle.OuterCount]byte
	score   int
	found   map[string]struct{}
	rank    Rank
}

// NewEngine constructs an engine. Call Start before submitting words.
func NewEngine(opts Options) *Engine {
	ranks := opts.Ranks
	if len(ranks) == 0 {
		ranks = DefaultRanks()
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		ranks:    ranks,
		dict:     opts.Dict,
		sessions: opts.Sessions,
		stats:    opts.Stats,
		history:  opts.History,
		log:      opts.Logger,
		rnd:      rnd,
		found:    map[string]struct{}{},
	}
}

// Start loads today's session or begins a fresh one.
func (e *Engine) Start(ctx context.Context, today string) []Notification {
	var notes []Notification
	e.today = today
	generated := puzzle.Generate(today)

	sess, err := e.sessions.Load(ctx, today)
	if err != nil {
		e.log.Warn().Err(err).Str("date", today).Msg("discarding stored session")
		sess = nil
	}
	if sess == nil {
		sess, err = e.sessions.Reset(ctx, today, generated)
		if err != nil {
			e.log.Error().Err(err).Str("date", today).Msg("failed to persist new session")
			notes = append(notes, persistFailed())
		}
	}

	e.letters = sess.Letters
	if e.letters.IsZero() {
		e.letters = generated
	}
	e.display = e.letters.Outer
	e.found = make(map[string]struct{}, len(sess.FoundWords))
	for _, w := range sess.FoundWords {
		e.found[Normalize(w)] = struct{}{}
	}
	e.score = TotalScore(e.FoundWords())
	if e.score != sess.Score {
		e.log.Warn().
			Int("stored", sess.Score).
			Int("computed", e.score).
			Msg("stored score disagrees with found words; using computed score")
	}
	e.rank = e.ranks.RankFor(e.score)

	e.log.Info().
		Str("date", today).
		Str("letters", e.letters.String()).
		Int("score", e.score).
		Int("found", len(e.found)).
		Msg("session started")
	return notes
}

// Tick starts a fresh session when today differs from the current day.
func (e *Engine) Tick(ctx context.Context, today string) []Notification {
	if today == e.today {
		return nil
	}
	notes := e.Start(ctx, today)
	return append([]Notification{{
		Kind:    NotifyNewDay,
		Message: fmt.Sprintf("A new puzzle for %s", today),
	}}, notes...)
}

// Submit validates word and, if accepted, scores and persists it.
// Rejected words leave all state untouched.
func (e *Engine) Submit(ctx context.Context, word string) Outcome {
	word = Normalize(word)
	out := Outcome{Word: word}

	out.Rejection = Validate(word, e.letters, e.found, e.dict)
	if out.Rejection != Accepted {
		e.log.Debug().Str("word", word).Stringer("reason", out.Rejection).Msg("word rejected")
		out.Notifications = []Notification{{Kind: NotifyRejected, Message: out.Rejection.Message()}}
		return out
	}

	out.Points, out.Pangram = Score(word)
	e.found[word] = struct{}{}
	e.score += out.Points
	prev := e.rank
	e.rank = e.ranks.RankFor(e.score)
	out.RankUp = RankUp(prev, e.rank)

	out.Notifications = append(out.Notifications, Notification{
		Kind:    NotifyAccepted,
		Message: fmt.Sprintf("%s +%d", word, out.Points),
	})
	if out.Pangram {
		out.Notifications = append(out.Notifications, Notification{
			Kind:    NotifyPangram,
			Message: fmt.Sprintf("Pangram! +%d points", PangramBonus),
		})
	}
	if out.RankUp {
		kind := NotifyRankUp
		if e.rank.Name == e.ranks.Top().Name {
			kind = NotifyTopRank
		}
		out.Notifications = append(out.Notifications, Notification{
			Kind:    kind,
			Message: fmt.Sprintf("New rank: %s", e.rank.Name),
		})
	}

	e.log.Info().
		Str("word", word).
		Int("points", out.Points).
		Bool("pangram", out.Pangram).
		Int("score", e.score).
		Str("rank", e.rank.Name).
		Msg("word accepted")

	if err := e.persist(ctx); err != nil {
		out.Notifications = append(out.Notifications, persistFailed())
	}
	return out
}

func (e *Engine) persist(ctx context.Context) error {
	var firstErr error
	sess := e.session()
	if err := e.sessions.Save(ctx, sess); err != nil {
		e.log.Error().Err(err).Msg("failed to save session")
		firstErr = err
	}
	if e.stats != nil {
		if _, err := e.stats.RecordPlay(ctx, e.today, e.rank.Name); err != nil {
			e.log.Error().Err(err).Msg("failed to record stats")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if e.history != nil {
		if err := e.history.RecordDay(ctx, e.dayResult()); err != nil {
			e.log.Error().Err(err).Msg("failed to record daily result")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Reset clears today's found words and score, keeping the letters.
func (e *Engine) Reset(ctx context.Context) error {
	if _, err := e.sessions.Reset(ctx, e.today, e.letters); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	e.found = map[string]struct{}{}
	e.score = 0
	e.rank = e.ranks.RankFor(0)
	e.display = e.letters.Outer
	return nil
}

// Shuffle reorders the displayed outer letters.
func (e *Engine) Shuffle() {
	e.display = puzzle.Shuffle(e.display, e.rnd)
}

// Letters returns today's puzzle.
func (e *Engine) Letters() puzzle.Letters {
	return e.letters
}

// Today returns the date of the active session.
func (e *Engine) Today() string {
	return e.today
}

// Ranks returns the rank table in use.
func (e *Engine) Ranks() RankTable {
	return e.ranks
}

// FoundWords returns found words sorted ascending.
func (e *Engine) FoundWords() []string {
	out := make([]string, 0, len(e.found))
	for w := range e.found {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// View snapshots the state for rendering.
func (e *Engine) View() View {
	v := View{
		Date:       e.today,
		Center:     e.letters.Center,
		Outer:      e.display,
		Score:      e.score,
		Rank:       e.rank,
		Progress:   e.ranks.ProgressFor(e.score),
		FoundWords: e.FoundWords(),
		Pangrams:   map[string]bool{},
	}
	if next, ok := e.ranks.Next(e.score); ok {
		v.NextRank = &next
		v.PointsToNext = next.Threshold - e.score
	}
	for _, w := range v.FoundWords {
		if IsPangram(w) {
			v.Pangrams[w] = true
		}
	}
	return v
}

// Share formats today's result for sharing.
func (e *Engine) Share() string {
	return FormatShare(ShareSummary{
		Date:       e.today,
		Score:      e.score,
		Rank:       e.rank.Name,
		WordsFound: len(e.found),
	})
}

func (e *Engine) session() *model.Session {
	return &model.Session{
		Date:       e.today,
		Letters:    e.letters,
		Score:      e.score,
		FoundWords: e.FoundWords(),
	}
}

func (e *Engine) dayResult() model.DayResult {
	pangrams := 0
	for w := range e.found {
		if IsPangram(w) {
			pangrams++
		}
	}
	return model.DayResult{
		Date:       e.today,
		Letters:    e.letters.String(),
		Score:      e.score,
		Rank:       e.rank.Name,
		WordsFound: len(e.found),
		Pangrams:   pangrams,
		UpdatedAt:  time.Now(),
	}
}

func persistFailed() Notification {
	return Notification{
		Kind:    NotifyPersistFailed,
		Message: "Progress could not be saved",
	}
}
