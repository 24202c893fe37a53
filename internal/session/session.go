// Package session persists the current day's game state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/puzzle"
	"github.com/verte-zerg/tuibee/internal/store"
)

// ErrCorrupt reports a stored session that could not be decoded.
var ErrCorrupt = errors.New("corrupt session state")

type record struct {
	Date         string   `json:"date"`
	Score        int      `json:"score"`
	FoundWords   []string `json:"foundWords"`
	Letters      []string `json:"letters,omitempty"`
	CenterLetter string   `json:"centerLetter,omitempty"`
}

// Store reads and writes the daily session through a KV.
type Store struct {
	kv store.KV
}

// New returns a session store backed by kv.
func New(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Load returns the stored session if it belongs to today. A session
// from another day, or no session, yields nil. Undecodable data yields
// nil and an error wrapping ErrCorrupt.
func (s *Store) Load(ctx context.Context, today string) (*model.Session, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyState)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if rec.Date != today {
		return nil, nil
	}
	sess := &model.Session{
		Date:       rec.Date,
		Score:      rec.Score,
		FoundWords: append([]string(nil), rec.FoundWords...),
	}
	if rec.CenterLetter != "" {
		letters, err := puzzle.Parse(rec.CenterLetter, rec.Letters)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		sess.Letters = letters
	}
	return sess, nil
}

// Save writes the full session and records its date as last played.
// Found words are stored sorted so repeated saves are byte-identical.
func (s *Store) Save(ctx context.Context, sess *model.Session) error {
	found := append([]string(nil), sess.FoundWords...)
	sort.Strings(found)
	rec := record{
		Date:       sess.Date,
		Score:      sess.Score,
		FoundWords: found,
	}
	if rec.FoundWords == nil {
		rec.FoundWords = []string{}
	}
	if !sess.Letters.IsZero() {
		rec.CenterLetter = string(sess.Letters.Center)
		rec.Letters = sess.Letters.OuterStrings()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyState, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyLastPlayed, sess.Date); err != nil {
		return fmt.Errorf("failed to save last played date: %w", err)
	}
	return nil
}

// Reset replaces any stored session with an empty one for today.
func (s *Store) Reset(ctx context.Context, today string, letters puzzle.Letters) (*model.Session, error) {
	sess := &model.Session{
		Date:       today,
		Letters:    letters,
		FoundWords: []string{},
	}
	if err := s.Save(ctx, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// LastPlayed returns the date of the most recent save.
func (s *Store) LastPlayed(ctx context.Context) (string, bool, error) {
	v, ok, err := s.kv.Get(ctx, store.KeyLastPlayed)
	if err != nil {
		return "", false, fmt.Errorf("failed to read last played date: %w", err)
	}
	return v, ok, nil
}
