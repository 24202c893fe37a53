// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuibee/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Keys used in the key-value table.
const (
	KeyState      = "spellingBeeState"
	KeyLastPlayed = "lastPlayed"
	KeyStats      = "spellingBeeStats"
	KeyTheme      = "theme"
)

// KV is a string-keyed store of JSON or plain string values.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store wraps SQLite access for game state and daily history.
type Store struct {
	db *sql.DB
}

var _ KV = (*Store)(nil)

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS daily_results (
			date TEXT PRIMARY KEY,
			letters TEXT NOT NULL,
			score INTEGER NOT NULL,
			rank TEXT NOT NULL,
			words_found INTEGER NOT NULL,
			pangrams INTEGER NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored under key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// RecordDay stores the result for a day. A lower score never replaces
// a higher one.
func (s *Store) RecordDay(ctx context.Context, r model.DayResult) error {
	updatedAt := r.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_results (date, letters, score, rank, words_found, pangrams, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			letters = excluded.letters,
			score = excluded.score,
			rank = excluded.rank,
			words_found = excluded.words_found,
			pangrams = excluded.pangrams,
			updated_at = excluded.updated_at
		 WHERE excluded.score >= daily_results.score`,
		r.Date,
		r.Letters,
		r.Score,
		r.Rank,
		r.WordsFound,
		r.Pangrams,
		updatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// ListDays returns daily results filtered by stats config, oldest first.
func (s *Store) ListDays(ctx context.Context, cfg model.StatsConfig) ([]model.DayResult, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "date >= ?")
		args = append(args, cfg.Since.Format("2006-01-02"))
	}
	query := fmt.Sprintf(`SELECT date, letters, score, rank, words_found, pangrams, updated_at
		FROM daily_results
		WHERE %s
		ORDER BY date ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var days []model.DayResult
	for rows.Next() {
		var r model.DayResult
		var updatedAt string
		if err := rows.Scan(&r.Date, &r.Letters, &r.Score, &r.Rank, &r.WordsFound, &r.Pangrams, &updatedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil {
			return nil, err
		}
		r.UpdatedAt = parsed
		days = append(days, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(days) > cfg.Last {
		days = days[len(days)-cfg.Last:]
	}
	return days, nil
}
