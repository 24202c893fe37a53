// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/tuibee/internal/puzzle"
)

// Config defines play settings resolved from flags, env and the config file.
type Config struct {
	Date     string
	DictPath string
	DBPath   string
	Theme    string
	LogLevel string
	LogPath  string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since *time.Time
	Last  int
	Plain bool
}

// Session is one day's game state.
type Session struct {
	Date       string
	Letters    puzzle.Letters
	Score      int
	FoundWords []string
}

// Stats aggregates play across all days.
type Stats struct {
	SchemaVersion       int
	Played              int
	TopRankAchievements int
	CurrentStreak       int
	MaxStreak           int
	RankDistribution    map[string]int
	LastPlayedDate      string
	LastRank            string
}

// DayResult is the best state reached on one day.
type DayResult struct {
	Date       string
	Letters    string
	Score      int
	Rank       string
	WordsFound int
	Pangrams   int
	UpdatedAt  time.Time
}
