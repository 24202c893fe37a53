package stats

import (
	"encoding/json"
	"fmt"

	"github.com/verte-zerg/tuibee/internal/model"
)

// SchemaVersion is the current stored stats layout.
//
//	1: top-rank count stored as "wins"
//	2: renamed to "queenBees"
//	3: adds "lastRank"
const SchemaVersion = 3

type record struct {
	SchemaVersion    int            `json:"schemaVersion"`
	Played           int            `json:"played"`
	QueenBees        *int           `json:"queenBees,omitempty"`
	Wins             *int           `json:"wins,omitempty"`
	CurrentStreak    int            `json:"currentStreak"`
	MaxStreak        int            `json:"maxStreak"`
	RankDistribution map[string]int `json:"rankDistribution"`
	LastPlayedDate   string         `json:"lastPlayedDate,omitempty"`
	LastRank         *string        `json:"lastRank,omitempty"`
}

// decode parses stored stats and upgrades older layouts. migrated is
// true when the record should be written back.
func decode(raw string) (st model.Stats, migrated bool, err error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return emptyStats(), false, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	version := rec.SchemaVersion
	if version == 0 {
		version = 1
		if rec.QueenBees != nil {
			version = 2
		}
		if rec.LastRank != nil {
			version = 3
		}
	}
	if version > SchemaVersion {
		return emptyStats(), false, fmt.Errorf("%w: unsupported schema version %d", ErrCorrupt, version)
	}

	if version < 2 && rec.QueenBees == nil {
		wins := 0
		if rec.Wins != nil {
			wins = *rec.Wins
		}
		rec.QueenBees = &wins
	}
	if rec.QueenBees == nil {
		zero := 0
		rec.QueenBees = &zero
	}
	if rec.RankDistribution == nil {
		rec.RankDistribution = map[string]int{}
	}

	st = model.Stats{
		SchemaVersion:       SchemaVersion,
		Played:              rec.Played,
		TopRankAchievements: *rec.QueenBees,
		CurrentStreak:       rec.CurrentStreak,
		MaxStreak:           rec.MaxStreak,
		RankDistribution:    rec.RankDistribution,
		LastPlayedDate:      rec.LastPlayedDate,
	}
	if rec.LastRank != nil {
		st.LastRank = *rec.LastRank
	}
	return st, rec.SchemaVersion != SchemaVersion, nil
}

func encode(st model.Stats) record {
	queenBees := st.TopRankAchievements
	rec := record{
		SchemaVersion:    SchemaVersion,
		Played:           st.Played,
		QueenBees:        &queenBees,
		CurrentStreak:    st.CurrentStreak,
		MaxStreak:        st.MaxStreak,
		RankDistribution: st.RankDistribution,
		LastPlayedDate:   st.LastPlayedDate,
	}
	if rec.RankDistribution == nil {
		rec.RankDistribution = map[string]int{}
	}
	if st.LastRank != "" {
		lastRank := st.LastRank
		rec.LastRank = &lastRank
	}
	return rec
}
