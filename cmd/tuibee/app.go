package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuibee/internal/config"
	"github.com/verte-zerg/tuibee/internal/dictionary"
	"github.com/verte-zerg/tuibee/internal/game"
	"github.com/verte-zerg/tuibee/internal/logger"
	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/puzzle"
	"github.com/verte-zerg/tuibee/internal/session"
	"github.com/verte-zerg/tuibee/internal/stats"
	"github.com/verte-zerg/tuibee/internal/store"
	"github.com/verte-zerg/tuibee/internal/tui"
)

// app holds everything a command needs to run a game.
type app struct {
	cfg    model.Config
	ranks  game.RankTable
	store  *store.Store
	engine *game.Engine
	log    zerolog.Logger
	today  func() string

	closers []io.Closer
}

// openApp resolves configuration, opens storage and builds the engine.
// Interactive commands log to a file so the terminal UI stays clean.
func openApp(cmd *cobra.Command, interactive bool) (*app, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	cfg, err := resolveConfig(cmd, fileCfg, envCfg)
	if err != nil {
		return nil, err
	}
	ranks, err := resolveRanks(fileCfg.Game.Ranks)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, ranks: ranks}
	if interactive {
		log, closer, err := logger.OpenFile(cfg.LogPath, cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.log = log
		a.closers = append(a.closers, closer)
	} else {
		a.log = logger.Console(os.Stderr, cfg.LogLevel)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	a.store = st
	a.closers = append([]io.Closer{st}, a.closers...)

	if cfg.Date != "" {
		fixed := cfg.Date
		a.today = func() string { return fixed }
	} else {
		a.today = func() string { return puzzle.DateKey(time.Now()) }
	}

	a.engine = game.NewEngine(game.Options{
		Ranks:    ranks,
		Dict:     loadDictionary(cfg.DictPath, a.log),
		Sessions: session.New(st),
		Stats:    stats.NewTracker(st, ranks.Names()),
		History:  st,
		Logger:   a.log,
	})
	return a, nil
}

// Close releases the database and log file.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logErrf("failed to close: %v\n", err)
		}
	}
	a.closers = nil
}

// resolveConfig merges defaults, the config file and the environment
// into the flag values. Flags set on the command line always win, then
// the environment, then the file.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig, envCfg config.EnvConfig) (model.Config, error) {
	date, dict, db, level, theme := flagDate, flagDict, flagDB, flagLogLevel, flagTheme

	applyStringConfig(cmd, "dict", &dict, fileCfg.Game.Dict)
	applyStringConfig(cmd, "theme", &theme, fileCfg.Game.Theme)
	applyStringConfig(cmd, "log-level", &level, fileCfg.Log.Level)

	applyEnvConfig(cmd, "date", &date, envCfg.Date)
	applyEnvConfig(cmd, "dict", &dict, envCfg.Dict)
	applyEnvConfig(cmd, "db", &db, envCfg.DB)
	applyEnvConfig(cmd, "log-level", &level, envCfg.LogLevel)
	applyEnvConfig(cmd, "theme", &theme, envCfg.Theme)

	cfg := model.Config{
		DictPath: dict,
		DBPath:   db,
		Theme:    theme,
		LogLevel: level,
		LogPath:  config.DefaultLogPath(),
	}
	if fileCfg.Log.File != nil && *fileCfg.Log.File != "" {
		cfg.LogPath = *fileCfg.Log.File
	}
	if date != "" {
		parsed, err := puzzle.ParseDate(date)
		if err != nil {
			return model.Config{}, err
		}
		cfg.Date = parsed
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.DBPath == "" {
		return fmt.Errorf("--db must not be empty")
	}
	if cfg.Theme != "" && !tui.ValidTheme(cfg.Theme) {
		return fmt.Errorf("unknown theme %q (use %s or %s)", cfg.Theme, tui.ThemeDark, tui.ThemeLight)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return nil
}

func resolveRanks(entries []config.RankConfig) (game.RankTable, error) {
	if len(entries) == 0 {
		return game.DefaultRanks(), nil
	}
	ranks := make([]game.Rank, 0, len(entries))
	for _, e := range entries {
		ranks = append(ranks, game.Rank{Name: e.Name, Threshold: e.Threshold})
	}
	table, err := game.NewRankTable(ranks)
	if err != nil {
		return nil, fmt.Errorf("invalid rank table in config: %w", err)
	}
	return table, nil
}

// loadDictionary reads the configured word list. Without one, the
// default path is tried and the built-in list is used when it is
// missing. A list that fails to load leaves the game with an empty
// dictionary.
func loadDictionary(path string, log zerolog.Logger) *dictionary.Dictionary {
	explicit := path != ""
	if !explicit {
		path = config.DefaultDictPath()
	}
	dict, err := dictionary.Load(path)
	if err == nil {
		log.Info().Str("path", path).Int("words", dict.Len()).Msg("dictionary loaded")
		return dict
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		dict = dictionary.Default()
		log.Debug().Int("words", dict.Len()).Msg("using built-in dictionary")
		return dict
	}
	log.Error().Err(err).Str("path", path).Msg("dictionary unavailable; every word will be rejected")
	return dictionary.Empty()
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyEnvConfig(cmd *cobra.Command, name string, target *string, value string) {
	if value == "" {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
