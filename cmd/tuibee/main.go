// Package main provides the CLI entrypoint for tuibee.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuibee/internal/config"
	"github.com/verte-zerg/tuibee/internal/game"
	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/puzzle"
	"github.com/verte-zerg/tuibee/internal/stats"
	"github.com/verte-zerg/tuibee/internal/statsui"
	"github.com/verte-zerg/tuibee/internal/tui"
)

const defaultLogLevel = "info"

var (
	flagDate     string
	flagDict     string
	flagDB       string
	flagLogLevel string
	flagTheme    string

	todayRules bool

	statsSince string
	statsLast  int
	statsPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuibee",
		Short:         "Daily Spelling Bee in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagDate, "date", "", "play the puzzle of a given day (YYYY-MM-DD, default: today UTC)")
	flags.StringVar(&flagDict, "dict", "", "word list file (default: built-in list)")
	flags.StringVar(&flagDB, "db", config.DefaultDBPath(), "database path")
	flags.StringVar(&flagLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme (dark, light)")

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newShareCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	notes := a.engine.Start(context.Background(), a.today())
	m := tui.NewModel(tui.Options{
		Engine: a.engine,
		Prefs:  a.store,
		Theme:  a.cfg.Theme,
		Today:  a.today,
		Logger: a.log,
	})
	for _, n := range notes {
		a.log.Warn().Str("kind", string(n.Kind)).Msg(n.Message)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's letters and progress",
		Args:  cobra.NoArgs,
		RunE:  runTodayCmd,
	}
	cmd.Flags().BoolVar(&todayRules, "rules", false, "print the rules")
	return cmd
}

func runTodayCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	a.engine.Start(context.Background(), a.today())
	out := formatToday(a.engine.View())
	if todayRules {
		out += "\n\n" + game.Rules
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func formatToday(v game.View) string {
	outer := make([]string, 0, len(v.Outer))
	for _, b := range v.Outer {
		outer = append(outer, string(b))
	}
	words := "words"
	if len(v.FoundWords) == 1 {
		words = "word"
	}
	lines := []string{
		"Spelling Bee " + v.Date,
		"Center: " + string(v.Center),
		"Letters: " + strings.Join(outer, " "),
		fmt.Sprintf("Score: %d (%s), %d %s found", v.Score, v.Rank.Name, len(v.FoundWords), words),
	}
	if v.NextRank != nil {
		lines = append(lines, fmt.Sprintf("Next: %s in %d", v.NextRank.Name, v.PointsToNext))
	}
	if len(v.FoundWords) > 0 {
		lines = append(lines, "Found: "+strings.Join(v.FoundWords, " "))
	}
	return strings.Join(lines, "\n")
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N days")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	statsCfg, err := buildStatsConfig(statsSince, statsLast, statsPlain)
	if err != nil {
		return err
	}

	a, err := openApp(cmd, !statsCfg.Plain)
	if err != nil {
		return err
	}
	defer a.Close()

	load := func(ctx context.Context, cfg model.StatsConfig) (stats.Report, error) {
		return stats.BuildReport(ctx, a.store, stats.NewTracker(a.store, a.ranks.Names()), a.ranks.Names(), cfg)
	}

	if statsCfg.Plain {
		report, err := load(context.Background(), statsCfg)
		if err != nil {
			a.log.Warn().Err(err).Msg("stats loaded with errors")
		}
		if err := stats.RenderReport(cmd.OutOrStdout(), report, stats.TerminalWidth()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	program := tea.NewProgram(statsui.NewModel(load, statsCfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func buildStatsConfig(since string, last int, plain bool) (model.StatsConfig, error) {
	if last < 0 {
		return model.StatsConfig{}, fmt.Errorf("--last must be >= 0")
	}
	cfg := model.StatsConfig{Last: last, Plain: plain}
	if since != "" {
		parsed, err := time.Parse(puzzle.DateLayout, since)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	return cfg, nil
}

func newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print a shareable summary of today's game",
		Args:  cobra.NoArgs,
		RunE:  runShareCmd,
	}
}

func runShareCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	a.engine.Start(context.Background(), a.today())
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.engine.Share()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear today's found words and score",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	a.engine.Start(ctx, a.today())
	if err := a.engine.Reset(ctx); err != nil {
		return err
	}
	a.log.Info().Str("date", a.engine.Today()).Msg("session reset")
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Reset %s (%s)\n", a.engine.Today(), a.engine.Letters()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	var ranks strings.Builder
	for _, r := range game.DefaultRanks() {
		fmt.Fprintf(&ranks, "# [[game.ranks]]\n# name = %q\n# threshold = %d\n", r.Name, r.Threshold)
	}
	return fmt.Sprintf(`# tuibee configuration
# Uncomment a value to enable it. Environment variables (TUIBEE_*)
# override config values and CLI flags override both.

[game]
# dict = %q    # Word list, one word per line (default: built-in list)
# theme = "dark"    # dark or light

# Rank tiers, lowest first. The first threshold must be 0.
%s
[log]
# level = %q
# file = %q
`,
		config.DefaultDictPath(),
		ranks.String(),
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}
