package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"
)

const (
	sparkChars         = " .:-=+*#%@"
	barChar            = "█"
	defaultTermWidth   = 80
	recentDaysInReport = 7
)

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// TerminalWidth returns the width of stdout, or a default when stdout
// is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTermWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

// RenderReport prints the summary, distribution and history sections.
func RenderReport(w io.Writer, r Report, width int) error {
	if err := RenderSummary(w, r); err != nil {
		return err
	}
	if err := RenderDistribution(w, r, width); err != nil {
		return err
	}
	return RenderHistory(w, r, width)
}

// RenderSummary prints headline counters.
func RenderSummary(w io.Writer, r Report) error {
	if r.Stats.Played == 0 {
		_, err := fmt.Fprintln(w, "No games played yet.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Played: %d", r.Stats.Played),
		fmt.Sprintf("Top rank reached: %d (%.0f%%)", r.Stats.TopRankAchievements, r.TopRankRate()*100),
		fmt.Sprintf("Current streak: %d", r.Stats.CurrentStreak),
		fmt.Sprintf("Max streak: %d", r.Stats.MaxStreak),
	}
	if len(r.Days) > 0 {
		lines = append(lines, fmt.Sprintf("Avg score: %.1f", r.AverageScore()))
		if best, ok := r.BestDay(); ok {
			lines = append(lines, fmt.Sprintf("Best day: %s (%d, %s)", best.Date, best.Score, best.Rank))
		}
	}
	lines = append(lines, "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderDistribution prints the rank histogram as a table with bars
// scaled to width.
func RenderDistribution(w io.Writer, r Report, width int) error {
	rows := r.DistributionRows()
	if len(rows) == 0 {
		return nil
	}
	maxDays := 0
	maxName := 0
	for _, row := range rows {
		if row.Days > maxDays {
			maxDays = row.Days
		}
		if n := displayWidth(row.Rank); n > maxName {
			maxName = n
		}
	}
	barWidth := width - maxName - 8
	if barWidth < 5 {
		barWidth = 5
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		bar := ""
		if maxDays > 0 && row.Days > 0 {
			n := row.Days * barWidth / maxDays
			if n == 0 {
				n = 1
			}
			bar = strings.Repeat(barChar, n)
		}
		tableRows = append(tableRows, []string{row.Rank, fmt.Sprintf("%d", row.Days), bar})
	}
	if _, err := fmt.Fprintln(w, "Rank Distribution"); err != nil {
		return err
	}
	for _, line := range formatTable(nil, tableRows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints a score sparkline and the most recent days.
func RenderHistory(w io.Writer, r Report, width int) error {
	if len(r.Days) == 0 {
		return nil
	}
	scores := r.Scores()
	if width > 0 && len(scores) > width {
		scores = scores[len(scores)-width:]
	}
	if _, err := fmt.Fprintln(w, "Score History"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(scores)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	recent := append(r.Days[:0:0], r.Days...)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > recentDaysInReport {
		recent = recent[:recentDaysInReport]
	}
	headers := []string{"Date", "Letters", "Score", "Rank", "Words", "Pangrams"}
	rows := make([][]string, 0, len(recent))
	for _, d := range recent {
		rows = append(rows, []string{
			d.Date,
			d.Letters,
			fmt.Sprintf("%d", d.Score),
			d.Rank,
			fmt.Sprintf("%d", d.WordsFound),
			fmt.Sprintf("%d", d.Pangrams),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{2: true, 4: true, 5: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
