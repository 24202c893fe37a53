package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuibee/internal/game"
	"github.com/verte-zerg/tuibee/internal/puzzle"
)

const cellGap = " "

// renderHive draws the outer letters around the center in three rows.
func renderHive(center byte, outer [puzzle.OuterCount]byte, th theme) string {
	cell := func(b byte, style lipgloss.Style) string {
		return style.Render(string(b))
	}
	top := strings.Join([]string{cell(outer[0], th.outer), cell(outer[1], th.outer)}, cellGap)
	mid := strings.Join([]string{cell(outer[2], th.outer), cell(center, th.center), cell(outer[3], th.outer)}, cellGap)
	bottom := strings.Join([]string{cell(outer[4], th.outer), cell(outer[5], th.outer)}, cellGap)
	return lipgloss.JoinVertical(lipgloss.Center, top, "", mid, "", bottom)
}

// renderProgress draws the rank line and a bar with one segment per
// progress step.
func renderProgress(v game.View, th theme) string {
	filled := v.Progress
	if filled > game.MaxProgress {
		filled = game.MaxProgress
	}
	var bar strings.Builder
	for i := 0; i < game.MaxProgress; i++ {
		if i < filled {
			bar.WriteString(th.barFilled.Render("■"))
		} else {
			bar.WriteString(th.barEmpty.Render("□"))
		}
	}
	line := fmt.Sprintf("%s  %s  %s", th.rank.Render(v.Rank.Name), bar.String(), th.word.Render(fmt.Sprintf("%d pts", v.Score)))
	if v.NextRank != nil {
		line += th.muted.Render(fmt.Sprintf("  %d to %s", v.PointsToNext, v.NextRank.Name))
	}
	return line
}
