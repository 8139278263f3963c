package tournament

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// FormatRankings renders the tournament standings as a table.
func FormatRankings(rankings []*BotStats) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "Bot", "W", "L", "D", "Win%", "Pts", "Avg", "Gins", "UCs", "Errs")

	for rank, s := range rankings {
		t.Row(
			fmt.Sprintf("%d", rank+1),
			s.Name,
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.Losses),
			fmt.Sprintf("%d", s.Draws),
			fmt.Sprintf("%.1f%%", s.WinRate()*100),
			fmt.Sprintf("%d", s.TotalPoints),
			fmt.Sprintf("%.1f", s.AvgPoints()),
			fmt.Sprintf("%d", s.Gins),
			fmt.Sprintf("%d", s.Undercuts),
			fmt.Sprintf("%d", s.Errors),
		)
	}

	return titleStyle.Render("TOURNAMENT RESULTS") + "\n" + t.Render()
}

// FormatHeadToHead renders each bot's per-opponent record.
func FormatHeadToHead(rankings []*BotStats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("HEAD-TO-HEAD"))
	b.WriteString("\n")

	for _, s := range rankings {
		opponents := make([]string, 0, len(s.HeadToHead))
		for name := range s.HeadToHead {
			opponents = append(opponents, name)
		}
		sort.Strings(opponents)
		for _, opp := range opponents {
			record := s.HeadToHead[opp]
			fmt.Fprintf(&b, "  %s vs %s: %d-%d\n", s.Name, opp, record[0], record[1])
		}
	}
	return b.String()
}

// FormatMatchErrors renders per-match error summaries, a few lines per
// match at most.
func FormatMatchErrors(matches []*MatchResult) string {
	const perMatch = 3

	var b strings.Builder
	for _, m := range matches {
		if len(m.Errors) == 0 {
			continue
		}
		for i, errMsg := range m.Errors {
			if i == perMatch {
				fmt.Fprintf(&b, "  ... and %d more\n", len(m.Errors)-perMatch)
				break
			}
			fmt.Fprintf(&b, "  %s vs %s: %s\n", m.Bot0Name, m.Bot1Name, errMsg)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return titleStyle.Render("MATCH ERRORS") + "\n" + b.String()
}
