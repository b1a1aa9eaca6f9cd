package display

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/rps"
	"github.com/lox/roshambo/internal/statistics"
)

// SimulationReport renders match and throw statistics as two tables
func (c *Console) SimulationReport(stats *statistics.Statistics) string {
	pct := func(f float64) string { return fmt.Sprintf("%.1f%%", f*100) }

	headerStyle := func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return c.styles.Header
		}
		return c.styles.Cell
	}

	matches := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.Border).
		Headers("Matches", "First seat", "Second seat", "Draws", "Clinched").
		StyleFunc(headerStyle).
		Row(
			strconv.Itoa(stats.Matches),
			pct(stats.WinRate(match.Human)),
			pct(stats.WinRate(match.Computer)),
			pct(stats.WinRate(match.Draw)),
			strconv.Itoa(stats.Clinched),
		)

	lo, hi := stats.ConfidenceInterval95()
	length := c.styles.Summary.Render(fmt.Sprintf(
		"Rounds per match: mean %.3f, median %.1f, stddev %.3f, 95%% CI [%.3f, %.3f]",
		stats.Mean(), stats.Median(), stats.StdDev(), lo, hi))

	throws := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.Border).
		Headers("Seat", rps.Rock.String(), rps.Paper.String(), rps.Scissors.String(), "Chi-square", "Uniform").
		StyleFunc(headerStyle)
	for _, side := range []struct {
		name   string
		counts [3]int
	}{
		{"First", stats.HumanChoices},
		{"Second", stats.ComputerChoices},
	} {
		throws.Row(
			side.name,
			pct(statistics.ChoiceShare(side.counts, rps.Rock)),
			pct(statistics.ChoiceShare(side.counts, rps.Paper)),
			pct(statistics.ChoiceShare(side.counts, rps.Scissors)),
			fmt.Sprintf("%.3f", statistics.ChiSquare(side.counts)),
			strconv.FormatBool(statistics.LooksUniform(side.counts)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, matches.Render(), length, throws.Render())
}
