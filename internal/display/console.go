// Package display renders matches and simulation reports on the console
// with lipgloss.
package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
)

// Console prints match progress and the final score table
type Console struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   *Styles
}

// Option configures a Console
type Option func(*Console)

// WithoutColor forces plain ASCII output
func WithoutColor() Option {
	return func(c *Console) {
		c.renderer.SetColorProfile(termenv.Ascii)
	}
}

// NewConsole creates a console display writing to out
func NewConsole(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = NewStyles(c.renderer)
	return c
}

// MatchStarted prints the banner and instructions
func (c *Console) MatchStarted(matchID string, bestOf match.BestOf, stopEarly bool) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Title.Render(" Welcome to the ROCK - PAPER - SCISSORS game "))
	fmt.Fprintln(c.out, "Type 'Scissors(s)', 'Rock(r)' or 'Paper(p)' to select your option")
	if stopEarly {
		fmt.Fprintf(c.out, "Playing best of %d rounds, first to %d wins\n", bestOf.Rounds(), bestOf.Majority())
	} else {
		fmt.Fprintf(c.out, "Playing total of %d rounds\n", bestOf.Rounds())
	}
	if matchID != "" {
		fmt.Fprintln(c.out, c.styles.Info.Render("match "+matchID))
	}
	fmt.Fprintln(c.out)
}

// RoundPlayed prints a one line summary of the round
func (c *Console) RoundPlayed(round game.Round, standings match.Standings) {
	winner := round.Winner()
	fmt.Fprintf(c.out, "%d. Your choice: %s, Computer choice: %s %s\n",
		round.Number,
		c.styles.sideStyle(match.Human, winner).UnsetPadding().Render(round.Human.String()),
		c.styles.sideStyle(match.Computer, winner).UnsetPadding().Render(round.Computer.String()),
		c.styles.Info.Render(fmt.Sprintf("(%d-%d)", standings.HumanPoints, standings.ComputerPoints)))
}

// InvalidChoice tells the user their input was rejected
func (c *Console) InvalidChoice(err error) {
	fmt.Fprintln(c.out, c.styles.Error.Render(err.Error()))
}

// MatchFinished prints the score table
func (c *Console) MatchFinished(result *game.Result) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.Table(result))
}

// Table renders one row per round followed by the totals and the winner.
// The winning side of each round is highlighted.
func (c *Console) Table(result *game.Result) string {
	rounds := result.Rounds
	totalRow := len(rounds)
	winnerRow := totalRow + 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.Border).
		Headers("Round", "Player", "Computer").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return c.styles.Header
			case row == totalRow:
				return c.styles.Total
			case row == winnerRow:
				return c.styles.Winner
			case col == 1:
				return c.styles.sideStyle(match.Human, rounds[row].Winner())
			case col == 2:
				return c.styles.sideStyle(match.Computer, rounds[row].Winner())
			default:
				return c.styles.Cell
			}
		})

	for _, r := range rounds {
		t.Row(strconv.Itoa(r.Number), r.Human.String(), r.Computer.String())
	}
	t.Row("Total", strconv.Itoa(result.HumanPoints), strconv.Itoa(result.ComputerPoints))
	t.Row("Winner", result.Winner.String(), "")

	return t.Render()
}
