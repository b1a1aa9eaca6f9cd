package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/rps"
)

// Display receives plain values as the match progresses. Formatting lives
// entirely in the implementation.
type Display interface {
	MatchStarted(matchID string, bestOf match.BestOf, stopEarly bool)
	RoundPlayed(round Round, standings match.Standings)
	InvalidChoice(err error)
	MatchFinished(result *Result)
}

// NopDisplay discards every notification
type NopDisplay struct{}

// MatchStarted does nothing
func (NopDisplay) MatchStarted(string, match.BestOf, bool) {}

// RoundPlayed does nothing
func (NopDisplay) RoundPlayed(Round, match.Standings) {}

// InvalidChoice does nothing
func (NopDisplay) InvalidChoice(error) {}

// MatchFinished does nothing
func (NopDisplay) MatchFinished(*Result) {}

// Options configures a Game
type Options struct {
	BestOf            match.BestOf
	StopEarlyOnClinch bool
	OnInvalidInput    InputPolicy
	MatchID           string
	Display           Display
	Logger            *log.Logger
	Clock             quartz.Clock
}

// Game plays a single match between a human and a computer Player
type Game struct {
	human    Player
	computer Player
	opts     Options
	display  Display
	logger   *log.Logger
	clock    quartz.Clock
}

// New creates a game. Zero-valued options fall back to a best-of-5 that plays
// every round, aborts on bad input and reports nothing.
func New(human, computer Player, opts Options) *Game {
	g := &Game{
		human:    human,
		computer: computer,
		opts:     opts,
		display:  opts.Display,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
	if g.display == nil {
		g.display = NopDisplay{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if opts.MatchID != "" {
		g.logger = g.logger.With("match", opts.MatchID)
	}
	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	return g
}

// Play runs the match to its end and returns the result. Any error aborts
// the match; no partial result is returned.
func (g *Game) Play(ctx context.Context) (*Result, error) {
	state := match.New(g.opts.BestOf)
	start := g.clock.Now()

	g.logger.Info("Match started",
		"bestOf", state.BestOf().Rounds(),
		"stopEarly", g.opts.StopEarlyOnClinch,
		"onInvalid", g.opts.OnInvalidInput)
	g.display.MatchStarted(g.opts.MatchID, state.BestOf(), g.opts.StopEarlyOnClinch)

	var rounds []Round
	for !state.Over(g.opts.StopEarlyOnClinch) {
		if err := ctx.Err(); err != nil {
			g.logger.Warn("Match cancelled", "round", state.Round())
			return nil, err
		}

		number := state.Round()
		human, err := g.humanChoice(ctx, number)
		if err != nil {
			g.logger.Error("Human choice failed", "round", number, "error", err)
			return nil, fmt.Errorf("round %d: %w", number, err)
		}

		computer, err := g.computer.Choose(ctx)
		if err != nil {
			return nil, fmt.Errorf("round %d: computer choice: %w", number, err)
		}

		outcome := rps.Compare(human, computer)
		state.Record(outcome)

		round := Round{Number: number, Human: human, Computer: computer, Outcome: outcome}
		rounds = append(rounds, round)

		g.logger.Debug("Round played",
			"round", number,
			"human", human,
			"computer", computer,
			"winner", round.Winner(),
			"humanPoints", state.HumanPoints(),
			"computerPoints", state.ComputerPoints())
		g.display.RoundPlayed(round, state.Standings())
	}

	result := &Result{
		MatchID:        g.opts.MatchID,
		BestOf:         state.BestOf().Rounds(),
		Rounds:         rounds,
		HumanPoints:    state.HumanPoints(),
		ComputerPoints: state.ComputerPoints(),
		Winner:         state.Winner(),
		Clinched:       !state.Complete(),
		Duration:       g.clock.Since(start),
	}

	g.logger.Info("Match finished",
		"winner", result.Winner,
		"human", result.HumanPoints,
		"computer", result.ComputerPoints,
		"played", result.Played(),
		"clinched", result.Clinched,
		"duration", result.Duration)
	g.display.MatchFinished(result)

	return result, nil
}

func (g *Game) humanChoice(ctx context.Context, round int) (rps.Choice, error) {
	for {
		choice, err := g.human.Choose(ctx)
		if err == nil {
			return choice, nil
		}
		if g.opts.OnInvalidInput != RepromptOnInvalid || !errors.Is(err, rps.ErrUnrecognizedChoice) {
			return choice, err
		}

		g.logger.Warn("Unrecognized choice, asking again", "round", round, "error", err)
		g.display.InvalidChoice(err)

		if err := ctx.Err(); err != nil {
			return choice, err
		}
	}
}
