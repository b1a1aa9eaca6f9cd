package main

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/roshambo/internal/config"
	"github.com/lox/roshambo/internal/console"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/matchid"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/rps"
)

// PlayCmd plays one match against the computer
type PlayCmd struct {
	Rounds    *match.BestOf     `short:"r" help:"Number of rounds to be played, odd and greater than 2 (default 5)"`
	StopEarly *bool             `negatable:"" help:"End the match as soon as one side has clinched it (default true)"`
	OnInvalid *game.InputPolicy `help:"What to do with unrecognized input: abort or reprompt (default abort)"`
	Seed      *int64            `help:"Deterministic RNG seed (optional)"`
}

// apply layers the command flags over the resolved settings
func (c *PlayCmd) apply(s config.Settings) config.Settings {
	if c.Rounds != nil {
		s.BestOf = *c.Rounds
	}
	if c.StopEarly != nil {
		s.StopEarly = *c.StopEarly
	}
	if c.OnInvalid != nil {
		s.OnInvalidInput = *c.OnInvalid
	}
	return s
}

// Run plays one match on stdin and stdout
func (c *PlayCmd) Run(globals *Globals) error {
	settings, err := globals.settings()
	if err != nil {
		return err
	}
	settings = c.apply(settings)

	logger, closeLog, err := setupLogger(settings.LogLevel, settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	var reader console.LineReader
	if console.IsInteractive(os.Stdin) {
		term, err := console.NewTerminal("> ", "")
		if err != nil {
			return err
		}
		defer func() {
			if err := term.Close(); err != nil {
				logger.Error("Failed to close terminal", "error", err)
			}
		}()
		reader = term
	} else {
		reader = console.NewScanner(os.Stdin, nil, "")
	}

	_, err = c.play(ctx, reader, globals.console(os.Stdout), settings, logger)
	return err
}

// play runs a single match with the given input and output
func (c *PlayCmd) play(ctx context.Context, reader console.LineReader, out game.Display, settings config.Settings, logger *log.Logger) (*game.Result, error) {
	var rng *rand.Rand
	var matchID string
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		rng = randutil.New(*c.Seed)
		matchID = matchid.NewGenerator(rng).Generate()
	} else {
		seed := randutil.Seed()
		logger.Debug("Using random seed", "seed", seed)
		rng = randutil.New(seed)
		matchID = matchid.Generate()
	}

	g := game.New(
		console.NewPlayer(reader),
		game.Computer(rps.NewChooser(rng)),
		game.Options{
			BestOf:            settings.BestOf,
			StopEarlyOnClinch: settings.StopEarly,
			OnInvalidInput:    settings.OnInvalidInput,
			MatchID:           matchID,
			Display:           out,
			Logger:            logger,
		},
	)

	result, err := g.Play(ctx)
	if err != nil {
		return nil, fmt.Errorf("match aborted: %w", err)
	}
	return result, nil
}

