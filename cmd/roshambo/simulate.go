package main

import (
	"fmt"
	"os"

	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/simulator"
)

// SimulateCmd plays batches of random-vs-random matches
type SimulateCmd struct {
	Matches   int           `default:"10000" help:"Number of matches to play"`
	Workers   int           `default:"0" help:"Parallel workers (0 = GOMAXPROCS)"`
	Rounds    *match.BestOf `short:"r" help:"Number of rounds per match, odd and greater than 2 (default 5)"`
	StopEarly *bool         `negatable:"" help:"End each match once a side has clinched it (default true)"`
	Seed      *int64        `help:"Deterministic RNG seed (optional)"`
}

// Run plays the batch and prints the report
func (c *SimulateCmd) Run(globals *Globals) error {
	settings, err := globals.settings()
	if err != nil {
		return err
	}
	if c.Rounds != nil {
		settings.BestOf = *c.Rounds
	}
	if c.StopEarly != nil {
		settings.StopEarly = *c.StopEarly
	}

	logger, closeLog, err := setupLogger(settings.LogLevel, settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed()
	if c.Seed != nil {
		seed = *c.Seed
	}

	sim := simulator.New(simulator.Config{
		Matches:           c.Matches,
		Workers:           c.Workers,
		Seed:              seed,
		BestOf:            settings.BestOf,
		StopEarlyOnClinch: settings.StopEarly,
		Logger:            logger,
	})

	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Simulated %d matches, %s, seed %d\n\n", stats.Matches, settings.BestOf, seed)
	fmt.Fprintln(os.Stdout, globals.console(os.Stdout).SimulationReport(stats))
	return nil
}
