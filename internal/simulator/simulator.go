// Package simulator plays batches of computer-vs-computer matches to check
// the engine and the random chooser at scale.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/rps"
	"github.com/lox/roshambo/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Matches           int
	Workers           int
	Seed              int64
	BestOf            match.BestOf
	StopEarlyOnClinch bool
	Logger            *log.Logger
}

// Simulator runs match simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Workers > config.Matches && config.Matches > 0 {
		config.Workers = config.Matches
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: logger}
}

// Run plays every match and returns the merged statistics. Each worker
// draws from its own stream of the seed, so a given seed and worker count
// always produce the same totals.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Matches <= 0 {
		return nil, fmt.Errorf("matches must be positive, got %d", s.config.Matches)
	}

	workers := s.config.Workers
	perWorker := s.config.Matches / workers
	remainder := s.config.Matches % workers

	s.logger.Info("Starting simulation",
		"matches", s.config.Matches,
		"workers", workers,
		"seed", s.config.Seed,
		"bestOf", s.config.BestOf.Rounds(),
		"stopEarly", s.config.StopEarlyOnClinch)

	results := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		matches := perWorker
		if w < remainder {
			matches++ // Distribute remainder matches
		}

		g.Go(func() error {
			stats, err := s.runWorker(ctx, w, matches)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := statistics.New()
	for _, stats := range results {
		total.Merge(stats)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"matches", total.Matches,
		"rounds", total.Rounds(),
		"meanRounds", total.Mean())

	return total, nil
}

func (s *Simulator) runWorker(ctx context.Context, worker, matches int) (*statistics.Statistics, error) {
	rng := randutil.Derive(s.config.Seed, worker)
	first := game.Computer(rps.NewChooser(rng))
	second := game.Computer(rps.NewChooser(rng))

	stats := statistics.New()
	for i := 0; i < matches; i++ {
		g := game.New(first, second, game.Options{
			BestOf:            s.config.BestOf,
			StopEarlyOnClinch: s.config.StopEarlyOnClinch,
		})
		result, err := g.Play(ctx)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", i+1, err)
		}
		stats.Add(result)
	}

	s.logger.Debug("Worker finished", "worker", worker, "matches", matches)
	return stats, nil
}
