package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/rps"
)

func result(winner match.Winner, clinched bool, rounds ...game.Round) *game.Result {
	r := &game.Result{Winner: winner, Clinched: clinched, Rounds: rounds}
	for _, round := range rounds {
		switch round.Winner() {
		case match.Human:
			r.HumanPoints++
		case match.Computer:
			r.ComputerPoints++
		}
	}
	return r
}

func round(human, computer rps.Choice) game.Round {
	return game.Round{Human: human, Computer: computer, Outcome: rps.Compare(human, computer)}
}

func TestStatistics_Empty(t *testing.T) {
	stats := New()

	assert.Equal(t, 0.0, stats.Mean())
	assert.Equal(t, 0.0, stats.Variance())
	assert.Equal(t, 0.0, stats.StdError())
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, 0.0, stats.WinRate(match.Human))
	assert.Error(t, stats.Validate())
}

func TestStatistics_Add(t *testing.T) {
	stats := New()
	stats.Add(result(match.Human, true,
		round(rps.Paper, rps.Rock),
		round(rps.Rock, rps.Scissors)))
	stats.Add(result(match.Computer, false,
		round(rps.Rock, rps.Paper),
		round(rps.Rock, rps.Rock),
		round(rps.Scissors, rps.Rock)))

	require.NoError(t, stats.Validate())
	assert.Equal(t, 2, stats.Matches)
	assert.Equal(t, 1, stats.HumanWins)
	assert.Equal(t, 1, stats.ComputerWins)
	assert.Equal(t, 1, stats.Clinched)
	assert.Equal(t, 5, stats.Rounds())
	assert.Equal(t, 2.5, stats.Mean())
	assert.Equal(t, 2.5, stats.Median())
	assert.InDelta(t, 0.5, stats.Variance(), 1e-9)
	assert.Equal(t, [3]int{1, 2, 2}, stats.RoundWins)
	assert.Equal(t, 3, stats.HumanChoices[rps.Rock])
	assert.Equal(t, 3, stats.ComputerChoices[rps.Rock])
	assert.Equal(t, 0.5, stats.WinRate(match.Human))
}

func TestStatistics_Merge(t *testing.T) {
	a := New()
	a.Add(result(match.Human, false, round(rps.Paper, rps.Rock)))
	b := New()
	b.Add(result(match.Draw, false, round(rps.Rock, rps.Rock)))
	b.Add(result(match.Computer, false, round(rps.Rock, rps.Paper)))

	a.Merge(b)
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.Matches)
	assert.Equal(t, 1, a.Draws)
	assert.Equal(t, 3, a.Lengths[1])
	assert.InDelta(t, 1.0/3, a.WinRate(match.Draw), 1e-9)
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := New()
	stats.Add(result(match.Human, false, round(rps.Paper, rps.Rock)))
	stats.Add(result(match.Human, false, round(rps.Paper, rps.Rock), round(rps.Paper, rps.Rock), round(rps.Paper, rps.Rock)))

	lo, hi := stats.ConfidenceInterval95()
	assert.Less(t, lo, stats.Mean())
	assert.Greater(t, hi, stats.Mean())
	assert.InDelta(t, math.Sqrt2, stats.StdDev(), 1e-9)
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := New()
	stats.Add(result(match.Human, false, round(rps.Paper, rps.Rock)))
	stats.HumanWins++

	assert.Error(t, stats.Validate())
}

func TestChiSquare(t *testing.T) {
	assert.Equal(t, 0.0, ChiSquare([3]int{100, 100, 100}))
	assert.Equal(t, 0.0, ChiSquare([3]int{}))
	assert.InDelta(t, 600.0, ChiSquare([3]int{300, 0, 0}), 1e-9)

	assert.True(t, LooksUniform([3]int{1010, 990, 1000}))
	assert.False(t, LooksUniform([3]int{1500, 750, 750}))
}

func TestChoiceShare(t *testing.T) {
	counts := [3]int{1, 1, 2}
	assert.Equal(t, 0.5, ChoiceShare(counts, rps.Scissors))
	assert.Equal(t, 0.0, ChoiceShare([3]int{}, rps.Rock))
}
