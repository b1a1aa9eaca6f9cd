package match

import (
	"testing"

	"github.com/lox/roshambo/internal/rps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBestOf(t *testing.T, n int) BestOf {
	t.Helper()
	b, err := NewBestOf(n)
	require.NoError(t, err)
	return b
}

func TestNewState(t *testing.T) {
	s := New(mustBestOf(t, 7))

	assert.Equal(t, 1, s.Round())
	assert.Equal(t, 0, s.Played())
	assert.Equal(t, 0, s.HumanPoints())
	assert.Equal(t, 0, s.ComputerPoints())
	assert.Equal(t, 7, s.BestOf().Rounds())
	assert.Equal(t, Draw, s.Winner())
}

func TestNewStateDefaultsZeroBestOf(t *testing.T) {
	s := New(BestOf{})
	assert.Equal(t, DefaultRounds, s.BestOf().Rounds())
}

func TestRecord(t *testing.T) {
	s := New(DefaultBestOf())

	s.Record(rps.FirstWins)
	assert.Equal(t, 1, s.HumanPoints())
	assert.Equal(t, 2, s.Round())

	s.Record(rps.SecondWins)
	assert.Equal(t, 1, s.ComputerPoints())
	assert.Equal(t, 3, s.Round())

	s.Record(rps.Draw)
	assert.Equal(t, 1, s.HumanPoints())
	assert.Equal(t, 1, s.ComputerPoints())
	assert.Equal(t, 4, s.Round())
}

func TestRecordInvariants(t *testing.T) {
	outcomes := []rps.Outcome{
		rps.Draw, rps.FirstWins, rps.Draw, rps.SecondWins, rps.SecondWins,
		rps.FirstWins, rps.Draw, rps.Draw, rps.FirstWins, rps.SecondWins,
	}
	s := New(mustBestOf(t, 11))
	initial := s.Round()

	prevHuman, prevComputer := 0, 0
	for k, o := range outcomes {
		s.Record(o)

		assert.LessOrEqual(t, s.HumanPoints()+s.ComputerPoints(), k+1)
		assert.Equal(t, initial+k+1, s.Round())
		assert.GreaterOrEqual(t, s.HumanPoints(), prevHuman)
		assert.GreaterOrEqual(t, s.ComputerPoints(), prevComputer)
		prevHuman, prevComputer = s.HumanPoints(), s.ComputerPoints()
	}
}

func TestCanEndEarlyBestOfFive(t *testing.T) {
	s := New(DefaultBestOf())

	s.Record(rps.SecondWins)
	s.Record(rps.SecondWins)
	s.Record(rps.FirstWins)
	s.Record(rps.FirstWins)
	assert.False(t, s.CanEndEarly(), "2-2 is not a clinch")

	s.Record(rps.SecondWins)
	assert.True(t, s.CanEndEarly())
}

func TestCanEndEarlyOnThirdPoint(t *testing.T) {
	s := New(DefaultBestOf())

	for i := 0; i < 2; i++ {
		s.Record(rps.SecondWins)
		assert.False(t, s.CanEndEarly())
	}
	s.Record(rps.Draw)
	assert.False(t, s.CanEndEarly())

	s.Record(rps.SecondWins)
	assert.True(t, s.CanEndEarly())
	assert.Equal(t, Computer, s.Winner())
}

func TestOver(t *testing.T) {
	s := New(mustBestOf(t, 3))
	s.Record(rps.FirstWins)
	s.Record(rps.FirstWins)

	assert.True(t, s.Over(true))
	assert.False(t, s.Over(false))

	s.Record(rps.SecondWins)
	assert.True(t, s.Over(false))
	assert.True(t, s.Complete())
}

func TestWinnerDraw(t *testing.T) {
	s := New(DefaultBestOf())
	s.Record(rps.SecondWins)
	s.Record(rps.SecondWins)
	s.Record(rps.FirstWins)
	s.Record(rps.FirstWins)

	assert.Equal(t, Draw, s.Winner())
}

func TestStandingsIsSnapshot(t *testing.T) {
	s := New(mustBestOf(t, 3))
	s.Record(rps.FirstWins)

	st := s.Standings()
	s.Record(rps.FirstWins)

	assert.Equal(t, 1, st.HumanPoints)
	assert.Equal(t, 2, st.Round)
	assert.Equal(t, 1, st.Played)
	assert.Equal(t, 3, st.BestOf)
	assert.Equal(t, Human, st.Winner)
	assert.Equal(t, 2, s.HumanPoints())
}

func TestWinnerOf(t *testing.T) {
	assert.Equal(t, Human, WinnerOf(rps.FirstWins))
	assert.Equal(t, Computer, WinnerOf(rps.SecondWins))
	assert.Equal(t, Draw, WinnerOf(rps.Draw))
	assert.Equal(t, "Human", Human.String())
	assert.Equal(t, "Computer", Computer.String())
	assert.Equal(t, "Draw", Draw.String())
}
