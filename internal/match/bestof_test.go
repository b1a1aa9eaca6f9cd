package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBestOf(t *testing.T) {
	tests := []struct {
		name    string
		rounds  int
		wantErr bool
	}{
		{name: "three", rounds: 3},
		{name: "five", rounds: 5},
		{name: "seven", rounds: 7},
		{name: "large odd", rounds: 101},
		{name: "one is too small", rounds: 1, wantErr: true},
		{name: "two", rounds: 2, wantErr: true},
		{name: "four", rounds: 4, wantErr: true},
		{name: "six", rounds: 6, wantErr: true},
		{name: "zero", rounds: 0, wantErr: true},
		{name: "negative odd", rounds: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBestOf(tt.rounds)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRoundCount))

				var rcErr *RoundCountError
				require.ErrorAs(t, err, &rcErr)
				assert.Equal(t, tt.rounds, rcErr.Rounds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rounds, b.Rounds())
		})
	}
}

func TestDefaultBestOf(t *testing.T) {
	assert.Equal(t, 5, DefaultBestOf().Rounds())
	assert.Equal(t, 3, DefaultBestOf().Majority())

	var zero BestOf
	assert.True(t, zero.IsZero())
	assert.Equal(t, DefaultRounds, zero.Rounds())
}

func TestMajority(t *testing.T) {
	for rounds, want := range map[int]int{3: 2, 5: 3, 7: 4, 9: 5} {
		b, err := NewBestOf(rounds)
		require.NoError(t, err)
		assert.Equal(t, want, b.Majority(), "best of %d", rounds)
	}
}

func TestParseBestOf(t *testing.T) {
	b, err := ParseBestOf(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, b.Rounds())

	_, err = ParseBestOf("seven")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidRoundCount))

	_, err = ParseBestOf("8")
	assert.ErrorIs(t, err, ErrInvalidRoundCount)
}

func TestBestOfUnmarshalText(t *testing.T) {
	var b BestOf
	require.NoError(t, b.UnmarshalText([]byte("9")))
	assert.Equal(t, 9, b.Rounds())

	err := b.UnmarshalText([]byte("2"))
	assert.ErrorIs(t, err, ErrInvalidRoundCount)
	assert.Equal(t, 9, b.Rounds(), "failed decode must not overwrite")
}
