package rps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Choice
		wantErr bool
	}{
		{name: "upper case word with newline", input: "ROCK\n", want: Rock},
		{name: "abbreviation with newline", input: "r\n", want: Rock},
		{name: "mixed case word", input: "Paper", want: Paper},
		{name: "scissors abbreviation", input: "s", want: Scissors},
		{name: "windows line ending", input: "scissors\r\n", want: Scissors},
		{name: "padded", input: "  p  ", want: Paper},
		{name: "unknown word", input: "lizard", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank line", input: "\n", wantErr: true},
		{name: "two words", input: "rock paper", wantErr: true},
		{name: "prefix only", input: "roc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChoice(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnrecognizedChoice))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrorCarriesInput(t *testing.T) {
	_, err := ParseChoice("lizard\n")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "lizard", perr.Input)
	assert.Contains(t, err.Error(), `"lizard"`)
}
