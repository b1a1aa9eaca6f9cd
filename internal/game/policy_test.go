package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    InputPolicy
		wantErr bool
	}{
		{input: "abort", want: AbortOnInvalid},
		{input: "", want: AbortOnInvalid},
		{input: "Reprompt", want: RepromptOnInvalid},
		{input: "retry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInputPolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputPolicyUnmarshalText(t *testing.T) {
	var p InputPolicy
	require.NoError(t, p.UnmarshalText([]byte("reprompt")))
	assert.Equal(t, RepromptOnInvalid, p)
	assert.Equal(t, "reprompt", p.String())
	assert.Equal(t, "abort", AbortOnInvalid.String())
}
