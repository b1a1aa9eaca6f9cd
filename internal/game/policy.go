package game

import (
	"fmt"
	"strings"
)

// InputPolicy decides what happens when the human types something that is
// not a throw
type InputPolicy int

const (
	AbortOnInvalid InputPolicy = iota
	RepromptOnInvalid
)

// String returns the config name of the policy
func (p InputPolicy) String() string {
	switch p {
	case RepromptOnInvalid:
		return "reprompt"
	default:
		return "abort"
	}
}

// ParseInputPolicy accepts "abort" or "reprompt"
func ParseInputPolicy(s string) (InputPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return AbortOnInvalid, nil
	case "reprompt":
		return RepromptOnInvalid, nil
	default:
		return AbortOnInvalid, fmt.Errorf("invalid input policy %q (want abort or reprompt)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *InputPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseInputPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
