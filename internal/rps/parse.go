package rps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedChoice is matched by every ParseError
var ErrUnrecognizedChoice = errors.New("unrecognized choice")

// ParseError reports console input that is not a throw
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized choice %q: type rock (r), paper (p) or scissors (s)", e.Input)
}

// Is makes errors.Is(err, ErrUnrecognizedChoice) hold
func (e *ParseError) Is(target error) bool {
	return target == ErrUnrecognizedChoice
}

var choiceNames = map[string]Choice{
	"rock":     Rock,
	"r":        Rock,
	"paper":    Paper,
	"p":        Paper,
	"scissors": Scissors,
	"s":        Scissors,
}

// ParseChoice converts a line of user input into a Choice.
// Surrounding whitespace, including line terminators, is ignored and
// matching is case-insensitive.
func ParseChoice(s string) (Choice, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := choiceNames[key]; ok {
		return c, nil
	}
	return Rock, &ParseError{Input: strings.TrimRight(s, "\r\n")}
}
