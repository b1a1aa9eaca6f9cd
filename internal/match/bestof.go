// Package match tracks a best-of-N rock-paper-scissors match: the validated
// round target, the running score, and when the match may stop.
package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultRounds is the round count used when none is configured
const DefaultRounds = 5

// ErrInvalidRoundCount is matched by every RoundCountError
var ErrInvalidRoundCount = errors.New("invalid round count")

// RoundCountError rejects a best-of value that is even or too small
type RoundCountError struct {
	Rounds int
}

func (e *RoundCountError) Error() string {
	return fmt.Sprintf("invalid round count %d: must be odd and greater than 2", e.Rounds)
}

// Is makes errors.Is(err, ErrInvalidRoundCount) hold
func (e *RoundCountError) Is(target error) bool {
	return target == ErrInvalidRoundCount
}

// BestOf is the validated number of rounds in a match. An odd target
// guarantees a match played to completion cannot end level.
// The zero value behaves as DefaultBestOf.
type BestOf struct {
	n int
}

// NewBestOf validates n. It must be odd and greater than 2, so single-round
// matches are not allowed.
func NewBestOf(n int) (BestOf, error) {
	if n%2 == 0 || n <= 2 {
		return BestOf{}, &RoundCountError{Rounds: n}
	}
	return BestOf{n: n}, nil
}

// DefaultBestOf returns a best-of-5
func DefaultBestOf() BestOf {
	return BestOf{n: DefaultRounds}
}

// ParseBestOf parses a decimal round count and validates it
func ParseBestOf(s string) (BestOf, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return BestOf{}, fmt.Errorf("could not parse round count %q: %w", s, err)
	}
	return NewBestOf(n)
}

// UnmarshalText implements encoding.TextUnmarshaler so flags and config
// files can decode straight into a BestOf.
func (b *BestOf) UnmarshalText(text []byte) error {
	parsed, err := ParseBestOf(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// IsZero reports whether b was never set
func (b BestOf) IsZero() bool {
	return b.n == 0
}

// Rounds returns N
func (b BestOf) Rounds() int {
	if b.n == 0 {
		return DefaultRounds
	}
	return b.n
}

// Majority returns the points needed to clinch the match
func (b BestOf) Majority() int {
	return b.Rounds()/2 + 1
}

func (b BestOf) String() string {
	return fmt.Sprintf("best of %d", b.Rounds())
}
