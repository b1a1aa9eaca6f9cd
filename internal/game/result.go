package game

import (
	"time"

	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/rps"
)

// Round is one resolved round, human first
type Round struct {
	Number   int
	Human    rps.Choice
	Computer rps.Choice
	Outcome  rps.Outcome
}

// Winner returns the side that took the round
func (r Round) Winner() match.Winner {
	return match.WinnerOf(r.Outcome)
}

// Result summarises a finished match
type Result struct {
	MatchID        string
	BestOf         int
	Rounds         []Round
	HumanPoints    int
	ComputerPoints int
	Winner         match.Winner
	Clinched       bool // ended before all rounds were played
	Duration       time.Duration
}

// Played returns the number of rounds played
func (r *Result) Played() int {
	return len(r.Rounds)
}
