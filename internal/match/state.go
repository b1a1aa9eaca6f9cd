package match

import "github.com/lox/roshambo/internal/rps"

// Winner identifies who took a round or the match
type Winner int

const (
	Draw Winner = iota
	Human
	Computer
)

// String returns the label shown in the score table
func (w Winner) String() string {
	switch w {
	case Human:
		return "Human"
	case Computer:
		return "Computer"
	default:
		return "Draw"
	}
}

// WinnerOf maps a round outcome, human first, onto the winning side
func WinnerOf(o rps.Outcome) Winner {
	switch o {
	case rps.FirstWins:
		return Human
	case rps.SecondWins:
		return Computer
	default:
		return Draw
	}
}

// State accumulates the score of one match. It has a single writer, the
// loop that plays the match; everyone else reads Standings.
type State struct {
	bestOf         BestOf
	humanPoints    int
	computerPoints int
	round          int
}

// New starts a match at round 1 with no points
func New(bestOf BestOf) *State {
	if bestOf.IsZero() {
		bestOf = DefaultBestOf()
	}
	return &State{bestOf: bestOf, round: 1}
}

// Record scores one finished round, human first, and advances the round.
// It must be called exactly once per round.
func (s *State) Record(o rps.Outcome) {
	switch WinnerOf(o) {
	case Human:
		s.humanPoints++
	case Computer:
		s.computerPoints++
	}
	s.round++
}

// Round returns the number of the round about to be played
func (s *State) Round() int { return s.round }

// Played returns how many rounds have been recorded
func (s *State) Played() int { return s.round - 1 }

// HumanPoints returns the rounds won by the human
func (s *State) HumanPoints() int { return s.humanPoints }

// ComputerPoints returns the rounds won by the computer
func (s *State) ComputerPoints() int { return s.computerPoints }

// BestOf returns the round target of the match
func (s *State) BestOf() BestOf { return s.bestOf }

// CanEndEarly reports whether either side holds a majority of N, after which
// the other side can no longer catch up.
func (s *State) CanEndEarly() bool {
	majority := s.bestOf.Majority()
	return s.humanPoints >= majority || s.computerPoints >= majority
}

// Complete reports whether all N rounds have been played
func (s *State) Complete() bool {
	return s.Played() >= s.bestOf.Rounds()
}

// Over reports whether the loop should stop. Clinching only ends the match
// when stopEarlyOnClinch is set.
func (s *State) Over(stopEarlyOnClinch bool) bool {
	return s.Complete() || (stopEarlyOnClinch && s.CanEndEarly())
}

// Winner compares the points as they stand. A level score is a Draw.
func (s *State) Winner() Winner {
	switch {
	case s.humanPoints > s.computerPoints:
		return Human
	case s.computerPoints > s.humanPoints:
		return Computer
	default:
		return Draw
	}
}

// Standings is a copy of the score for display and logging
type Standings struct {
	Round          int
	Played         int
	BestOf         int
	HumanPoints    int
	ComputerPoints int
	Winner         Winner
}

// Standings returns a snapshot of the current score
func (s *State) Standings() Standings {
	return Standings{
		Round:          s.round,
		Played:         s.Played(),
		BestOf:         s.bestOf.Rounds(),
		HumanPoints:    s.humanPoints,
		ComputerPoints: s.computerPoints,
		Winner:         s.Winner(),
	}
}
