// Package statistics aggregates the results of many simulated matches.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/rps"
)

// chiSquareCritical95 is the 95th percentile of chi-square with 2 degrees
// of freedom, the test for three equally likely choices.
const chiSquareCritical95 = 5.991

// Statistics tracks match outcomes, match lengths and choice frequencies
type Statistics struct {
	Matches      int
	HumanWins    int
	ComputerWins int
	Draws        int
	Clinched     int // matches that stopped before the last round

	SumRounds  float64
	SumRounds2 float64     // Sum of squares for variance calculation
	Lengths    map[int]int // rounds played -> matches

	RoundWins       [3]int // indexed by match.Winner
	HumanChoices    [3]int // indexed by rps.Choice
	ComputerChoices [3]int
}

// New returns empty statistics
func New() *Statistics {
	return &Statistics{Lengths: make(map[int]int)}
}

// Add incorporates a finished match
func (s *Statistics) Add(result *game.Result) {
	if s.Lengths == nil {
		s.Lengths = make(map[int]int)
	}

	s.Matches++
	switch result.Winner {
	case match.Human:
		s.HumanWins++
	case match.Computer:
		s.ComputerWins++
	default:
		s.Draws++
	}
	if result.Clinched {
		s.Clinched++
	}

	played := float64(result.Played())
	s.SumRounds += played
	s.SumRounds2 += played * played
	s.Lengths[result.Played()]++

	for _, r := range result.Rounds {
		s.RoundWins[r.Winner()]++
		s.HumanChoices[r.Human]++
		s.ComputerChoices[r.Computer]++
	}
}

// Merge folds other into s. Workers keep their own Statistics and merge
// once they are done.
func (s *Statistics) Merge(other *Statistics) {
	if s.Lengths == nil {
		s.Lengths = make(map[int]int)
	}
	s.Matches += other.Matches
	s.HumanWins += other.HumanWins
	s.ComputerWins += other.ComputerWins
	s.Draws += other.Draws
	s.Clinched += other.Clinched
	s.SumRounds += other.SumRounds
	s.SumRounds2 += other.SumRounds2
	for length, n := range other.Lengths {
		s.Lengths[length] += n
	}
	for i := range s.RoundWins {
		s.RoundWins[i] += other.RoundWins[i]
		s.HumanChoices[i] += other.HumanChoices[i]
		s.ComputerChoices[i] += other.ComputerChoices[i]
	}
}

// Rounds returns the total number of rounds played
func (s *Statistics) Rounds() int {
	return s.RoundWins[match.Draw] + s.RoundWins[match.Human] + s.RoundWins[match.Computer]
}

// WinRate returns the share of matches won by w (or drawn)
func (s *Statistics) WinRate(w match.Winner) float64 {
	if s.Matches == 0 {
		return 0
	}
	switch w {
	case match.Human:
		return float64(s.HumanWins) / float64(s.Matches)
	case match.Computer:
		return float64(s.ComputerWins) / float64(s.Matches)
	default:
		return float64(s.Draws) / float64(s.Matches)
	}
}

// Mean returns the average number of rounds per match
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Matches)
}

// Variance returns the sample variance of match length
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumRounds2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of match length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median match length
func (s *Statistics) Median() float64 {
	if s.Matches == 0 {
		return 0
	}
	lengths := make([]int, 0, len(s.Lengths))
	for length := range s.Lengths {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	at := func(idx int) int {
		seen := 0
		for _, length := range lengths {
			seen += s.Lengths[length]
			if idx < seen {
				return length
			}
		}
		return lengths[len(lengths)-1]
	}

	n := s.Matches
	if n%2 == 0 {
		return float64(at(n/2-1)+at(n/2)) / 2
	}
	return float64(at(n / 2))
}

// ChiSquare returns Pearson's chi-square statistic of counts against a
// uniform distribution over the three choices.
func ChiSquare(counts [3]int) float64 {
	total := counts[0] + counts[1] + counts[2]
	if total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(counts))
	var chi float64
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// LooksUniform reports whether counts pass the chi-square test at 95%
func LooksUniform(counts [3]int) bool {
	return ChiSquare(counts) < chiSquareCritical95
}

// ChoiceShare returns the fraction of a side's throws that were c
func ChoiceShare(counts [3]int, c rps.Choice) float64 {
	total := counts[0] + counts[1] + counts[2]
	if total == 0 || !c.Valid() {
		return 0
	}
	return float64(counts[c]) / float64(total)
}

// Validate checks the tallies agree with each other
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid matches count: %d", s.Matches)
	}

	if s.HumanWins+s.ComputerWins+s.Draws != s.Matches {
		return fmt.Errorf("match winners (%d+%d+%d) do not add up to %d matches",
			s.HumanWins, s.ComputerWins, s.Draws, s.Matches)
	}

	if s.Clinched > s.Matches {
		return fmt.Errorf("clinched matches (%d) exceed total matches (%d)", s.Clinched, s.Matches)
	}

	lengthMatches, lengthRounds := 0, 0
	for length, n := range s.Lengths {
		lengthMatches += n
		lengthRounds += length * n
	}
	if lengthMatches != s.Matches {
		return fmt.Errorf("length histogram covers %d matches, want %d", lengthMatches, s.Matches)
	}

	rounds := s.Rounds()
	if lengthRounds != rounds {
		return fmt.Errorf("length histogram covers %d rounds, round tallies have %d", lengthRounds, rounds)
	}

	humanThrows := s.HumanChoices[0] + s.HumanChoices[1] + s.HumanChoices[2]
	computerThrows := s.ComputerChoices[0] + s.ComputerChoices[1] + s.ComputerChoices[2]
	if humanThrows != rounds || computerThrows != rounds {
		return fmt.Errorf("throw counts (%d, %d) do not match %d rounds", humanThrows, computerThrows, rounds)
	}

	return nil
}
