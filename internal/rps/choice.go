package rps

// Choice represents a throw
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

// Choices lists every throw in index order.
var Choices = [...]Choice{Rock, Paper, Scissors}

// String returns the display label of a choice
func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the three throws
func (c Choice) Valid() bool {
	return c >= Rock && c <= Scissors
}

// Beats reports whether c defeats other
func (c Choice) Beats(other Choice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	default:
		return false
	}
}

// Outcome is the result of comparing two choices
type Outcome int

const (
	Draw Outcome = iota
	FirstWins
	SecondWins
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	default:
		return "unknown"
	}
}

// Invert returns the outcome seen from the other side
func (o Outcome) Invert() Outcome {
	switch o {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return o
	}
}

// Compare decides the round between a and b.
func Compare(a, b Choice) Outcome {
	switch {
	case a.Beats(b):
		return FirstWins
	case b.Beats(a):
		return SecondWins
	default:
		return Draw
	}
}
