package rps

// Source is the randomness a Chooser draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Chooser picks a uniformly random throw for the computer
type Chooser struct {
	rng Source
}

// NewChooser creates a chooser backed by rng
func NewChooser(rng Source) *Chooser {
	return &Chooser{rng: rng}
}

// Choose returns the next throw. Each call is independent of the last.
func (c *Chooser) Choose() Choice {
	return Choices[c.rng.IntN(len(Choices))]
}
