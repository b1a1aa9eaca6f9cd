// Package rps implements the rock-paper-scissors choice domain.
//
// A Choice is one of three symmetric values. Compare resolves a pair of
// choices into an Outcome using the fixed cycle:
//
//	Rock beats Scissors
//	Scissors beats Paper
//	Paper beats Rock
//
// The relation is deliberately non-transitive, so Choice has no ordering.
//
// # Input and randomness
//
// ParseChoice turns console text into a Choice and never panics; bad input
// yields a *ParseError. Chooser produces uniformly random choices from an
// injected source so tests can use a fixed seed:
//
//	rng := randutil.New(42)
//	c := rps.NewChooser(rng)
//	choice := c.Choose()
package rps
