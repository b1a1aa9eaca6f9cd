// Package game drives a rock-paper-scissors match round by round.
//
// A Game pairs two Players, the human first and the computer second, and
// plays until the match is over:
//
//	g := game.New(human, game.Computer(rps.NewChooser(rng)), game.Options{
//	    BestOf:            bestOf,
//	    StopEarlyOnClinch: true,
//	    Display:           display.NewConsole(os.Stdout),
//	})
//	result, err := g.Play(ctx)
//
// Each round collects the human choice, then the computer choice, compares
// them, records the outcome on the match.State and notifies the Display.
// The loop is strictly sequential and owns the only reference to the state.
//
// # Invalid Input
//
// By default an unrecognized human choice aborts the match and Play returns
// an error wrapping the *rps.ParseError. With RepromptOnInvalid the Display
// is told about the bad input and the human is asked again. Read failures
// always abort.
package game
