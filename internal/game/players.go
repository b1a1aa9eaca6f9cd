package game

import (
	"context"

	"github.com/lox/roshambo/internal/rps"
)

// Player supplies one throw per round
type Player interface {
	Choose(ctx context.Context) (rps.Choice, error)
}

// PlayerFunc adapts a function into a Player
type PlayerFunc func(ctx context.Context) (rps.Choice, error)

// Choose calls f
func (f PlayerFunc) Choose(ctx context.Context) (rps.Choice, error) {
	return f(ctx)
}

// Computer wraps a random chooser as a Player
func Computer(chooser *rps.Chooser) Player {
	return PlayerFunc(func(context.Context) (rps.Choice, error) {
		return chooser.Choose(), nil
	})
}
