package console

import (
	"context"
	"fmt"

	"github.com/lox/roshambo/internal/rps"
)

// Player turns lines from a LineReader into throws
type Player struct {
	reader LineReader
}

// NewPlayer creates a human player reading from r
func NewPlayer(r LineReader) *Player {
	return &Player{reader: r}
}

// Choose reads one line and parses it. Parse failures come back as
// *rps.ParseError so the caller can decide whether to ask again.
func (p *Player) Choose(ctx context.Context) (rps.Choice, error) {
	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		return rps.Rock, fmt.Errorf("read choice: %w", err)
	}
	return rps.ParseChoice(line)
}
