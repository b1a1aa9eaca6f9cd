package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/roshambo/internal/match"
)

// Styles contains styling for match output
type Styles struct {
	Title   lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Won     lipgloss.Style
	Lost    lipgloss.Style
	Drawn   lipgloss.Style
	Total   lipgloss.Style
	Winner  lipgloss.Style
	Border  lipgloss.Style
	Summary lipgloss.Style
}

// NewStyles creates styles bound to a renderer, so color detection follows
// the writer they are printed to.
func NewStyles(r *lipgloss.Renderer) *Styles {
	cell := r.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Header: cell.
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Cell: cell,
		Won: cell.
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Lost: cell.
			Foreground(lipgloss.Color("#FF6B6B")),
		Drawn: cell.
			Foreground(lipgloss.Color("#FFEAA7")),
		Total: cell.
			Bold(true),
		Winner: cell.
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Summary: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
	}
}

// sideStyle picks the highlight for one side of a round
func (s *Styles) sideStyle(side, winner match.Winner) lipgloss.Style {
	switch winner {
	case match.Draw:
		return s.Drawn
	case side:
		return s.Won
	default:
		return s.Lost
	}
}
