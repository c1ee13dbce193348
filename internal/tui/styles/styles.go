package styles

import "github.com/charmbracelet/lipgloss"

// Selector line styles. The selected segment is inverted relative to
// its neighbors; everything else stays as the terminal paints it.
var (
	Selected = lipgloss.NewStyle().Reverse(true)

	Unselected = lipgloss.NewStyle()
)
