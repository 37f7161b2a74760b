package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

// BandBar draws a band score as a bar over the 0 to 9 scale, with the
// label on the left and the formatted score on the right.
type BandBar struct {
	Label   string
	Band    float64
	Display string
	Width   int
}

func NewBandBar(label string, band float64, display string, width int) BandBar {
	return BandBar{Label: label, Band: band, Display: display, Width: width}
}

func (p BandBar) View() string {
	var left, right string
	if p.Label != "" {
		left = theme.Body.Render(p.Label) + "  "
	}
	if p.Display != "" {
		right = "  " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(p.Display)
	}

	track := max(p.Width-lipgloss.Width(left)-lipgloss.Width(right), 4)
	fill := min(max(int(float64(track)*p.Band/9), 0), track)

	return left +
		theme.ProgressFilled.Render(strings.Repeat(" ", fill)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", track-fill)) +
		right
}
