// Package theme holds the palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette: Tailwind blues and grays, which stay readable through a long
// essay.
var (
	Primary = lipgloss.Color("#2563EB")
	Sky     = lipgloss.Color("#0EA5E9")
	Accent  = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	Red     = lipgloss.Color("#EF4444")

	Text    = lipgloss.Color("#F3F4F6")
	TextDim = lipgloss.Color("#9CA3AF")
	BgCard  = lipgloss.Color("#1F2937")
	Border  = lipgloss.Color("#374151")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	Title   = fg(Primary).Bold(true)
	Heading = fg(Text).Bold(true)
	Body    = fg(Text)
	Dim     = fg(TextDim)
	Hint    = fg(TextDim).Italic(true)

	Selected  = fg(Primary).Bold(true)
	Correct   = fg(Green).Bold(true)
	Incorrect = fg(Red).Bold(true)
)

var (
	Card      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)
	ErrorCard = Card.BorderForeground(Red).Foreground(Red)

	TabActive   = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(Text).Background(Primary)
	TabInactive = lipgloss.NewStyle().Padding(0, 2).Foreground(TextDim)

	ButtonActive   = TabActive
	ButtonInactive = TabInactive.Border(lipgloss.RoundedBorder()).BorderForeground(Border)

	ProgressFilled = lipgloss.NewStyle().Background(Sky)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
