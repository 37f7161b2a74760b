package writing

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ieltsprep/internal/ui/components"
	"github.com/abhisek/ieltsprep/internal/ui/layout"
	"github.com/abhisek/ieltsprep/internal/ui/theme"
	wr "github.com/abhisek/ieltsprep/internal/writing"
)

func (s *WritingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var parts []string
	parts = append(parts, renderTabs(s.task))
	parts = append(parts, components.Card(s.task.String(), theme.Body.Width(cw-4).Render(s.task.Prompt()), cw))

	status := s.renderStatus(cw)
	used := lipgloss.Height(strings.Join(parts, "\n")) + 1
	if status != "" {
		used += lipgloss.Height(status) + 1
	}
	remaining := max(height-used, 5)

	if s.feedback != nil && s.showFeedback {
		var body string
		body, s.scroll = components.Scroll(renderFeedback(s.feedback, cw), s.scroll, remaining)
		parts = append(parts, body)
	} else {
		parts = append(parts, s.input().View(cw, remaining))
	}
	if status != "" {
		parts = append(parts, status)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(parts, "\n"))
}

func (s *WritingScreen) renderStatus(cw int) string {
	switch {
	case s.loading:
		return theme.Hint.Render("Getting Feedback...")
	case s.errMsg != "":
		return components.ErrorBox(s.errMsg, cw)
	}
	return components.NewButton("Get Feedback", "Ctrl+S", true).View()
}

func renderTabs(active wr.Task) string {
	var tabs []string
	for _, t := range wr.Tasks() {
		if t == active {
			tabs = append(tabs, theme.TabActive.Render(t.String()))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderFeedback lays out the overall band and the four criterion rows.
func renderFeedback(fb *wr.Feedback, cw int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Your Feedback"))
	b.WriteString("\n\n")
	b.WriteString(components.NewBandBar("Overall Band Score", float64(fb.OverallBand), fb.OverallBand.String(), cw).View())
	b.WriteString("\n\n")

	for _, row := range fb.Criteria() {
		title := theme.Heading.Render(row.Title)
		score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(row.Score.String())
		gap := max(cw-4-lipgloss.Width(title)-lipgloss.Width(score), 1)
		head := title + strings.Repeat(" ", gap) + score
		b.WriteString(components.Card("", head+"\n"+layout.Wrap(row.Feedback, cw-4), cw))
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render(fmt.Sprintf("Corrected essay available (%d words): press Ctrl+E", wr.CountWords(fb.CorrectedEssay))))
	return b.String()
}
