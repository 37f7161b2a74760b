package speaking

import (
	"strings"

	"charm.land/lipgloss/v2"

	spk "github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/ui/components"
	"github.com/abhisek/ieltsprep/internal/ui/layout"
	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

func (s *SpeakingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(renderParts(s.part))
	b.WriteString("\n")
	b.WriteString(components.Card(s.prompt().PromptTopic(), renderPrompt(s.prompt(), cw-4), cw))
	b.WriteString("\n")
	b.WriteString(s.renderButtons())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(components.ErrorBox(s.errMsg, cw))
		b.WriteString("\n")
	}
	if s.loadingAnswer {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Generating a Band 9 sample answer..."))
		b.WriteString("\n")
	}
	if s.answer != "" {
		b.WriteString("\n")
		b.WriteString(components.Card("Sample Answer", layout.Wrap(s.answer, cw-4), cw))
	}

	var body string
	body, s.scroll = components.Scroll(b.String(), s.scroll, height)
	return lipgloss.NewStyle().Padding(0, 2).Render(body)
}

func renderParts(active spk.Part) string {
	var tabs []string
	for _, p := range spk.Prompts() {
		part := p.PromptPart()
		if part == active {
			tabs = append(tabs, theme.TabActive.Render(part.String()))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(part.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderPrompt shows each question on its own line and a cue card as
// written.
func renderPrompt(p spk.Prompt, width int) string {
	switch p := p.(type) {
	case spk.QuestionList:
		lines := make([]string, len(p.Questions))
		for i, q := range p.Questions {
			lines[i] = layout.Wrap(q, width)
		}
		return theme.Body.Render(strings.Join(lines, "\n"))
	case spk.CueCard:
		return theme.Body.Render(layout.Wrap(p.Card, width))
	}
	return ""
}

func (s *SpeakingScreen) renderButtons() string {
	hear := components.NewButton("Hear Question", "H", !s.speaking)
	if s.speaking {
		hear = components.NewButton("Speaking...", "", false)
	}
	sample := components.NewButton("Show Sample Answer", "A", !s.loadingAnswer)
	if s.loadingAnswer {
		sample = components.NewButton("Generating...", "", false)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, hear.View(), "  ", sample.View())
}
