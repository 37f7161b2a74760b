package speaking

import (
	"fmt"
	"strings"
)

// Part is an IELTS speaking test part.
type Part int

const (
	Part1 Part = iota + 1
	Part2
	Part3
)

func (p Part) String() string {
	return fmt.Sprintf("Part %d", int(p))
}

// ParsePart accepts "1", "part1" or "Part 1".
func ParsePart(s string) (Part, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	norm = strings.TrimPrefix(norm, "part")
	switch norm {
	case "1":
		return Part1, nil
	case "2":
		return Part2, nil
	case "3":
		return Part3, nil
	}
	return 0, fmt.Errorf("unknown speaking part %q", s)
}

// Prompt is a speaking prompt. It is either a QuestionList or a CueCard;
// the unexported method keeps the set closed.
type Prompt interface {
	PromptPart() Part
	PromptTopic() string
	isPrompt()
}

// QuestionList is a Part 1 or Part 3 prompt: a topic with follow-up questions.
type QuestionList struct {
	Part      Part
	Topic     string
	Questions []string
}

func (q QuestionList) PromptPart() Part    { return q.Part }
func (q QuestionList) PromptTopic() string { return q.Topic }
func (QuestionList) isPrompt()             {}

// CueCard is a Part 2 long-turn prompt.
type CueCard struct {
	Part  Part
	Topic string
	Card  string
}

func (c CueCard) PromptPart() Part    { return c.Part }
func (c CueCard) PromptTopic() string { return c.Topic }
func (CueCard) isPrompt()             {}

// Text returns the text that is spoken aloud and sent for a sample answer.
// Questions are joined by a single space; a cue card is used verbatim.
func Text(p Prompt) string {
	switch p := p.(type) {
	case QuestionList:
		return strings.Join(p.Questions, " ")
	case CueCard:
		return p.Card
	}
	panic(fmt.Sprintf("speaking: unknown prompt type %T", p))
}

var prompts = []Prompt{
	QuestionList{
		Part:  Part1,
		Topic: "Hometown",
		Questions: []string{
			"Let's talk about your hometown. Where is your hometown?",
			"What do you like most about your hometown?",
			"Is there anything you dislike about it?",
			"How has your hometown changed over the years?",
		},
	},
	CueCard{
		Part:  Part2,
		Topic: "Describe a memorable journey",
		Card:  "Describe a memorable journey you have taken. You should say:\n- where you went\n- who you were with\n- what you did\n- and explain why it was so memorable.",
	},
	QuestionList{
		Part:  Part3,
		Topic: "Travel and Tourism",
		Questions: []string{
			"What are the benefits of travelling to different places?",
			"Do you think it's better to travel alone or with others? Why?",
			"How has tourism affected your country?",
			"What are the potential negative impacts of tourism on the environment and local culture?",
		},
	},
}

// Prompts returns the three speaking prompts in part order.
func Prompts() []Prompt {
	out := make([]Prompt, len(prompts))
	copy(out, prompts)
	return out
}

// PromptFor returns the prompt for part.
func PromptFor(part Part) (Prompt, bool) {
	for _, p := range prompts {
		if p.PromptPart() == part {
			return p, true
		}
	}
	return nil, false
}
