package reading

import (
	"fmt"
	"maps"
)

// OptionState is how an option is highlighted once answers are checked.
type OptionState int

const (
	OptionNeutral OptionState = iota
	OptionCorrect
	OptionWrong
)

// Quiz tracks the candidate's answers to a passage. The passage itself is
// never modified.
type Quiz struct {
	passage   Passage
	answers   map[int]int
	submitted bool
}

// NewQuiz starts an unanswered quiz over p.
func NewQuiz(p Passage) *Quiz {
	return &Quiz{passage: p, answers: make(map[int]int)}
}

// Passage returns the quiz passage.
func (q *Quiz) Passage() Passage { return q.passage }

// Len returns the number of questions.
func (q *Quiz) Len() int { return len(q.passage.Questions) }

// Select records option as the answer to question, replacing any earlier
// choice, and returns the quiz to the unsubmitted state.
func (q *Quiz) Select(question, option int) error {
	if question < 0 || question >= q.Len() {
		return fmt.Errorf("question %d out of range", question)
	}
	if option < 0 || option >= len(q.passage.Questions[question].Options) {
		return fmt.Errorf("option %d out of range for question %d", option, question)
	}
	q.answers[question] = option
	q.submitted = false
	return nil
}

// Selected returns the chosen option for question, if any.
func (q *Quiz) Selected(question int) (int, bool) {
	o, ok := q.answers[question]
	return o, ok
}

// Answers returns a copy of the current selections.
func (q *Quiz) Answers() map[int]int {
	return maps.Clone(q.answers)
}

// Submit marks the answers as checked.
func (q *Quiz) Submit() { q.submitted = true }

// Submitted reports whether answers have been checked since the last change.
func (q *Quiz) Submitted() bool { return q.submitted }

// Score counts the questions answered correctly.
func (q *Quiz) Score() int {
	n := 0
	for i, question := range q.passage.Questions {
		if o, ok := q.answers[i]; ok && o == question.Answer {
			n++
		}
	}
	return n
}

// Result formats the score as "N / M".
func (q *Quiz) Result() string {
	return fmt.Sprintf("%d / %d", q.Score(), q.Len())
}

// OptionState reports the highlight for an option. Before submission every
// option is neutral. After it, the correct option is always marked and a
// wrong pick is flagged.
func (q *Quiz) OptionState(question, option int) OptionState {
	if !q.submitted || question < 0 || question >= q.Len() {
		return OptionNeutral
	}
	if option == q.passage.Questions[question].Answer {
		return OptionCorrect
	}
	if o, ok := q.answers[question]; ok && o == option {
		return OptionWrong
	}
	return OptionNeutral
}
