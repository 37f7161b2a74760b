package writing

import (
	wr "github.com/abhisek/ieltsprep/internal/writing"
)

// feedbackMsg is sent when a grading request finishes. RequestID ties the
// result to the submission that started it.
type feedbackMsg struct {
	RequestID string
	Task      wr.Task
	Feedback  *wr.Feedback
	Err       error
}
