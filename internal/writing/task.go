package writing

import (
	"fmt"
	"strings"
)

// Task identifies one of the two IELTS writing tasks.
type Task int

const (
	Task1 Task = iota + 1
	Task2
)

// Tasks returns every task in tab order.
func Tasks() []Task {
	return []Task{Task1, Task2}
}

// String returns the label shown on the task tab ("Task 1").
func (t Task) String() string {
	switch t {
	case Task1:
		return "Task 1"
	case Task2:
		return "Task 2"
	}
	return fmt.Sprintf("Task(%d)", int(t))
}

// Next returns the following tab, wrapping around.
func (t Task) Next() Task {
	if t == Task1 {
		return Task2
	}
	return Task1
}

// Key is the stable identifier used in storage and the HTTP API.
func (t Task) Key() string {
	switch t {
	case Task1:
		return "task1"
	case Task2:
		return "task2"
	}
	return ""
}

// Prompt returns the question the candidate answers for this task.
func (t Task) Prompt() string {
	switch t {
	case Task1:
		return task1Prompt
	case Task2:
		return task2Prompt
	}
	return ""
}

// ParseTask accepts "1", "task1", "Task 1" and similar spellings.
func ParseTask(s string) (Task, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch norm {
	case "1", "task1":
		return Task1, nil
	case "2", "task2":
		return Task2, nil
	}
	return 0, fmt.Errorf("unknown writing task %q", s)
}

const task1Prompt = `The chart below shows the changes in the proportion of the population who owned a smartphone in six countries from 2015 to 2020. Summarise the information by selecting and reporting the main features, and make comparisons where relevant.`

const task2Prompt = `Some people believe that unpaid community service should be a compulsory part of high school programmes. To what extent do you agree or disagree? Give reasons for your answer and include any relevant examples from your own knowledge or experience.`

// MinWords is the shortest essay that is sent for grading.
const MinWords = 50

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
