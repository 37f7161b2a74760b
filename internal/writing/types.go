package writing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Band is an IELTS band score, 1.0 to 9.0 in half-band steps.
type Band float64

const (
	MinBand Band = 1.0
	MaxBand Band = 9.0
)

// String formats the band with one decimal ("6.5", "7.0").
func (b Band) String() string {
	return strconv.FormatFloat(float64(b), 'f', 1, 64)
}

// Valid reports whether b lies within the band scale.
func (b Band) Valid() bool {
	return b >= MinBand && b <= MaxBand
}

// Rounded snaps b to the nearest half band.
func (b Band) Rounded() Band {
	return Band(math.Round(float64(b)*2) / 2)
}

// Criterion is the score and commentary for one assessment criterion.
type Criterion struct {
	Score    Band   `json:"score"`
	Feedback string `json:"feedback"`
}

// Feedback is the examiner's assessment of one essay.
type Feedback struct {
	OverallBand       Band      `json:"overallBand"`
	TaskAchievement   Criterion `json:"taskAchievement"`
	CoherenceCohesion Criterion `json:"coherenceCohesion"`
	LexicalResource   Criterion `json:"lexicalResource"`
	GrammaticalRange  Criterion `json:"grammaticalRange"`
	CorrectedEssay    string    `json:"correctedEssay"`
}

// CriterionRow is one line of the rendered score breakdown.
type CriterionRow struct {
	Title    string
	Score    Band
	Feedback string
}

// Criteria returns the four assessment criteria in display order.
func (f *Feedback) Criteria() []CriterionRow {
	return []CriterionRow{
		{Title: "Task Achievement / Response", Score: f.TaskAchievement.Score, Feedback: f.TaskAchievement.Feedback},
		{Title: "Coherence and Cohesion", Score: f.CoherenceCohesion.Score, Feedback: f.CoherenceCohesion.Feedback},
		{Title: "Lexical Resource", Score: f.LexicalResource.Score, Feedback: f.LexicalResource.Feedback},
		{Title: "Grammatical Range and Accuracy", Score: f.GrammaticalRange.Score, Feedback: f.GrammaticalRange.Feedback},
	}
}

// normalize checks every band is on the scale and snaps it to a half band.
func (f *Feedback) normalize() error {
	bands := []*Band{
		&f.OverallBand,
		&f.TaskAchievement.Score,
		&f.CoherenceCohesion.Score,
		&f.LexicalResource.Score,
		&f.GrammaticalRange.Score,
	}
	for _, b := range bands {
		if !b.Valid() {
			return fmt.Errorf("band %s out of range [%s, %s]", b.String(), MinBand, MaxBand)
		}
		*b = b.Rounded()
	}
	return nil
}

var (
	// ErrEssayTooShort is returned before any request is made when the essay
	// has fewer than MinWords words.
	ErrEssayTooShort = errors.New("Please write a more complete essay (at least 50 words) to get effective feedback.")

	// ErrFeedbackFailed wraps every failure to obtain or parse feedback.
	ErrFeedbackFailed = errors.New("Failed to get feedback from AI. Please check your API key and try again.")
)

// FeedbackError carries the underlying cause of ErrFeedbackFailed.
type FeedbackError struct {
	Err error
}

func (e *FeedbackError) Error() string {
	return fmt.Sprintf("%s (%v)", ErrFeedbackFailed.Error(), e.Err)
}

func (e *FeedbackError) Is(target error) bool { return target == ErrFeedbackFailed }

func (e *FeedbackError) Unwrap() error { return e.Err }
