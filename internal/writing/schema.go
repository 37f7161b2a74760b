package writing

import "github.com/abhisek/ieltsprep/internal/llm"

func bandProperty(description string) map[string]any {
	return map[string]any{
		"type":        "number",
		"description": description,
		"minimum":     float64(MinBand),
		"maximum":     float64(MaxBand),
	}
}

func criterionProperty(description string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": description,
		"properties": map[string]any{
			"score": bandProperty("Band score for this criterion from 1.0 to 9.0, in 0.5 increments."),
			"feedback": map[string]any{
				"type":        "string",
				"description": "Specific feedback on this criterion with examples from the essay.",
			},
		},
		"required": []any{"score", "feedback"},
	}
}

// FeedbackSchema is the structure the examiner model must return.
var FeedbackSchema = &llm.Schema{
	Name:        "writing-feedback",
	Description: "IELTS writing assessment with per-criterion bands, an overall band and a corrected essay",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallBand":       bandProperty("Overall band score from 1.0 to 9.0, in 0.5 increments."),
			"taskAchievement":   criterionProperty("Task Achievement / Response"),
			"coherenceCohesion": criterionProperty("Coherence and Cohesion"),
			"lexicalResource":   criterionProperty("Lexical Resource"),
			"grammaticalRange":  criterionProperty("Grammatical Range and Accuracy"),
			"correctedEssay": map[string]any{
				"type":        "string",
				"description": "The full essay with grammatical corrections and improvements.",
			},
		},
		"required": []any{
			"overallBand", "taskAchievement", "coherenceCohesion",
			"lexicalResource", "grammaticalRange", "correctedEssay",
		},
	},
}
