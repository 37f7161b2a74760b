package writing

import "fmt"

func systemPrompt(task Task) string {
	return fmt.Sprintf(`You are an expert IELTS examiner. Evaluate the following %s essay based on the official IELTS writing assessment criteria. Provide a detailed breakdown of the score for each of the four criteria (Task Achievement/Response, Coherence and Cohesion, Lexical Resource, Grammatical Range and Accuracy), specific feedback for each, an overall band score, and a corrected version of the essay. The response must be in JSON format.`, task)
}

func userMessage(prompt, essay string) string {
	return fmt.Sprintf("Prompt: \"%s\"\n\nEssay:\n\"%s\"", prompt, essay)
}
