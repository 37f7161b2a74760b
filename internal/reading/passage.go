package reading

// Question is a multiple-choice question with exactly one correct option.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  int      `json:"-"`
}

// Passage is a reading text and its questions.
type Passage struct {
	Title     string     `json:"title"`
	Text      string     `json:"text"`
	Questions []Question `json:"questions"`
}

// AIPassage is the built-in practice passage.
var AIPassage = Passage{
	Title: "The Rise of Artificial Intelligence",
	Text:  "Artificial intelligence (AI) is rapidly transforming our world. From automating mundane tasks to powering complex algorithms that can diagnose diseases, AI's influence is widespread and growing. One of the key drivers of this revolution is machine learning, a subset of AI where systems learn from data, identify patterns, and make decisions with minimal human intervention. This technology underpins everything from recommendation engines on streaming services to the development of self-driving cars. However, the rapid advancement of AI also raises important ethical questions. Concerns about job displacement, algorithmic bias, and data privacy are paramount. As we continue to integrate AI into society, it is crucial to establish robust frameworks for governance and ethical oversight to ensure that these powerful tools are used responsibly and for the benefit of all humanity.",
	Questions: []Question{
		{
			Text:    "What is a key driver of the AI revolution mentioned in the text?",
			Options: []string{"Data privacy", "Ethical oversight", "Machine learning", "Job displacement"},
			Answer:  2,
		},
		{
			Text:    "Which of the following is NOT listed as a concern related to AI?",
			Options: []string{"Algorithmic bias", "Improved streaming recommendations", "Data privacy", "Job displacement"},
			Answer:  1,
		},
		{
			Text:    "According to the passage, what is necessary to ensure AI is used responsibly?",
			Options: []string{"Slowing down AI development", "Limiting AI to specific industries", "Governance and ethical oversight", "Minimal human intervention"},
			Answer:  2,
		},
	},
}
