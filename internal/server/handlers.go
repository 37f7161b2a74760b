package server

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/ieltsprep/internal/listening"
	"github.com/abhisek/ieltsprep/internal/reading"
	"github.com/abhisek/ieltsprep/internal/section"
	"github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/speech"
	"github.com/abhisek/ieltsprep/internal/writing"
)

func (s *Server) routes() {
	s.app.Get("/sections", s.sections)

	w := s.app.Group("/writing")
	w.Get("/tasks", s.writingTasks)
	w.Post("/feedback", s.writingFeedback)

	sp := s.app.Group("/speaking")
	sp.Get("/prompts", s.speakingPrompts)
	sp.Post("/sample", s.speakingSample)
	sp.Post("/audio", s.speakingAudio)

	s.app.Get("/reading/quiz", s.readingQuiz)
	s.app.Post("/reading/quiz/score", s.readingScore)

	s.app.Get("/listening", s.listening)
}

type sectionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (s *Server) sections(c *fiber.Ctx) error {
	out := make([]sectionDTO, 0, len(section.All()))
	for _, sec := range section.All() {
		out = append(out, sectionDTO{ID: sec.String(), Label: sec.Label()})
	}
	return s.ok(c, "Sections", out)
}

type taskDTO struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

func (s *Server) writingTasks(c *fiber.Ctx) error {
	out := make([]taskDTO, 0, len(writing.Tasks()))
	for _, t := range writing.Tasks() {
		out = append(out, taskDTO{ID: t.Key(), Label: t.String(), Prompt: t.Prompt()})
	}
	return s.ok(c, "Writing tasks", out)
}

type feedbackRequest struct {
	Task  string `json:"task"`
	Essay string `json:"essay"`
}

func (s *Server) writingFeedback(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	task, err := writing.ParseTask(req.Task)
	if err != nil {
		return s.fail(c, fiber.StatusBadRequest, "Unknown writing task", err)
	}

	fb, err := s.deps.Evaluator.Evaluate(c.UserContext(), task, req.Essay)
	switch {
	case errors.Is(err, writing.ErrEssayTooShort):
		return s.fail(c, fiber.StatusUnprocessableEntity, writing.UserMessage(err), err)
	case err != nil:
		return s.fail(c, fiber.StatusBadGateway, writing.UserMessage(err), err)
	}
	return s.ok(c, "Feedback", fb)
}

type promptDTO struct {
	Part      int      `json:"part"`
	Label     string   `json:"label"`
	Kind      string   `json:"kind"`
	Topic     string   `json:"topic"`
	Questions []string `json:"questions,omitempty"`
	CueCard   string   `json:"cueCard,omitempty"`
	Text      string   `json:"text"`
}

func toPromptDTO(p speaking.Prompt) promptDTO {
	dto := promptDTO{
		Part:  int(p.PromptPart()),
		Label: p.PromptPart().String(),
		Topic: p.PromptTopic(),
		Text:  speaking.Text(p),
	}
	switch p := p.(type) {
	case speaking.QuestionList:
		dto.Kind = "questions"
		dto.Questions = p.Questions
	case speaking.CueCard:
		dto.Kind = "cue_card"
		dto.CueCard = p.Card
	}
	return dto
}

func (s *Server) speakingPrompts(c *fiber.Ctx) error {
	prompts := speaking.Prompts()
	out := make([]promptDTO, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, toPromptDTO(p))
	}
	return s.ok(c, "Speaking prompts", out)
}

type speakingRequest struct {
	Part int    `json:"part"`
	Text string `json:"text"`
}

func (s *Server) promptFromRequest(c *fiber.Ctx) (speakingRequest, speaking.Prompt, error) {
	var req speakingRequest
	if err := c.BodyParser(&req); err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Text != "" {
		return req, nil, nil
	}
	p, ok := speaking.PromptFor(speaking.Part(req.Part))
	if !ok {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "Unknown speaking part")
	}
	return req, p, nil
}

func (s *Server) speakingSample(c *fiber.Ctx) error {
	_, p, err := s.promptFromRequest(c)
	if err != nil {
		return err
	}
	if p == nil {
		return fiber.NewError(fiber.StatusBadRequest, "part is required")
	}

	answer, err := s.deps.Samples.SampleAnswer(c.UserContext(), p)
	if err != nil {
		return s.fail(c, fiber.StatusBadGateway, speaking.ErrSampleFailed.Error(), err)
	}
	return s.ok(c, "Sample answer", fiber.Map{"answer": answer})
}

func (s *Server) speakingAudio(c *fiber.Ctx) error {
	req, p, err := s.promptFromRequest(c)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(req.Text)
	if p != nil {
		text = speaking.Text(p)
	}
	if text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	if s.deps.Synth == nil {
		return s.fail(c, fiber.StatusServiceUnavailable, speech.ErrNoAudio.Error(), nil)
	}
	pcm, err := s.deps.Synth.Synthesize(c.UserContext(), text)
	if err == nil && len(pcm) == 0 {
		err = speech.ErrNoAudio
	}
	if err != nil {
		return s.fail(c, fiber.StatusBadGateway, speech.UserMessage(err), err)
	}
	wav, err := speech.EncodeWAV(pcm, s.deps.Synth.Format())
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, speech.ErrPlaybackFailed.Error(), err)
	}

	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Send(wav)
}

func (s *Server) readingQuiz(c *fiber.Ctx) error {
	return s.ok(c, "Reading quiz", reading.AIPassage)
}

type scoreRequest struct {
	Answers map[string]int `json:"answers"`
}

func (s *Server) readingScore(c *fiber.Ctx) error {
	var req scoreRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	quiz := reading.NewQuiz(reading.AIPassage)
	for k, option := range req.Answers {
		q, err := strconv.Atoi(k)
		if err != nil {
			return s.fail(c, fiber.StatusBadRequest, "Question keys must be indexes", err)
		}
		if err := quiz.Select(q, option); err != nil {
			return s.fail(c, fiber.StatusBadRequest, err.Error(), err)
		}
	}
	quiz.Submit()

	return s.ok(c, "Score", fiber.Map{
		"score":  quiz.Score(),
		"total":  quiz.Len(),
		"result": quiz.Result(),
	})
}

func (s *Server) listening(c *fiber.Ctx) error {
	return s.ok(c, listening.Title, fiber.Map{
		"title":   listening.Title,
		"message": listening.Message,
	})
}
