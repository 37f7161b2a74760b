package server

import (
	"github.com/gofiber/fiber/v2"
)

type successBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorBody struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
}

func (s *Server) ok(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(successBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// fail writes the error envelope. cause is only exposed with DevErrors.
func (s *Server) fail(c *fiber.Ctx, code int, message string, cause error) error {
	body := errorBody{Message: message}
	if s.cfg.DevErrors && cause != nil {
		body.DevMessage = cause.Error()
	}
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}
