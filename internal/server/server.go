// Package server exposes the practice sections over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/speech"
	"github.com/abhisek/ieltsprep/internal/writing"
)

// Evaluator grades essays. Implemented by writing.Service.
type Evaluator interface {
	Evaluate(ctx context.Context, task writing.Task, essay string) (*writing.Feedback, error)
}

// SampleGenerator produces speaking model answers. Implemented by
// speaking.Service.
type SampleGenerator interface {
	SampleAnswer(ctx context.Context, prompt speaking.Prompt) (string, error)
}

// Deps are the services behind the API. Synth may be nil, in which case
// audio requests fail with "Could not generate audio.".
type Deps struct {
	Evaluator Evaluator
	Samples   SampleGenerator
	Synth     speech.Synthesizer
}

// Server is the HTTP API.
type Server struct {
	cfg  Config
	deps Deps
	app  *fiber.App
}

// New builds the Fiber app with middleware and routes registered.
func New(cfg Config, deps Deps) *Server {
	s := &Server{cfg: cfg, deps: deps}

	app := fiber.New(fiber.Config{
		AppName:               "ieltsprep",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return s.fail(c, code, message, nil)
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))
	app.Use(healthcheck.New())
	app.Use(helmet.New())
	app.Use(rateLimiter(cfg.RateLimit, cfg.RateWindow, s))

	s.app = app
	s.routes()
	return s
}

func rateLimiter(max int, window time.Duration, s *Server) fiber.Handler {
	if max <= 0 {
		max = 30
	}
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return s.fail(c, fiber.StatusTooManyRequests, "Too many requests", nil)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", s.cfg.Addr)
		errc <- s.app.Listen(s.cfg.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}
