// Package server hosts the rendered dashboard over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/YKarmar/AdmissionsDashboard/internal/logging"
	"github.com/YKarmar/AdmissionsDashboard/internal/render"
	"github.com/YKarmar/AdmissionsDashboard/internal/types"
	"github.com/YKarmar/AdmissionsDashboard/internal/view"
)

// Config configures the HTTP host.
type Config struct {
	Addr         string
	DocumentsDir string // served at / so relative document links resolve
}

// Source supplies the applications the server renders. Applications is
// called on every request. Lookup is optional; without it single
// applications are found by scanning Applications.
type Source struct {
	Applications func() []types.Application
	Lookup       func(id string) (types.Application, bool)
}

func (src Source) lookup(id string) (types.Application, bool) {
	if src.Lookup != nil {
		return src.Lookup(id)
	}
	for _, app := range src.Applications() {
		if app.ID == id {
			return app, true
		}
	}
	return types.Application{}, false
}

// Server serves the dashboard page, its JSON model and a health check.
type Server struct {
	app     *fiber.App
	cfg     Config
	builder view.Builder
	src     Source
	logger  *logging.Logger
}

// New creates a Server rendering the applications from src.
func New(cfg Config, builder view.Builder, src Source, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NopLogger()
	}
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           10 * time.Second,
			WriteTimeout:          10 * time.Second,
		}),
		cfg:     cfg,
		builder: builder,
		src:     src,
		logger:  logger.With("component", "server"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// The logger wraps recover so recovered panics are still logged as 500s.
	s.app.Use(s.requestLogger)
	s.app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: s.logPanic,
	}))

	s.app.Get("/", s.handleDashboard)
	s.app.Get("/dashboard.json", s.handleDashboardJSON)
	s.app.Get("/applications/:id", s.handleApplication)
	s.app.Get("/healthz", s.handleHealth)

	if s.cfg.DocumentsDir != "" {
		s.app.Static("/", s.cfg.DocumentsDir, fiber.Static{Browse: false})
	}
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- s.app.Listen(s.cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}
	s.logger.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return err
}

func (s *Server) logPanic(c *fiber.Ctx, e any) {
	s.logger.Error("panic",
		"method", c.Method(),
		"path", c.Path(),
		"panic", fmt.Sprint(e),
		"stack", string(debug.Stack()),
	)
}

func (s *Server) dashboard() view.Dashboard {
	return s.builder.Build(s.src.Applications())
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := render.HTML(&buf, s.dashboard()); err != nil {
		s.logger.Error("render dashboard", "error", err.Error())
		return fiber.NewError(fiber.StatusInternalServerError, "render failed")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) handleDashboardJSON(c *fiber.Ctx) error {
	return c.JSON(s.dashboard())
}

func (s *Server) handleApplication(c *fiber.Ctx) error {
	app, ok := s.src.lookup(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "application not found")
	}
	return c.JSON(view.NewRow(app))
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
