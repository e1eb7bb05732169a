package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// DefaultBodyLimit caps request bodies when no limit is configured.
const DefaultBodyLimit = 4 << 20

// NewApp builds the fiber application with middleware and routes.
func NewApp(h *Handler, logger *slog.Logger, bodyLimit int) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}
	if bodyLimit <= 0 {
		bodyLimit = DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		BodyLimit:             bodyLimit,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(Logger(logger))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Error("panic recovered", "error", e, "method", c.Method(), "path", c.Path())
		},
	}))

	app.Get("/health", h.Health)
	app.Get("/layouts", h.Layouts)
	app.Post("/generate", h.Generate)
	app.Post("/preview", h.Preview)

	api := app.Group("/api/v1")
	api.Post("/generate", h.GenerateJSON)
	api.Post("/preview", h.PreviewJSON)

	return app
}
