package rest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	app    *fiber.App
}

// New - builds the fiber application with all routes registered.
func New(log *slog.Logger, gameUseCase usecase.GameUseCase, devMode bool) *Server {
	log = log.With("component", "rest")
	h := newHandlers(log, gameUseCase)

	app := fiber.New(fiber.Config{
		ErrorHandler:          h.errorHandler,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           30 * time.Second,
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: devMode}))
	if devMode {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	app.Get("/ping", h.Ping)

	api := app.Group("/api/v1")

	api.Post("/games", h.CreateGame)
	api.Get("/games/:id", h.GetGame)
	api.Delete("/games/:id", h.DeleteGame)
	api.Get("/games/:id/hints", h.GetHints)
	api.Post("/games/:id/moves", h.MakeMove)
	api.Post("/games/:id/random", h.PlayRandomly)
	api.Post("/games/:id/end", h.EndGame)
	api.Post("/games/:id/restart", h.RestartGame)

	return &Server{
		logger: log,
		app:    app,
	}
}

// Start - serves on the port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- that.app.Listen(":" + port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		return nil
	case <-ctx.Done():
		that.logger.Info("shutting down HTTP server")

		if err := that.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
