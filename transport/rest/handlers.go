package rest

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
)

type handlers struct {
	logger      *slog.Logger
	gameUseCase usecase.GameUseCase
}

func newHandlers(logger *slog.Logger, gameUseCase usecase.GameUseCase) *handlers {
	return &handlers{
		logger:      logger,
		gameUseCase: gameUseCase,
	}
}

func (that *handlers) Ping(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (that *handlers) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	game, err := that.gameUseCase.CreateGame(c.UserContext(), req.Size, req.Layout)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newGameResponse(game))
}

func (that *handlers) GetGame(c *fiber.Ctx) error {
	game, err := that.gameUseCase.GetGame(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(newGameResponse(game))
}

func (that *handlers) DeleteGame(c *fiber.Ctx) error {
	if err := that.gameUseCase.DeleteGame(c.UserContext(), c.Params("id")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (that *handlers) GetHints(c *fiber.Ctx) error {
	game, err := that.gameUseCase.GetGame(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(newHintsResponse(game))
}

func (that *handlers) MakeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	game, canContinue, err := that.gameUseCase.MakeTurn(c.UserContext(), c.Params("id"), *req.Row, *req.Col)
	if err != nil {
		return err
	}

	response := newGameResponse(game)
	response.CanContinue = &canContinue

	return c.JSON(response)
}

func (that *handlers) PlayRandomly(c *fiber.Ctx) error {
	game, pos, err := that.gameUseCase.PlayRandomly(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	canContinue := game.IsOngoing()

	response := newGameResponse(game)
	response.CanContinue = &canContinue
	response.Position = &pos

	return c.JSON(response)
}

func (that *handlers) EndGame(c *fiber.Ctx) error {
	game, err := that.gameUseCase.EndGame(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(newGameResponse(game))
}

func (that *handlers) RestartGame(c *fiber.Ctx) error {
	game, err := that.gameUseCase.RestartGame(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(newGameResponse(game))
}
