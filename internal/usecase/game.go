package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// GameUseCase is the surface the transports work with.
type GameUseCase interface {
	CreateGame(ctx context.Context, size int, layout string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, bool, error)
	PlayRandomly(ctx context.Context, gameID string) (*entity.Game, reversi.Position, error)
	EndGame(ctx context.Context, gameID string) (*entity.Game, error)
	RestartGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type gameService interface {
	CreateGame(ctx context.Context, size int, layout reversi.Layout) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type gamePlayService interface {
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, bool, error)
	PlayRandomly(ctx context.Context, gameID string) (*entity.Game, reversi.Position, error)
	EndGame(ctx context.Context, gameID string) (*entity.Game, error)
	RestartGame(ctx context.Context, gameID string) (*entity.Game, error)
}

// Defaults are applied when a create request leaves size or layout out.
type Defaults struct {
	BoardSize int
	Layout    reversi.Layout
}

type gameUseCase struct {
	logger   *slog.Logger
	defaults Defaults

	gameService     gameService
	gamePlayService gamePlayService
}

func NewGameUseCase(logger *slog.Logger, defaults Defaults, gameService gameService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		logger:          logger.With("component", "usecase"),
		defaults:        defaults,
		gameService:     gameService,
		gamePlayService: gamePlayService,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, size int, layoutName string) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	if size == 0 {
		size = that.defaults.BoardSize
	}

	layout := that.defaults.Layout
	if layoutName != "" {
		parsed, err := reversi.ParseLayout(layoutName)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layout: %w", err)
		}
		layout = parsed
	}

	game, err := that.gameService.CreateGame(ctx, size, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "size", size, "layout", layout.String())

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, bool, error) {
	game, canContinue, err := that.gamePlayService.MakeTurn(ctx, gameID, row, col)
	if err != nil {
		return nil, false, fmt.Errorf("failed to make turn: %w", err)
	}

	if !canContinue {
		that.logResult(game)
	}

	return game, canContinue, nil
}

func (that *gameUseCase) PlayRandomly(ctx context.Context, gameID string) (*entity.Game, reversi.Position, error) {
	game, pos, err := that.gamePlayService.PlayRandomly(ctx, gameID)
	if err != nil {
		return nil, reversi.Position{}, fmt.Errorf("failed to play randomly: %w", err)
	}

	if game.IsFinished() {
		that.logResult(game)
	}

	return game, pos, nil
}

func (that *gameUseCase) EndGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gamePlayService.EndGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to end game: %w", err)
	}

	that.logResult(game)

	return game, nil
}

func (that *gameUseCase) RestartGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gamePlayService.RestartGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) logResult(game *entity.Game) {
	dark, light := game.State.Score()

	that.logger.Info("game finished",
		"gameID", game.ID,
		"winner", game.Winner,
		"dark", dark.Pieces,
		"light", light.Pieces,
	)
}
