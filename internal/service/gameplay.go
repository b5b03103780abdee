package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

type GamePlayService interface {
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, bool, error)
	PlayRandomly(ctx context.Context, gameID string) (*entity.Game, reversi.Position, error)

	EndGame(ctx context.Context, gameID string) (*entity.Game, error)
	RestartGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	advisor     Advisor
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, advisor Advisor) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		advisor:     advisor,
	}
}

// MakeTurn - places a piece for the active player and stores the new state.
// The returned bool is false once the game is over.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, bool, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get game by id: %w", err)
	}

	canContinue, err := game.MakeTurn(row, col)
	if err != nil {
		return game, false, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, false, fmt.Errorf("failed to update game: %w", err)
	}

	return game, canContinue, nil
}

// PlayRandomly - lets the advisor choose the active player's move and plays it.
func (that *gamePlayService) PlayRandomly(ctx context.Context, gameID string) (*entity.Game, reversi.Position, error) {
	log := that.logger.With("method", "PlayRandomly", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, reversi.Position{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, reversi.Position{}, err
	}

	pos, err := that.advisor.SuggestMove(game.State)
	if err != nil {
		return game, reversi.Position{}, fmt.Errorf("advisor failed to pick a move: %w", err)
	}

	if _, err = game.MakeTurn(pos.Row, pos.Col); err != nil {
		return nil, reversi.Position{}, fmt.Errorf("failed to play suggested move: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, reversi.Position{}, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("played suggested move", "row", pos.Row, "col", pos.Col)

	return game, pos, nil
}

// EndGame - finishes the game on request, the current leader is recorded as the winner.
func (that *gamePlayService) EndGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsFinished() {
		return game, nil
	}

	game.Finish()
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// RestartGame - starts over on a fresh board of the same size and layout, keeping the game id.
func (that *gamePlayService) RestartGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	state, err := reversi.New(game.State.Size(), game.Layout)
	if err != nil {
		return nil, fmt.Errorf("failed to set up board: %w", err)
	}

	game.Restart(state)
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}
