package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
	mockedService "github.com/rocketscienceinc/reversi-backend/mocks/service"
)

var errRedisDown = errors.New("redis down")

func newGamePlay(t *testing.T) (GamePlayService, *mockedService.MockgameRepo) {
	t.Helper()

	repo := mockedService.NewMockgameRepo(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGamePlayService(logger, NewGameService(repo), NewAdvisor(rand.NewSource(1))), repo
}

func openingGame(t *testing.T) *entity.Game {
	t.Helper()

	state, err := reversi.New(reversi.DefaultSize, reversi.LayoutStandard)
	require.NoError(t, err)

	return entity.NewGame("g1", state, reversi.LayoutStandard)
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a fresh board", func(t *testing.T) {
		// Given: a repository accepting writes
		repo := mockedService.NewMockgameRepo(t)
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: creating a 6x6 mirrored game
		game, err := NewGameService(repo).CreateGame(ctx, 6, reversi.LayoutMirrored)

		// Then: the game has an id and the opening position
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, 6, game.State.Size())
		assert.Equal(t, reversi.LayoutMirrored, game.Layout)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Invalid size never reaches storage", func(t *testing.T) {
		repo := mockedService.NewMockgameRepo(t)

		_, err := NewGameService(repo).CreateGame(ctx, 7, reversi.LayoutStandard)

		require.ErrorIs(t, err, reversi.ErrInvalidConfiguration)
	})

	t.Run("Storage failure is returned", func(t *testing.T) {
		repo := mockedService.NewMockgameRepo(t)
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(errRedisDown).
			Once()

		_, err := NewGameService(repo).CreateGame(ctx, 8, reversi.LayoutStandard)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Legal move is stored", func(t *testing.T) {
		// Given: a stored opening game
		gamePlay, repo := newGamePlay(t)
		repo.EXPECT().GetByID(mock.Anything, "g1").Return(openingGame(t), nil).Once()
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(game *entity.Game) bool {
				return game.State.Occupied() == 5
			})).
			Return(nil).
			Once()

		// When: Dark plays the opening move
		game, canContinue, err := gamePlay.MakeTurn(ctx, "g1", 2, 3)

		// Then: the turn passes to Light
		require.NoError(t, err)
		assert.True(t, canContinue)
		assert.Equal(t, reversi.Light, game.State.ActivePlayer())
	})

	t.Run("Illegal move is not stored", func(t *testing.T) {
		// Given: a stored opening game and no expected write
		gamePlay, repo := newGamePlay(t)
		repo.EXPECT().GetByID(mock.Anything, "g1").Return(openingGame(t), nil).Once()

		// When: Dark plays a cell without captures
		_, _, err := gamePlay.MakeTurn(ctx, "g1", 0, 0)

		// Then: ErrIllegalMove is returned
		require.ErrorIs(t, err, reversi.ErrIllegalMove)
	})

	t.Run("Unknown game", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		repo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		_, _, err := gamePlay.MakeTurn(ctx, "nope", 2, 3)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGamePlayService_PlayRandomly(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a legal move for the active player", func(t *testing.T) {
		// Given: a stored opening game
		gamePlay, repo := newGamePlay(t)
		repo.EXPECT().GetByID(mock.Anything, "g1").Return(openingGame(t), nil).Once()
		repo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(nil).Once()

		// When: playing randomly
		game, pos, err := gamePlay.PlayRandomly(ctx, "g1")

		// Then: one of the opening cells now holds a Dark piece
		require.NoError(t, err)
		assert.Contains(t, []reversi.Position{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}, pos)

		cell, err := game.State.CellAt(pos.Row, pos.Col)
		require.NoError(t, err)
		assert.Equal(t, reversi.Occupied(reversi.Dark), cell)
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		finished := openingGame(t)
		finished.Finish()
		repo.EXPECT().GetByID(mock.Anything, "g1").Return(finished, nil).Once()

		_, _, err := gamePlay.PlayRandomly(ctx, "g1")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGamePlayService_EndGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Records the leader", func(t *testing.T) {
		// Given: a game after Dark's opening move
		gamePlay, repo := newGamePlay(t)
		game := openingGame(t)
		_, err := game.MakeTurn(2, 3)
		require.NoError(t, err)

		repo.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()
		repo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()

		// When: ending the game
		ended, err := gamePlay.EndGame(ctx, "g1")

		// Then: Dark is the winner
		require.NoError(t, err)
		assert.True(t, ended.IsFinished())
		assert.Equal(t, "dark", ended.Winner)
	})

	t.Run("Ending twice does not write again", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		game := openingGame(t)
		game.Finish()
		repo.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()

		ended, err := gamePlay.EndGame(ctx, "g1")

		require.NoError(t, err)
		assert.True(t, ended.IsTie())
	})
}

func TestGamePlayService_RestartGame(t *testing.T) {
	ctx := context.Background()

	// Given: a finished 6x6 mirrored game
	gamePlay, repo := newGamePlay(t)
	state, err := reversi.New(6, reversi.LayoutMirrored)
	require.NoError(t, err)
	game := entity.NewGame("g1", state, reversi.LayoutMirrored)
	_, err = game.MakeTurn(1, 3)
	require.NoError(t, err)
	game.Finish()

	repo.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()
	repo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(nil).Once()

	// When: restarting it
	restarted, err := gamePlay.RestartGame(ctx, "g1")

	// Then: same id, same size and layout, fresh position
	require.NoError(t, err)
	assert.Equal(t, "g1", restarted.ID)
	assert.True(t, restarted.IsOngoing())
	assert.Equal(t, 6, restarted.State.Size())
	assert.Equal(t, 4, restarted.State.Occupied())

	cell, err := restarted.State.CellAt(2, 2)
	require.NoError(t, err)
	assert.Equal(t, reversi.Occupied(reversi.Dark), cell)
}
