package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a single hot-seat session: both colours are played from the same client.
type Game struct {
	ID     string         `json:"id"`
	State  *reversi.State `json:"state"`
	Layout reversi.Layout `json:"layout"`
	Winner string         `json:"winner"`
	Status string         `json:"status"`
}

func NewGame(id string, state *reversi.State, layout reversi.Layout) *Game {
	game := &Game{
		ID:     id,
		State:  state,
		Layout: layout,
	}
	game.UpdateGameState()

	return game
}

// MakeTurn - places the active player's piece and reports whether the game goes on.
func (that *Game) MakeTurn(row, col int) (bool, error) {
	if that.IsFinished() {
		return false, apperror.ErrGameFinished
	}

	canContinue, err := that.State.Place(row, col)
	if err != nil {
		return false, fmt.Errorf("failed to place piece: %w", err)
	}

	that.UpdateGameState()

	return canContinue, nil
}

func (that *Game) UpdateGameState() {
	if that.State.Terminal() {
		that.Finish()
		return
	}

	that.Status = StatusOngoing
	that.Winner = ""
}

// Finish - stops the game and records the current leader.
func (that *Game) Finish() {
	that.Status = StatusFinished

	switch winner := that.State.Winner(); winner {
	case reversi.Dark, reversi.Light:
		that.Winner = winner.String()
	default:
		that.Winner = PlayerTie
	}
}

// Restart - replaces the board wholesale, nothing carries over from the previous game.
func (that *Game) Restart(state *reversi.State) {
	that.State = state
	that.UpdateGameState()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Summary - describes the piece counts and the outcome, e.g. "dark 33, light 31: dark wins".
func (that *Game) Summary() string {
	dark, light := that.State.Score()
	counts := fmt.Sprintf("%s %d, %s %d", dark.Player, dark.Pieces, light.Player, light.Pieces)

	winner := reversi.Result(dark, light)
	if winner == reversi.NoPlayer {
		return counts + ": draw"
	}

	return fmt.Sprintf("%s: %s wins", counts, winner)
}
