package rest

import (
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

type createGameRequest struct {
	Size   int    `json:"size" validate:"omitempty,min=4,max=64,even"`
	Layout string `json:"layout" validate:"omitempty,oneof=standard mirrored"`
}

// Pointers tell a missing coordinate apart from zero. Range checks are left to the engine.
type moveRequest struct {
	Row *int `json:"row" validate:"required"`
	Col *int `json:"col" validate:"required"`
}

type scoreResponse struct {
	Dark  int `json:"dark"`
	Light int `json:"light"`
}

type gameResponse struct {
	ID     string        `json:"id"`
	Size   int           `json:"size"`
	Layout string        `json:"layout"`
	Board  []string      `json:"board"`
	Active string        `json:"active,omitempty"`
	Status string        `json:"status"`
	Winner string        `json:"winner,omitempty"`
	Score  scoreResponse `json:"score"`

	CanContinue *bool             `json:"can_continue,omitempty"`
	Position    *reversi.Position `json:"position,omitempty"`
}

type hintsResponse struct {
	Active string         `json:"active,omitempty"`
	Matrix [][]int        `json:"matrix"`
	Moves  []reversi.Move `json:"moves"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

const (
	glyphEmpty = '.'
	glyphDark  = 'D'
	glyphLight = 'L'
)

func newGameResponse(game *entity.Game) gameResponse {
	state := game.State
	size := state.Size()

	board := make([]string, size)
	for row := 0; row < size; row++ {
		line := make([]byte, size)
		for col := 0; col < size; col++ {
			// coordinates come from the board's own range
			cell, _ := state.CellAt(row, col)
			line[col] = glyph(cell)
		}
		board[row] = string(line)
	}

	dark, light := state.Score()

	response := gameResponse{
		ID:     game.ID,
		Size:   size,
		Layout: game.Layout.String(),
		Board:  board,
		Status: game.Status,
		Winner: game.Winner,
		Score:  scoreResponse{Dark: dark.Pieces, Light: light.Pieces},
	}

	if game.IsOngoing() {
		response.Active = state.ActivePlayer().String()
	}

	return response
}

func newHintsResponse(game *entity.Game) hintsResponse {
	moves := game.State.LegalMoves()
	if moves == nil {
		moves = []reversi.Move{}
	}

	response := hintsResponse{
		Matrix: game.State.LegalMoveMatrix(),
		Moves:  moves,
	}

	if game.IsOngoing() {
		response.Active = game.State.ActivePlayer().String()
	}

	return response
}

func glyph(cell reversi.Cell) byte {
	switch cell {
	case reversi.Occupied(reversi.Dark):
		return glyphDark
	case reversi.Occupied(reversi.Light):
		return glyphLight
	default:
		return glyphEmpty
	}
}
