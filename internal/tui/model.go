// Package tui is a local hot-seat client: both colours play from the same keyboard.
package tui

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
	"github.com/rocketscienceinc/reversi-backend/internal/service"
)

const localGameID = "local"

// Model is everything the view draws from.
type Model struct {
	Game       *entity.Game
	WithHint   bool
	ShowError  bool
	ShowResult bool
}

type Msg interface {
	isMsg()
}

type (
	Put struct {
		Row, Col int
	}
	PutRandomly struct{}
	ShowHint    struct{}
	EndGame     struct{}
	NewGame     struct{}
)

func (Put) isMsg()         {}
func (PutRandomly) isMsg() {}
func (ShowHint) isMsg()    {}
func (EndGame) isMsg()     {}
func (NewGame) isMsg()     {}

type Controller struct {
	advisor service.Advisor
	opening *reversi.State
	layout  reversi.Layout
}

func NewController(advisor service.Advisor, size int, layout reversi.Layout) (*Controller, error) {
	opening, err := reversi.New(size, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Controller{
		advisor: advisor,
		opening: opening,
		layout:  layout,
	}, nil
}

func (that *Controller) Init() Model {
	return Model{Game: that.newGame()}
}

// Update - applies one message. Hint and error banners only live until the next message.
func (that *Controller) Update(model Model, msg Msg) Model {
	model.WithHint = false
	model.ShowError = false

	switch msg := msg.(type) {
	case Put:
		if model.Game.IsFinished() || !isLegal(model.Game.State, msg.Row, msg.Col) {
			model.ShowError = true
			return model
		}

		that.put(&model, msg.Row, msg.Col)
	case PutRandomly:
		if model.Game.IsFinished() {
			model.ShowResult = true
			return model
		}

		pos, err := that.advisor.SuggestMove(model.Game.State)
		if errors.Is(err, service.ErrNoLegalMove) {
			model.Game.Finish()
			model.ShowResult = true
			return model
		}
		if err != nil {
			model.ShowError = true
			return model
		}

		that.put(&model, pos.Row, pos.Col)
	case ShowHint:
		model.WithHint = true
	case EndGame:
		if model.Game.IsOngoing() {
			model.Game.Finish()
		}
		model.ShowResult = true
	case NewGame:
		model = Model{Game: that.newGame()}
	}

	return model
}

func (that *Controller) put(model *Model, row, col int) {
	canContinue, err := model.Game.MakeTurn(row, col)
	if err != nil {
		model.ShowError = true
		return
	}

	if !canContinue {
		model.ShowResult = true
	}
}

func (that *Controller) newGame() *entity.Game {
	return entity.NewGame(localGameID, that.opening.Clone(), that.layout)
}

func isLegal(state *reversi.State, row, col int) bool {
	matrix := state.LegalMoveMatrix()
	if row < 0 || row >= len(matrix) || col < 0 || col >= len(matrix[row]) {
		return false
	}

	return matrix[row][col] > 0
}

// StatusLine - the text under the board.
func StatusLine(model Model) string {
	switch {
	case model.ShowResult:
		return model.Game.Summary()
	case model.ShowError:
		return "you cannot put a piece there"
	default:
		dark, light := model.Game.State.Score()
		return fmt.Sprintf("%s to move (%s %d, %s %d)",
			model.Game.State.ActivePlayer(), dark.Player, dark.Pieces, light.Player, light.Pieces)
	}
}
