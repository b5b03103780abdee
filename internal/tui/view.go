package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/reversi-backend/internal/config"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

const (
	cellWidth     = 2
	rowLabelWidth = 3
	headerHeight  = 1

	helpText = "arrows move  enter put  h hint  r random  e end  n new  q quit"
)

type symbols struct {
	dark, light, hint, empty rune
}

type View struct {
	logger *slog.Logger
	app    *tview.Application

	root   *tview.Flex
	board  *tview.Box
	status *tview.TextView

	controller *Controller
	model      Model
	symbols    symbols

	cursorRow, cursorCol int
}

// NewView - builds the board, status and help lines. The symbols must have passed Validate.
func NewView(logger *slog.Logger, app *tview.Application, controller *Controller, conf config.Symbols) *View {
	view := &View{
		logger:     logger.With("component", "tui"),
		app:        app,
		controller: controller,
		model:      controller.Init(),
		symbols: symbols{
			dark:  config.Rune(conf.Dark),
			light: config.Rune(conf.Light),
			hint:  config.Rune(conf.Hint),
			empty: config.Rune(conf.Empty),
		},
	}
	view.centerCursor()

	size := view.model.Game.State.Size()

	view.board = tview.NewBox()
	view.board.SetDrawFunc(view.draw)

	view.status = tview.NewTextView()
	view.status.SetText(StatusLine(view.model))

	help := tview.NewTextView()
	help.SetText(helpText)
	help.SetTextColor(tcell.ColorGray)

	view.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view.board, headerHeight+size, 0, true).
		AddItem(view.status, 1, 0, false).
		AddItem(help, 1, 0, false)

	return view
}

func (that *View) Root() tview.Primitive {
	return that.root
}

func (that *View) Model() Model {
	return that.model
}

// HandleKey - input capture for the application; consumed keys return nil.
func (that *View) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyEnter:
		that.dispatch(Put{Row: that.cursorRow, Col: that.cursorCol})
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			that.dispatch(ShowHint{})
		case 'r':
			that.dispatch(PutRandomly{})
		case 'e':
			that.dispatch(EndGame{})
		case 'n':
			that.dispatch(NewGame{})
			that.centerCursor()
		case 'q':
			that.app.Stop()
		default:
			return event
		}
	default:
		return event
	}

	return nil
}

func (that *View) dispatch(msg Msg) {
	showedResult := that.model.ShowResult

	that.model = that.controller.Update(that.model, msg)
	that.status.SetText(StatusLine(that.model))

	if that.model.ShowResult && !showedResult {
		dark, light := that.model.Game.State.Score()
		that.logger.Info("game finished", "winner", that.model.Game.Winner, "dark", dark.Pieces, "light", light.Pieces)
	}
}

func (that *View) moveCursor(dRow, dCol int) {
	size := that.model.Game.State.Size()

	row, col := that.cursorRow+dRow, that.cursorCol+dCol
	if row < 0 || row >= size || col < 0 || col >= size {
		return
	}

	that.cursorRow, that.cursorCol = row, col
}

func (that *View) centerCursor() {
	half := that.model.Game.State.Size() / 2
	that.cursorRow, that.cursorCol = half-1, half-1
}

func (that *View) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	state := that.model.Game.State
	size := state.Size()

	var matrix [][]int
	if that.model.WithHint {
		matrix = state.LegalMoveMatrix()
	}

	for col := 0; col < size; col++ {
		screen.SetContent(x+rowLabelWidth+col*cellWidth, y, columnLabel(col), nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	for row := 0; row < size; row++ {
		tview.Print(screen, fmt.Sprintf("%2d", row+1), x, y+headerHeight+row, rowLabelWidth, tview.AlignLeft, tcell.ColorYellow)

		for col := 0; col < size; col++ {
			r, style := that.cellRune(state, matrix, row, col)
			if row == that.cursorRow && col == that.cursorCol {
				style = style.Reverse(true)
			}

			screen.SetContent(x+rowLabelWidth+col*cellWidth, y+headerHeight+row, r, nil, style)
		}
	}

	return x, y, width, height
}

func (that *View) cellRune(state *reversi.State, matrix [][]int, row, col int) (rune, tcell.Style) {
	// row and col are always within the board
	cell, _ := state.CellAt(row, col)

	switch cell {
	case reversi.Occupied(reversi.Dark):
		return that.symbols.dark, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case reversi.Occupied(reversi.Light):
		return that.symbols.light, tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}

	if matrix != nil && matrix[row][col] > 0 {
		return that.symbols.hint, tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}

	return that.symbols.empty, tcell.StyleDefault.Foreground(tcell.ColorGray)
}

func columnLabel(col int) rune {
	if col < 26 {
		return rune('a' + col)
	}

	return ' '
}
