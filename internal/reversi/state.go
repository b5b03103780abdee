package reversi

import (
	"errors"
	"fmt"
)

const (
	MinSize     = 4
	DefaultSize = 8
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrIllegalMove          = errors.New("illegal move")
)

// State is the authoritative game state: the grid, whose turn it is and whether the game is over.
// It is owned by a single caller and mutated only through Place.
type State struct {
	size     int
	cells    []Cell
	active   Player
	terminal bool
}

// New creates a board of the given even size with the four center cells set up according to layout.
// Dark moves first.
func New(size int, layout Layout) (*State, error) {
	if size < MinSize || size%2 != 0 {
		return nil, fmt.Errorf("%w: size %d must be even and at least %d", ErrInvalidConfiguration, size, MinSize)
	}

	if layout != LayoutStandard && layout != LayoutMirrored {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrUnknownLayout)
	}

	state := &State{
		size:   size,
		cells:  make([]Cell, size*size),
		active: Dark,
	}

	mainDiagonal, antiDiagonal := Occupied(Light), Occupied(Dark)
	if layout == LayoutMirrored {
		mainDiagonal, antiDiagonal = antiDiagonal, mainDiagonal
	}

	mid := size / 2
	state.set(mid-1, mid-1, mainDiagonal)
	state.set(mid, mid, mainDiagonal)
	state.set(mid-1, mid, antiDiagonal)
	state.set(mid, mid-1, antiDiagonal)

	// never triggers from the symmetric start, kept so a fresh state always has a player to move
	if !state.hasLegalMove(Dark) {
		state.passTo(Light)
	}

	return state, nil
}

func (that *State) Size() int {
	return that.size
}

func (that *State) ActivePlayer() Player {
	return that.active
}

// Terminal reports whether neither player has a legal move left.
func (that *State) Terminal() bool {
	return that.terminal
}

func (that *State) CellAt(row, col int) (Cell, error) {
	if !that.inBounds(row, col) {
		return Empty, that.coordinateError(row, col)
	}

	return that.at(row, col), nil
}

// Occupied returns the number of non-empty cells.
func (that *State) Occupied() int {
	total := 0
	for _, cell := range that.cells {
		if !cell.IsEmpty() {
			total++
		}
	}

	return total
}

func (that *State) Clone() *State {
	clone := *that
	clone.cells = make([]Cell, len(that.cells))
	copy(clone.cells, that.cells)

	return &clone
}

// passTo hands the turn to player if they can move, otherwise marks the state terminal.
func (that *State) passTo(player Player) {
	if that.hasLegalMove(player) {
		that.active = player
		return
	}

	that.terminal = true
}

func (that *State) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *State) coordinateError(row, col int) error {
	return fmt.Errorf("%w: row %d col %d outside [0,%d)", ErrInvalidCoordinate, row, col, that.size)
}

func (that *State) at(row, col int) Cell {
	return that.cells[row*that.size+col]
}

func (that *State) set(row, col int, cell Cell) {
	that.cells[row*that.size+col] = cell
}
