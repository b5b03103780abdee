package reversi

import "fmt"

var directions = [8]struct{ row, col int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LegalMoveMatrix returns, for every cell, how many opponent pieces the active player would
// capture by placing there now. Zero means the cell is not a legal move.
func (that *State) LegalMoveMatrix() [][]int {
	matrix := make([][]int, that.size)
	for row := range matrix {
		matrix[row] = make([]int, that.size)
		if that.terminal {
			continue
		}

		for col := range matrix[row] {
			matrix[row][col] = that.captures(row, col, that.active)
		}
	}

	return matrix
}

// LegalMoves lists the cells with a non-zero capture count in row-major order.
func (that *State) LegalMoves() []Move {
	if that.terminal {
		return nil
	}

	var moves []Move
	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			if n := that.captures(row, col, that.active); n > 0 {
				moves = append(moves, Move{Position: Position{Row: row, Col: col}, Captures: n})
			}
		}
	}

	return moves
}

// Place puts the active player's piece at (row, col), flips every capture run and advances the turn.
// It returns false once neither player can move. A failed call leaves the state untouched.
func (that *State) Place(row, col int) (bool, error) {
	if !that.inBounds(row, col) {
		return false, that.coordinateError(row, col)
	}

	if !that.at(row, col).IsEmpty() {
		return false, fmt.Errorf("%w: row %d col %d is occupied", ErrIllegalMove, row, col)
	}

	mover := that.active
	if that.terminal || that.captures(row, col, mover) == 0 {
		return false, fmt.Errorf("%w: row %d col %d captures nothing for %s", ErrIllegalMove, row, col, mover)
	}

	that.set(row, col, Occupied(mover))
	for _, dir := range directions {
		run := that.captureRun(row, col, dir.row, dir.col, mover)
		for step := 1; step <= run; step++ {
			that.set(row+dir.row*step, col+dir.col*step, Occupied(mover))
		}
	}

	that.advanceTurn(mover)

	return !that.terminal, nil
}

// advanceTurn decides who moves next: the opponent if they can, otherwise the mover again
// (the opponent passes), otherwise nobody.
func (that *State) advanceTurn(mover Player) {
	switch {
	case that.hasLegalMove(mover.Opponent()):
		that.active = mover.Opponent()
	case that.hasLegalMove(mover):
		that.active = mover
	default:
		that.terminal = true
	}
}

func (that *State) hasLegalMove(player Player) bool {
	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			if that.captures(row, col, player) > 0 {
				return true
			}
		}
	}

	return false
}

func (that *State) captures(row, col int, player Player) int {
	if !that.at(row, col).IsEmpty() {
		return 0
	}

	total := 0
	for _, dir := range directions {
		total += that.captureRun(row, col, dir.row, dir.col, player)
	}

	return total
}

// captureRun counts the opponent pieces walked over from (row, col) in one direction.
// The run only counts when it is closed by one of player's own pieces.
func (that *State) captureRun(row, col, dRow, dCol int, player Player) int {
	opponent := Occupied(player.Opponent())
	run := 0

	r, c := row+dRow, col+dCol
	for that.inBounds(r, c) && that.at(r, c) == opponent {
		run++
		r += dRow
		c += dCol
	}

	if run == 0 || !that.inBounds(r, c) || that.at(r, c) != Occupied(player) {
		return 0
	}

	return run
}
