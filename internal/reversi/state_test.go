package reversi

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows builds a state from rows of '.', 'D' and 'L'.
func boardFromRows(t *testing.T, active Player, rows ...string) *State {
	t.Helper()

	state := &State{size: len(rows), cells: make([]Cell, len(rows)*len(rows)), active: active}
	for row, line := range rows {
		require.Len(t, line, len(rows), "row %d", row)
		for col, mark := range line {
			switch mark {
			case 'D':
				state.set(row, col, Occupied(Dark))
			case 'L':
				state.set(row, col, Occupied(Light))
			}
		}
	}

	return state
}

func TestNew(t *testing.T) {
	t.Run("Standard layout on 8x8", func(t *testing.T) {
		// Given: a fresh standard board
		state, err := New(DefaultSize, LayoutStandard)
		require.NoError(t, err)

		// Then: exactly the four center cells are occupied in the alternating pattern
		assert.Equal(t, 4, state.Occupied())
		assert.Equal(t, Dark, state.ActivePlayer())
		assert.False(t, state.Terminal())

		for _, tc := range []struct {
			row, col int
			want     Cell
		}{
			{3, 3, Occupied(Light)},
			{4, 4, Occupied(Light)},
			{3, 4, Occupied(Dark)},
			{4, 3, Occupied(Dark)},
			{0, 0, Empty},
		} {
			cell, err := state.CellAt(tc.row, tc.col)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cell, "cell %d,%d", tc.row, tc.col)
		}

		// And: Dark has exactly four legal moves, each capturing one piece
		want := []Move{
			{Position: Position{Row: 2, Col: 3}, Captures: 1},
			{Position: Position{Row: 3, Col: 2}, Captures: 1},
			{Position: Position{Row: 4, Col: 5}, Captures: 1},
			{Position: Position{Row: 5, Col: 4}, Captures: 1},
		}
		if diff := cmp.Diff(want, state.LegalMoves()); diff != "" {
			t.Errorf("LegalMoves() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Mirrored layout swaps the diagonals", func(t *testing.T) {
		// Given: a fresh mirrored board
		state, err := New(DefaultSize, LayoutMirrored)
		require.NoError(t, err)

		// Then: Dark holds the main diagonal and moves are mirrored accordingly
		cell, err := state.CellAt(3, 3)
		require.NoError(t, err)
		assert.Equal(t, Occupied(Dark), cell)

		var got []Position
		for _, move := range state.LegalMoves() {
			got = append(got, move.Position)
		}
		assert.Equal(t, []Position{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, got)
	})

	t.Run("Smallest and non-default sizes", func(t *testing.T) {
		for _, size := range []int{4, 6, 10, 16} {
			state, err := New(size, LayoutStandard)
			require.NoError(t, err, "size %d", size)
			assert.Equal(t, size, state.Size())
			assert.Equal(t, 4, state.Occupied())
			assert.Len(t, state.LegalMoves(), 4)
		}
	})

	t.Run("Rejects odd and undersized boards", func(t *testing.T) {
		for _, size := range []int{-4, 0, 2, 3, 5, 7, 9} {
			state, err := New(size, LayoutStandard)
			require.ErrorIs(t, err, ErrInvalidConfiguration, "size %d", size)
			assert.Nil(t, state)
		}
	})

	t.Run("Rejects unknown layout", func(t *testing.T) {
		_, err := New(DefaultSize, Layout(7))
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestState_LegalMoveMatrix(t *testing.T) {
	t.Run("Opening matrix", func(t *testing.T) {
		// Given: a standard 4x4 board
		state, err := New(4, LayoutStandard)
		require.NoError(t, err)

		// When: computing the matrix twice
		first := state.LegalMoveMatrix()
		second := state.LegalMoveMatrix()

		// Then: it lists the four opening moves and is stable
		want := [][]int{
			{0, 1, 0, 0},
			{1, 0, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		}
		if diff := cmp.Diff(want, first); diff != "" {
			t.Errorf("LegalMoveMatrix() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, first, second)
	})

	t.Run("Sums runs over several directions", func(t *testing.T) {
		// Given: a cell that closes a row run and a diagonal run
		state := boardFromRows(t, Dark,
			"D....D",
			".L..L.",
			"..LL..",
			"DLL...",
			"......",
			"......",
		)

		// When: computing the matrix
		matrix := state.LegalMoveMatrix()

		// Then: both runs count and occupied cells stay at zero
		assert.Equal(t, 4, matrix[3][3])
		assert.Equal(t, 0, matrix[2][3])
	})

	t.Run("Runs reaching the edge or a gap capture nothing", func(t *testing.T) {
		// Given: opponent runs that are never closed by a Dark piece
		state := boardFromRows(t, Dark,
			"LL..",
			"....",
			".L.D",
			"....",
		)

		// Then: no cell is a legal move
		for _, row := range state.LegalMoveMatrix() {
			for _, n := range row {
				assert.Zero(t, n)
			}
		}
		assert.Empty(t, state.LegalMoves())
	})

	t.Run("Terminal state yields no moves", func(t *testing.T) {
		state := boardFromRows(t, Dark,
			"DL..",
			"....",
			"....",
			"....",
		)
		state.terminal = true

		assert.Zero(t, state.LegalMoveMatrix()[0][2])
		assert.Nil(t, state.LegalMoves())
	})
}

func TestState_Place(t *testing.T) {
	t.Run("Opening move flips one piece and switches the turn", func(t *testing.T) {
		// Given: a standard 8x8 board
		state, err := New(DefaultSize, LayoutStandard)
		require.NoError(t, err)

		// When: Dark plays row 2, col 3
		canContinue, err := state.Place(2, 3)
		require.NoError(t, err)

		// Then: the piece at 3,3 is captured and Light moves next
		assert.True(t, canContinue)
		assert.Equal(t, 5, state.Occupied())

		captured, err := state.CellAt(3, 3)
		require.NoError(t, err)
		assert.Equal(t, Occupied(Dark), captured)
		assert.Equal(t, Light, state.ActivePlayer())

		dark, light := state.Score()
		assert.Equal(t, Count{Player: Dark, Pieces: 4}, dark)
		assert.Equal(t, Count{Player: Light, Pieces: 1}, light)
	})

	t.Run("Flips every closed direction", func(t *testing.T) {
		// Given: a move closing a row run and a diagonal run
		state := boardFromRows(t, Dark,
			"D....D",
			".L..L.",
			"..LL..",
			"DLL...",
			"......",
			"......",
		)

		// When: Dark plays 3,3
		_, err := state.Place(3, 3)
		require.NoError(t, err)

		// Then: both runs flip and the unclosed pieces stay Light
		for _, pos := range []Position{{3, 1}, {3, 2}, {2, 2}, {1, 1}} {
			cell, err := state.CellAt(pos.Row, pos.Col)
			require.NoError(t, err)
			assert.Equal(t, Occupied(Dark), cell, "cell %v", pos)
		}
		for _, pos := range []Position{{2, 3}, {1, 4}} {
			cell, err := state.CellAt(pos.Row, pos.Col)
			require.NoError(t, err)
			assert.Equal(t, Occupied(Light), cell, "cell %v", pos)
		}
	})

	t.Run("Opponent without moves passes", func(t *testing.T) {
		// Given: after Dark's move Light cannot capture anything but Dark still can
		state := boardFromRows(t, Dark,
			"DL..",
			"....",
			"....",
			"DL..",
		)

		// When: Dark plays 0,2
		canContinue, err := state.Place(0, 2)
		require.NoError(t, err)

		// Then: Dark keeps the turn
		assert.True(t, canContinue)
		assert.Equal(t, Dark, state.ActivePlayer())
		assert.False(t, state.Terminal())

		// When: Dark plays the last legal move
		canContinue, err = state.Place(3, 2)
		require.NoError(t, err)

		// Then: nobody can move and the game is over
		assert.False(t, canContinue)
		assert.True(t, state.Terminal())
	})

	t.Run("Game ends when neither player can move", func(t *testing.T) {
		// Given: a move that removes Light's last piece
		state := boardFromRows(t, Dark,
			"DL..",
			"....",
			"....",
			"....",
		)

		// When: Dark captures it
		canContinue, err := state.Place(0, 2)
		require.NoError(t, err)

		// Then: the game is terminal and no moves remain
		assert.False(t, canContinue)
		assert.True(t, state.Terminal())
		assert.Empty(t, state.LegalMoves())
		assert.Equal(t, Dark, state.Winner())
	})

	t.Run("Illegal placements leave the state untouched", func(t *testing.T) {
		for _, tc := range []struct {
			name     string
			row, col int
			wantErr  error
		}{
			{"occupied cell", 3, 3, ErrIllegalMove},
			{"empty cell without captures", 0, 0, ErrIllegalMove},
			{"cell next to own piece only", 2, 4, ErrIllegalMove},
			{"negative row", -1, 3, ErrInvalidCoordinate},
			{"row past the edge", 8, 3, ErrInvalidCoordinate},
			{"column past the edge", 3, 8, ErrInvalidCoordinate},
		} {
			t.Run(tc.name, func(t *testing.T) {
				// Given: a fresh board and a copy of it
				state, err := New(DefaultSize, LayoutStandard)
				require.NoError(t, err)
				before := state.Clone()

				// When: placing on the cell
				canContinue, err := state.Place(tc.row, tc.col)

				// Then: the error is reported and nothing changed
				require.ErrorIs(t, err, tc.wantErr)
				assert.False(t, canContinue)
				assert.Equal(t, before, state)
			})
		}
	})

	t.Run("Placing after the game is over is illegal", func(t *testing.T) {
		state := boardFromRows(t, Dark,
			"DL..",
			"....",
			"....",
			"....",
		)
		state.terminal = true
		before := state.Clone()

		_, err := state.Place(0, 2)

		require.ErrorIs(t, err, ErrIllegalMove)
		assert.Equal(t, before, state)
	})
}

func TestState_PlaceInvariants(t *testing.T) {
	// Given: a seeded sequence of random legal moves played to the end
	rnd := rand.New(rand.NewSource(42))

	for _, size := range []int{4, 6, 8} {
		state, err := New(size, LayoutStandard)
		require.NoError(t, err)

		for canContinue := true; canContinue; {
			moves := state.LegalMoves()
			require.NotEmpty(t, moves)
			move := moves[rnd.Intn(len(moves))]

			before := state.Clone()
			matrix := state.LegalMoveMatrix()
			require.Equal(t, matrix, state.LegalMoveMatrix())

			// When: placing the piece
			canContinue, err = state.Place(move.Row, move.Col)
			require.NoError(t, err)

			// Then: one more piece, exactly the predicted number of flips
			assert.Equal(t, before.Occupied()+1, state.Occupied())
			assert.Equal(t, matrix[move.Row][move.Col], countFlips(before, state))

			dark, light := state.Score()
			assert.Equal(t, state.Occupied(), dark.Pieces+light.Pieces)

			// And: the turn follows switch / pass / end
			mover := before.ActivePlayer()
			switch {
			case state.hasLegalMove(mover.Opponent()):
				assert.Equal(t, mover.Opponent(), state.ActivePlayer())
				assert.True(t, canContinue)
			case state.hasLegalMove(mover):
				assert.Equal(t, mover, state.ActivePlayer())
				assert.True(t, canContinue)
			default:
				assert.False(t, canContinue)
			}
		}

		assert.True(t, state.Terminal())
	}
}

// countFlips counts occupied cells whose owner changed between two states.
func countFlips(before, after *State) int {
	flips := 0
	for i, cell := range before.cells {
		if !cell.IsEmpty() && after.cells[i] != cell {
			flips++
		}
	}

	return flips
}

func TestState_CellAt(t *testing.T) {
	state, err := New(4, LayoutStandard)
	require.NoError(t, err)

	t.Run("Reports owner of occupied cells", func(t *testing.T) {
		cell, err := state.CellAt(1, 2)
		require.NoError(t, err)

		owner, ok := cell.Owner()
		assert.True(t, ok)
		assert.Equal(t, Dark, owner)
	})

	t.Run("Empty cell has no owner", func(t *testing.T) {
		cell, err := state.CellAt(0, 0)
		require.NoError(t, err)

		_, ok := cell.Owner()
		assert.False(t, ok)
		assert.True(t, cell.IsEmpty())
	})

	t.Run("Out of range", func(t *testing.T) {
		_, err := state.CellAt(4, 0)
		require.ErrorIs(t, err, ErrInvalidCoordinate)

		_, err = state.CellAt(0, -1)
		require.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}

func TestState_PassToWithoutMoves(t *testing.T) {
	// Given: a board where nobody can capture
	state := boardFromRows(t, Dark,
		"D...",
		"....",
		"....",
		"...L",
	)

	// When: handing the turn over
	state.passTo(Light)

	// Then: the state becomes terminal without changing the active player
	assert.True(t, state.Terminal())
	assert.Equal(t, Dark, state.ActivePlayer())
}
