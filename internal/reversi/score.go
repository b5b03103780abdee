package reversi

// Count is the number of pieces a player holds on the board.
type Count struct {
	Player Player `json:"player"`
	Pieces int    `json:"pieces"`
}

// Score tallies both players over the whole grid, Dark first.
func (that *State) Score() (Count, Count) {
	dark, light := Count{Player: Dark}, Count{Player: Light}

	for _, cell := range that.cells {
		switch cell {
		case Occupied(Dark):
			dark.Pieces++
		case Occupied(Light):
			light.Pieces++
		}
	}

	return dark, light
}

// Winner returns the player holding more pieces, or NoPlayer when the counts are level.
func (that *State) Winner() Player {
	return Result(that.Score())
}

func Result(first, second Count) Player {
	switch {
	case first.Pieces > second.Pieces:
		return first.Player
	case second.Pieces > first.Pieces:
		return second.Player
	default:
		return NoPlayer
	}
}
