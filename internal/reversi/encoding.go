package reversi

import (
	"encoding/json"
	"fmt"
)

type stateJSON struct {
	Size     int     `json:"size"`
	Cells    []int   `json:"cells"`
	Active   Player  `json:"active"`
	Terminal bool    `json:"terminal"`
}

func (that *State) MarshalJSON() ([]byte, error) {
	cells := make([]int, len(that.cells))
	for i, cell := range that.cells {
		cells[i] = int(cell)
	}

	return json.Marshal(stateJSON{
		Size:     that.size,
		Cells:    cells,
		Active:   that.active,
		Terminal: that.terminal,
	})
}

func (that *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode state: %w", err)
	}

	if raw.Size < MinSize || raw.Size%2 != 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidConfiguration, raw.Size)
	}

	if len(raw.Cells) != raw.Size*raw.Size {
		return fmt.Errorf("%w: %d cells for size %d", ErrInvalidConfiguration, len(raw.Cells), raw.Size)
	}

	cells := make([]Cell, len(raw.Cells))
	for i, value := range raw.Cells {
		cell := Cell(value)
		if value < 0 || value > int(Light) || !cell.valid() {
			return fmt.Errorf("%w: cell %d has value %d", ErrInvalidConfiguration, i, value)
		}
		cells[i] = cell
	}

	that.size = raw.Size
	that.cells = cells
	that.active = raw.Active
	that.terminal = raw.Terminal

	return nil
}
