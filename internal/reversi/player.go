package reversi

import (
	"errors"
	"fmt"
)

// Player is one of the two sides. Dark moves first.
type Player uint8

const (
	NoPlayer Player = iota
	Dark
	Light
)

var ErrUnknownPlayer = errors.New("unknown player")

func (that Player) Opponent() Player {
	switch that {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		return NoPlayer
	}
}

func (that Player) String() string {
	switch that {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "none"
	}
}

func (that Player) MarshalText() ([]byte, error) {
	if that != Dark && that != Light {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, that)
	}

	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dark":
		*that = Dark
	case "light":
		*that = Light
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}

	return nil
}

// Cell is the content of a board square: Empty or the owning player.
type Cell uint8

const Empty Cell = 0

func Occupied(player Player) Cell {
	return Cell(player)
}

// Owner reports who holds the cell; ok is false for an empty cell.
func (that Cell) Owner() (Player, bool) {
	if that == Empty {
		return NoPlayer, false
	}

	return Player(that), true
}

func (that Cell) IsEmpty() bool {
	return that == Empty
}

func (that Cell) valid() bool {
	return that == Empty || that == Cell(Dark) || that == Cell(Light)
}

// Layout selects one of the two mirror-image starting configurations.
type Layout uint8

const (
	// LayoutStandard puts Light on the main center diagonal and Dark on the other one.
	LayoutStandard Layout = iota
	// LayoutMirrored swaps the two center diagonals.
	LayoutMirrored
)

var ErrUnknownLayout = errors.New("unknown layout")

func (that Layout) String() string {
	if that == LayoutMirrored {
		return "mirrored"
	}

	return "standard"
}

func (that Layout) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Layout) UnmarshalText(text []byte) error {
	layout, err := ParseLayout(string(text))
	if err != nil {
		return err
	}

	*that = layout

	return nil
}

func ParseLayout(name string) (Layout, error) {
	switch name {
	case "", "standard":
		return LayoutStandard, nil
	case "mirrored":
		return LayoutMirrored, nil
	default:
		return LayoutStandard, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is a legal placement together with the number of pieces it captures.
type Move struct {
	Position
	Captures int `json:"captures"`
}
