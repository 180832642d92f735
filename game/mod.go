package game

import "errors"

var (
	ErrOutOfRange        = errors.New("coordinates out of range")
	ErrInvalidDimensions = errors.New("board needs at least 2x2 dots")
)

// Player is one of the two sides. The zero value is not a valid player.
type Player uint8

const (
	Red Player = iota + 1
	Blue
)

func (p Player) Other() Player {
	if p == Red {
		return Blue
	}
	return Red
}

func (p Player) String() string {
	switch p {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Ownership is the state of an edge or a cell: Free, or owned by a player.
// Outside of Board.Undo an owned slot never goes back to Free.
type Ownership uint8

const Free Ownership = 0

func OwnedBy(p Player) Ownership {
	return Ownership(p)
}

func (o Ownership) IsFree() bool {
	return o == Free
}

func (o Ownership) Owner() (Player, bool) {
	if o == Free {
		return 0, false
	}
	return Player(o), true
}

func (o Ownership) String() string {
	if o == Free {
		return "Free"
	}
	return Player(o).String()
}

type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}
