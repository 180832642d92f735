package game

import "fmt"

// EdgeID identifies one edge slot, which is also the only kind of move in the game.
type EdgeID struct {
	Orientation Orientation
	Col         int
	Row         int
}

func V(col, row int) EdgeID {
	return EdgeID{Orientation: Vertical, Col: col, Row: row}
}

func H(col, row int) EdgeID {
	return EdgeID{Orientation: Horizontal, Col: col, Row: row}
}

func (e EdgeID) String() string {
	if e.Orientation == Vertical {
		return fmt.Sprintf("v(%d,%d)", e.Col, e.Row)
	}
	return fmt.Sprintf("h(%d,%d)", e.Col, e.Row)
}

// Cell is the (column, row) of a unit square.
type Cell struct {
	Col int
	Row int
}
