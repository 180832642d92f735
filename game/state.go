package game

import (
	"fmt"
	"slices"
)

// Board is the full game state: both edge grids, the cell owners and whose turn it is.
// Width and height count dots, so a 3x3 board has 2x2 cells.
type Board struct {
	width      int
	height     int
	turn       Player
	vertical   *EdgeGrid
	horizontal *EdgeGrid
	cells      []Ownership
}

// NewBoard returns an empty board with Red to move.
func NewBoard(width, height int) (*Board, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("cannot create %dx%d board: %w", width, height, ErrInvalidDimensions)
	}
	return &Board{
		width:      width,
		height:     height,
		turn:       Red,
		vertical:   NewEdgeGrid(width, height-1, Vertical),
		horizontal: NewEdgeGrid(width-1, height, Horizontal),
		cells:      make([]Ownership, (width-1)*(height-1)),
	}, nil
}

func (b *Board) Width() int   { return b.width }
func (b *Board) Height() int  { return b.height }
func (b *Board) Turn() Player { return b.turn }

func (b *Board) grid(o Orientation) *EdgeGrid {
	switch o {
	case Vertical:
		return b.vertical
	case Horizontal:
		return b.horizontal
	default:
		return nil
	}
}

func (b *Board) contains(edge EdgeID) bool {
	g := b.grid(edge.Orientation)
	return g != nil && g.Contains(edge.Col, edge.Row)
}

func (b *Board) EdgeOwner(edge EdgeID) (Ownership, error) {
	g := b.grid(edge.Orientation)
	if g == nil {
		return Free, fmt.Errorf("edge %v: unknown orientation: %w", edge, ErrOutOfRange)
	}
	return g.Get(edge.Col, edge.Row)
}

func (b *Board) CellOwner(col, row int) (Ownership, error) {
	if col < 0 || row < 0 || col >= b.width-1 || row >= b.height-1 {
		return Free, fmt.Errorf("cell (%d,%d) on %dx%d board: %w", col, row, b.width, b.height, ErrOutOfRange)
	}
	return b.cells[b.cellIndex(Cell{col, row})], nil
}

func (b *Board) cellIndex(c Cell) int {
	return c.Row*(b.width-1) + c.Col
}

func (b *Board) edgeState(edge EdgeID) Ownership {
	g := b.grid(edge.Orientation)
	return g.at(g.IDToIndex(edge.Col, edge.Row))
}

func (b *Board) setEdge(edge EdgeID, state Ownership) {
	g := b.grid(edge.Orientation)
	g.slots[g.IDToIndex(edge.Col, edge.Row)] = state
}

// neighbors depends only on the edge position, never on the board contents.
func (b *Board) neighbors(edge EdgeID) (cells [2]Cell, n int) {
	switch edge.Orientation {
	case Vertical:
		if edge.Col > 0 {
			cells[n] = Cell{edge.Col - 1, edge.Row}
			n++
		}
		if edge.Col < b.width-1 {
			cells[n] = Cell{edge.Col, edge.Row}
			n++
		}
	case Horizontal:
		if edge.Row > 0 {
			cells[n] = Cell{edge.Col, edge.Row - 1}
			n++
		}
		if edge.Row < b.height-1 {
			cells[n] = Cell{edge.Col, edge.Row}
			n++
		}
	}
	return cells, n
}

// Neighbors returns the one or two cells bounded by edge.
func (b *Board) Neighbors(edge EdgeID) []Cell {
	if !b.contains(edge) {
		return nil
	}
	cells, n := b.neighbors(edge)
	return cells[:n]
}

func (b *Board) cellComplete(c Cell) bool {
	return !b.vertical.at(b.vertical.IDToIndex(c.Col, c.Row)).IsFree() &&
		!b.vertical.at(b.vertical.IDToIndex(c.Col+1, c.Row)).IsFree() &&
		!b.horizontal.at(b.horizontal.IDToIndex(c.Col, c.Row)).IsFree() &&
		!b.horizontal.at(b.horizontal.IDToIndex(c.Col, c.Row+1)).IsFree()
}

// Apply claims edge for the player to move. It returns false, leaving the board
// untouched, if the edge is out of range or already owned. Every cell completed by
// the edge goes to the mover, and the turn passes only if no cell was completed.
func (b *Board) Apply(edge EdgeID) bool {
	if !b.contains(edge) || !b.edgeState(edge).IsFree() {
		return false
	}

	mover := b.turn
	b.setEdge(edge, OwnedBy(mover))

	scored := false
	cells, n := b.neighbors(edge)
	for _, c := range cells[:n] {
		if b.cellComplete(c) {
			b.cells[b.cellIndex(c)] = OwnedBy(mover)
			scored = true
		}
	}
	if !scored {
		b.turn = mover.Other()
	}
	return true
}

// Undo takes back edge, which must be the most recent move still on the board.
// Nothing about the move is stored: an owned neighbor cell can only have been
// completed by this edge, so it tells whether the move scored, and from that
// whether the turn passed. Undo returns false when the board contradicts that
// inference, which only happens if moves are undone out of order.
func (b *Board) Undo(edge EdgeID) bool {
	if !b.contains(edge) {
		return false
	}

	cells, n := b.neighbors(edge)
	scored := false
	for _, c := range cells[:n] {
		owner := b.cells[b.cellIndex(c)]
		if owner == OwnedBy(b.turn.Other()) {
			return false
		}
		if !owner.IsFree() {
			scored = true
		}
	}

	mover := b.turn
	if !scored {
		mover = b.turn.Other()
	}
	if b.edgeState(edge) != OwnedBy(mover) {
		return false
	}

	b.setEdge(edge, Free)
	for _, c := range cells[:n] {
		b.cells[b.cellIndex(c)] = Free
	}
	b.turn = mover
	return true
}

// Restart clears every edge and cell and hands the first move to startingPlayer.
func (b *Board) Restart(startingPlayer Player) {
	b.vertical.Clear()
	b.horizontal.Clear()
	for i := range b.cells {
		b.cells[i] = Free
	}
	b.turn = startingPlayer
}

func (b *Board) Clone() *Board {
	cells := make([]Ownership, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:      b.width,
		height:     b.height,
		turn:       b.turn,
		vertical:   b.vertical.Clone(),
		horizontal: b.horizontal.Clone(),
		cells:      cells,
	}
}

// Equal reports whether both boards have the same size, turn, edges and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height || b.turn != other.turn {
		return false
	}
	return slices.Equal(b.vertical.slots, other.vertical.slots) &&
		slices.Equal(b.horizontal.slots, other.horizontal.slots) &&
		slices.Equal(b.cells, other.cells)
}
