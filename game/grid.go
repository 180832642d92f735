package game

import (
	"fmt"
	"iter"
)

// EdgeGrid stores the ownership of every edge of one orientation.
// Slot index = row*width + col.
type EdgeGrid struct {
	width       int
	height      int
	orientation Orientation
	slots       []Ownership
}

func NewEdgeGrid(width, height int, orientation Orientation) *EdgeGrid {
	return &EdgeGrid{
		width:       width,
		height:      height,
		orientation: orientation,
		slots:       make([]Ownership, width*height),
	}
}

func (g *EdgeGrid) Width() int               { return g.width }
func (g *EdgeGrid) Height() int              { return g.height }
func (g *EdgeGrid) Orientation() Orientation { return g.orientation }
func (g *EdgeGrid) Len() int                 { return len(g.slots) }

func (g *EdgeGrid) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.width && row < g.height
}

func (g *EdgeGrid) Get(col, row int) (Ownership, error) {
	if !g.Contains(col, row) {
		return Free, fmt.Errorf("%s edge (%d,%d) in %dx%d grid: %w", g.orientation, col, row, g.width, g.height, ErrOutOfRange)
	}
	return g.slots[g.IDToIndex(col, row)], nil
}

// Set overwrites a slot without any rule check.
func (g *EdgeGrid) Set(col, row int, state Ownership) error {
	if !g.Contains(col, row) {
		return fmt.Errorf("%s edge (%d,%d) in %dx%d grid: %w", g.orientation, col, row, g.width, g.height, ErrOutOfRange)
	}
	g.slots[g.IDToIndex(col, row)] = state
	return nil
}

func (g *EdgeGrid) Clear() {
	for i := range g.slots {
		g.slots[i] = Free
	}
}

func (g *EdgeGrid) IDToIndex(col, row int) int {
	return row*g.width + col
}

func (g *EdgeGrid) IndexToID(index int) EdgeID {
	return EdgeID{
		Orientation: g.orientation,
		Col:         index % g.width,
		Row:         index / g.width,
	}
}

// All yields every slot in row-major order. Each call starts a new sequence.
func (g *EdgeGrid) All() iter.Seq2[EdgeID, Ownership] {
	return func(yield func(EdgeID, Ownership) bool) {
		for i, state := range g.slots {
			if !yield(g.IndexToID(i), state) {
				return
			}
		}
	}
}

func (g *EdgeGrid) Clone() *EdgeGrid {
	slots := make([]Ownership, len(g.slots))
	copy(slots, g.slots)
	return &EdgeGrid{
		width:       g.width,
		height:      g.height,
		orientation: g.orientation,
		slots:       slots,
	}
}

func (g *EdgeGrid) at(index int) Ownership {
	return g.slots[index]
}
