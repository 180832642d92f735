package game

import (
	"iter"
	"slices"

	"golang.org/x/exp/rand"
)

// LegalMoves yields every free edge: vertical edges row-major, then horizontal
// edges row-major. The sequence reads the board lazily and can be ranged over
// any number of times.
func (b *Board) LegalMoves() iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for _, g := range [...]*EdgeGrid{b.vertical, b.horizontal} {
			for id, state := range g.All() {
				if state.IsFree() && !yield(id) {
					return
				}
			}
		}
	}
}

func (b *Board) FreeEdges() []EdgeID {
	return slices.Collect(b.LegalMoves())
}

// Terminal reports whether every edge is claimed.
func (b *Board) Terminal() bool {
	for range b.LegalMoves() {
		return false
	}
	return true
}

// RandomMove picks a uniformly random free edge. It first draws up to retries
// indexes over all edges, which almost always hits a free one early in the game,
// then falls back to sampling the list of free edges. It returns false only when
// the board is terminal.
func (b *Board) RandomMove(rng *rand.Rand, retries int) (EdgeID, bool) {
	vertical := b.vertical.Len()
	total := vertical + b.horizontal.Len()
	for range retries {
		g, index := b.vertical, rng.Intn(total)
		if index >= vertical {
			g, index = b.horizontal, index-vertical
		}
		if g.at(index).IsFree() {
			return g.IndexToID(index), true
		}
	}

	free := b.FreeEdges()
	if len(free) == 0 {
		return EdgeID{}, false
	}
	return free[rng.Intn(len(free))], true
}
