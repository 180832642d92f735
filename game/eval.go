package game

import (
	"fmt"

	"github.com/samber/lo"
)

// Score counts the cells owned by p.
func (b *Board) Score(p Player) int {
	return lo.CountBy(b.cells, func(c Ownership) bool {
		return c == OwnedBy(p)
	})
}

// Margin sums +1 for every cell owned by p and -1 for every other cell.
// It must only be called on a terminal board, where no cell can be free.
func (b *Board) Margin(p Player) int {
	return lo.SumBy(b.cells, func(c Ownership) int {
		owner, ok := c.Owner()
		if !ok {
			panic(fmt.Sprintf("found free cell in completed %dx%d board", b.width, b.height))
		}
		if owner == p {
			return 1
		}
		return -1
	})
}

// Winner returns the player with more cells on a terminal board. It returns
// false while the game is still running and on a draw.
func (b *Board) Winner() (Player, bool) {
	if !b.Terminal() {
		return 0, false
	}
	red, blue := b.Score(Red), b.Score(Blue)
	switch {
	case red > blue:
		return Red, true
	case blue > red:
		return Blue, true
	default:
		return 0, false
	}
}
