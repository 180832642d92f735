package searcher

import "fmt"

// Checkpoint counts the moves applied through it and takes all of them back on
// Close. Open one, defer Close, and the state is restored on every way out of
// the scope, panics included. Checkpoints on the same state nest; the inner one
// must be closed before the outer one applies again.
type Checkpoint[M any] struct {
	state     State[M]
	mutations int
	closed    bool
}

func NewCheckpoint[M any](state State[M]) *Checkpoint[M] {
	return &Checkpoint[M]{state: state}
}

// Apply plays move on the underlying state. Moves handed to a checkpoint come
// from the state's own legal moves, so a rejected move is a broken invariant.
func (c *Checkpoint[M]) Apply(move M) {
	if c.closed {
		panic("apply on a closed checkpoint")
	}
	if !c.state.ApplyMove(move) {
		panic(fmt.Sprintf("applying move %v failed", move))
	}
	c.mutations++
}

func (c *Checkpoint[M]) Mutations() int {
	return c.mutations
}

// Close undoes every move applied through the checkpoint. Calling it again is a no-op.
func (c *Checkpoint[M]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	n := c.mutations
	c.mutations = 0
	if !c.state.UndoMoves(n) {
		panic(fmt.Sprintf("undo of %d moves failed", n))
	}
}

// WithCheckpoint runs fn under a fresh checkpoint on state and rolls back
// whatever fn applied once it returns.
func WithCheckpoint[M any](state State[M], fn func(cp *Checkpoint[M])) {
	cp := NewCheckpoint(state)
	defer cp.Close()

	fn(cp)
}
