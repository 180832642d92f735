// Package searcher picks moves for any game whose state can apply and undo moves
// in place. It plays one real move per candidate under a Checkpoint and lets an
// Evaluator estimate the resulting position.
package searcher

import (
	"iter"

	"golang.org/x/exp/rand"
)

// State is a mutable game position that can take back its own moves.
// UndoMoves reverts the n most recent ApplyMove calls, newest first.
type State[M any] interface {
	LegalMoves() iter.Seq[M]
	ApplyMove(move M) bool
	UndoMoves(n int) bool
}

// Playout is a State that can also draw a random legal move, which is all a
// Rollout needs to play a game to its end.
type Playout[M any] interface {
	State[M]
	RandomMove(rng *rand.Rand) (M, bool)
}

// Evaluator scores a position from the searching player's perspective.
// The state may be mutated during evaluation but must be restored before returning.
type Evaluator[S any] interface {
	Evaluate(state S) int
}

type EvaluatorFunc[S any] func(state S) int

func (f EvaluatorFunc[S]) Evaluate(state S) int {
	return f(state)
}

type Candidate[M any] struct {
	Move  M
	Score int
}
