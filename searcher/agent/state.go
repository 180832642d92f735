package agent

import (
	"iter"

	"dotsboxes/game"
	"dotsboxes/meta"

	"golang.org/x/exp/rand"
)

// SearchState is a private copy of a board plus the edges applied to it since
// the copy was taken. The stack only says which edges to take back and in what
// order; Board.Undo works out everything else.
type SearchState struct {
	board   *game.Board
	stack   []game.EdgeID
	retries int
}

// NewSearchState snapshots board, so searching never touches the caller's copy.
func NewSearchState(board *game.Board, retries int) *SearchState {
	if retries < 0 {
		retries = meta.SAMPLE_RETRIES
	}
	return &SearchState{
		board:   board.Clone(),
		retries: retries,
	}
}

func (s *SearchState) Board() *game.Board {
	return s.board
}

func (s *SearchState) Depth() int {
	return len(s.stack)
}

func (s *SearchState) LegalMoves() iter.Seq[game.EdgeID] {
	return s.board.LegalMoves()
}

func (s *SearchState) ApplyMove(edge game.EdgeID) bool {
	if !s.board.Apply(edge) {
		return false
	}
	s.stack = append(s.stack, edge)
	return true
}

func (s *SearchState) UndoMoves(n int) bool {
	for range n {
		if len(s.stack) == 0 {
			panic("mutation stack empty during undo")
		}
		edge := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if !s.board.Undo(edge) {
			return false
		}
	}
	return true
}

func (s *SearchState) RandomMove(rng *rand.Rand) (game.EdgeID, bool) {
	return s.board.RandomMove(rng, s.retries)
}
