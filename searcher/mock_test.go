package searcher

import (
	"iter"
	"slices"

	"golang.org/x/exp/rand"
)

// mockState is a game where each move in moves can be played once, in any order.
type mockState struct {
	moves     []int
	played    []int
	undone    int
	failUndo  bool
	failApply int
}

func newMockState(moves ...int) *mockState {
	return &mockState{moves: moves, failApply: -1}
}

func (m *mockState) LegalMoves() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, move := range m.moves {
			if !slices.Contains(m.played, move) && !yield(move) {
				return
			}
		}
	}
}

func (m *mockState) ApplyMove(move int) bool {
	if move == m.failApply || !slices.Contains(m.moves, move) || slices.Contains(m.played, move) {
		return false
	}
	m.played = append(m.played, move)
	return true
}

func (m *mockState) UndoMoves(n int) bool {
	if m.failUndo || n > len(m.played) {
		return false
	}
	m.played = m.played[:len(m.played)-n]
	m.undone += n
	return true
}

func (m *mockState) RandomMove(rng *rand.Rand) (int, bool) {
	free := slices.Collect(m.LegalMoves())
	if len(free) == 0 {
		return 0, false
	}
	return free[rng.Intn(len(free))], true
}
