package agent

import (
	"testing"

	"dotsboxes/game"
	"dotsboxes/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBoard(t *testing.T, width, height int, moves ...game.EdgeID) *game.Board {
	t.Helper()
	b, err := game.NewBoard(width, height)
	require.NoError(t, err)
	for _, m := range moves {
		require.True(t, b.Apply(m), "move %v should be legal", m)
	}
	return b
}

// chainBoard leaves Blue to move on a 2-cell board where V(1,0) takes both
// cells and V(2,0) hands both to Red.
func chainBoard(t *testing.T) *game.Board {
	return newBoard(t, 3, 2, game.V(0, 0), game.H(0, 0), game.H(0, 1), game.H(1, 0), game.H(1, 1))
}

func TestSearchState(t *testing.T) {
	t.Run("snapshotting the board", func(t *testing.T) {
		board := newBoard(t, 3, 3)
		state := NewSearchState(board, 3)

		require.True(t, state.ApplyMove(game.V(0, 0)))

		owner, _ := board.EdgeOwner(game.V(0, 0))
		require.Equal(t, game.Free, owner, "The caller's board should not change")
		require.Equal(t, 1, state.Depth())
	})

	t.Run("not stacking rejected moves", func(t *testing.T) {
		state := NewSearchState(newBoard(t, 3, 3, game.V(0, 0)), 3)

		require.False(t, state.ApplyMove(game.V(0, 0)))
		require.Equal(t, 0, state.Depth())
	})

	t.Run("panicking on an empty stack", func(t *testing.T) {
		state := NewSearchState(newBoard(t, 3, 3), 3)
		require.True(t, state.ApplyMove(game.H(0, 0)))

		require.Panics(t, func() { state.UndoMoves(2) })
	})

	t.Run("round tripping through a checkpoint", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		board := newBoard(t, 4, 4, game.V(1, 1), game.H(2, 0))
		state := NewSearchState(board, 3)

		searcher.WithCheckpoint[game.EdgeID](state, func(cp *searcher.Checkpoint[game.EdgeID]) {
			for {
				move, ok := state.RandomMove(rng)
				if !ok {
					break
				}
				cp.Apply(move)
			}
			require.True(t, state.Board().Terminal())
		})

		require.True(t, board.Equal(state.Board()), "Every edge, cell and the turn should be restored")
		require.Equal(t, 0, state.Depth())
	})

	t.Run("defaulting negative retries", func(t *testing.T) {
		state := NewSearchState(newBoard(t, 2, 2), -1)
		require.Equal(t, 3, state.retries)
	})
}

func TestRolloutEvaluator(t *testing.T) {
	t.Run("scoring from the machine's perspective", func(t *testing.T) {
		state := NewSearchState(chainBoard(t), 3)
		require.True(t, state.ApplyMove(game.V(1, 0)))

		blue := NewRolloutEvaluator(game.Blue, searcher.WithRollouts(5))
		red := NewRolloutEvaluator(game.Red, searcher.WithRollouts(5))

		require.Equal(t, 10, blue.Evaluate(state), "Blue takes both cells in every rollout")
		require.Equal(t, -10, red.Evaluate(state))
		require.Equal(t, 1, state.Depth(), "Rollouts should be rolled back")
	})
}

func TestEvaluationAgent(t *testing.T) {
	t.Run("taking both cells", func(t *testing.T) {
		board := chainBoard(t)
		before := board.Clone()
		agent := NewEvaluationAgent(game.Blue, Config{Rollouts: 5, Seed: 1})

		move, metric, ok := agent.FindMove(board)

		require.True(t, ok)
		require.Equal(t, game.V(1, 0), move)
		require.True(t, before.Equal(board), "Searching should not mutate the board")
		require.Equal(t, int64(2), metric.Candidates)
		require.Equal(t, int64(10), metric.Playouts)
	})

	t.Run("returning the last free edge", func(t *testing.T) {
		board := newBoard(t, 3, 3)
		for _, e := range board.FreeEdges() {
			if e != game.V(2, 1) {
				require.True(t, board.Apply(e))
			}
		}
		agent := NewEvaluationAgent(board.Turn(), DefaultConfig())

		move, _, ok := agent.FindMove(board)

		require.True(t, ok)
		require.Equal(t, game.V(2, 1), move)
	})

	t.Run("returning nothing on a terminal board", func(t *testing.T) {
		board := newBoard(t, 2, 2, game.V(0, 0), game.V(1, 0), game.H(0, 0), game.H(0, 1))
		agent := NewEvaluationAgent(game.Red, DefaultConfig())

		_, _, ok := agent.FindMove(board)

		require.False(t, ok)
	})
}

func TestExploringAgent(t *testing.T) {
	t.Run("playing the best move at low temperature", func(t *testing.T) {
		agent := NewExploringAgent(game.Blue, Config{Rollouts: 5, Seed: 3}, 0.01)

		move, _, ok := agent.FindMove(chainBoard(t))

		require.True(t, ok)
		require.Equal(t, game.V(1, 0), move)
	})

	t.Run("panicking on a non positive temperature", func(t *testing.T) {
		require.Panics(t, func() { NewExploringAgent(game.Red, DefaultConfig(), 0) })
	})
}

func TestAdjustTemperature(t *testing.T) {
	t.Run("spreading equal scores uniformly", func(t *testing.T) {
		candidates := []searcher.Candidate[game.EdgeID]{
			{Move: game.V(0, 0), Score: 4},
			{Move: game.V(1, 0), Score: 4},
			{Move: game.H(0, 0), Score: 4},
			{Move: game.H(0, 1), Score: 4},
		}

		policy := adjustTemperature(candidates, 1.0)

		for _, p := range policy {
			require.InDelta(t, 0.25, p, 1e-9)
		}
	})

	t.Run("favoring higher scores", func(t *testing.T) {
		candidates := []searcher.Candidate[game.EdgeID]{
			{Move: game.V(0, 0), Score: -10},
			{Move: game.V(1, 0), Score: 10},
		}

		policy := adjustTemperature(candidates, 5.0)

		require.Greater(t, policy[1], policy[0])
		require.InDelta(t, 1.0, policy[0]+policy[1], 1e-9)
	})

	t.Run("sampling by cumulative probability", func(t *testing.T) {
		candidates := []searcher.Candidate[game.EdgeID]{
			{Move: game.V(0, 0)},
			{Move: game.V(1, 0)},
		}
		rng := rand.New(rand.NewSource(5))

		for range 20 {
			require.Equal(t, game.V(1, 0), sample(candidates, []float64{0, 1}, rng))
		}
	})
}
