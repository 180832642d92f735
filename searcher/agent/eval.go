package agent

import (
	"dotsboxes/game"
	"dotsboxes/searcher"
)

type evaluationAgent struct {
	search
}

// NewEvaluationAgent returns an agent that always plays the best scored move.
func NewEvaluationAgent(player game.Player, config Config) Agent {
	return evaluationAgent{search: newSearch(player, config)}
}

func (a evaluationAgent) FindMove(board *game.Board) (game.EdgeID, searcher.SearchMetrics, bool) {
	move, ok := a.engine.BestMove(a.state(board))
	return move, a.metrics.Complete(), ok
}
