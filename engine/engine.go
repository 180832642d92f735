package engine

import (
	"dotsboxes/experiments/metrics"
	"dotsboxes/game"
)

type Engine interface {
	// Run plays a game till the board is full or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

func winnerName(board *game.Board) string {
	if winner, ok := board.Winner(); ok {
		return winner.String()
	}
	if board.Terminal() {
		return "Draw"
	}
	return ""
}
