package engine

import (
	"slices"
	"time"

	"dotsboxes/experiments/metrics"
	"dotsboxes/game"
	"dotsboxes/meta"
	"dotsboxes/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Local plays two agents against each other on one board.
type Local struct {
	Board  *game.Board
	Agents map[game.Player]agent.Agent
}

func NewLocal(board *game.Board, agents ...agent.Agent) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	byPlayer := map[game.Player]agent.Agent{}
	for _, a := range agents {
		byPlayer[a.Player()] = a
	}
	if len(byPlayer) != 2 {
		panic("agents must play different colors")
	}
	return &Local{
		Board:  board,
		Agents: byPlayer,
	}
}

// Run executes the game loop until the board is full.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.Board.Turn())

	step := 1
	for !e.Board.Terminal() && step <= meta.MAX_TURNS {
		player := e.Board.Turn()
		move, searchMetric, ok := e.Agents[player].FindMove(e.Board)
		if !ok {
			break
		}
		if !e.Board.Apply(move) {
			fallback := slices.Collect(e.Board.LegalMoves())
			log.Warn().Msgf("agent %s returned illegal move %v, forcing %v", player, move, fallback[0])
			move = fallback[0]
			e.Board.Apply(move)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          step,
			Player:        player,
			Move:          move,
			SearchMetrics: searchMetric,
		})
		step++
	}

	winner := winnerName(e.Board)
	gameMetric.Winner = winner
	gameMetric.RedScore = e.Board.Score(game.Red)
	gameMetric.BlueScore = e.Board.Score(game.Blue)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	return winner, gameMetric, moveMetrics
}
