package metrics

import (
	"time"

	"dotsboxes/game"
	"dotsboxes/searcher"
)

// AgentConfig describes one side of a matchup. A zero Temperature means the
// agent always plays its best scored move.
type AgentConfig struct {
	ID          int
	Rollouts    int
	Retries     int
	Temperature float64
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.EdgeID
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         string // "Red", "Blue" or "Draw"
	RedScore       int
	BlueScore      int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays Red
	Agent2 int // AgentConfig.ID, plays Blue
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
