package agent

import (
	"time"

	"dotsboxes/game"
	"dotsboxes/meta"
	"dotsboxes/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the agent's move on board with the metrics of the search.
	// It returns false when the board has no free edge left.
	FindMove(board *game.Board) (game.EdgeID, searcher.SearchMetrics, bool)
	Player() game.Player
}

// Config tunes the search behind an agent. Zero values fall back to the defaults in meta.
type Config struct {
	Rollouts int
	Retries  int
	Seed     uint64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Rollouts: meta.ROLLOUTS,
		Retries:  meta.SAMPLE_RETRIES,
	}
}

func (c Config) newRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func (c Config) retries() int {
	if c.Retries <= 0 {
		return meta.SAMPLE_RETRIES
	}
	return c.Retries
}

// NewRolloutEvaluator scores a position by random playouts, counting +1 for
// every cell player ends up with and -1 for every other cell.
func NewRolloutEvaluator(player game.Player, options ...searcher.Option) *searcher.Rollout[game.EdgeID, *SearchState] {
	return searcher.NewRollout[game.EdgeID](func(s *SearchState) int {
		return s.board.Margin(player)
	}, options...)
}

type search struct {
	player  game.Player
	retries int
	engine  *searcher.Engine[game.EdgeID, *SearchState]
	metrics searcher.MetricsCollector
	rng     *rand.Rand
}

func newSearch(player game.Player, config Config) search {
	collector := searcher.NewMetricsCollector()
	rng := config.newRand()
	evaluator := NewRolloutEvaluator(player,
		searcher.WithRollouts(config.Rollouts),
		searcher.WithRand(rng),
		searcher.WithMetrics(collector),
	)
	return search{
		player:  player,
		retries: config.retries(),
		engine:  searcher.NewEngine[game.EdgeID, *SearchState](evaluator, searcher.WithMetrics(collector)),
		metrics: collector,
		rng:     rng,
	}
}

func (s search) Player() game.Player {
	return s.player
}

func (s search) state(board *game.Board) *SearchState {
	return NewSearchState(board, s.retries)
}
