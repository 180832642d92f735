package agent

import (
	"math"

	"dotsboxes/game"
	"dotsboxes/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type exploringAgent struct {
	search
	temperature float64
}

// NewExploringAgent returns an agent for self-play that samples its move from
// a softmax over the candidate scores instead of always taking the best one.
// Temperature is in score units; lower values play closer to the best move.
func NewExploringAgent(player game.Player, config Config, temperature float64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return exploringAgent{search: newSearch(player, config), temperature: temperature}
}

func (a exploringAgent) FindMove(board *game.Board) (game.EdgeID, searcher.SearchMetrics, bool) {
	candidates := a.engine.Scores(a.state(board))
	metric := a.metrics.Complete()
	if len(candidates) == 0 {
		return game.EdgeID{}, metric, false
	}
	policy := adjustTemperature(candidates, a.temperature)
	return sample(candidates, policy, a.rng), metric, true
}

func adjustTemperature(candidates []searcher.Candidate[game.EdgeID], temperature float64) []float64 {
	best := lo.MaxBy(candidates, func(a, b searcher.Candidate[game.EdgeID]) bool {
		return a.Score > b.Score
	}).Score

	// Shift by the best score so exp never overflows
	policy := lo.Map(candidates, func(c searcher.Candidate[game.EdgeID], _ int) float64 {
		return math.Exp(float64(c.Score-best) / temperature)
	})
	// Normalize
	sum := lo.Sum(policy)
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(candidates []searcher.Candidate[game.EdgeID], policy []float64, rng *rand.Rand) game.EdgeID {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return candidates[i].Move
		}
	}
	return candidates[len(candidates)-1].Move // Fallback in case of rounding errors
}
