package experiments

import (
	"dotsboxes/config"
	"dotsboxes/experiments/metrics"
)

// RunThroughputExperiment plays one game per rollout count with the same
// config on both sides, so the move records give playouts per second at an
// equal playing strength.
func RunThroughputExperiment(cfg config.Config) string {
	configs := []metrics.AgentConfig{
		{ID: 1, Rollouts: 1},
		{ID: 2, Rollouts: 4},
		{ID: 3, Rollouts: 16},
		{ID: 4, Rollouts: 64},
		{ID: 5, Rollouts: 256},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, c := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{c, c})
	}

	cfg.Games = 1
	return Run("throughput", cfg, configs, matchUps)
}
