package experiments

import (
	"fmt"

	"dotsboxes/config"
	"dotsboxes/engine"
	"dotsboxes/experiments/metrics"
	"dotsboxes/game"
	"dotsboxes/meta"
	"dotsboxes/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var rolloutConfigs = []metrics.AgentConfig{
	{ID: 1, Rollouts: 2},
	{ID: 2, Rollouts: 5},
	{ID: 3, Rollouts: 10},
	{ID: 4, Rollouts: 20},
	{ID: 5, Rollouts: 50},
}

// RunRolloutExperiment pairs a single rollout baseline against agents with
// increasing rollout counts.
func RunRolloutExperiment(cfg config.Config) string {
	baseline := metrics.AgentConfig{ID: 0, Rollouts: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, c := range rolloutConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, c})
	}

	return Run("rollouts", cfg, append(rolloutConfigs, baseline), matchUps)
}

// RunExplorationExperiment pairs the greedy agent against sampling agents of
// decreasing temperature.
func RunExplorationExperiment(cfg config.Config) string {
	baseline := metrics.AgentConfig{ID: 0, Rollouts: cfg.Rollouts}
	configs := []metrics.AgentConfig{
		{ID: 1, Rollouts: cfg.Rollouts, Temperature: 4},
		{ID: 2, Rollouts: cfg.Rollouts, Temperature: 1},
		{ID: 3, Rollouts: cfg.Rollouts, Temperature: 0.25},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, c := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, c})
	}

	return Run("exploration", cfg, append(configs, baseline), matchUps)
}

// Run plays cfg.Games games per matchup, alternating the starting player, and
// stores the results under cfg.OutDir. It returns the result directory.
func Run(name string, cfg config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) string {
	configs = lo.Map(configs, func(c metrics.AgentConfig, _ int) metrics.AgentConfig {
		return resolve(cfg, c)
	})
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := resolve(cfg, matchup[0])
		config2 := resolve(cfg, matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			count++
			starting := game.Red
			if i%2 == 1 {
				starting = game.Blue
			}

			winner, gameMetric, moveMetrics := runGame(cfg, count, starting, config1, config2)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, cfg.OutDir, configs, gameRecords, moveRecords)
}

func store(name, outDir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) string {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return writer.Dir()
}

// runGame plays agent1 as Red against agent2 as Blue
func runGame(cfg config.Config, id int, starting game.Player, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	board, err := game.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		panic(fmt.Sprintf("failed to create board: %v", err))
	}
	board.Restart(starting)

	e := engine.NewLocal(board,
		createAgent(game.Red, cfg, config1, 2*id),
		createAgent(game.Blue, cfg, config2, 2*id+1),
	)
	return e.Run()
}

// resolve fills the search settings an agent config leaves unset, so the
// stored config is the one that was played.
func resolve(cfg config.Config, c metrics.AgentConfig) metrics.AgentConfig {
	if c.Rollouts <= 0 {
		c.Rollouts = cfg.Rollouts
	}
	if c.Rollouts <= 0 {
		c.Rollouts = meta.ROLLOUTS
	}
	if c.Retries <= 0 {
		c.Retries = cfg.Retries
	}
	if c.Retries <= 0 {
		c.Retries = meta.SAMPLE_RETRIES
	}
	return c
}

func createAgent(player game.Player, cfg config.Config, c metrics.AgentConfig, offset int) agent.Agent {
	ac := agent.Config{Rollouts: c.Rollouts, Retries: c.Retries}
	if cfg.Seed != 0 {
		ac.Seed = cfg.Seed + uint64(offset)
	}

	if c.Temperature > 0 {
		return agent.NewExploringAgent(player, ac, c.Temperature)
	}
	return agent.NewEvaluationAgent(player, ac)
}
