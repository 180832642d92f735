package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"dotsboxes/config"
	"dotsboxes/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, dir, file string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, file))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows[1:]
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Games = 2
	cfg.Seed = 99
	cfg.OutDir = t.TempDir()
	return cfg
}

func TestRun(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Run("recording every game of every matchup", func(t *testing.T) {
		cfg := testConfig(t)
		greedy := metrics.AgentConfig{ID: 1, Rollouts: 1}
		sampling := metrics.AgentConfig{ID: 2, Rollouts: 2, Temperature: 1}
		matchUps := [][]metrics.AgentConfig{{greedy, sampling}, {sampling, greedy}}

		dir := Run("smoke", cfg, []metrics.AgentConfig{greedy, sampling}, matchUps)

		require.Equal(t, filepath.Join(cfg.OutDir, "smoke"), filepath.Dir(dir))
		require.Len(t, readRows(t, dir, "agent_configs.csv"), 2)

		games := readRows(t, dir, "game_records.csv")
		require.Len(t, games, 4)
		require.Equal(t, []string{"Red", "Blue", "Red", "Blue"}, []string{games[0][3], games[1][3], games[2][3], games[3][3]},
			"The starting player should alternate")
		require.Equal(t, "2", games[2][1], "Agent1 of the second matchup")

		require.Len(t, readRows(t, dir, "move_records.csv"), 4*12, "Every 3x3 game has 12 moves")
	})

	t.Run("storing the retries that were played", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Games = 1
		cfg.Retries = 7
		unset := metrics.AgentConfig{ID: 1, Rollouts: 1}
		explicit := metrics.AgentConfig{ID: 2, Rollouts: 1, Retries: 2}

		dir := Run("retries", cfg, []metrics.AgentConfig{unset, explicit}, [][]metrics.AgentConfig{{unset, explicit}})

		rows := readRows(t, dir, "agent_configs.csv")
		require.Equal(t, []string{"1", "1", "7", "0"}, rows[0])
		require.Equal(t, []string{"2", "1", "2", "0"}, rows[1])
	})

	t.Run("resolving unset search settings", func(t *testing.T) {
		cfg := config.Default()
		cfg.Rollouts = 4
		cfg.Retries = 0

		got := resolve(cfg, metrics.AgentConfig{ID: 3, Temperature: 0.5})

		require.Equal(t, metrics.AgentConfig{ID: 3, Rollouts: 4, Retries: 3, Temperature: 0.5}, got)
	})

	t.Run("panicking when the output cannot be created", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Games = 1
		blocker := filepath.Join(cfg.OutDir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		cfg.OutDir = blocker

		c := metrics.AgentConfig{ID: 1, Rollouts: 1}
		require.Panics(t, func() { Run("blocked", cfg, []metrics.AgentConfig{c}, [][]metrics.AgentConfig{{c, c}}) })
	})
}
