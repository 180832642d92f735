package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"dotsboxes/game"
	"dotsboxes/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Machine     string  `yaml:"machine"` // "red" or "blue"
	Rollouts    int     `yaml:"rollouts"`
	Retries     int     `yaml:"retries"`
	Seed        uint64  `yaml:"seed"` // 0 seeds from the clock
	Temperature float64 `yaml:"temperature"`
	LogLevel    string  `yaml:"log_level"`
	Games       int     `yaml:"games"`
	OutDir      string  `yaml:"out_dir"`
}

func Default() Config {
	return Config{
		Width:       meta.BOARD_WIDTH,
		Height:      meta.BOARD_HEIGHT,
		Machine:     "blue",
		Rollouts:    meta.ROLLOUTS,
		Retries:     meta.SAMPLE_RETRIES,
		Temperature: 1.0,
		LogLevel:    "info",
		Games:       meta.NUM_GAMES,
		OutDir:      "results",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
// The result is not validated, since flags may still override it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// RegisterFlags binds command line overrides, defaulting to the current values of c.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "number of dots per row")
	fs.IntVar(&c.Height, "height", c.Height, "number of dots per column")
	fs.StringVar(&c.Machine, "machine", c.Machine, "color played by the machine (red or blue)")
	fs.IntVar(&c.Rollouts, "rollouts", c.Rollouts, "random playouts per candidate move")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "zerolog level")
	fs.IntVar(&c.Games, "games", c.Games, "games per experiment matchup")
}

func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: board must be at least 2x2 dots, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Rollouts <= 0 {
		return fmt.Errorf("%w: rollouts must be positive, got %d", ErrInvalidConfig, c.Rollouts)
	}
	if c.Temperature <= 0 {
		return fmt.Errorf("%w: temperature must be positive, got %g", ErrInvalidConfig, c.Temperature)
	}
	if _, err := c.MachinePlayer(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) MachinePlayer() (game.Player, error) {
	return ParsePlayer(c.Machine)
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

func ParsePlayer(s string) (game.Player, error) {
	switch strings.ToLower(s) {
	case "red":
		return game.Red, nil
	case "blue":
		return game.Blue, nil
	}
	return 0, fmt.Errorf("%w: unknown player %q", ErrInvalidConfig, s)
}
