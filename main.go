package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"dotsboxes/config"
	"dotsboxes/engine"
	"dotsboxes/experiments"
	"dotsboxes/game"
	"dotsboxes/render"
	"dotsboxes/searcher/agent"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", "play", "play, selfplay or experiment")
	experiment := flag.String("experiment", "rollouts", "rollouts, exploration or throughput")

	// Load the file first so command line flags override it
	cfg, err := config.Load(lookupConfigPath(os.Args[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	switch *mode {
	case "play":
		err = play(cfg, os.Stdin, os.Stdout, termenv.NewOutput(os.Stdout).Profile)
	case "selfplay":
		selfPlay(cfg, os.Stdout, termenv.NewOutput(os.Stdout).Profile)
	case "experiment":
		err = runExperiment(cfg, *experiment)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

// lookupConfigPath finds -config before the flag set is built, since the file
// provides the defaults of the other flags.
func lookupConfigPath(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != "config" || !strings.HasPrefix(arg, "-") {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func agentConfig(cfg config.Config) agent.Config {
	return agent.Config{Rollouts: cfg.Rollouts, Retries: cfg.Retries, Seed: cfg.Seed}
}

func play(cfg config.Config, in io.Reader, out io.Writer, profile termenv.Profile) error {
	machine, _ := cfg.MachinePlayer()
	session, err := engine.NewSession(cfg.Width, cfg.Height, agent.NewEvaluationAgent(machine, agentConfig(cfg)))
	if err != nil {
		return err
	}

	show := func() {
		board := session.Board()
		if err := render.Board(out, board, profile); err != nil {
			log.Error().Err(err).Msg("failed to draw board")
		}
		fmt.Fprintln(out, render.Status(board, profile))
	}
	show()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		switch cmd.kind {
		case commandQuit:
			return nil
		case commandRestart:
			session.Restart(cmd.player)
		case commandMove:
			if !session.Apply(cmd.edge) {
				fmt.Fprintf(out, "move %v rejected\n", cmd.edge)
				continue
			}
		}
		show()
	}
	return scanner.Err()
}

func selfPlay(cfg config.Config, out io.Writer, profile termenv.Profile) {
	board, err := game.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create board")
	}
	red := agentConfig(cfg)
	blue := agentConfig(cfg)
	if cfg.Seed != 0 {
		blue.Seed = cfg.Seed + 1
	}
	e := engine.NewLocal(board,
		agent.NewEvaluationAgent(game.Red, red),
		agent.NewExploringAgent(game.Blue, blue, cfg.Temperature),
	)

	winner, gameMetric, _ := e.Run()

	if err := render.Board(out, board, profile); err != nil {
		log.Error().Err(err).Msg("failed to draw board")
	}
	fmt.Fprintln(out, render.Status(board, profile))
	log.Info().
		Str("winner", winner).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("self-play finished")
}

func runExperiment(cfg config.Config, name string) error {
	var dir string
	switch name {
	case "rollouts":
		dir = experiments.RunRolloutExperiment(cfg)
	case "exploration":
		dir = experiments.RunExplorationExperiment(cfg)
	case "throughput":
		dir = experiments.RunThroughputExperiment(cfg)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	log.Info().Str("dir", dir).Msg("experiment results stored")
	return nil
}

type commandKind int

const (
	commandMove commandKind = iota
	commandRestart
	commandQuit
)

type command struct {
	kind   commandKind
	edge   game.EdgeID
	player game.Player
}

var errUsage = errors.New("usage: v <col> <row> | h <col> <row> | restart red|blue | quit")

func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, errUsage
	}

	switch fields[0] {
	case "quit", "q":
		return command{kind: commandQuit}, nil
	case "restart":
		if len(fields) != 2 {
			return command{}, errUsage
		}
		player, err := config.ParsePlayer(fields[1])
		if err != nil {
			return command{}, errUsage
		}
		return command{kind: commandRestart, player: player}, nil
	case "v", "h":
		if len(fields) != 3 {
			return command{}, errUsage
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("bad column %q: %w", fields[1], errUsage)
		}
		row, err := strconv.Atoi(fields[2])
		if err != nil {
			return command{}, fmt.Errorf("bad row %q: %w", fields[2], errUsage)
		}
		if fields[0] == "v" {
			return command{kind: commandMove, edge: game.V(col, row)}, nil
		}
		return command{kind: commandMove, edge: game.H(col, row)}, nil
	}
	return command{}, errUsage
}
