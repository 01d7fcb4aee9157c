package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/player"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	white := flag.String("white", "human", "White player: human, random, mcts or computer1..computer3")
	black := flag.String("black", "computer3", "Black player: human, random, mcts or computer1..computer3")
	first := flag.String("first", "white", "Side that moves first: white or black")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the random and mcts players")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: depth, evaluators, mcts or throughput")
	games := flag.Int("games", experiments.NumGames, "Games per matchup in experiments")
	out := flag.String("out", "data", "Root directory for experiment results")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *experiment != "" {
		if err := runExperiment(*experiment, *out, *games); err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
		return
	}

	firstColor, err := game.ParseColor(*first)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid first player")
	}
	var players [2]player.Player
	stdin := bufio.NewScanner(os.Stdin)
	for color, name := range map[game.Color]string{game.Black: *black, game.White: *white} {
		kind, err := player.ParseKind(name)
		if err != nil {
			log.Fatal().Err(err).Msgf("invalid %s player", color)
		}
		players[color] = player.New(kind, stdin, os.Stdout, *seed+uint64(color))
	}

	e := engine.LocalEngine(players, firstColor)
	e.OnUpdate = func(move game.Move, color game.Color, board *game.Board) {
		fmt.Printf("%s played %s\n%s\n", color, move, board)
	}

	fmt.Println(game.NewBoard())
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	switch winner {
	case "":
		fmt.Printf("Stopped after %d moves\n", gameMetric.TotalMoves)
	case "Draw":
		fmt.Printf("Draw at %d-%d\n", gameMetric.BlackPieces, gameMetric.WhitePieces)
	default:
		fmt.Printf("%s wins, black %d, white %d\n", winner, gameMetric.BlackPieces, gameMetric.WhitePieces)
	}
}

func runExperiment(name, root string, games int) error {
	switch name {
	case "depth":
		return experiments.RunDepthExperiment(root, games)
	case "evaluators":
		return experiments.RunEvaluatorExperiment(root, games)
	case "mcts":
		return experiments.RunMCTSExperiment(root, games)
	case "throughput":
		return experiments.RunThroughputExperiment(root, games)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
}
