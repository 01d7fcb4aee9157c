package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"othello/searcher/agent"
	"othello/searcher/mcts"
	"slices"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per matchup

// RunDepthExperiment pairs a depth 1 baseline against every search depth
// and against the random baseline.
func RunDepthExperiment(root string, games int) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 1, Goroutines: 1, Evaluator: "positional"}
	configs := []metrics.AgentConfig{{ID: 1, Kind: "random", Seed: 1}}
	for depth := 1; depth <= meta.MAX_DEPTH; depth++ {
		configs = append(configs, metrics.AgentConfig{
			ID:         depth + 1,
			Kind:       "minimax",
			Depth:      depth,
			Goroutines: 1,
			Evaluator:  "positional",
		})
	}

	// Each matchup pairs the baseline agent against a challenger
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "depth", games, append(configs, baseline), matchUps)
}

// RunEvaluatorExperiment pairs every leaf evaluation against the
// positional one at the same depth.
func RunEvaluatorExperiment(root string, games int) error {
	const depth = 2
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: depth, Goroutines: 1, Evaluator: "positional"}

	names := make([]string, 0, len(game.Evaluators))
	for name := range game.Evaluators {
		names = append(names, name)
	}
	slices.Sort(names)

	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, name := range names {
		config := metrics.AgentConfig{ID: i + 1, Kind: "minimax", Depth: depth, Goroutines: 1, Evaluator: name}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "evaluators", games, append(configs, baseline), matchUps)
}

// RunMCTSExperiment pairs the deepest minimax search against MCTS with a
// growing number of episodes per move.
func RunMCTSExperiment(root string, games int) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: meta.MAX_DEPTH, Goroutines: 1, Evaluator: "positional"}
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, episodes := range []int{meta.EPISODES / 10, meta.EPISODES / 2, meta.EPISODES} {
		config := metrics.AgentConfig{ID: i + 1, Kind: "mcts", Goroutines: meta.GO_ROUTINES, Episodes: episodes, Seed: 1}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "mcts", games, append(configs, baseline), matchUps)
}

func runExperiment(root, name string, games int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	if games < 1 {
		games = NumGames
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		black := matchup[0]
		white := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(matchUps), black, white)

		for i := 0; i < games; i++ {
			// Alternate the side that opens
			first := game.White
			if i%2 == 1 {
				first = game.Black
			}

			count++
			winner, gameMetric, moveMetrics, err := runGame(black, white, first, count)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with result: %s", mi+1, len(matchUps), i+1, games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(root, name, configs, gameRecords, moveRecords)
}

func store(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return nil
}

// runGame plays one game between two agents and returns the result
func runGame(black, white metrics.AgentConfig, first game.Color, gameID int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := [2]player.Player{
		player.NewComputer(createAgent(black, gameID)),
		player.NewComputer(createAgent(white, gameID)),
	}
	return engine.LocalEngine(players, first).Run()
}

// createAgent builds the agent described by config. Random and MCTS agents
// are reseeded per game so that repeated games differ.
func createAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(config.Seed + uint64(gameID))
	case "mcts":
		return agent.NewEvaluationAgent(mcts.New(
			mcts.WithEpisodes(config.Episodes),
			mcts.WithGoroutines(config.Goroutines),
			mcts.WithSeed(config.Seed+uint64(gameID)),
			mcts.WithMetrics(),
		))
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if evaluate, ok := game.Evaluators[config.Evaluator]; ok {
		options = append(options, searcher.WithEvaluationFn(config.Evaluator, evaluate))
	}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return agent.NewEvaluationAgent(searcher.NewMinimax(config.Depth, options...))
}
