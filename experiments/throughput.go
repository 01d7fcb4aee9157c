package experiments

import (
	"othello/experiments/metrics"
	"othello/meta"
)

// RunThroughputExperiment measures root-parallel search at the deepest
// depth, doubling the worker count up to meta.GO_ROUTINES.
func RunThroughputExperiment(root string, games int) error {
	configs := []metrics.AgentConfig{}
	for id, goroutines := 1, 1; goroutines <= meta.GO_ROUTINES; id, goroutines = id+1, goroutines*2 {
		configs = append(configs, metrics.AgentConfig{
			ID:         id,
			Kind:       "minimax",
			Depth:      meta.MAX_DEPTH,
			Goroutines: goroutines,
			Evaluator:  "positional",
		})
	}

	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment(root, "throughput", games, configs, matchUps)
}
