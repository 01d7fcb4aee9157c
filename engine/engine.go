package engine

import "othello/experiments/metrics"

type Engine interface {
	// Run plays a game till it is over or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
