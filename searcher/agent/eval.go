package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Searcher is a search algorithm that picks a move for a position, such as
// minimax or MCTS.
type Searcher interface {
	SelectMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric)
}

type evaluationAgent struct {
	searcher Searcher
}

// NewEvaluationAgent returns an agent that always plays the searcher's choice.
func NewEvaluationAgent(searcher Searcher) Agent {
	return evaluationAgent{searcher: searcher}
}

func (a evaluationAgent) FindMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric) {
	return a.searcher.SelectMove(board, color)
}
