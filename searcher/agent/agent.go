package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns the move to play for color and performance metrics (if collected) from the search
	FindMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric)
}
