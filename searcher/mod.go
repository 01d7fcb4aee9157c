package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
)

// Win and Loss bracket every heuristic value, so a decided game always
// outranks a positional estimate at the same depth.
const (
	Win  = meta.WIN_VALUE
	Loss = -Win
	Draw = 0
)

// outcome scores a finished board from color's perspective.
func outcome(board *game.Board, color game.Color) int {
	own := board.CountPieces(color)
	opp := board.CountPieces(color.Opponent())
	switch {
	case own > opp:
		return Win
	case own < opp:
		return Loss
	default:
		return Draw
	}
}

// pickBest returns the first move holding the greatest value.
func pickBest(moves []game.Move) game.Move {
	best := moves[0]
	for _, move := range moves[1:] {
		// Strictly > keeps the earliest candidate on ties
		if move.Value > best.Value {
			best = move
		}
	}
	return best
}

// SelectMove runs a plain minimax search to the given depth with the
// positional evaluation and returns the best move for color. Its Value is
// expressed from color's perspective.
func SelectMove(board *game.Board, depth int, color game.Color) game.Move {
	s := search{evaluate: game.EvaluatePositional, metrics: metrics.NewDummyCollector()}
	return s.selectMove(board, depth, color)
}
