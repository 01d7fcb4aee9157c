package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a fixed depth searcher. The depth is chosen at setup and never
// adapts during a game.
type Minimax struct {
	depth      int
	goroutines int
	evalName   string
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithEvaluationFn(name string, evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evalName = name
			m.evaluate = evaluate
		}
	}
}

// WithGoroutines spreads the root candidates over a pool of workers. The
// chosen move is the same as with a single goroutine.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{ // Default values
		depth:      depth,
		goroutines: 1,
		evalName:   "positional",
		evaluate:   game.EvaluatePositional,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// SelectMove searches board for color. The caller must make sure color has
// a legal move; otherwise the result carries no playable coordinates.
func (m *Minimax) SelectMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric) {
	s := search{evaluate: m.evaluate, metrics: m.metrics}

	m.metrics.Start(m.depth, m.goroutines, m.evalName)
	var best game.Move
	if m.goroutines > 1 {
		best = s.selectParallel(board, m.depth, color, m.goroutines)
	} else {
		best = s.selectMove(board, m.depth, color)
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("depth %d search for %s chose %s with value %d", m.depth, color, best, best.Value)
	return best, metric
}

type search struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// selectMove is negamax without pruning: every value is expressed from the
// perspective of the side to move at that ply.
func (s search) selectMove(board *game.Board, depth int, color game.Color) game.Move {
	s.metrics.AddNode()

	if board.IsTerminal() {
		s.metrics.AddTerminal()
		return game.Move{Value: outcome(board, color)}
	}

	moves := board.LegalMoves(color)
	if len(moves) == 0 {
		s.metrics.AddPass()
		// Being blocked at the last ply is scored as a loss. This is a
		// heuristic bias: only a double pass actually ends the game.
		if depth == 1 {
			return game.Move{Value: Loss}
		}
		reply := s.selectMove(board, depth-1, color.Opponent())
		reply.Value = -reply.Value
		return reply
	}

	for i := range moves {
		moves[i].Value = s.evaluateMove(board, moves[i], depth, color)
	}
	return pickBest(moves)
}

// evaluateMove plays move on a private copy of board and scores the result
// for color.
func (s search) evaluateMove(board *game.Board, move game.Move, depth int, color game.Color) int {
	child := board.Clone()
	child.Play(move, color)

	if depth == 1 {
		s.metrics.AddNode()
		s.metrics.AddLeaf()
		return s.evaluate(child, color)
	}
	return -s.selectMove(child, depth-1, color.Opponent()).Value
}

// selectParallel evaluates the root candidates concurrently, each worker
// on its own copies, and reduces them in enumeration order.
func (s search) selectParallel(board *game.Board, depth int, color game.Color, goroutines int) game.Move {
	moves := board.LegalMoves(color)
	if len(moves) == 0 { // Terminal or forced pass
		return s.selectMove(board, depth, color)
	}
	s.metrics.AddNode()

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				moves[i].Value = s.evaluateMove(board, moves[i], depth, color)
			}
		}()
	}

	wg.Wait()
	return pickBest(moves)
}
