package mcts

import (
	"othello/experiments/metrics"
	"othello/game"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS is a tree parallel Monte Carlo tree search with virtual loss and
// uniformly random playouts. A fresh tree is built for every move.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	seed       uint64
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithDuration searches for a fixed time instead of a fixed number of
// episodes.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// SelectMove searches board for color and returns the most visited move.
// A blocked color gets a zero move.
func (m *MCTS) SelectMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric) {
	m.metrics.Start(0, m.goroutines, "mcts")
	if !board.HasAnyLegalMove(color) {
		return game.Move{}, m.metrics.Complete()
	}

	root := newDecision(nil, board, color.Opponent())
	m.metrics.AddNode()

	// Run simulations to collect statistics
	if m.episodes > 0 {
		m.iterate(root, board)
	} else {
		m.countdown(root, board)
	}
	best := root.bestMove()
	metric := m.metrics.Complete()

	log.Debug().Msgf("mcts for %s chose %s after %d episodes", color, best, metric.Leaves)
	return best, metric
}

func (m *MCTS) iterate(root *decision, board *game.Board) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, board, rng)
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *decision, board *game.Board) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, board, rng)
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

// simulate runs one episode on a private copy of board.
func (m *MCTS) simulate(root *decision, board *game.Board, rng *rand.Rand) {
	board = board.Clone()
	node, expanded := selectThenExpand(root, board)
	if expanded {
		m.metrics.AddNode()
	}
	if len(node.moves) == 0 {
		m.metrics.AddTerminal()
	}
	result := rollout(board, node.toMove, rng, m.metrics)
	backup(node, result)
	m.metrics.AddLeaf()
}

// selectThenExpand descends from root and reports whether the descent
// ended by adding a new node rather than at a terminal one.
func selectThenExpand(root *decision, board *game.Board) (*decision, bool) {
	parent := root
	child, selected := parent.selectOrExpand(board)
	for selected {
		parent = child
		child, selected = parent.selectOrExpand(board)
	}
	return child, child != parent
}

// rollout plays random moves till the game is over and returns the result
// from Black's perspective.
func rollout(board *game.Board, color game.Color, rng *rand.Rand, collector metrics.Collector) float64 {
	for !board.IsTerminal() {
		moves := board.LegalMoves(color)
		if len(moves) == 0 {
			collector.AddPass()
			color = color.Opponent()
			continue
		}
		board.Play(moves[rng.Intn(len(moves))], color) // Random rollout policy
		color = color.Opponent()
	}
	return result(board)
}

func result(board *game.Board) float64 {
	black := board.CountPieces(game.Black)
	white := board.CountPieces(game.White)
	switch {
	case black > white:
		return Win
	case black < white:
		return Loss
	default:
		return Draw
	}
}

func backup(node *decision, result float64) {
	for node != nil {
		node = node.backup(result)
	}
}
