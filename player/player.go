package player

import (
	"bufio"
	"fmt"
	"io"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"
	"othello/searcher/mcts"
	"strconv"
	"strings"
)

// Player chooses the next move for one side. Implementations differ only
// in how the move is produced; applying it is the coordinator's job.
type Player interface {
	NextMove(board *game.Board, color game.Color) (game.Move, error)
}

// Kind is a player selection made at setup.
type Kind struct {
	Human  bool
	Random bool
	MCTS   bool
	Depth  int // Search depth of a minimax computer player
}

func (k Kind) String() string {
	switch {
	case k.Human:
		return "human"
	case k.Random:
		return "random"
	case k.MCTS:
		return "mcts"
	default:
		return fmt.Sprintf("computer%d", k.Depth)
	}
}

// ParseKind accepts "human", "random", "mcts" or "computer1" up to the
// deepest configured search.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "human":
		return Kind{Human: true}, nil
	case "random":
		return Kind{Random: true}, nil
	case "mcts":
		return Kind{MCTS: true}, nil
	}
	if rest, ok := strings.CutPrefix(s, "computer"); ok {
		depth, err := strconv.Atoi(rest)
		if err == nil && depth >= 1 && depth <= meta.MAX_DEPTH {
			return Kind{Depth: depth}, nil
		}
	}
	return Kind{}, fmt.Errorf("unknown player %q: want human, random, mcts or computer1..computer%d", s, meta.MAX_DEPTH)
}

// New builds a player of the given kind. Humans read moves from in and
// prompt on out; random and mcts players are seeded with seed.
func New(kind Kind, in *bufio.Scanner, out io.Writer, seed uint64) Player {
	switch {
	case kind.Human:
		return NewHuman(in, out)
	case kind.Random:
		return NewComputer(agent.NewRandomAgent(seed))
	case kind.MCTS:
		return NewComputer(agent.NewEvaluationAgent(mcts.New(mcts.WithEpisodes(meta.EPISODES), mcts.WithSeed(seed), mcts.WithMetrics())))
	default:
		return NewComputer(agent.NewEvaluationAgent(searcher.NewMinimax(kind.Depth, searcher.WithMetrics())))
	}
}

// Computer delegates move selection to an agent.
type Computer struct {
	agent  agent.Agent
	metric metrics.SearchMetric
}

func NewComputer(a agent.Agent) *Computer {
	return &Computer{agent: a}
}

func (c *Computer) NextMove(board *game.Board, color game.Color) (game.Move, error) {
	if !board.HasAnyLegalMove(color) {
		return game.Move{}, fmt.Errorf("%s has no legal move", color)
	}
	move, metric := c.agent.FindMove(board, color)
	c.metric = metric
	return move, nil
}

// LastMetric returns the metrics of the most recent search.
func (c *Computer) LastMetric() metrics.SearchMetric {
	return c.metric
}
