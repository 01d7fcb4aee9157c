package searcher

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests fixed depth negamax:
- terminal root: sentinel move with Win / Loss / Draw from the mover's perspective
- forced pass: Loss at depth 1, sign-flipped opponent result deeper
- depth 1: best positional score after the move, first candidate on ties
- depth >= 2: value equals the negated best reply one ply down
- options: evaluation function, metrics, root parallelism gives identical results
*/

const midgame = `
	........
	........
	..WB....
	...BW...
	..BBWW..
	....B...
	........
	........`

const cornerPass = `
	WB......
	........
	........
	........
	........
	........
	........
	........`

func parse(t *testing.T, s string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestSelectMoveTerminal(t *testing.T) {
	t.Run("winning side scores a win", func(t *testing.T) {
		b := parse(t, `
			BBBBBBBB
			BBBBBBBB
			BBBBBBBB
			BBBBBBBB
			BBBBBBBB
			BBBBBBBB
			BBBBBBBB
			BBBBBBBW`)

		require.Equal(t, game.Move{Value: Win}, SelectMove(b, 1, game.Black))
		require.Equal(t, game.Move{Value: Loss}, SelectMove(b, 3, game.White))
	})

	t.Run("equal counts score a draw", func(t *testing.T) {
		b := parse(t, `
			BWBWBWBW
			WBWBWBWB
			BWBWBWBW
			WBWBWBWB
			BWBWBWBW
			WBWBWBWB
			BWBWBWBW
			WBWBWBWB`)

		require.Equal(t, game.Move{Value: Draw}, SelectMove(b, 2, game.Black))
	})
}

func TestSelectMovePass(t *testing.T) {
	b := parse(t, cornerPass)

	t.Run("blocked at the last ply scores a loss", func(t *testing.T) {
		got := SelectMove(b, 1, game.Black)
		require.Equal(t, game.Move{Value: Loss}, got)
	})

	t.Run("blocked with depth left hands the turn over", func(t *testing.T) {
		got := SelectMove(b, 2, game.Black)

		// White's only reply (3,1) leaves 220 - 20 + 30 on White's side
		require.Equal(t, game.Move{X: 3, Y: 1, Value: -230}, got,
			"Should return the opponent's reply with its value negated")
	})

	t.Run("board is left untouched", func(t *testing.T) {
		before := b.Hash()
		SelectMove(b, 3, game.Black)
		require.Equal(t, before, b.Hash())
	})

	t.Run("decided game outranks the heuristic", func(t *testing.T) {
		require.Equal(t, game.Move{X: 3, Y: 1, Value: 230}, SelectMove(b, 1, game.White))
		require.Equal(t, game.Move{X: 3, Y: 1, Value: Win}, SelectMove(b, 2, game.White),
			"Capturing Black's last piece ends the game")
	})
}

func TestSelectMoveDepthOne(t *testing.T) {
	t.Run("opening ties go to the first move in scan order", func(t *testing.T) {
		b := game.NewBoard()

		require.Equal(t, game.Move{X: 4, Y: 3, Value: 8}, SelectMove(b, 1, game.White))
		require.Equal(t, game.Move{X: 5, Y: 3, Value: 8}, SelectMove(b, 1, game.Black))
	})

	t.Run("maximizes the positional score after the move", func(t *testing.T) {
		for _, b := range []*game.Board{game.NewBoard(), parse(t, midgame)} {
			for _, color := range []game.Color{game.Black, game.White} {
				want := game.Move{Value: -1 << 31}
				for _, m := range b.LegalMoves(color) {
					child := b.Clone()
					child.Play(m, color)
					if score := child.PositionalScore(color); score > want.Value {
						want = game.Move{X: m.X, Y: m.Y, Value: score}
					}
				}

				require.Equal(t, want, SelectMove(b, 1, color), "color %s", color)
			}
		}
	})
}

func TestSelectMoveDeterminism(t *testing.T) {
	b := parse(t, midgame)
	for depth := 1; depth <= 3; depth++ {
		first := SelectMove(b, depth, game.Black)
		second := SelectMove(b, depth, game.Black)
		require.Equal(t, first, second, "depth %d", depth)
	}
}

func TestSelectMoveNegamaxSign(t *testing.T) {
	t.Run("opening at depth 2", func(t *testing.T) {
		got := SelectMove(game.NewBoard(), 2, game.White)

		// Every white opening is symmetric and every black reply scores 0
		require.Equal(t, game.Move{X: 4, Y: 3, Value: 0}, got)
	})

	boards := map[string]*game.Board{
		"opening": game.NewBoard(),
		"midgame": parse(t, midgame),
		"pass":    parse(t, cornerPass),
	}
	for name, b := range boards {
		for depth := 2; depth <= 3; depth++ {
			for _, color := range []game.Color{game.Black, game.White} {
				if !b.HasAnyLegalMove(color) {
					continue
				}
				got := SelectMove(b, depth, color)

				child := b.Clone()
				child.Play(got, color)
				reply := SelectMove(child, depth-1, color.Opponent())

				require.Equal(t, -reply.Value, got.Value,
					"%s: depth %d value for %s should negate the best reply", name, depth, color)
			}
		}
	}
}

func TestNewMinimax(t *testing.T) {
	t.Run("panics below depth 1", func(t *testing.T) {
		require.Panics(t, func() {
			NewMinimax(0)
		}, "Should panic when depth is 0")
	})

	t.Run("defaults to the positional evaluation", func(t *testing.T) {
		m := NewMinimax(2)
		b := parse(t, midgame)

		got, metric := m.SelectMove(b, game.White)

		require.Equal(t, 2, m.Depth())
		require.Equal(t, SelectMove(b, 2, game.White), got)
		require.Equal(t, 0, metric.Nodes, "Metrics should be off by default")
	})

	t.Run("uses the configured evaluation", func(t *testing.T) {
		m := NewMinimax(1, WithEvaluationFn("discs", game.EvaluateDiscs))

		got, _ := m.SelectMove(game.NewBoard(), game.White)

		require.Equal(t, game.Move{X: 4, Y: 3, Value: 3}, got)
	})

	t.Run("ignores invalid options", func(t *testing.T) {
		m := NewMinimax(1, WithEvaluationFn("none", nil), WithGoroutines(0))

		require.Equal(t, "positional", m.evalName)
		require.Equal(t, 1, m.goroutines)
	})
}

func TestMinimaxMetrics(t *testing.T) {
	t.Run("depth 1 from the opening", func(t *testing.T) {
		m := NewMinimax(1, WithMetrics())

		_, metric := m.SelectMove(game.NewBoard(), game.White)

		require.Equal(t, 1, metric.Depth)
		require.Equal(t, "positional", metric.Evaluator)
		require.Equal(t, 5, metric.Nodes, "Root plus four leaves")
		require.Equal(t, 4, metric.Leaves)
		require.Equal(t, 0, metric.Terminals)
	})

	t.Run("depth 2 from the opening", func(t *testing.T) {
		m := NewMinimax(2, WithMetrics())

		_, metric := m.SelectMove(game.NewBoard(), game.White)

		require.Equal(t, 17, metric.Nodes, "Root, four replies, three leaves each")
		require.Equal(t, 12, metric.Leaves)
	})

	t.Run("counting passes and terminals", func(t *testing.T) {
		m := NewMinimax(2, WithMetrics())

		_, metric := m.SelectMove(parse(t, cornerPass), game.Black)

		require.Equal(t, 1, metric.Passes)
		require.Equal(t, 0, metric.Terminals)

		_, metric = m.SelectMove(parse(t, cornerPass), game.White)
		require.Equal(t, 1, metric.Terminals)
	})
}

func TestMinimaxParallel(t *testing.T) {
	boards := []*game.Board{game.NewBoard(), parse(t, midgame), parse(t, cornerPass)}
	for _, b := range boards {
		for depth := 1; depth <= 3; depth++ {
			for _, color := range []game.Color{game.Black, game.White} {
				sequential := NewMinimax(depth, WithMetrics())
				parallel := NewMinimax(depth, WithMetrics(), WithGoroutines(4))

				want, wantMetric := sequential.SelectMove(b, color)
				got, gotMetric := parallel.SelectMove(b, color)

				require.Equal(t, want, got, "depth %d color %s", depth, color)
				require.Equal(t, wantMetric.Nodes, gotMetric.Nodes)
				require.Equal(t, wantMetric.Leaves, gotMetric.Leaves)
				require.Equal(t, 4, gotMetric.Goroutines)
			}
		}
	}
}

func TestPickBest(t *testing.T) {
	moves := []game.Move{{X: 1, Value: 3}, {X: 2, Value: 7}, {X: 3, Value: 7}, {X: 4, Value: -1}}
	require.Equal(t, game.Move{X: 2, Value: 7}, pickBest(moves))
}
