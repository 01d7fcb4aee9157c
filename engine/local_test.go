package engine

import (
	"bufio"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"othello/searcher/agent"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests the local match engine:
- a game between computers always finishes with at most 64 pieces
- search metrics are recorded per move
- identical setups play identical games
- the update hook sees every move
- player errors abort the game
*/

func computer(depth int) player.Player {
	return player.NewComputer(agent.NewEvaluationAgent(searcher.NewMinimax(depth, searcher.WithMetrics())))
}

func TestLocalEngineRun(t *testing.T) {
	e := LocalEngine([2]player.Player{computer(1), computer(2)}, game.White)

	winner, gameMetric, moveMetrics, err := e.Run()

	require.NoError(t, err)
	require.Contains(t, []string{"Black", "White", "Draw"}, winner)
	require.Equal(t, winner, gameMetric.Winner)
	require.Equal(t, "White", gameMetric.StartingPlayer)
	require.LessOrEqual(t, gameMetric.BlackPieces+gameMetric.WhitePieces, 64)
	require.Equal(t, 4+gameMetric.TotalMoves, gameMetric.BlackPieces+gameMetric.WhitePieces)
	require.Len(t, moveMetrics, gameMetric.TotalMoves)
	require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

	first := moveMetrics[0]
	require.Equal(t, 1, first.Step)
	require.Equal(t, "White", first.Player)
	require.Equal(t, "d3", first.Move, "Every opening ties, so the first in scan order is played")
	require.Equal(t, 2, first.Depth, "White plays with the depth 2 computer")
	require.Positive(t, first.Nodes)

	for i, mm := range moveMetrics {
		require.Equal(t, i+1, mm.Step)
	}
}

func TestLocalEngineDeterminism(t *testing.T) {
	play := func() []string {
		e := LocalEngine([2]player.Player{computer(2), computer(1)}, game.Black)
		_, _, moveMetrics, err := e.Run()
		require.NoError(t, err)

		moves := make([]string, len(moveMetrics))
		for i, mm := range moveMetrics {
			moves[i] = mm.Move
		}
		return moves
	}

	require.Equal(t, play(), play(), "Minimax players should replay the same game")
}

func TestLocalEngineOnUpdate(t *testing.T) {
	e := LocalEngine([2]player.Player{computer(1), computer(1)}, game.White)
	var seen []game.Move
	e.OnUpdate = func(move game.Move, color game.Color, board *game.Board) {
		require.True(t, board.Cell(move.X, move.Y).Holds(color), "The placed piece belongs to the mover")
		seen = append(seen, move)
	}

	_, gameMetric, _, err := e.Run()

	require.NoError(t, err)
	require.Len(t, seen, gameMetric.TotalMoves)
}

func TestLocalEnginePlayerError(t *testing.T) {
	human := player.NewHuman(bufio.NewScanner(strings.NewReader("")), &strings.Builder{})
	e := LocalEngine([2]player.Player{computer(1), human}, game.White)

	_, _, _, err := e.Run()

	require.ErrorContains(t, err, "turn 1")
}

func TestLocalEnginePanicsWithoutPlayer(t *testing.T) {
	require.Panics(t, func() {
		LocalEngine([2]player.Player{computer(1), nil}, game.White)
	})
}
