package engine

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/gamemaster"
	"othello/meta"
	"othello/player"
	"time"

	"github.com/rs/zerolog/log"
)

// Local plays a game between two in-process players.
type Local struct {
	players [2]player.Player // Indexed by color
	first   game.Color

	// OnUpdate, if set, is called after every applied move with the board
	// after the move.
	OnUpdate func(move game.Move, color game.Color, board *game.Board)
}

var _ Engine = (*Local)(nil)

func LocalEngine(players [2]player.Player, first game.Color) *Local {
	for color, p := range players {
		if p == nil {
			panic(fmt.Sprintf("no player for %s", game.Color(color)))
		}
	}
	return &Local{players: players, first: first}
}

// Run plays a fresh game from the initial position.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	coordinator := gamemaster.NewCoordinator(e.first)
	_, getUpdate := coordinator.Init()
	sources := [2]gamemaster.MoveSource{e.players[game.Black], e.players[game.White]}

	gameMetric := metrics.GameMetric{
		StartingPlayer: e.first.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.first)

	for coordinator.Phase() != gamemaster.GameOver && coordinator.Turns() < meta.MAX_TURNS {
		color := coordinator.ToMove()
		move, err := coordinator.Step(sources)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", coordinator.Turns()+1, err)
		}

		moveMetric := metrics.MoveMetric{
			Step:   coordinator.Turns(),
			Player: color.String(),
			Move:   move.String(),
		}
		if computer, ok := e.players[color].(*player.Computer); ok {
			moveMetric.SearchMetric = computer.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Msgf("turn %d: %s plays %s", moveMetric.Step, color, move)

		if _, board, ok := getUpdate(); ok && e.OnUpdate != nil {
			e.OnUpdate(move, color, board)
		}
	}

	winner := coordinator.Winner()
	gameMetric.BlackPieces, gameMetric.WhitePieces = coordinator.Score()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = coordinator.Turns()

	if winner == "" {
		log.Info().Msgf("stopped after %d turns without a winner", coordinator.Turns())
	} else {
		log.Info().Msgf("game over after %d turns with result %s: black %d, white %d",
			coordinator.Turns(), winner, gameMetric.BlackPieces, gameMetric.WhitePieces)
	}

	return winner, gameMetric, moveMetrics, nil
}
