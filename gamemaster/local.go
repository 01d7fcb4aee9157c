package gamemaster

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/meta"
	"othello/utils"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter returns the next applied move and the board after it, or
// ok == false when no update is pending.
type UpdateGetter func() (move game.Move, board *game.Board, ok bool)

type Engine interface {
	Init() (*game.Board, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	board *game.Board
}

var _ Engine = (*Coordinator)(nil)

// Init resets the game to the initial position and returns a copy of the
// board together with a getter for the updates of every applied move.
// The update feed is closed once the game is over.
func (c *Coordinator) Init() (*game.Board, UpdateGetter) {
	if c.board == nil {
		c.board = game.NewBoard()
	} else {
		c.board.Reset()
	}
	c.toMove = c.first
	c.turns = 0
	// A game has at most 60 placements, so sends never block
	c.updateCh = make(chan update, meta.MAX_TURNS)
	c.checkEnd()

	return c.board.Clone(), c.Updates()
}

// Updates returns a non-blocking getter over the update feed of the
// current game.
func (c *Coordinator) Updates() UpdateGetter {
	updateCh := c.updateCh
	return func() (game.Move, *game.Board, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return game.Move{}, nil, false
			}
			return u.move, u.board.Clone(), true
		default:
			// No updates yet
			return game.Move{}, nil, false
		}
	}
}

// Play applies a move for the side to move. The move must be one of that
// side's legal moves; its Value is ignored.
func (c *Coordinator) Play(move game.Move) error {
	if c.phase == GameOver {
		return ErrGameOver
	}

	legalMoves := c.board.LegalMoves(c.toMove)
	if utils.FindIndex(legalMoves, move.Square()) < 0 {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, move, c.toMove)
	}

	flipped := c.apply(move)
	log.Debug().Msgf("%s played %s flipping %d, board %x", c.toMove, move, flipped, c.board.Hash())
	c.updateCh <- update{move: move, board: c.board.Clone()}

	c.toMove = c.toMove.Opponent()
	c.checkEnd()
	return nil
}
