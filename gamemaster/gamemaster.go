package gamemaster

import (
	"fmt"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

type Phase int

const (
	WaitingForMove Phase = iota
	Applying
	CheckingEnd
	GameOver
)

func (p Phase) String() string {
	switch p {
	case WaitingForMove:
		return "WaitingForMove"
	case Applying:
		return "Applying"
	case CheckingEnd:
		return "CheckingEnd"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MoveSource produces the next move for a side, e.g. a human at the
// keyboard or a search agent.
type MoveSource interface {
	NextMove(board *game.Board, color game.Color) (game.Move, error)
}

// Coordinator owns the board and whose turn it is. It sequences moves,
// skips blocked sides and detects the end of the game. It is not safe for
// concurrent use.
type Coordinator struct {
	board    *game.Board
	first    game.Color
	toMove   game.Color
	phase    Phase
	pieces   [2]int // Indexed by color
	turns    int
	updateCh chan update
}

// NewCoordinator starts a game from the initial position with first to move.
func NewCoordinator(first game.Color) *Coordinator {
	c := &Coordinator{first: first}
	c.Init()
	return c
}

// NewCoordinatorFromBoard continues from an arbitrary position. If toMove
// is blocked the turn passes immediately; a terminal board is game over.
func NewCoordinatorFromBoard(board *game.Board, toMove game.Color) *Coordinator {
	c := &Coordinator{
		board:    board.Clone(),
		first:    toMove,
		toMove:   toMove,
		updateCh: make(chan update, meta.MAX_TURNS),
	}
	c.checkEnd()
	return c
}

func (c *Coordinator) ToMove() game.Color {
	return c.toMove
}

func (c *Coordinator) Phase() Phase {
	return c.phase
}

// Board returns a copy of the current position.
func (c *Coordinator) Board() *game.Board {
	return c.board.Clone()
}

// Score returns the piece counts recorded after the last applied move.
func (c *Coordinator) Score() (black, white int) {
	return c.pieces[game.Black], c.pieces[game.White]
}

// Turns counts applied moves. Passes do not consume a turn.
func (c *Coordinator) Turns() int {
	return c.turns
}

// Winner returns "Black", "White" or "Draw" once the game is over, and ""
// while it is still running.
func (c *Coordinator) Winner() string {
	if c.phase != GameOver {
		return ""
	}
	black, white := c.Score()
	switch {
	case black > white:
		return game.Black.String()
	case white > black:
		return game.White.String()
	default:
		return "Draw"
	}
}

// Step asks the source for the side to move and plays its choice. Blocked
// sides have already been skipped, so the source is never asked to pass.
func (c *Coordinator) Step(sources [2]MoveSource) (game.Move, error) {
	if c.phase == GameOver {
		return game.Move{}, ErrGameOver
	}

	color := c.toMove
	move, err := sources[color].NextMove(c.board.Clone(), color)
	if err != nil {
		return game.Move{}, fmt.Errorf("%s failed to choose a move: %w", color, err)
	}
	if err := c.Play(move); err != nil {
		return game.Move{}, err
	}
	return move, nil
}

// apply places the move for the side to move, flips captures and recounts
// the pieces.
func (c *Coordinator) apply(move game.Move) int {
	c.phase = Applying
	flipped := c.board.Play(move, c.toMove)
	c.turns++
	c.recount()
	return flipped
}

func (c *Coordinator) recount() {
	c.pieces[game.Black] = c.board.CountPieces(game.Black)
	c.pieces[game.White] = c.board.CountPieces(game.White)
}

// checkEnd ends the game and closes the update feed when neither side can
// move. Otherwise it hands the turn to whichever side has a legal move,
// preferring the current value of toMove.
func (c *Coordinator) checkEnd() {
	c.phase = CheckingEnd
	c.recount()
	if c.board.IsTerminal() {
		c.phase = GameOver
		close(c.updateCh)
		log.Debug().Msgf("game over after %d turns: black %d, white %d", c.turns, c.pieces[game.Black], c.pieces[game.White])
		return
	}
	if !c.board.HasAnyLegalMove(c.toMove) {
		c.pass()
	}
	c.phase = WaitingForMove
}

func (c *Coordinator) pass() {
	log.Debug().Msgf("%s has no legal move and passes", c.toMove)
	c.toMove = c.toMove.Opponent()
}
