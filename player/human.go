package player

import (
	"bufio"
	"fmt"
	"io"
	"othello/game"
	"othello/utils"
)

// Human reads moves typed as "d3" or "4 3", one per line. Humans sharing
// an input must share its scanner, since a scanner buffers ahead of the
// line it returns.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(scanner *bufio.Scanner, out io.Writer) *Human {
	return &Human{scanner: scanner, out: out}
}

// NextMove prompts until a legal move is entered. It fails when the input
// is exhausted.
func (h *Human) NextMove(board *game.Board, color game.Color) (game.Move, error) {
	legal := board.LegalMoves(color)
	for {
		fmt.Fprintf(h.out, "%s to move: ", color)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Move{}, fmt.Errorf("read move: %w", err)
			}
			return game.Move{}, fmt.Errorf("read move: %w", io.EOF)
		}

		move, err := game.ParseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		if utils.FindIndex(legal, move.Square()) < 0 {
			fmt.Fprintf(h.out, "%s is not a legal move for %s\n", move, color)
			continue
		}
		return move, nil
	}
}
