package mcts

import (
	"math"
	"othello/game"
	"sync"
)

// decision is a position in the search tree. Its statistics are rewards
// for mover, the side whose move led here, so a parent maximizes over its
// children directly.
type decision struct {
	sync.Mutex
	parent   *decision
	mover    game.Color
	toMove   game.Color
	moves    []game.Move
	children []*decision
	rewards  float64
	visits   int
}

// newDecision creates the node reached after mover played on board. A
// blocked side is skipped, so toMove is whoever actually plays next; a
// node without moves is terminal.
func newDecision(parent *decision, board *game.Board, mover game.Color) *decision {
	toMove := mover.Opponent()
	moves := board.LegalMoves(toMove)
	if len(moves) == 0 { // Pass
		toMove = mover
		moves = board.LegalMoves(toMove)
	}

	return &decision{
		parent:   parent,
		mover:    mover,
		toMove:   toMove,
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// selectOrExpand descends one level, playing the chosen move on board.
// It returns selected == false once a new child was added or the node is
// terminal, which ends the descent.
func (d *decision) selectOrExpand(board *game.Board) (*decision, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, false
	}

	if len(d.moves) > len(d.children) { // Expandable node
		move := d.moves[len(d.children)]
		board.Play(move, d.toMove)
		child := newDecision(d, board, d.toMove)
		child.applyLoss()
		d.children = append(d.children, child)
		return child, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	board.Play(d.moves[ith], d.toMove)
	child.applyLoss()
	return child, true
}

// pickChild returns the index of the child with the greatest UCB1 score.
func (d *decision) pickChild() int {
	// Children visits include virtual losses still in flight
	total := 0
	for _, child := range d.children {
		total += child.Visits()
	}
	normalizer := CSquared * math.Log(float64(total))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := child.score(normalizer); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss discourages other goroutines from following the same path
// until the episode is backed up.
func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(normalizer float64) float64 {
	d.Lock()
	defer d.Unlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

// backup replaces the virtual loss with the episode's reward and returns
// the parent.
func (d *decision) backup(result float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.rewards -= Loss
		d.visits--
	}

	d.rewards += reward(result, d.mover)
	d.visits++

	return d.parent
}

func (d *decision) Visits() int {
	d.Lock()
	defer d.Unlock()

	return d.visits
}

// bestMove returns the most visited move, the first one on ties. Its
// Value is the visit count.
func (d *decision) bestMove() game.Move {
	d.Lock()
	defer d.Unlock()

	if len(d.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := d.children[0].Visits()
	for i, child := range d.children[1:] {
		if v := child.Visits(); v > maxVisits {
			maxVisits = v
			bestIndex = i + 1
		}
	}
	best := d.moves[bestIndex]
	best.Value = maxVisits
	return best
}

// reward converts a result from Black's perspective to color's.
func reward(result float64, color game.Color) float64 {
	if color == game.Black {
		return result
	}
	return -result
}
