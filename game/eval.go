package game

// SquareValues holds the static positional value of each playable cell,
// indexed [y-1][x-1]. Corners are prized and the cells touching them are
// penalized because they tend to hand the corner to the opponent.
var SquareValues = [Size][Size]int{
	{220, -20, 30, 25, 25, 30, -20, 220},
	{-20, -40, -10, -10, -10, -10, -40, -20},
	{30, -10, 4, 4, 4, 4, -10, 30},
	{25, -10, 4, 2, 2, 4, -10, 25},
	{25, -10, 4, 2, 2, 4, -10, 25},
	{30, -10, 4, 4, 4, 4, -10, 30},
	{-20, -40, -10, -10, -10, -10, -40, -20},
	{220, -20, 30, 25, 25, 30, -20, 220},
}

// MobilityWeight scales the legal move differential in EvaluateMobility.
const MobilityWeight = 5

// Evaluators maps configuration names to leaf heuristics.
var Evaluators = map[string]Evaluate{
	"positional": EvaluatePositional,
	"discs":      EvaluateDiscs,
	"mobility":   EvaluateMobility,
}

// CountPieces counts color's pieces in the playable region.
func (b *Board) CountPieces(color Color) int {
	own := color.Cell()
	count := 0
	for y := 1; y <= Size; y++ {
		for x := 1; x <= Size; x++ {
			if b.cells[y][x] == own {
				count++
			}
		}
	}
	return count
}

// PositionalScore sums the weights of color's cells and subtracts the
// weights of the opponent's cells.
func (b *Board) PositionalScore(color Color) int {
	own := color.Cell()
	opp := color.Opponent().Cell()
	score := 0
	for y := 1; y <= Size; y++ {
		for x := 1; x <= Size; x++ {
			switch b.cells[y][x] {
			case own:
				score += b.Weight(x, y)
			case opp:
				score -= b.Weight(x, y)
			}
		}
	}
	return score
}

func EvaluatePositional(b *Board, color Color) int {
	return b.PositionalScore(color)
}

// EvaluateDiscs is the plain piece differential.
func EvaluateDiscs(b *Board, color Color) int {
	return b.CountPieces(color) - b.CountPieces(color.Opponent())
}

// EvaluateMobility adds a bonus for having more legal replies than the
// opponent on top of the positional score.
func EvaluateMobility(b *Board, color Color) int {
	mobility := len(b.LegalMoves(color)) - len(b.LegalMoves(color.Opponent()))
	return b.PositionalScore(color) + MobilityWeight*mobility
}
