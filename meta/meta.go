// meta/meta.go
package meta

// WIN_VALUE scores a finished game for the winner. It must exceed any
// positional evaluation so a decided game outranks heuristics.
const WIN_VALUE = 10000

// MAX_DEPTH is the deepest search offered to players at setup.
const MAX_DEPTH = 3

// MAX_TURNS caps a match. A game can last at most 60 placements.
const MAX_TURNS = 60

// GO_ROUTINES defines the number of goroutines for root-parallel search in experiments.
const GO_ROUTINES = 8

// EPISODES is the number of MCTS episodes per move for the mcts player.
const EPISODES = 1000
