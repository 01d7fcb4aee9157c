package mcts

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome, also used as the virtual loss
const Draw = 0.0

// ucb1 = q/n + sqrt(c^2*ln(N)/n)
func ucb1(rewards float64, visits int, normalizer float64) float64 {
	if visits == 0 { // Prevent division by zero
		panic("cannot compute UCB1: 0 visits")
	}
	n := float64(visits)
	return rewards/n + math.Sqrt(normalizer/n)
}
