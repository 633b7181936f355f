package solver

import (
	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
)

// Weights tune the search heuristic. They are an unvalidated linear
// weighting: the search is best-effort-optimal, not provably optimal, and
// the knobs trade breadth for speed.
type Weights struct {
	RemainingFactor float64 `yaml:"remaining_elements_factor"`
	LockedPenalty   float64 `yaml:"locked_marbles_penalty"`
	SaltReward      float64 `yaml:"salt_marbles_reward"`
	MetalPenalty    float64 `yaml:"metal_marbles_penalty"`
}

// DefaultWeights returns the documented defaults.
func DefaultWeights() Weights {
	return Weights{
		RemainingFactor: 0.5,
		LockedPenalty:   0.1,
		SaltReward:      1.0,
		MetalPenalty:    1.5,
	}
}

// Estimate scores the remaining work on a board: remaining tokens weigh in,
// locked tokens and metals (quicksilver included) penalize, salt rewards.
func (w Weights) Estimate(b *board.Board) float64 {
	var remaining, locked, salt, metal int
	for i := 0; i < b.Len(); i++ {
		cell := b.Cell(i)
		if cell.Class.IsSentinel() {
			continue
		}
		remaining++
		if !cell.Unlocked {
			locked++
		}
		switch {
		case cell.Class == domain.Salt:
			salt++
		case cell.Class.IsMetal() || cell.Class == domain.Quicksilver:
			metal++
		}
	}
	return float64(remaining)*w.RemainingFactor +
		float64(locked)*w.LockedPenalty -
		float64(salt)*w.SaltReward +
		float64(metal)*w.MetalPenalty
}
