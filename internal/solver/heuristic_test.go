package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bzhhan/autoopus/internal/domain"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	require.Equal(t, 0.5, w.RemainingFactor)
	require.Equal(t, 0.1, w.LockedPenalty)
	require.Equal(t, 1.0, w.SaltReward)
	require.Equal(t, 1.5, w.MetalPenalty)
}

func TestEstimate(t *testing.T) {
	w := DefaultWeights()

	require.InDelta(t, 0.0, w.Estimate(mkBoard(t, 2, nil)), 1e-9)

	// two unlocked fire marbles: remaining only
	b := mkBoard(t, 2, map[int]domain.Classification{0: domain.Fire, 16: domain.Fire})
	require.InDelta(t, 2*0.5, w.Estimate(b), 1e-9)

	// a lead marble ringed by six fire: 7 remaining, 1 locked, 1 metal
	tokens := map[int]domain.Classification{9: domain.Lead}
	for _, c := range [6]int{14, 10, 5, 4, 8, 13} {
		tokens[c] = domain.Fire
	}
	b = mkBoard(t, 2, tokens)
	require.InDelta(t, 7*0.5+1*0.1+1*1.5, w.Estimate(b), 1e-9)

	// salt subtracts, quicksilver counts as metal
	b = mkBoard(t, 2, map[int]domain.Classification{0: domain.Salt, 16: domain.Quicksilver})
	require.InDelta(t, 2*0.5-1*1.0+1*1.5, w.Estimate(b), 1e-9)
}

func TestEstimateRespectsCustomWeights(t *testing.T) {
	w := Weights{RemainingFactor: 2, LockedPenalty: 0, SaltReward: 0, MetalPenalty: 0}
	b := mkBoard(t, 2, map[int]domain.Classification{0: domain.Fire, 16: domain.Fire, 18: domain.Fire})
	require.InDelta(t, 6.0, w.Estimate(b), 1e-9)
}
