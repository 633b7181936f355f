package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bzhhan/autoopus/internal/domain"
)

func TestDFSSolvesPairs(t *testing.T) {
	b := mkBoard(t, 2, map[int]domain.Classification{
		0: domain.Fire, 1: domain.Fire, 16: domain.Water, 18: domain.Water,
	})
	path, st, err := NewDFS().Solve(context.Background(), b)
	require.NoError(t, err)
	require.Len(t, path, 2)
	require.Greater(t, st.Expanded, 0)

	cur := b
	for _, m := range path {
		require.True(t, cur.ValidMatch(m.A, m.B))
		next, err := cur.Apply(m)
		require.NoError(t, err)
		cur = next
	}
	require.True(t, cur.Solved())
}

func TestDFSNoSolution(t *testing.T) {
	b := mkBoard(t, 2, map[int]domain.Classification{9: domain.Silver})
	_, _, err := NewDFS().Solve(context.Background(), b)
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestDFSCancellation(t *testing.T) {
	b := mkBoard(t, 2, map[int]domain.Classification{0: domain.Fire, 1: domain.Fire})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewDFS().Solve(ctx, b)
	require.ErrorIs(t, err, context.Canceled)
}
