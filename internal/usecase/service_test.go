package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/generator"
	"github.com/bzhhan/autoopus/internal/grid"
	"github.com/bzhhan/autoopus/internal/solver"
	"github.com/bzhhan/autoopus/internal/validator"
)

func TestServiceGuardsMissingDependencies(t *testing.T) {
	u := NewService(nil, nil, nil)
	g, err := grid.New(2)
	require.NoError(t, err)
	b := board.New(g)

	_, _, err = u.Solve(context.Background(), b)
	require.Error(t, err)
	_, _, _, err = u.Generate(context.Background(), 1, g)
	require.Error(t, err)
	_, _, err = u.Validate(context.Background(), b)
	require.Error(t, err)
}

func TestServiceWiresProviders(t *testing.T) {
	u := NewService(solver.NewAStar(solver.Config{}), generator.New(), validator.New())
	g, err := grid.New(2)
	require.NoError(t, err)

	classes := make([]domain.Classification, g.CellCount())
	for i := range classes {
		classes[i] = domain.Empty
	}
	classes[0], classes[1] = domain.Fire, domain.Fire
	b := board.New(g)
	require.NoError(t, b.SetState(classes))

	ok, _, err := u.Validate(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok)

	path, _, err := u.Solve(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, []domain.Move{domain.NewMove(0, 1)}, path)
}
