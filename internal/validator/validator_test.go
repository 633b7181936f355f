package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/grid"
)

func mk(t *testing.T, tokens []domain.Classification) *board.Board {
	t.Helper()
	g, err := grid.New(5)
	require.NoError(t, err)
	classes := make([]domain.Classification, g.CellCount())
	for i := range classes {
		classes[i] = domain.Empty
	}
	copy(classes, tokens)
	b := board.New(g)
	require.NoError(t, b.SetState(classes))
	return b
}

func rep(c domain.Classification, n int) []domain.Classification {
	out := make([]domain.Classification, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// standard census: 8 of each basic, 4 salt, 4 vitae, 4 mors, 5 quicksilver,
// one of each metal.
func standard() []domain.Classification {
	var tokens []domain.Classification
	for _, c := range []domain.Classification{domain.Fire, domain.Water, domain.Earth, domain.Air} {
		tokens = append(tokens, rep(c, 8)...)
	}
	tokens = append(tokens, rep(domain.Salt, 4)...)
	tokens = append(tokens, rep(domain.Vitae, 4)...)
	tokens = append(tokens, rep(domain.Mors, 4)...)
	tokens = append(tokens, rep(domain.Quicksilver, 5)...)
	tokens = append(tokens, domain.MetalOrder[:]...)
	return tokens
}

func TestStandardCensusPasses(t *testing.T) {
	ok, problems, err := New().Validate(context.Background(), mk(t, standard()))
	require.NoError(t, err)
	require.Empty(t, problems)
	require.True(t, ok)
}

func TestEmptyBoardPasses(t *testing.T) {
	ok, problems, err := New().Validate(context.Background(), mk(t, nil))
	require.NoError(t, err)
	require.True(t, ok, "problems: %v", problems)
}

func TestVitaeMorsImbalance(t *testing.T) {
	tokens := append(standard(), domain.Vitae)
	ok, problems, err := New().Validate(context.Background(), mk(t, tokens))
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, problems[0], "vitae/mors")
}

func TestQuicksilverImbalance(t *testing.T) {
	tokens := append(standard(), domain.Quicksilver, domain.Quicksilver)
	ok, problems, _ := New().Validate(context.Background(), mk(t, tokens))
	require.False(t, ok)
	require.Contains(t, problems[0], "quicksilver")
}

func TestDuplicateMetal(t *testing.T) {
	tokens := append(standard(), domain.Lead, domain.Quicksilver)
	ok, problems, _ := New().Validate(context.Background(), mk(t, tokens))
	require.False(t, ok)
	require.Contains(t, problems[0], "duplicate metal LEAD")
}

func TestUnpairableBasics(t *testing.T) {
	tokens := rep(domain.Fire, 1) // one fire, no salt to absorb it
	ok, problems, _ := New().Validate(context.Background(), mk(t, tokens))
	require.False(t, ok)
	require.Contains(t, problems[0], "unpairable")
}

func TestOddLeftoverSalt(t *testing.T) {
	tokens := append(rep(domain.Fire, 2), rep(domain.Salt, 3)...)
	ok, problems, _ := New().Validate(context.Background(), mk(t, tokens))
	require.False(t, ok)
	require.Contains(t, problems[0], "salt")
}
