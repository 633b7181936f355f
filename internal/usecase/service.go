package usecase

import (
	"context"
	"errors"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/grid"
	"github.com/bzhhan/autoopus/internal/ports"
)

// Service wires the solver, generator and validator behind one façade for
// the composition layer.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator) *Service {
	return &Service{Solver: s, Generator: g, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *board.Board) ([]domain.Move, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, g *grid.Hex) (*board.Board, []domain.Move, ports.Stats, error) {
	if u.Generator == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, g)
}

func (u *Service) Validate(ctx context.Context, b *board.Board) (bool, []string, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}
