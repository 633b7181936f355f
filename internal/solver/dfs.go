package solver

import (
	"context"
	"time"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/ports"
)

// DFS is a straightforward recursive solver. It returns the first clearing
// sequence it finds, which is usually longer-searched but lighter on memory
// than the best-first engine, and makes no optimality attempt.
type DFS struct{}

func NewDFS() *DFS { return &DFS{} }

func (s *DFS) Solve(ctx context.Context, initial *board.Board) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	stats := ports.Stats{}
	closed := make(map[uint64]struct{})
	var path []domain.Move

	var dfs func(b *board.Board) bool
	dfs = func(b *board.Board) bool {
		if ctx.Err() != nil {
			return false
		}
		stats.Iterations++
		id := b.Hash()
		if _, seen := closed[id]; seen {
			return false
		}
		closed[id] = struct{}{}
		stats.Expanded++
		if b.Solved() {
			return true
		}
		for _, mv := range b.Moves() {
			next, err := b.Apply(mv)
			if err != nil {
				continue
			}
			path = append(path, mv)
			if dfs(next) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	ok := dfs(initial)
	stats.Duration = time.Since(start)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, ErrNoSolution
	}
	return path, stats, nil
}
