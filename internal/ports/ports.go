package ports

import (
	"context"
	"time"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/grid"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Iterations int
	Expanded   int
	Duration   time.Duration
}

// Snapshot is the once-per-iteration progress report of a running search.
type Snapshot struct {
	Iteration   int
	OpenSetSize int
	BestGCost   int
	Elapsed     time.Duration
}

// Expansion describes one newly expanded search node. Parent is only
// meaningful when HasParent is set; the initial board has no parent.
type Expansion struct {
	Node      uint64
	Parent    uint64
	HasParent bool
	GCost     int
	HCost     float64
	Initial   bool
}

// ProgressSink receives structured search progress. Attaching one never
// changes search behavior; a nil sink is always acceptable.
type ProgressSink interface {
	Snapshot(Snapshot)
	Expanded(Expansion)
	Solved(path []uint64)
}

// Solver finds a clearing move sequence for a board.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) ([]domain.Move, Stats, error)
}

// Generator creates solvable boards together with a known clearing sequence.
type Generator interface {
	Generate(ctx context.Context, seed int64, g *grid.Hex) (*board.Board, []domain.Move, Stats, error)
}

// Validator performs fast token-census checks before a search is attempted.
type Validator interface {
	Validate(ctx context.Context, b *board.Board) (ok bool, problems []string, err error)
}
