// Package solver searches the puzzle state space for a clearing sequence.
// The primary engine is a best-first graph search over board states; a
// depth-first engine is available as a cheaper, non-optimal alternative.
package solver

import (
	"container/heap"
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/ports"
)

var (
	// ErrNoSolution means the frontier was exhausted without reaching a
	// solved board.
	ErrNoSolution = errors.New("solver: no solution found")
	// ErrInterrupted means the configured interrupt condition fired. It is
	// a terminal outcome distinct from exhaustion, not a failure of the
	// engine itself.
	ErrInterrupted = errors.New("solver: search interrupted by configured condition")
)

// defaultMemoSize bounds the heuristic memo; boards rediscovered on
// convergent paths hit it by identity hash.
const defaultMemoSize = 1 << 16

// Config carries the explicit inputs of one engine instance. A zero Weights
// value selects DefaultWeights.
type Config struct {
	Weights   Weights
	Interrupt Interrupt
	Sink      ports.ProgressSink
	MemoSize  int
}

// AStar is the best-first search engine. Instances are not safe for
// concurrent use; run concurrent searches on separate instances.
type AStar struct {
	weights   Weights
	interrupt Interrupt
	sink      ports.ProgressSink
	memo      *lru.Cache[uint64, float64]
}

// NewAStar builds an engine from explicit configuration.
func NewAStar(cfg Config) *AStar {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	size := cfg.MemoSize
	if size <= 0 {
		size = defaultMemoSize
	}
	memo, _ := lru.New[uint64, float64](size)
	return &AStar{weights: cfg.Weights, interrupt: cfg.Interrupt, sink: cfg.Sink, memo: memo}
}

// node is one frontier entry. seq makes complete priority ties deterministic
// without ever comparing boards.
type node struct {
	f      float64
	g      int
	board  *board.Board
	path   []domain.Move
	parent *board.Board
	seq    uint64
}

type frontier []*node

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	return q[i].seq < q[j].seq
}
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)   { *q = append(*q, x.(*node)) }
func (q *frontier) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

func (s *AStar) estimate(b *board.Board) float64 {
	key := b.Hash()
	if h, ok := s.memo.Get(key); ok {
		return h
	}
	h := s.weights.Estimate(b)
	s.memo.Add(key, h)
	return h
}

// Solve runs the search from the initial board. It returns the move path on
// success, ErrNoSolution on frontier exhaustion, ErrInterrupted when the
// interrupt policy fires, or the context error on cancellation.
func (s *AStar) Solve(ctx context.Context, initial *board.Board) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	var seq uint64
	open := &frontier{{board: initial}}
	heap.Init(open)
	closed := make(map[uint64]struct{})
	stats := ports.Stats{}

	if s.sink != nil {
		s.sink.Expanded(ports.Expansion{Node: initial.Hash(), Initial: true})
	}

	for open.Len() > 0 {
		stats.Iterations++
		elapsed := time.Since(start)
		bestG := (*open)[0].g
		if s.sink != nil {
			s.sink.Snapshot(ports.Snapshot{
				Iteration:   stats.Iterations,
				OpenSetSize: open.Len(),
				BestGCost:   bestG,
				Elapsed:     elapsed,
			})
		}
		if s.interrupt.fires(metrics{
			iteration:   stats.Iterations,
			openSetSize: open.Len(),
			bestGCost:   bestG,
			elapsedSecs: elapsed.Seconds(),
		}) {
			stats.Duration = time.Since(start)
			return nil, stats, ErrInterrupted
		}
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return nil, stats, err
		}

		cur := heap.Pop(open).(*node)
		id := cur.board.Hash()
		if _, seen := closed[id]; seen {
			continue
		}
		closed[id] = struct{}{}
		stats.Expanded++

		if s.sink != nil && cur.parent != nil {
			s.sink.Expanded(ports.Expansion{
				Node:      id,
				Parent:    cur.parent.Hash(),
				HasParent: true,
				GCost:     cur.g,
				HCost:     s.estimate(cur.board),
			})
		}

		if cur.board.Solved() {
			if s.sink != nil {
				s.sink.Solved(pathIdentities(initial, cur.path))
			}
			stats.Duration = time.Since(start)
			return cur.path, stats, nil
		}

		for _, mv := range cur.board.Moves() {
			succ, err := cur.board.Apply(mv)
			if err != nil {
				stats.Duration = time.Since(start)
				return nil, stats, err
			}
			if _, seen := closed[succ.Hash()]; seen {
				continue
			}
			g := cur.g + 1
			path := make([]domain.Move, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, mv)
			seq++
			heap.Push(open, &node{
				f:      float64(g) + s.estimate(succ),
				g:      g,
				board:  succ,
				path:   path,
				parent: cur.board,
				seq:    seq,
			})
		}
	}
	stats.Duration = time.Since(start)
	return nil, stats, ErrNoSolution
}

// pathIdentities replays the winning path to collect the board identity of
// every node along it, the initial board included.
func pathIdentities(initial *board.Board, path []domain.Move) []uint64 {
	ids := make([]uint64, 0, len(path)+1)
	ids = append(ids, initial.Hash())
	cur := initial
	for _, mv := range path {
		next, err := cur.Apply(mv)
		if err != nil {
			return ids
		}
		cur = next
		ids = append(ids, cur.Hash())
	}
	return ids
}
