// Package board models one configuration of the marble puzzle: which token
// sits on each hex cell, which cells are currently unlocked, and which pairs
// of cells form a legal removal.
package board

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/grid"
)

var (
	// ErrShapeMismatch reports a classification sequence whose length does
	// not match the grid's cell count. The board is left unmodified.
	ErrShapeMismatch = errors.New("board: classification count does not match cell count")
	// ErrInvalidMove reports a move referencing an out-of-range cell index.
	ErrInvalidMove = errors.New("board: move index out of range")
)

// CellState is one cell's token plus its derived unlocked flag.
type CellState struct {
	Class    domain.Classification
	Unlocked bool
}

// Board is a fixed-length sequence of cell states over a hex grid. Apply
// never mutates the receiver; searches treat boards as immutable values with
// a memoized identity hash.
type Board struct {
	grid      *grid.Hex
	cells     []CellState
	hash      uint64
	hashValid bool
}

// New creates a board with every cell Unknown and not yet unlocked; unlock
// flags first materialize on SetState.
func New(g *grid.Hex) *Board {
	b := &Board{grid: g, cells: make([]CellState, g.CellCount())}
	for i := range b.cells {
		b.cells[i].Class = domain.Unknown
	}
	return b
}

// Grid returns the adjacency table the board was built against.
func (b *Board) Grid() *grid.Hex { return b.grid }

// Len returns the cell count.
func (b *Board) Len() int { return len(b.cells) }

// Cell returns the state of cell i.
func (b *Board) Cell(i int) CellState { return b.cells[i] }

// SetState replaces every cell's classification in index order and recomputes
// unlock flags. Returns ErrShapeMismatch (board untouched) on a length
// disagreement.
func (b *Board) SetState(classes []domain.Classification) error {
	if len(classes) != len(b.cells) {
		return fmt.Errorf("%w: got %d, want %d", ErrShapeMismatch, len(classes), len(b.cells))
	}
	for i, c := range classes {
		b.cells[i] = CellState{Class: c}
	}
	b.updateUnlocked()
	b.hashValid = false
	return nil
}

// updateUnlocked recomputes the unlocked flag for every cell. A token is
// unlocked when some run of 3 consecutive neighbor slots (wrapping around)
// are each off-grid or EMPTY; sentinel cells are trivially unlocked.
func (b *Board) updateUnlocked() {
	for i := range b.cells {
		if b.cells[i].Class.IsSentinel() {
			b.cells[i].Unlocked = true
			continue
		}
		var open [6]bool
		for s, n := range b.grid.Neighbors(i) {
			open[s] = n == grid.Off || b.cells[n].Class == domain.Empty
		}
		unlocked := false
		for s := 0; s < 6; s++ {
			if open[s] && open[(s+1)%6] && open[(s+2)%6] {
				unlocked = true
				break
			}
		}
		b.cells[i].Unlocked = unlocked
	}
}

// lowestMetal returns the lowest-ranked metal classification still present,
// or Unknown if no metal remains.
func (b *Board) lowestMetal() domain.Classification {
	var present [6]bool
	for i := range b.cells {
		if r := b.cells[i].Class.MetalRank(); r >= 0 {
			present[r] = true
		}
	}
	for r, m := range domain.MetalOrder {
		if present[r] {
			return m
		}
	}
	return domain.Unknown
}

// ValidMatch reports whether removing cells i and j together is legal right
// now: both unlocked, distinct, and their classifications pair under the
// matching rules.
func (b *Board) ValidMatch(i, j int) bool {
	if i == j || !b.cells[i].Unlocked || !b.cells[j].Unlocked {
		return false
	}
	e1, e2 := b.cells[i].Class, b.cells[j].Class
	if e1.IsSentinel() || e2.IsSentinel() {
		return false
	}
	return domain.Matches(e1, e2, b.lowestMetal())
}

// Moves recomputes unlock flags and returns every legal move, canonicalized
// and deduplicated, in ascending index order.
func (b *Board) Moves() []domain.Move {
	b.updateUnlocked()
	var unlocked []int
	for i := range b.cells {
		if b.cells[i].Unlocked && !b.cells[i].Class.IsSentinel() {
			unlocked = append(unlocked, i)
		}
	}
	var moves []domain.Move
	for x := 0; x < len(unlocked); x++ {
		for y := x + 1; y < len(unlocked); y++ {
			if b.ValidMatch(unlocked[x], unlocked[y]) {
				moves = append(moves, domain.NewMove(unlocked[x], unlocked[y]))
			}
		}
	}
	return moves
}

// Apply produces the successor board with both of the move's cells emptied
// and unlock flags recomputed. The receiver is untouched.
func (b *Board) Apply(m domain.Move) (*Board, error) {
	if m.A < 0 || m.A >= len(b.cells) || m.B < 0 || m.B >= len(b.cells) {
		return nil, fmt.Errorf("%w: %v on %d cells", ErrInvalidMove, m, len(b.cells))
	}
	next := &Board{grid: b.grid, cells: make([]CellState, len(b.cells))}
	copy(next.cells, b.cells)
	next.cells[m.A] = CellState{Class: domain.Empty}
	next.cells[m.B] = CellState{Class: domain.Empty}
	next.updateUnlocked()
	return next, nil
}

// Solved reports the terminal condition: no tokens remain, or exactly one
// remains and it is gold.
func (b *Board) Solved() bool {
	remaining := 0
	last := domain.Empty
	for i := range b.cells {
		if !b.cells[i].Class.IsSentinel() {
			remaining++
			if remaining > 1 {
				return false
			}
			last = b.cells[i].Class
		}
	}
	return remaining == 0 || last == domain.Gold
}

// Hash is the memoized identity of the full cell state sequence
// (classification and unlocked flag per cell).
func (b *Board) Hash() uint64 {
	if !b.hashValid {
		d := xxhash.New()
		buf := make([]byte, 2)
		for i := range b.cells {
			buf[0] = byte(b.cells[i].Class)
			buf[1] = 0
			if b.cells[i].Unlocked {
				buf[1] = 1
			}
			_, _ = d.Write(buf)
		}
		b.hash = d.Sum64()
		b.hashValid = true
	}
	return b.hash
}

// Equal reports element-wise equality of the two cell state sequences.
func (b *Board) Equal(other *Board) bool {
	if other == nil || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
