// Package generator builds solvable puzzle boards by reverse play: starting
// from the terminal position it places matched pairs one at a time, only on
// cells where removing that pair would be the next legal forward move. The
// recorded placements, reversed, are therefore a valid clearing sequence.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/grid"
	"github.com/bzhhan/autoopus/internal/ports"
)

// ErrGiveUp means no legal placement sequence was found within the attempt
// budget; callers normally retry with another seed.
var ErrGiveUp = errors.New("generator: no placement found within budget")

// pair is two tokens placed (and later removed) together.
type pair struct{ a, b domain.Classification }

// ReversePlay generates standard 55-token boards.
type ReversePlay struct {
	// Attempts bounds full restarts before giving up. Zero means 20.
	Attempts int
}

func New() *ReversePlay { return &ReversePlay{} }

// census is the standard board composition: gold alone in the terminal
// position, every lower metal paired with a quicksilver, four pairs each of
// the basics, plus salt, vitae and mors pairs.
func census() []pair {
	pairs := []pair{
		{domain.Silver, domain.Quicksilver},
		{domain.Copper, domain.Quicksilver},
		{domain.Iron, domain.Quicksilver},
		{domain.Tin, domain.Quicksilver},
		{domain.Lead, domain.Quicksilver},
	}
	for _, c := range []domain.Classification{domain.Fire, domain.Water, domain.Earth, domain.Air} {
		for i := 0; i < 4; i++ {
			pairs = append(pairs, pair{c, c})
		}
	}
	pairs = append(pairs, pair{domain.Salt, domain.Salt}, pair{domain.Salt, domain.Salt})
	for i := 0; i < 4; i++ {
		pairs = append(pairs, pair{domain.Vitae, domain.Mors})
	}
	return pairs
}

// order shuffles the non-metal pairs and splices the metal pairs back in at
// random positions with their relative order intact: metals must come off
// the board lowest rank first, so reversed they go on highest rank first.
func order(rng *rand.Rand) []pair {
	all := census()
	metals := all[:5]
	rest := append([]pair(nil), all[5:]...)
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	out := make([]pair, 0, len(all))
	slots := make([]int, len(metals))
	for i := range slots {
		slots[i] = rng.Intn(len(rest) + 1)
	}
	// ascending slot positions keep metal order stable under insertion
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && slots[j] < slots[j-1]; j-- {
			slots[j], slots[j-1] = slots[j-1], slots[j]
		}
	}
	mi := 0
	for pos, p := range rest {
		for mi < len(metals) && slots[mi] == pos {
			out = append(out, metals[mi])
			mi++
		}
		out = append(out, p)
	}
	for mi < len(metals) {
		out = append(out, metals[mi])
		mi++
	}
	return out
}

// Generate builds a board on g from the given seed, returning the board and
// a clearing sequence the solver-independent replay of which empties it.
func (r *ReversePlay) Generate(ctx context.Context, seed int64, g *grid.Hex) (*board.Board, []domain.Move, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	attempts := r.Attempts
	if attempts <= 0 {
		attempts = 20
	}
	stats := ports.Stats{}
	if need := 2*len(census()) + 1; g.CellCount() < need {
		return nil, nil, stats, fmt.Errorf("generator: grid too small: %d cells, need %d", g.CellCount(), need)
	}

	for a := 0; a < attempts; a++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return nil, nil, stats, err
		}
		classes := make([]domain.Classification, g.CellCount())
		for i := range classes {
			classes[i] = domain.Empty
		}
		classes[g.Center()] = domain.Gold

		moves, ok := r.place(rng, g, classes, order(rng), &stats)
		if !ok {
			continue
		}
		b := board.New(g)
		if err := b.SetState(classes); err != nil {
			stats.Duration = time.Since(start)
			return nil, nil, stats, err
		}
		// placements run backwards in time; the clearing sequence is the
		// reverse
		for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
			moves[i], moves[j] = moves[j], moves[i]
		}
		stats.Duration = time.Since(start)
		return b, moves, stats, nil
	}
	stats.Duration = time.Since(start)
	return nil, nil, stats, ErrGiveUp
}

// maxProbes bounds candidate checks within one attempt; exhausting it fails
// the attempt so Generate restarts with a freshly shuffled pair order.
const maxProbes = 1 << 18

// place lays the pairs on the growing board by backtracking: each pair goes
// on some empty cell pair whose removal would be the next legal forward move,
// and a dead end unwinds to the previous pair's next candidate instead of
// abandoning the whole attempt.
func (r *ReversePlay) place(rng *rand.Rand, g *grid.Hex, classes []domain.Classification, pairs []pair, stats *ports.Stats) ([]domain.Move, bool) {
	moves := make([]domain.Move, 0, len(pairs))
	probes := maxProbes
	if !placeFrom(rng, g, classes, pairs, &moves, stats, &probes) {
		return nil, false
	}
	return moves, true
}

func placeFrom(rng *rand.Rand, g *grid.Hex, classes []domain.Classification, pairs []pair, moves *[]domain.Move, stats *ports.Stats, probes *int) bool {
	if len(pairs) == 0 {
		return true
	}
	p := pairs[0]
	if !domain.Matches(p.a, p.b, lowestAfter(classes, p)) {
		return false
	}
	var empty []int
	for i, c := range classes {
		if c == domain.Empty {
			empty = append(empty, i)
		}
	}
	rng.Shuffle(len(empty), func(i, j int) { empty[i], empty[j] = empty[j], empty[i] })

	for x := 0; x < len(empty); x++ {
		for y := x + 1; y < len(empty); y++ {
			if *probes <= 0 {
				return false
			}
			*probes--
			stats.Iterations++
			i, j := empty[x], empty[y]
			classes[i], classes[j] = p.a, p.b
			if unlockedAt(g, classes, i) && unlockedAt(g, classes, j) {
				*moves = append(*moves, domain.NewMove(i, j))
				if placeFrom(rng, g, classes, pairs[1:], moves, stats, probes) {
					return true
				}
				*moves = (*moves)[:len(*moves)-1]
			}
			classes[i], classes[j] = domain.Empty, domain.Empty
		}
	}
	return false
}

// lowestAfter returns the lowest-ranked metal present once p is on the board,
// or Unknown when none is. Metals go on highest rank first, so the metal of a
// quicksilver pair is always the lowest present at its own placement.
func lowestAfter(classes []domain.Classification, p pair) domain.Classification {
	var present [6]bool
	for _, c := range classes {
		if r := c.MetalRank(); r >= 0 {
			present[r] = true
		}
	}
	if r := p.a.MetalRank(); r >= 0 {
		present[r] = true
	}
	if r := p.b.MetalRank(); r >= 0 {
		present[r] = true
	}
	for r, m := range domain.MetalOrder {
		if present[r] {
			return m
		}
	}
	return domain.Unknown
}

// unlockedAt mirrors the board unlock rule for one cell against a raw
// classification sequence, so candidate scans touch only the two placed
// cells' neighborhoods instead of rebuilding a board per candidate.
func unlockedAt(g *grid.Hex, classes []domain.Classification, i int) bool {
	var open [6]bool
	for s, n := range g.Neighbors(i) {
		open[s] = n == grid.Off || classes[n] == domain.Empty
	}
	for s := 0; s < 6; s++ {
		if open[s] && open[(s+1)%6] && open[(s+2)%6] {
			return true
		}
	}
	return false
}
