// Package grid builds the fixed neighbor adjacency table for a pointy-top
// hexagonal board. Cells are enumerated in axial-coordinate order: q runs
// from -radius to radius, r from max(-radius,-q-radius) to min(radius,-q+radius).
// Pixel geometry is deliberately absent; the table works purely in indices.
package grid

import "fmt"

// Off marks a neighbor slot that falls outside the grid.
const Off = -1

// axial directions for the six neighbors, in circular order:
// E, SE, SW, W, NW, NE.
var directions = [6][2]int{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1}}

// Hex is an immutable hexagonal grid of a given radius with a precomputed
// neighbor table.
type Hex struct {
	radius    int
	neighbors [][6]int
}

// New builds a hexagonal grid. Radius 5 gives the standard 91-cell board.
func New(radius int) (*Hex, error) {
	if radius < 1 {
		return nil, fmt.Errorf("grid: radius must be >= 1, got %d", radius)
	}
	axialToIndex := map[[2]int]int{}
	var indexToAxial [][2]int
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			axialToIndex[[2]int{q, r}] = len(indexToAxial)
			indexToAxial = append(indexToAxial, [2]int{q, r})
		}
	}
	neighbors := make([][6]int, len(indexToAxial))
	for i, qr := range indexToAxial {
		for s, d := range directions {
			n, ok := axialToIndex[[2]int{qr[0] + d[0], qr[1] + d[1]}]
			if !ok {
				n = Off
			}
			neighbors[i][s] = n
		}
	}
	return &Hex{radius: radius, neighbors: neighbors}, nil
}

// FromTable wraps an externally supplied adjacency table, validating that
// every row has in-range entries. The table is copied.
func FromTable(table [][6]int) (*Hex, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("grid: empty adjacency table")
	}
	neighbors := make([][6]int, len(table))
	for i, row := range table {
		for s, n := range row {
			if n != Off && (n < 0 || n >= len(table)) {
				return nil, fmt.Errorf("grid: cell %d slot %d: neighbor %d out of range", i, s, n)
			}
		}
		neighbors[i] = row
	}
	return &Hex{neighbors: neighbors}, nil
}

// Radius returns the construction radius, or 0 for table-built grids.
func (h *Hex) Radius() int { return h.radius }

// CellCount returns the number of cells on the grid.
func (h *Hex) CellCount() int { return len(h.neighbors) }

// Neighbors returns the six neighbor indices of cell i in circular order.
// Off-grid slots hold Off.
func (h *Hex) Neighbors(i int) [6]int { return h.neighbors[i] }

// Center returns the index of the (0,0) cell for radius-built grids.
func (h *Hex) Center() int {
	// columns up to q=0 hold radius+1 .. 2*radius+1 cells; the center sits
	// in the middle of the q=0 column.
	n := 0
	for q := -h.radius; q < 0; q++ {
		n += 2*h.radius + 1 - abs(q)
	}
	return n + h.radius
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
