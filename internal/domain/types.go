package domain

import "fmt"

// Move removes the tokens at two cell indices. It is an unordered pair stored
// canonically with the smaller index in A, so paths and sets are well-defined.
type Move struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewMove canonicalizes an index pair into a Move.
func NewMove(i, j int) Move {
	if j < i {
		i, j = j, i
	}
	return Move{A: i, B: j}
}

func (m Move) String() string { return fmt.Sprintf("(%d,%d)", m.A, m.B) }
