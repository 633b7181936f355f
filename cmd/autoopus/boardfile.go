package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
	"github.com/bzhhan/autoopus/internal/grid"
)

// boardFile is the JSON interchange shape for a captured board: a grid
// radius and one token name per cell in index order. Unknown names load as
// UNKNOWN tokens.
type boardFile struct {
	Radius int      `json:"radius"`
	Cells  []string `json:"cells"`
}

func loadBoard(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	var bf boardFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse board %s: %w", path, err)
	}
	if bf.Radius == 0 {
		bf.Radius = 5
	}
	g, err := grid.New(bf.Radius)
	if err != nil {
		return nil, err
	}
	classes := make([]domain.Classification, len(bf.Cells))
	for i, name := range bf.Cells {
		classes[i] = domain.Parse(name)
	}
	b := board.New(g)
	if err := b.SetState(classes); err != nil {
		return nil, err
	}
	return b, nil
}

func saveBoard(path string, b *board.Board) error {
	bf := boardFile{Radius: b.Grid().Radius(), Cells: make([]string, b.Len())}
	for i := 0; i < b.Len(); i++ {
		bf.Cells[i] = b.Cell(i).Class.String()
	}
	data, err := json.MarshalIndent(bf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
