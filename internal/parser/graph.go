// Package parser provides utilities for parsing and transforming input data.
// It turns puzzle files into letter graphs and word lists into ranked entries.
package parser

import (
	"fmt"

	"github.com/ribbit/core/internal/models"
)

// Connectivity selects which grid neighbours GridEdges links.
type Connectivity int

const (
	// Conn4 links N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links the diagonals.
	Conn8
)

func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4":
		return Conn4, nil
	case "8":
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("unknown connectivity %q, want 4 or 8", s)
}

// BuildGraph numbers the non-empty cells of grid row-major and links them
// with edges.
func BuildGraph(grid [][]byte, edges []models.Edge) (*models.Puzzle, error) {
	var nodes []models.Node

	for row, cells := range grid {
		for col, letter := range cells {
			if letter == 0 {
				continue
			}
			nodes = append(nodes, models.Node{
				ID:     len(nodes),
				Letter: letter,
				Row:    row,
				Col:    col,
			})
		}
	}

	graph, err := models.NewGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle graph: %w", err)
	}

	return &models.Puzzle{Grid: grid, Graph: graph}, nil
}

// GridEdges links every non-empty cell to its non-empty grid neighbours.
func GridEdges(grid [][]byte, conn Connectivity) []models.Edge {
	ids := make(map[[2]int]int)
	next := 0
	for row, cells := range grid {
		for col, letter := range cells {
			if letter != 0 {
				ids[[2]int{row, col}] = next
				next++
			}
		}
	}

	// Forward offsets only, so each pair is produced once.
	offsets := [][2]int{{0, 1}, {1, 0}}
	if conn == Conn8 {
		offsets = append(offsets, [2]int{1, 1}, [2]int{1, -1})
	}

	var edges []models.Edge
	for row, cells := range grid {
		for col, letter := range cells {
			if letter == 0 {
				continue
			}
			from := ids[[2]int{row, col}]
			for _, off := range offsets {
				if to, ok := ids[[2]int{row + off[0], col + off[1]}]; ok {
					edges = append(edges, models.Edge{Source: from, Target: to})
				}
			}
		}
	}
	return edges
}

// WithGridEdges returns a copy of p whose graph also links grid neighbours.
func WithGridEdges(p *models.Puzzle, conn Connectivity) (*models.Puzzle, error) {
	edges := p.Graph.Edges()
	edges = append(edges, GridEdges(p.Grid, conn)...)
	return BuildGraph(p.Grid, edges)
}
