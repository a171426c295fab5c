// Package models defines the core data structures of a puzzle.
// It includes the letter graph the solver walks and its validation rules.
package models

// Puzzle is a parsed puzzle file. Grid keeps the original layout for display;
// a zero byte marks an empty cell.
type Puzzle struct {
	Grid  [][]byte
	Graph *Graph
}

// Position maps a grid cell back to its node id.
func (p *Puzzle) Position(row, col int) (int, bool) {
	if p.Graph == nil {
		return 0, false
	}
	for _, n := range p.Graph.nodes {
		if n.Row == row && n.Col == col {
			return n.ID, true
		}
	}
	return 0, false
}

func (p *Puzzle) Rows() int {
	return len(p.Grid)
}

func (p *Puzzle) Cols() int {
	cols := 0
	for _, row := range p.Grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Letters returns all node letters in id order.
func (p *Puzzle) Letters() string {
	if p.Graph == nil {
		return ""
	}
	buf := make([]byte, 0, p.Graph.Len())
	for _, n := range p.Graph.nodes {
		buf = append(buf, n.Letter)
	}
	return string(buf)
}
