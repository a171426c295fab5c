// Package report renders puzzles and solver results for people and programs.
// It defines the text layout, the JSON response and their encoding.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ribbit/core/internal/models"
	"github.com/ribbit/core/internal/results"
)

const (
	cellWidth    = 9 // "X(00)" plus a " -- " connector
	wordsPerLine = 5
	ruleWidth    = 60
)

// WritePuzzle draws the grid with node ids and the connections between
// neighbouring cells. Connections between cells that are not grid
// neighbours are not drawn.
func WritePuzzle(w io.Writer, p *models.Puzzle) error {
	if p == nil || len(p.Grid) == 0 {
		return nil
	}

	rows, cols := p.Rows(), p.Cols()

	pos := make(map[[2]int]int)
	if p.Graph != nil {
		for _, n := range p.Graph.Nodes() {
			pos[[2]int{n.Row, n.Col}] = n.ID
		}
	}
	linked := func(r1, c1, r2, c2 int) bool {
		a, ok := pos[[2]int{r1, c1}]
		if !ok {
			return false
		}
		b, ok := pos[[2]int{r2, c2}]
		return ok && p.Graph.HasEdge(a, b)
	}

	var sb strings.Builder
	sb.WriteString("\nPuzzle Grid:\n\n")

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if id, ok := pos[[2]int{row, col}]; ok {
				letter := p.Graph.Letter(id)
				fmt.Fprintf(&sb, "%c(%2d)", letter, id)
			} else {
				sb.WriteString("     ")
			}

			if col < cols-1 {
				if linked(row, col, row, col+1) {
					sb.WriteString(" -- ")
				} else {
					sb.WriteString("    ")
				}
			}
		}
		sb.WriteByte('\n')

		if row == rows-1 {
			continue
		}

		line := []byte(strings.Repeat(" ", cellWidth*cols))
		for col := 0; col < cols; col++ {
			base := col * cellWidth
			if linked(row, col, row+1, col) {
				line[base+1] = '|'
			}
			if linked(row, col, row+1, col+1) {
				line[base+5] = '\\'
			}
			if col > 0 && linked(row, col, row+1, col-1) {
				line[base-3] = '/'
			}
		}
		sb.Write(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteSummary prints the puzzle header shown before solving.
func WriteSummary(w io.Writer, source string, p *models.Puzzle) error {
	stats := p.Graph.Stats()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\nRIBBIT PUZZLE SOLVER\n%s\n", rule(), rule())
	fmt.Fprintf(&sb, "\nLoading puzzle from: %s\n", source)
	fmt.Fprintf(&sb, "  Letters: %s\n", p.Letters())
	fmt.Fprintf(&sb, "  Nodes: %d\n", stats.TotalNodes)
	fmt.Fprintf(&sb, "  Edges: %d\n", stats.TotalEdges)

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteResults prints the found words grouped by ascending length, five per
// line.
func WriteResults(w io.Writer, col *results.Collector) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\nFOUND %d WORDS:\n%s\n", rule(), col.Len(), rule())

	groups := col.Groups()
	if len(groups) == 0 {
		sb.WriteString("\nNo words found!\n")
	}
	for _, g := range groups {
		fmt.Fprintf(&sb, "\n%d-letter words (%d):\n", g.Length, len(g.Words))
		for i := 0; i < len(g.Words); i += wordsPerLine {
			end := min(i+wordsPerLine, len(g.Words))
			fmt.Fprintf(&sb, "  %s\n", strings.Join(g.Words[i:end], ", "))
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}
