// Package parser provides utilities for parsing and transforming input data.
// It turns puzzle files into letter graphs and word lists into ranked entries.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ribbit/core/internal/models"
)

var (
	ErrEmptyPuzzle        = errors.New("empty puzzle data")
	ErrMissingConnections = errors.New("puzzle file must contain a 'Connections:' section")
)

const emptyCells = "-._"

// ParsePuzzle reads the text puzzle format:
//
//	ABCD
//	E-GH
//
//	Connections:
//	0-1
//	1,2
//	2 3
//
// Grid cells marked with '-', '.', '_' or whitespace are empty and get no
// node. Nodes are numbered left to right, top to bottom. Lines starting with
// '#' are comments. Edge lines that do not parse are skipped.
func ParsePuzzle(data []byte) (*models.Puzzle, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, ErrEmptyPuzzle
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	split := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "connections") {
			split = i
			break
		}
	}
	if split < 0 {
		return nil, ErrMissingConnections
	}

	grid, err := parseGrid(lines[:split])
	if err != nil {
		return nil, err
	}

	return BuildGraph(grid, parseEdges(lines[split+1:]))
}

func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

func parseGrid(lines []string) ([][]byte, error) {
	var grid [][]byte
	for _, line := range lines {
		if skipLine(line) {
			continue
		}

		row := make([]byte, 0, len(line))
		for col, r := range line {
			switch {
			case strings.ContainsRune(emptyCells, r) || r == ' ' || r == '\t':
				row = append(row, 0)
			case r >= 'a' && r <= 'z':
				row = append(row, byte(r-'a'+'A'))
			case r >= 'A' && r <= 'Z':
				row = append(row, byte(r))
			default:
				return nil, fmt.Errorf("invalid grid character %q at row %d, column %d", r, len(grid), col)
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func parseEdges(lines []string) []models.Edge {
	var edges []models.Edge
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		if e, ok := parseEdge(strings.TrimSpace(line)); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

// parseEdge accepts "0-1", "0,1" and "0 1", trying separators in that order.
func parseEdge(line string) (models.Edge, bool) {
	for _, sep := range []string{"-", ",", " "} {
		if !strings.Contains(line, sep) {
			continue
		}

		parts := strings.Split(line, sep)
		if len(parts) != 2 {
			continue
		}

		u, errU := strconv.Atoi(strings.TrimSpace(parts[0]))
		v, errV := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errU == nil && errV == nil {
			return models.Edge{Source: u, Target: v}, true
		}
	}
	return models.Edge{}, false
}
