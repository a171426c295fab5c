// Package models defines the core data structures of a puzzle.
// It includes the letter graph the solver walks and its validation rules.
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lettersToNodes(letters string) []Node {
	nodes := make([]Node, len(letters))
	for i := range letters {
		nodes[i] = Node{ID: i, Letter: letters[i], Col: i}
	}
	return nodes
}

func TestNewGraph(t *testing.T) {
	t.Run("empty graph is valid", func(t *testing.T) {
		g, err := NewGraph(nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, g.Len())
		assert.Empty(t, g.NodeIDs())
		assert.Empty(t, g.Edges())
	})

	t.Run("edges are symmetric", func(t *testing.T) {
		g, err := NewGraph(lettersToNodes("ATOP"), []Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2}, g.Neighbors(0))
		assert.Equal(t, []int{0, 3}, g.Neighbors(1))
		assert.Equal(t, []int{0, 3}, g.Neighbors(2))
		assert.Equal(t, []int{1, 2}, g.Neighbors(3))
		assert.True(t, g.HasEdge(3, 1))
		assert.False(t, g.HasEdge(0, 3))
	})

	t.Run("duplicate edges collapse", func(t *testing.T) {
		g, err := NewGraph(lettersToNodes("AB"), []Edge{{0, 1}, {1, 0}, {0, 1}})
		require.NoError(t, err)

		assert.Equal(t, []int{1}, g.Neighbors(0))
		assert.Equal(t, []int{0}, g.Neighbors(1))
		assert.Equal(t, []Edge{{Source: 0, Target: 1}}, g.Edges())
	})

	t.Run("neighbors are sorted ascending", func(t *testing.T) {
		g, err := NewGraph(lettersToNodes("ABCDE"), []Edge{{0, 4}, {0, 2}, {3, 0}, {0, 1}})
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2, 3, 4}, g.Neighbors(0))
	})

	t.Run("self-loop is rejected", func(t *testing.T) {
		_, err := NewGraph(lettersToNodes("AB"), []Edge{{1, 1}})

		assert.ErrorIs(t, err, ErrInvalidGraph)
		assert.Contains(t, err.Error(), "self-loop")
	})

	t.Run("edge to missing node is rejected", func(t *testing.T) {
		_, err := NewGraph(lettersToNodes("AB"), []Edge{{0, 2}})

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("negative edge endpoint is rejected", func(t *testing.T) {
		_, err := NewGraph(lettersToNodes("AB"), []Edge{{-1, 0}})

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("duplicate node id is rejected", func(t *testing.T) {
		nodes := []Node{{ID: 0, Letter: 'A'}, {ID: 0, Letter: 'B'}}

		_, err := NewGraph(nodes, nil)

		assert.ErrorIs(t, err, ErrInvalidGraph)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("gap in node ids is rejected", func(t *testing.T) {
		nodes := []Node{{ID: 0, Letter: 'A'}, {ID: 2, Letter: 'B'}}

		_, err := NewGraph(nodes, nil)

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("lowercase letter is rejected", func(t *testing.T) {
		_, err := NewGraph([]Node{{ID: 0, Letter: 'a'}}, nil)

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("nodes may be supplied out of order", func(t *testing.T) {
		nodes := []Node{{ID: 1, Letter: 'B'}, {ID: 0, Letter: 'A'}}

		g, err := NewGraph(nodes, []Edge{{0, 1}})
		require.NoError(t, err)

		assert.Equal(t, byte('A'), g.Letter(0))
		assert.Equal(t, byte('B'), g.Letter(1))
	})
}

func TestGraphAccessors(t *testing.T) {
	g, err := NewGraph(lettersToNodes("CAT"), []Edge{{0, 1}, {1, 2}})
	require.NoError(t, err)

	t.Run("node ids are dense and ascending", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2}, g.NodeIDs())
	})

	t.Run("letters along a path", func(t *testing.T) {
		assert.Equal(t, "CAT", g.Letters([]int{0, 1, 2}))
		assert.Equal(t, "TAC", g.Letters([]int{2, 1, 0}))
	})

	t.Run("neighbors of unknown node is nil", func(t *testing.T) {
		assert.Nil(t, g.Neighbors(7))
	})

	t.Run("node lookup", func(t *testing.T) {
		n, ok := g.Node(1)
		require.True(t, ok)
		assert.Equal(t, byte('A'), n.Letter)

		_, ok = g.Node(3)
		assert.False(t, ok)
	})

	t.Run("nodes returns a copy", func(t *testing.T) {
		nodes := g.Nodes()
		nodes[0].Letter = 'Z'

		assert.Equal(t, byte('C'), g.Letter(0))
	})
}

func TestGraphStats(t *testing.T) {
	t.Run("counts components and isolated nodes", func(t *testing.T) {
		g, err := NewGraph(lettersToNodes("ABCDE"), []Edge{{0, 1}, {2, 3}})
		require.NoError(t, err)

		stats := g.Stats()

		assert.Equal(t, 5, stats.TotalNodes)
		assert.Equal(t, 2, stats.TotalEdges)
		assert.Equal(t, 1, stats.IsolatedNodes)
		assert.Equal(t, 3, stats.Components)
	})

	t.Run("letter histogram", func(t *testing.T) {
		g, err := NewGraph(lettersToNodes("AAB"), nil)
		require.NoError(t, err)

		stats := g.Stats()

		assert.Equal(t, 2, stats.Letters["A"])
		assert.Equal(t, 1, stats.Letters["B"])
	})

	t.Run("stats marshal with snake case keys", func(t *testing.T) {
		g, err := NewGraph(lettersToNodes("AB"), []Edge{{0, 1}})
		require.NoError(t, err)

		data, err := json.Marshal(g.Stats())
		require.NoError(t, err)

		assert.Contains(t, string(data), `"total_nodes":2`)
		assert.Contains(t, string(data), `"total_edges":1`)
		assert.Contains(t, string(data), `"components":1`)
	})
}

func TestPuzzle(t *testing.T) {
	nodes := []Node{
		{ID: 0, Letter: 'A', Row: 0, Col: 0},
		{ID: 1, Letter: 'B', Row: 0, Col: 2},
		{ID: 2, Letter: 'C', Row: 1, Col: 1},
	}
	g, err := NewGraph(nodes, []Edge{{0, 2}})
	require.NoError(t, err)

	p := &Puzzle{
		Grid:  [][]byte{{'A', 0, 'B'}, {0, 'C'}},
		Graph: g,
	}

	t.Run("dimensions", func(t *testing.T) {
		assert.Equal(t, 2, p.Rows())
		assert.Equal(t, 3, p.Cols())
	})

	t.Run("position lookup", func(t *testing.T) {
		id, ok := p.Position(1, 1)
		require.True(t, ok)
		assert.Equal(t, 2, id)

		_, ok = p.Position(0, 1)
		assert.False(t, ok)
	})

	t.Run("letters in id order", func(t *testing.T) {
		assert.Equal(t, "ABC", p.Letters())
	})

	t.Run("puzzle without graph", func(t *testing.T) {
		empty := &Puzzle{}

		assert.Equal(t, "", empty.Letters())
		_, ok := empty.Position(0, 0)
		assert.False(t, ok)
	})
}
