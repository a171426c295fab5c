// Package models defines the core data structures of a puzzle.
// It includes the letter graph the solver walks and its validation rules.
package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidGraph is returned for self-loops, edges to unknown nodes and
// duplicate or non-dense node ids.
var ErrInvalidGraph = errors.New("invalid graph")

type Node struct {
	ID     int  `json:"id"`
	Letter byte `json:"letter"`
	Row    int  `json:"row"`
	Col    int  `json:"col"`
}

type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

type Stats struct {
	TotalNodes    int            `json:"total_nodes"`
	TotalEdges    int            `json:"total_edges"`
	IsolatedNodes int            `json:"isolated_nodes"`
	Components    int            `json:"components"`
	Letters       map[string]int `json:"letters,omitempty"`
}

// Graph is an undirected letter graph. It is immutable once NewGraph returns.
type Graph struct {
	nodes []Node
	adj   [][]int
	edges []Edge
}

func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make([]Node, len(nodes)),
		adj:   make([][]int, len(nodes)),
	}

	seen := make([]bool, len(nodes))
	for _, n := range nodes {
		if n.ID < 0 || n.ID >= len(nodes) {
			return nil, fmt.Errorf("%w: node id %d outside 0..%d", ErrInvalidGraph, n.ID, len(nodes)-1)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("%w: duplicate node id %d", ErrInvalidGraph, n.ID)
		}
		if n.Letter < 'A' || n.Letter > 'Z' {
			return nil, fmt.Errorf("%w: node %d has letter %q", ErrInvalidGraph, n.ID, n.Letter)
		}
		seen[n.ID] = true
		g.nodes[n.ID] = n
	}

	linked := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if e.Source == e.Target {
			return nil, fmt.Errorf("%w: self-loop on node %d", ErrInvalidGraph, e.Source)
		}
		if !g.valid(e.Source) || !g.valid(e.Target) {
			return nil, fmt.Errorf("%w: edge %d-%d references a missing node", ErrInvalidGraph, e.Source, e.Target)
		}

		key := normalizeEdge(e)
		if linked[key] {
			continue
		}
		linked[key] = true

		g.edges = append(g.edges, key)
		g.adj[e.Source] = append(g.adj[e.Source], e.Target)
		g.adj[e.Target] = append(g.adj[e.Target], e.Source)
	}

	for _, nbs := range g.adj {
		sort.Ints(nbs)
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].Source != g.edges[j].Source {
			return g.edges[i].Source < g.edges[j].Source
		}
		return g.edges[i].Target < g.edges[j].Target
	})

	return g, nil
}

func normalizeEdge(e Edge) Edge {
	if e.Source > e.Target {
		return Edge{Source: e.Target, Target: e.Source}
	}
	return e
}

func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// Letter returns the letter on node id. It panics if id is not a node.
func (g *Graph) Letter(id int) byte {
	return g.nodes[id].Letter
}

// Neighbors returns the adjacent node ids in ascending order. The slice is
// shared with the graph and must not be modified.
func (g *Graph) Neighbors(id int) []int {
	if !g.valid(id) {
		return nil
	}
	return g.adj[id]
}

func (g *Graph) NodeIDs() []int {
	ids := make([]int, len(g.nodes))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func (g *Graph) Node(id int) (Node, bool) {
	if !g.valid(id) {
		return Node{}, false
	}
	return g.nodes[id], true
}

func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

func (g *Graph) HasEdge(a, b int) bool {
	if !g.valid(a) || !g.valid(b) {
		return false
	}
	nbs := g.adj[a]
	i := sort.SearchInts(nbs, b)
	return i < len(nbs) && nbs[i] == b
}

// Letters concatenates the letters along path.
func (g *Graph) Letters(path []int) string {
	buf := make([]byte, len(path))
	for i, id := range path {
		buf[i] = g.nodes[id].Letter
	}
	return string(buf)
}

func (g *Graph) Stats() Stats {
	stats := Stats{
		TotalNodes: len(g.nodes),
		TotalEdges: len(g.edges),
		Letters:    make(map[string]int),
	}

	for id, n := range g.nodes {
		stats.Letters[string(n.Letter)]++
		if len(g.adj[id]) == 0 {
			stats.IsolatedNodes++
		}
	}

	visited := make([]bool, len(g.nodes))
	stack := make([]int, 0, len(g.nodes))
	for root := range g.nodes {
		if visited[root] {
			continue
		}
		stats.Components++
		visited[root] = true
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range g.adj[id] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}

	return stats
}
