// Package search enumerates simple paths through a letter graph and records
// every path that spells a dictionary word.
//
// The walk is a depth-first search from every node in ascending id order.
// A branch is cut as soon as its letters stop being a prefix of any word, so
// the work is bounded by the live dictionary prefixes found in the graph
// rather than by the number of simple paths.
package search

import (
	"fmt"
	"time"

	"github.com/ribbit/core/internal/models"
	"github.com/ribbit/core/internal/results"
	"github.com/ribbit/core/internal/wordindex"
)

// pathState is the current simple path. Only the active frame mutates it and
// every push is undone by a pop on the way out.
type pathState struct {
	path    []int
	letters []byte
	visited []bool
}

func newPathState(n int) *pathState {
	return &pathState{
		path:    make([]int, 0, n),
		letters: make([]byte, 0, n),
		visited: make([]bool, n),
	}
}

func (s *pathState) push(id int, letter byte) {
	s.path = append(s.path, id)
	s.letters = append(s.letters, letter)
	s.visited[id] = true
}

func (s *pathState) pop() {
	last := len(s.path) - 1
	s.visited[s.path[last]] = false
	s.path = s.path[:last]
	s.letters = s.letters[:last]
}

type walker struct {
	graph *models.Graph
	opts  Options
	col   *results.Collector
	state *pathState
	stats Stats
}

// Solve finds every word of at least the minimum length spelled by a simple
// path in g. On budget exhaustion or cancellation it returns the words found
// so far together with the error.
func Solve(g *models.Graph, idx *wordindex.Index, opts ...Option) (*results.Collector, Stats, error) {
	start := time.Now()

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MinLength < 1 {
		o.MinLength = 1
	}

	col := results.New()
	col.SetRank(idx.Rank)

	if g == nil || g.Len() == 0 {
		return col, Stats{Duration: time.Since(start)}, nil
	}

	w := &walker{
		graph: g,
		opts:  o,
		col:   col,
		state: newPathState(g.Len()),
	}

	root := idx.Root()
	var err error
	for _, id := range g.NodeIDs() {
		w.stats.Roots++
		if err = w.step(id, root); err != nil {
			break
		}
	}

	w.stats.Duration = time.Since(start)
	return col, w.stats, err
}

// step extends the path with id, given the trie cursor for the path so far.
func (w *walker) step(id int, cur wordindex.Cursor) error {
	if err := w.tick(); err != nil {
		return err
	}

	letter := w.graph.Letter(id)
	next, ok := cur.Next(letter)
	if !ok {
		w.stats.Pruned++
		return nil
	}

	w.state.push(id, letter)
	defer w.state.pop()

	if next.Terminal() && len(w.state.letters) >= w.opts.MinLength {
		w.stats.Hits++
		w.col.Record(string(w.state.letters), w.state.path)
	}

	for _, nb := range w.graph.Neighbors(id) {
		if w.state.visited[nb] {
			continue
		}
		if err := w.step(nb, next); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) tick() error {
	select {
	case <-w.opts.Ctx.Done():
		return fmt.Errorf("search: %w", w.opts.Ctx.Err())
	default:
	}

	w.stats.Steps++
	if w.opts.MaxSteps > 0 && w.stats.Steps > w.opts.MaxSteps {
		return fmt.Errorf("%w after %d steps", ErrDeadlineExceeded, w.opts.MaxSteps)
	}
	return nil
}
