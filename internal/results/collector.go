// Package results collects the words found by a search.
// Each word is kept once, together with the first path that spelled it.
package results

import (
	"sort"
)

type Found struct {
	Word string `json:"word"`
	Path []int  `json:"path"`
	Rank int    `json:"rank"`
}

type Group struct {
	Length int      `json:"length"`
	Words  []string `json:"words"`
}

// Collector maps words to the path that first produced them. It is not safe
// for concurrent writers.
type Collector struct {
	index map[string]int
	found []Found
	rank  func(string) int
}

func New() *Collector {
	return &Collector{index: make(map[string]int)}
}

// SetRank installs the source of Found.Rank. Without one every rank is -1.
func (c *Collector) SetRank(rank func(string) int) {
	c.rank = rank
	for i := range c.found {
		c.found[i].Rank = c.rankOf(c.found[i].Word)
	}
}

func (c *Collector) rankOf(word string) int {
	if c.rank == nil {
		return -1
	}
	return c.rank(word)
}

// Record stores word with a copy of path unless word is already present.
// It reports whether the word was new.
func (c *Collector) Record(word string, path []int) bool {
	if _, ok := c.index[word]; ok {
		return false
	}

	c.index[word] = len(c.found)
	c.found = append(c.found, Found{
		Word: word,
		Path: append([]int(nil), path...),
		Rank: c.rankOf(word),
	})

	return true
}

func (c *Collector) Contains(word string) bool {
	_, ok := c.index[word]
	return ok
}

// Path returns a copy of the path recorded for word.
func (c *Collector) Path(word string) ([]int, bool) {
	i, ok := c.index[word]
	if !ok {
		return nil, false
	}
	return append([]int(nil), c.found[i].Path...), true
}

func (c *Collector) Len() int {
	return len(c.found)
}

// Found returns every entry in discovery order.
func (c *Collector) Found() []Found {
	out := make([]Found, len(c.found))
	for i, f := range c.found {
		out[i] = Found{Word: f.Word, Path: append([]int(nil), f.Path...), Rank: f.Rank}
	}
	return out
}

// Words returns all recorded words sorted alphabetically.
func (c *Collector) Words() []string {
	words := make([]string, len(c.found))
	for i, f := range c.found {
		words[i] = f.Word
	}
	sort.Strings(words)
	return words
}

// ByRank returns the recorded words ordered by rank, most frequent first.
// Words without a rank sort last, alphabetically.
func (c *Collector) ByRank() []string {
	found := c.Found()
	sort.SliceStable(found, func(i, j int) bool {
		ri, rj := found[i].Rank, found[j].Rank
		switch {
		case ri < 0 && rj < 0:
			return found[i].Word < found[j].Word
		case ri < 0:
			return false
		case rj < 0:
			return true
		}
		return ri < rj
	})

	words := make([]string, len(found))
	for i, f := range found {
		words[i] = f.Word
	}
	return words
}

// GroupedByLength maps each word length to its words, alphabetically.
func (c *Collector) GroupedByLength() map[int][]string {
	groups := make(map[int][]string)
	for _, w := range c.Words() {
		groups[len(w)] = append(groups[len(w)], w)
	}
	return groups
}

// Groups is GroupedByLength as a slice in ascending length order.
func (c *Collector) Groups() []Group {
	byLength := c.GroupedByLength()

	lengths := make([]int, 0, len(byLength))
	for l := range byLength {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	groups := make([]Group, 0, len(lengths))
	for _, l := range lengths {
		groups = append(groups, Group{Length: l, Words: byLength[l]})
	}
	return groups
}
