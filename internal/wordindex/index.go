// Package wordindex builds a prefix-queryable dictionary.
// It answers whether a letter sequence is a word, and whether it can still
// be extended into one.
package wordindex

import (
	"errors"
	"fmt"
)

const alphabetSize = 26

// ErrInvalidWord is returned by Build when an entry is empty or holds
// anything other than the letters A to Z.
var ErrInvalidWord = errors.New("invalid word")

type node struct {
	children [alphabetSize]*node
	terminal bool
	rank     int
}

// Index is an immutable trie over uppercase ASCII words. It is safe for
// concurrent reads.
type Index struct {
	root  *node
	words int
}

// Build inserts words in order; the position of a word in the input is its
// rank. A repeated word keeps the rank of its first occurrence. Build fails
// on the first invalid entry and returns no index.
func Build(words []string) (*Index, error) {
	for i, w := range words {
		if err := validate(w); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	idx := &Index{root: &node{}}
	for rank, w := range words {
		idx.insert(w, rank)
	}

	return idx, nil
}

func validate(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty entry", ErrInvalidWord)
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidWord, word, c)
		}
	}
	return nil
}

func (idx *Index) insert(word string, rank int) {
	cur := idx.root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'A'
		if cur.children[c] == nil {
			cur.children[c] = &node{}
		}
		cur = cur.children[c]
	}

	if cur.terminal {
		return
	}
	cur.terminal = true
	cur.rank = rank
	idx.words++
}

// find walks s from the root and returns the node it ends on, or nil.
func (idx *Index) find(s string) *node {
	if idx == nil || idx.root == nil {
		return nil
	}
	cur := idx.root
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return nil
		}
		cur = cur.children[c-'A']
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Extendable reports whether some word starts with prefix, prefix included.
func (idx *Index) Extendable(prefix string) bool {
	if prefix == "" {
		return idx.Len() > 0
	}
	return idx.find(prefix) != nil
}

func (idx *Index) IsWord(s string) bool {
	n := idx.find(s)
	return n != nil && n.terminal
}

// Rank returns the input position of s, or -1 if s is not a word.
func (idx *Index) Rank(s string) int {
	n := idx.find(s)
	if n == nil || !n.terminal {
		return -1
	}
	return n.rank
}

func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.words
}

// Walk calls fn for every word in alphabetical order until fn returns false.
func (idx *Index) Walk(fn func(word string, rank int) bool) {
	if idx == nil || idx.root == nil {
		return
	}
	buf := make([]byte, 0, 32)
	walk(idx.root, buf, fn)
}

func walk(n *node, buf []byte, fn func(string, int) bool) bool {
	if n.terminal && !fn(string(buf), n.rank) {
		return false
	}
	for c, child := range n.children {
		if child == nil {
			continue
		}
		if !walk(child, append(buf, byte('A'+c)), fn) {
			return false
		}
	}
	return true
}
