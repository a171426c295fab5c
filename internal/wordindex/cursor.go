// Package wordindex builds a prefix-queryable dictionary.
// It answers whether a letter sequence is a word, and whether it can still
// be extended into one.
package wordindex

// Cursor is a position in the trie. A path search advances one cursor per
// letter instead of re-walking the prefix from the root at every step.
// The zero Cursor is dead: nothing extends it.
type Cursor struct {
	n *node
}

// Root returns a cursor on the empty prefix.
func (idx *Index) Root() Cursor {
	if idx == nil {
		return Cursor{}
	}
	return Cursor{n: idx.root}
}

// Cursor returns a cursor on prefix. ok is false when prefix is not
// extendable.
func (idx *Index) Cursor(prefix string) (Cursor, bool) {
	n := idx.find(prefix)
	return Cursor{n: n}, n != nil
}

// Next advances by one letter. ok is false when the extended prefix is not
// the start of any word.
func (c Cursor) Next(letter byte) (Cursor, bool) {
	if c.n == nil || letter < 'A' || letter > 'Z' {
		return Cursor{}, false
	}
	child := c.n.children[letter-'A']
	return Cursor{n: child}, child != nil
}

// Terminal reports whether the letters leading to the cursor spell a word.
func (c Cursor) Terminal() bool {
	return c.n != nil && c.n.terminal
}

// Rank is the rank of the word at the cursor, or -1.
func (c Cursor) Rank() int {
	if !c.Terminal() {
		return -1
	}
	return c.n.rank
}

func (c Cursor) Valid() bool {
	return c.n != nil
}
