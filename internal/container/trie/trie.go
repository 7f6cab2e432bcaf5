// Package trie implements a prefix tree over strings.
package trie

type node struct {
	children map[byte]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie stores words and answers exact-match and prefix queries.
type Trie struct {
	root *node
	size int
}

func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word to the trie. The empty string is not a word.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	n := t.root
	for i := 0; i < len(word); i++ {
		child, ok := n.children[word[i]]
		if !ok {
			child = newNode()
			n.children[word[i]] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// Match reports whether word was inserted. The empty string never matches.
func (t *Trie) Match(word string) bool {
	n := t.match(word)
	return n != nil && n.terminal
}

// Find returns all inserted words beginning with prefix. An empty prefix
// returns every word. Result order is unspecified.
func (t *Trie) Find(prefix string) []string {
	start := t.match(prefix)
	if start == nil {
		return nil
	}
	var out []string
	var walk func(n *node, word string)
	walk = func(n *node, word string) {
		if n.terminal {
			out = append(out, word)
		}
		for c, child := range n.children {
			walk(child, word+string(c))
		}
	}
	walk(start, prefix)
	return out
}

// Len returns the number of words in the trie.
func (t *Trie) Len() int {
	return t.size
}

// match walks the trie character by character and returns the node at the
// end of prefix, or nil when the walk falls off the tree. An empty prefix
// yields the root.
func (t *Trie) match(prefix string) *node {
	n := t.root
	for i := 0; i < len(prefix); i++ {
		child, ok := n.children[prefix[i]]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}
