package fixtree

import "sort"

// Frequency gives the number of occurrences of a symbol.
type Frequency struct {
	Symbol byte
	Count  int
}

// Frequencies counts the symbols of p. The symbols are returned in the order
// of their first occurrence.
func Frequencies(p []byte) []Frequency {
	var idx [256]int
	var freqs []Frequency
	for _, c := range p {
		i := idx[c]
		if i == 0 {
			freqs = append(freqs, Frequency{Symbol: c})
			i = len(freqs)
			idx[c] = i
		}
		freqs[i-1].Count++
	}
	return freqs
}

// hnode is the pointer representation used while merging.
type hnode struct {
	sym         byte
	count       int
	left, right *hnode
}

// FrequencyTree builds a Huffman tree for the frequencies. The two nodes
// with the lowest counts are merged repeatedly, the lower one becoming the
// left child. Ties keep the order of freqs; merged nodes are placed behind
// all existing nodes of the same count. The function returns nil for an
// empty slice; a single symbol results in a root leaf.
//
// The tree is an alternative to FixedTree for analysis. Streams are always
// encoded with the fixed tree.
func FrequencyTree(freqs []Frequency) *Tree {
	if len(freqs) == 0 {
		return nil
	}
	nodes := make([]*hnode, len(freqs))
	for i, f := range freqs {
		nodes[i] = &hnode{sym: f.Symbol, count: f.Count}
	}
	for len(nodes) > 1 {
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].count < nodes[j].count
		})
		a, b := nodes[0], nodes[1]
		nodes = append(nodes[2:],
			&hnode{count: a.count + b.count, left: a, right: b})
	}
	t := new(Tree)
	t.add(nodes[0])
	return t
}

// add appends the subtree h to the arena in pre-order and returns the
// index of its root.
func (t *Tree) add(h *hnode) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, node{child: [2]int{noChild, noChild}})
	if h.left == nil && h.right == nil {
		t.nodes[i].leaf = true
		t.nodes[i].sym = h.sym
		return i
	}
	if h.left != nil {
		j := t.add(h.left)
		t.nodes[i].child[0] = j
	}
	if h.right != nil {
		j := t.add(h.right)
		t.nodes[i].child[1] = j
	}
	return i
}
