// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree

import (
	"errors"
	"fmt"
	"sort"
)

// noChild marks an empty child slot.
const noChild = -1

// node is a single entry of the tree arena. A leaf has both child slots
// empty.
type node struct {
	child [2]int
	sym   byte
	leaf  bool
}

// Tree is a binary prefix-code tree. The nodes are stored in an arena with
// the root at index 0. A Tree is never modified after construction and can
// be shared by any number of goroutines.
type Tree struct {
	nodes []node
}

// fixedCodes lists the hand-specified path assignment of the fixed tree.
// Streams written by earlier runs depend on it bit by bit; it must never be
// changed.
var fixedCodes = []struct {
	sym  byte
	code string
}{
	{'E', "00"},
	{'A', "01"},
	{'C', "10"},
	{'F', "110"},
	{'H', "1110"},
	{'I', "11110"},
	{'L', "111110"},
	{'M', "1111110"},
	{'N', "11111110"},
	{'O', "111111110"},
	{'0', "1111111110"},
	{'1', "1111111111"},
}

// buildFixedTree constructs a new copy of the fixed tree.
func buildFixedTree() *Tree {
	t := &Tree{nodes: []node{{child: [2]int{noChild, noChild}}}}
	for _, e := range fixedCodes {
		if err := t.insert(e.sym, e.code); err != nil {
			panic(err)
		}
	}
	return t
}

var fixedTree = buildFixedTree()

// FixedTree returns the fixed-topology tree. The root has two internal
// children: the left one holds E and A, the right one holds C and the
// right-skewed spine for F, H, I, L, M, N, O, 0 and 1.
func FixedTree() *Tree { return fixedTree }

// insert adds a leaf for symbol c at the given path. The arena must already
// contain the root.
func (t *Tree) insert(c byte, code string) error {
	i := 0
	for k := 0; k < len(code); k++ {
		if t.nodes[i].leaf {
			return fmt.Errorf("fixtree: code %q for %q extends a leaf",
				code, c)
		}
		var b int
		switch code[k] {
		case '0':
			b = 0
		case '1':
			b = 1
		default:
			return fmt.Errorf("fixtree: code %q for %q is not binary",
				code, c)
		}
		j := t.nodes[i].child[b]
		if j == noChild {
			j = len(t.nodes)
			t.nodes = append(t.nodes,
				node{child: [2]int{noChild, noChild}})
			t.nodes[i].child[b] = j
		}
		i = j
	}
	n := &t.nodes[i]
	if n.leaf || n.child[0] != noChild || n.child[1] != noChild {
		return fmt.Errorf("fixtree: code %q for %q is not prefix-free",
			code, c)
	}
	n.leaf = true
	n.sym = c
	return nil
}

// errNoCodes is returned by NewTree for an empty code assignment.
var errNoCodes = errors.New("fixtree: no codes")

// NewTree builds a tree from a prefix-free code assignment. The codes must
// consist of the characters '0' and '1'. A single symbol with the empty code
// produces a tree whose root is a leaf.
func NewTree(codes map[byte]string) (*Tree, error) {
	if len(codes) == 0 {
		return nil, errNoCodes
	}
	syms := make([]byte, 0, len(codes))
	for c := range codes {
		syms = append(syms, c)
	}
	// The arena layout must not depend on the map order.
	sort.Slice(syms, func(i, j int) bool {
		a, b := codes[syms[i]], codes[syms[j]]
		if a != b {
			return a < b
		}
		return syms[i] < syms[j]
	})
	t := &Tree{nodes: []node{{child: [2]int{noChild, noChild}}}}
	for _, c := range syms {
		if err := t.insert(c, codes[c]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Leaf reports whether node i is a leaf and returns its symbol.
func (t *Tree) Leaf(i int) (c byte, ok bool) {
	n := &t.nodes[i]
	return n.sym, n.leaf
}

// Child returns the child of node i reached by the bit b (0 = left,
// 1 = right). It returns -1 for an empty slot.
func (t *Tree) Child(i int, b int) int {
	return t.nodes[i].child[b&1]
}

// Leaves returns the leaf symbols in pre-order, left before right.
func (t *Tree) Leaves() []byte {
	var syms []byte
	t.walk(func(i int, path []byte) {
		if t.nodes[i].leaf {
			syms = append(syms, t.nodes[i].sym)
		}
	})
	return syms
}

// walk visits all nodes in pre-order using an explicit stack. The path
// argument is only valid during the call of f.
func (t *Tree) walk(f func(i int, path []byte)) {
	type frame struct {
		i    int
		path []byte
	}
	stack := []frame{{i: 0}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(fr.i, fr.path)
		n := &t.nodes[fr.i]
		// right is pushed first, so that left is visited first
		for b := 1; b >= 0; b-- {
			j := n.child[b]
			if j == noChild {
				continue
			}
			p := make([]byte, len(fr.path)+1)
			copy(p, fr.path)
			p[len(fr.path)] = '0' + byte(b)
			stack = append(stack, frame{i: j, path: p})
		}
	}
}
