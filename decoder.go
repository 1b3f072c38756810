// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree

import "fmt"

// Policy defines how a decoder handles characters other than '0' and '1'.
type Policy int

const (
	// Lenient moves to the right child for every character that is not
	// '0'. It is the default.
	Lenient Policy = iota
	// Strict skips every character that is neither '0' nor '1' without
	// moving the cursor.
	Strict
)

var policyNames = [...]string{Lenient: "lenient", Strict: "strict"}

// String returns the name of the policy.
func (p Policy) String() string {
	if 0 <= p && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts the name of a policy into its value.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return Policy(p), nil
		}
	}
	return 0, fmt.Errorf("fixtree: unknown decoding policy %q", s)
}

// verify checks whether p is a known policy.
func (p Policy) verify() error {
	if !(0 <= p && int(p) < len(policyNames)) {
		return fmt.Errorf("fixtree: unsupported policy %d", int(p))
	}
	return nil
}

// Decoder walks the tree bit by bit and emits a symbol for every leaf
// reached. The cursor is the only state, so decoding can be continued with
// the next chunk of a stream. Decoding never fails; malformed input results
// in fewer or shifted symbols.
type Decoder struct {
	t      *Tree
	policy Policy
	cur    int
}

// NewDecoder creates a decoder for the tree t. A nil tree selects the fixed
// tree; an unknown policy selects Lenient.
func NewDecoder(t *Tree, p Policy) *Decoder {
	if t == nil {
		t = fixedTree
	}
	if p.verify() != nil {
		p = Lenient
	}
	return &Decoder{t: t, policy: p}
}

// Reset moves the cursor back to the root.
func (d *Decoder) Reset() { d.cur = 0 }

// Pending reports whether the cursor is inside a code, which means that the
// bits consumed so far end with an incomplete code.
func (d *Decoder) Pending() bool { return d.cur != 0 }

// Decode appends the symbols decoded from bits to dst and returns the
// extended slice.
func (d *Decoder) Decode(dst, bits []byte) []byte {
	nodes := d.t.nodes
	for _, c := range bits {
		var b int
		switch {
		case c == '0':
			b = 0
		case c == '1' || d.policy == Lenient:
			b = 1
		default:
			continue
		}
		j := nodes[d.cur].child[b]
		if j == noChild {
			// only possible for degenerate trees
			d.cur = 0
			continue
		}
		if nodes[j].leaf {
			dst = append(dst, nodes[j].sym)
			d.cur = 0
			continue
		}
		d.cur = j
	}
	return dst
}

// Decode decodes bits using the fixed tree.
func Decode(bits []byte, p Policy) []byte {
	d := Decoder{t: fixedTree, policy: p}
	return d.Decode(make([]byte, 0, len(bits)/2), bits)
}
