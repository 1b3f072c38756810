// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree

import (
	"fmt"
	"sort"
	"strings"
)

// Alphabet contains the symbols that always have an entry in a code table.
// The space has no leaf in the fixed tree and gets the empty code.
const Alphabet = "EACFHI LMNO01"

// CodeTable maps symbols to their bitstrings. It is not modified after
// construction.
type CodeTable struct {
	codes [256]string
	ok    [256]bool
}

var fixedTable = Codes(fixedTree)

// FixedCodes returns the code table of the fixed tree.
func FixedCodes() *CodeTable { return fixedTable }

// Codes derives the code table of a tree. Every alphabet symbol without a
// leaf is entered with the empty code.
func Codes(t *Tree) *CodeTable {
	ct := new(CodeTable)
	t.walk(func(i int, path []byte) {
		if c, ok := t.Leaf(i); ok {
			ct.codes[c] = string(path)
			ct.ok[c] = true
		}
	})
	// symbols without a leaf keep the empty code
	for i := 0; i < len(Alphabet); i++ {
		ct.ok[Alphabet[i]] = true
	}
	return ct
}

// Code returns the bitstring for symbol c. The flag ok is false if the
// table has no entry for c.
func (ct *CodeTable) Code(c byte) (code string, ok bool) {
	return ct.codes[c], ct.ok[c]
}

// Symbols returns all symbols of the table in ascending order.
func (ct *CodeTable) Symbols() []byte {
	var syms []byte
	for c := 0; c < 256; c++ {
		if ct.ok[c] {
			syms = append(syms, byte(c))
		}
	}
	return syms
}

// PrefixFree checks that no non-empty code is the prefix of another code.
func (ct *CodeTable) PrefixFree() bool {
	var codes []string
	for c := 0; c < 256; c++ {
		if ct.ok[c] && ct.codes[c] != "" {
			codes = append(codes, ct.codes[c])
		}
	}
	for i, a := range codes {
		for j, b := range codes {
			if i != j && strings.HasPrefix(b, a) {
				return false
			}
		}
	}
	return true
}

// String lists the table ordered by code length and code.
func (ct *CodeTable) String() string {
	syms := ct.Symbols()
	sort.SliceStable(syms, func(i, j int) bool {
		a, b := ct.codes[syms[i]], ct.codes[syms[j]]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	var sb strings.Builder
	for _, c := range syms {
		fmt.Fprintf(&sb, "%q\t%q\n", c, ct.codes[c])
	}
	return sb.String()
}
