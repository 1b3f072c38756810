// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree

import "github.com/ulikunitz/fixtree/internal/xlog"

// MaxEncodedLen is the capacity of the capped variant in bitstring
// characters.
const MaxEncodedLen = 2048

// Encode concatenates the codes for the symbols in p. Symbols without a code
// contribute nothing and cannot be detected by a decoder.
func (ct *CodeTable) Encode(p []byte) []byte {
	n := 0
	for _, c := range p {
		n += len(ct.codes[c])
	}
	bits := make([]byte, 0, n)
	for _, c := range p {
		bits = append(bits, ct.codes[c]...)
	}
	return bits
}

// EncodeLimit works like Encode but returns at most n characters. The data
// beyond the limit is discarded and truncated is set. The function panics if
// n is negative.
func (ct *CodeTable) EncodeLimit(p []byte, n int) (bits []byte, truncated bool) {
	if n < 0 {
		panic("fixtree: negative limit")
	}
	bits = make([]byte, 0, min(n, 4*len(p)))
	total := 0
	for _, c := range p {
		code := ct.codes[c]
		total += len(code)
		if k := n - len(bits); k < len(code) {
			bits = append(bits, code[:k]...)
			truncated = true
			continue
		}
		bits = append(bits, code...)
	}
	if truncated {
		xlog.Printf(debug, "encoded output truncated from %d to %d",
			total, len(bits))
	}
	return bits, truncated
}

// Encode encodes p using the code table of the fixed tree.
func Encode(p []byte) []byte { return fixedTable.Encode(p) }
