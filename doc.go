// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixtree encodes byte streams into bitstrings using a prefix code
// with a fixed topology and decodes them again.
//
// The tree is hardcoded and does not depend on the input. It assigns codes
// to the symbols E, A, C, F, H, I, L, M, N, O, 0 and 1. The space belongs to
// the alphabet but has the empty code. All other symbols are silently
// dropped by the encoder, so the code is lossy for anything outside its
// narrow alphabet.
//
// A bitstring is a sequence of the characters '0' and '1'. The encoder can
// cap its output at MaxEncodedLen characters. The decoder never fails; the
// Policy selects how characters other than '0' and '1' are treated.
//
// The sub-package grid reshapes decoded symbols into an image, the package
// fidelity compares images and the package artifact persists bitstrings.
package fixtree
