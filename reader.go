// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree

import (
	"errors"
	"io"
)

// ReaderConfig defines the parameters for a bitstring reader.
type ReaderConfig struct {
	// Tree used for decoding (default: FixedTree())
	Tree *Tree

	// Policy for characters other than '0' and '1' (default: Lenient)
	Policy Policy

	// BufSize is the size of the input buffer (default: 4096)
	BufSize int
}

// ApplyDefaults replaces zero values by defaults.
func (c *ReaderConfig) ApplyDefaults() {
	if c.Tree == nil {
		c.Tree = fixedTree
	}
	if c.BufSize == 0 {
		c.BufSize = 4096
	}
}

// Verify checks the reader configuration for errors. Zero values will be
// replaced by default values.
func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("fixtree: reader configuration is nil")
	}
	c.ApplyDefaults()
	if err := c.Policy.verify(); err != nil {
		return err
	}
	if c.BufSize < 1 {
		return errors.New("fixtree: BufSize must be positive")
	}
	return nil
}

// Reader decodes the bitstring provided by an underlying reader.
type Reader struct {
	r   io.Reader
	dec Decoder
	in  []byte
	out []byte
	off int
	err error
}

// NewReader creates a reader decoding with the fixed tree and the lenient
// policy.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a new reader using the given configuration.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.New("fixtree: reader is nil")
	}
	z := &Reader{
		r:   r,
		dec: Decoder{t: cfg.Tree, policy: cfg.Policy},
		in:  make([]byte, cfg.BufSize),
	}
	return z, nil
}

// Read reads decoded symbols into p. An incomplete code at the end of the
// stream is ignored.
func (z *Reader) Read(p []byte) (n int, err error) {
	for z.off == len(z.out) {
		if z.err != nil {
			return 0, z.err
		}
		var k int
		k, z.err = z.r.Read(z.in)
		z.out = z.dec.Decode(z.out[:0], z.in[:k])
		z.off = 0
	}
	n = copy(p, z.out[z.off:])
	z.off += n
	return n, nil
}
