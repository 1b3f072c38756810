// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree

import (
	"errors"
	"io"

	"github.com/ulikunitz/fixtree/internal/xlog"
)

// WriterConfig describes the parameters for a bitstring writer.
type WriterConfig struct {
	// Table used for encoding (default: FixedCodes())
	Table *CodeTable

	// Limit is the maximum number of characters written. Zero means
	// unbounded; MaxEncodedLen selects the capped variant.
	Limit int
}

// ApplyDefaults replaces zero values by defaults.
func (c *WriterConfig) ApplyDefaults() {
	if c.Table == nil {
		c.Table = fixedTable
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("fixtree: writer configuration is nil")
	}
	c.ApplyDefaults()
	if c.Limit < 0 {
		return errors.New("fixtree: Limit must not be negative")
	}
	return nil
}

// Writer encodes the data written to it and writes the bitstring to the
// underlying writer. Data beyond the limit is accepted and discarded.
type Writer struct {
	cfg       WriterConfig
	w         io.Writer
	buf       []byte
	n         int64
	total     int64
	truncated bool
	err       error
}

// NewWriter creates a writer using the fixed code table without a limit.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a new writer using the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.New("fixtree: writer is nil")
	}
	return &Writer{cfg: cfg, w: w}, nil
}

var errWriterClosed = errors.New("fixtree: writer closed")

// Write encodes p. It returns len(p) unless the underlying writer reports
// an error.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	z.buf = z.buf[:0]
	for _, c := range p {
		z.buf = append(z.buf, z.cfg.Table.codes[c]...)
	}
	z.total += int64(len(z.buf))
	out := z.buf
	if z.cfg.Limit > 0 {
		k := int64(z.cfg.Limit) - z.n
		if int64(len(out)) > k {
			out = out[:k]
			z.truncated = true
		}
	}
	if len(out) > 0 {
		k, err := z.w.Write(out)
		z.n += int64(k)
		if err != nil {
			z.err = err
			return 0, err
		}
	}
	return len(p), nil
}

// Close finishes the stream. The underlying writer is not closed.
func (z *Writer) Close() error {
	if z.err == errWriterClosed {
		return errWriterClosed
	}
	if z.err != nil {
		return z.err
	}
	if z.truncated {
		xlog.Printf(debug, "encoded output truncated from %d to %d",
			z.total, z.n)
	}
	z.err = errWriterClosed
	return nil
}

// Written returns the number of bitstring characters written to the
// underlying writer.
func (z *Writer) Written() int64 { return z.n }

// Truncated reports whether data has been discarded because of the limit.
func (z *Writer) Truncated() bool { return z.truncated }
