// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	for _, s := range []string{"EA", "", "C\x00F", "H"} {
		n, err := io.WriteString(w, s)
		if err != nil {
			t.Fatalf("WriteString(%q) error %s", s, err)
		}
		if n != len(s) {
			t.Fatalf("WriteString(%q) returned %d", s, n)
		}
	}
	if err = w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	if got := buf.String(); got != "0001101101110" {
		t.Fatalf("writer produced %q", got)
	}
	if w.Written() != int64(buf.Len()) {
		t.Fatalf("Written() = %d; want %d", w.Written(), buf.Len())
	}
	if w.Truncated() {
		t.Fatalf("Truncated() is true without limit")
	}
	if err = w.Close(); err == nil {
		t.Fatalf("second Close succeeded")
	}
	if _, err = w.Write([]byte("E")); err == nil {
		t.Fatalf("Write after Close succeeded")
	}
}

func TestWriterLimit(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriterConfig(&buf, WriterConfig{Limit: MaxEncodedLen})
	if err != nil {
		t.Fatalf("NewWriterConfig error %s", err)
	}
	p := bytes.Repeat([]byte("HI01"), 100)
	for i := 0; i < 3; i++ {
		if _, err = w.Write(p); err != nil {
			t.Fatalf("w.Write error %s", err)
		}
	}
	if err = w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	if buf.Len() != MaxEncodedLen {
		t.Fatalf("writer produced %d characters; want %d",
			buf.Len(), MaxEncodedLen)
	}
	if !w.Truncated() {
		t.Fatalf("Truncated() is false")
	}
	want, _ := FixedCodes().EncodeLimit(bytes.Repeat(p, 3), MaxEncodedLen)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("writer output differs from EncodeLimit")
	}
}

func TestWriterConfigVerify(t *testing.T) {
	var cfg *WriterConfig
	if err := cfg.Verify(); err == nil {
		t.Fatalf("nil config verified")
	}
	cfg = &WriterConfig{Limit: -1}
	if err := cfg.Verify(); err == nil {
		t.Fatalf("negative limit verified")
	}
	if _, err := NewWriter(nil); err == nil {
		t.Fatalf("NewWriter(nil) succeeded")
	}
}

func TestReader(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	p := randomSymbols(r, FixedTree().Leaves(), 5000)
	bits := Encode(p)
	for _, bufSize := range []int{1, 3, 4096} {
		z, err := NewReaderConfig(bytes.NewReader(bits),
			ReaderConfig{BufSize: bufSize})
		if err != nil {
			t.Fatalf("NewReaderConfig error %s", err)
		}
		got, err := io.ReadAll(z)
		if err != nil {
			t.Fatalf("io.ReadAll error %s", err)
		}
		if !bytes.Equal(got, p) {
			t.Fatalf("BufSize %d: reader output differs", bufSize)
		}
	}
}

func TestReaderStrict(t *testing.T) {
	z, err := NewReaderConfig(bytes.NewReader([]byte("00x01")),
		ReaderConfig{Policy: Strict})
	if err != nil {
		t.Fatalf("NewReaderConfig error %s", err)
	}
	got, err := io.ReadAll(z)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if string(got) != "EA" {
		t.Fatalf("strict reader returned %q; want %q", got, "EA")
	}
}

func TestReaderConfigVerify(t *testing.T) {
	cfg := ReaderConfig{Policy: Policy(9)}
	if err := cfg.Verify(); err == nil {
		t.Fatalf("unknown policy verified")
	}
	cfg = ReaderConfig{BufSize: -1}
	if err := cfg.Verify(); err == nil {
		t.Fatalf("negative BufSize verified")
	}
}
