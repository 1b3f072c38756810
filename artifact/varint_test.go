package artifact

import (
	"bytes"
	"io"
	"testing"
)

func TestUvarint(t *testing.T) {
	tests := []struct {
		u uint64
		n int
	}{
		{0, 1}, {1, 1}, {0x7f, 1}, {0x80, 2}, {16, 1}, {1 << 20, 3},
		{maxPackedBits, 6}, {1<<63 - 1, 9},
	}
	for _, c := range tests {
		var buf [maxUvarintLen]byte
		n := putUvarint(buf[:], c.u)
		if n != c.n {
			t.Fatalf("putUvarint(%d) wrote %d bytes; want %d",
				c.u, n, c.n)
		}
		u, err := readUvarint(bytes.NewReader(buf[:n]))
		if err != nil {
			t.Fatalf("readUvarint error %s", err)
		}
		if u != c.u {
			t.Fatalf("readUvarint returned %d; want %d", u, c.u)
		}
	}
}

func TestUvarintErrors(t *testing.T) {
	tests := []struct {
		p   []byte
		err error
	}{
		{[]byte{}, io.EOF},
		{[]byte{0x80}, io.ErrUnexpectedEOF},
		{[]byte{0x81, 0x00}, errUvarintNullByte},
		{bytes.Repeat([]byte{0xff}, 10), errUvarintOverflow},
	}
	for _, c := range tests {
		_, err := readUvarint(bytes.NewReader(c.p))
		if err != c.err {
			t.Fatalf("readUvarint(% x) returned %v; want %v",
				c.p, err, c.err)
		}
	}
}
