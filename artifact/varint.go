package artifact

import (
	"errors"
	"io"
)

// maxUvarintLen is the maximum length of an encoded bit count. It limits
// the counts to 63 bits.
const maxUvarintLen = 9

var (
	errUvarintOverflow = errors.New("artifact: bit count overflows")
	errUvarintNullByte = errors.New("artifact: bit count has null byte")
)

// putUvarint encodes u in the variable length format and returns the
// number of bytes written. The buffer must have room for maxUvarintLen
// bytes.
func putUvarint(p []byte, u uint64) int {
	i := 0
	for u >= 0x80 {
		p[i] = byte(u) | 0x80
		i++
		u >>= 7
	}
	p[i] = byte(u)
	return i + 1
}

// readUvarint reads a variable length encoded integer. Encodings with
// trailing null bytes or more than maxUvarintLen bytes are rejected.
func readUvarint(r io.ByteReader) (u uint64, err error) {
	for i := 0; i < maxUvarintLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if i > 0 && b == 0 {
			return 0, errUvarintNullByte
		}
		u |= uint64(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			return u, nil
		}
	}
	return 0, errUvarintOverflow
}
