package artifact

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Layout of the packed format:
//
//	magic = "FXB1"
//	count = number of bits as unsigned varint
//	bits  = count bits, most-significant bit first, zero padded
const packedMagic = "FXB1"

// maxPackedBits limits the bit count accepted by the reader.
const maxPackedBits = 1 << 40

// ErrNotBinary indicates that a bitstring contains characters other than
// '0' and '1' and cannot be packed.
var ErrNotBinary = errors.New("artifact: bitstring is not binary")

// packWriter collects the bitstring and writes the packed representation
// when it is closed, because the header contains the bit count.
type packWriter struct {
	w    io.Writer
	bits []byte
	err  error
}

func newPackWriter(w io.Writer) *packWriter {
	return &packWriter{w: w}
}

func (pw *packWriter) Write(p []byte) (n int, err error) {
	if pw.err != nil {
		return 0, pw.err
	}
	for i, c := range p {
		if c != '0' && c != '1' {
			pw.err = fmt.Errorf("%w: %q at offset %d", ErrNotBinary,
				c, len(pw.bits)+i)
			return i, pw.err
		}
	}
	pw.bits = append(pw.bits, p...)
	return len(p), nil
}

func (pw *packWriter) Close() error {
	if pw.err != nil {
		return pw.err
	}
	var hdr [len(packedMagic) + maxUvarintLen]byte
	copy(hdr[:], packedMagic)
	k := len(packedMagic)
	k += putUvarint(hdr[k:], uint64(len(pw.bits)))
	if _, err := pw.w.Write(hdr[:k]); err != nil {
		return err
	}
	bw := bitio.NewWriter(pw.w)
	for _, c := range pw.bits {
		if err := bw.WriteBool(c == '1'); err != nil {
			return err
		}
	}
	pw.err = errors.New("artifact: packed writer closed")
	return bw.Close()
}

// unpackReader provides the bitstring of a packed stream.
type unpackReader struct {
	br *bitio.Reader
	n  uint64
}

func newUnpackReader(r io.Reader) (*unpackReader, error) {
	bf := bufio.NewReader(r)
	magic := make([]byte, len(packedMagic))
	if _, err := io.ReadFull(bf, magic); err != nil {
		return nil, err
	}
	if string(magic) != packedMagic {
		return nil, errors.New("artifact: packed magic invalid")
	}
	n, err := readUvarint(bf)
	if err != nil {
		return nil, fmt.Errorf("artifact: packed bit count: %w", err)
	}
	if n > maxPackedBits {
		return nil, errors.New("artifact: packed bit count too large")
	}
	return &unpackReader{br: bitio.NewReader(bf), n: n}, nil
}

func (ur *unpackReader) Read(p []byte) (n int, err error) {
	if ur.n == 0 {
		return 0, io.EOF
	}
	for n < len(p) && ur.n > 0 {
		b, err := ur.br.ReadBool()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return n, err
		}
		if b {
			p[n] = '1'
		} else {
			p[n] = '0'
		}
		n++
		ur.n--
	}
	return n, nil
}
