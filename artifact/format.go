// Package artifact persists bitstrings. The text format stores the
// characters verbatim without a line terminator. The xz and zstd formats
// compress the text; the packed format stores eight bits per byte.
package artifact

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Format identifies the storage format of an artifact.
type Format int

// Supported formats. Auto selects the format by file extension when writing
// and by the magic bytes when reading.
const (
	Auto Format = iota
	Text
	XZ
	Zstd
	Packed
)

// format defines the compressor and decompressor functions for a storage
// format.
type format struct {
	name  string
	ext   string
	magic []byte
	// newCompressor returns a writer that stores the bitstring written to
	// it on w. Closing it doesn't close w.
	newCompressor func(w io.Writer) (io.WriteCloser, error)
	// newDecompressor returns a reader providing the bitstring.
	newDecompressor func(r io.Reader) (io.ReadCloser, error)
}

// formats contains the supported formats.
var formats = map[Format]*format{
	Text: {
		name: "text",
		ext:  ".txt",
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return nopWriteCloser{w}, nil
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	},
	XZ: {
		name:  "xz",
		ext:   ".xz",
		magic: []byte{0xfd, '7', 'z', 'X', 'Z', 0x00},
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			z, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(z), nil
		},
	},
	Zstd: {
		name:  "zstd",
		ext:   ".zst",
		magic: []byte{0x28, 0xb5, 0x2f, 0xfd},
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w)
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			z, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return z.IOReadCloser(), nil
		},
	},
	Packed: {
		name:  "packed",
		ext:   ".bits",
		magic: []byte(packedMagic),
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return newPackWriter(w), nil
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			z, err := newUnpackReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(z), nil
		},
	},
}

// String returns the name of the format.
func (f Format) String() string {
	if f == Auto {
		return "auto"
	}
	if g, ok := formats[f]; ok {
		return g.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts a format name into the format.
func ParseFormat(s string) (Format, error) {
	if s == "auto" {
		return Auto, nil
	}
	for f, g := range formats {
		if g.name == s {
			return f, nil
		}
	}
	return Auto, fmt.Errorf("artifact: format %q not supported", s)
}

// FormatOf returns the format for the extension of path. Unknown extensions
// select Text.
func FormatOf(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for f, g := range formats {
		if g.ext == ext {
			return f
		}
	}
	return Text
}

// sniff determines the format from the first bytes of a stream.
func sniff(p []byte) Format {
	for f, g := range formats {
		if len(g.magic) > 0 && bytes.HasPrefix(p, g.magic) {
			return f
		}
	}
	return Text
}

// lookup returns the format definition.
func lookup(f Format) (*format, error) {
	g, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("artifact: format %v not supported", f)
	}
	return g, nil
}

// nopWriteCloser implements a WriteCloser with a Close method not doing
// anything.
type nopWriteCloser struct {
	io.Writer
}

// Close returns nil and doesn't do anything else.
func (c nopWriteCloser) Close() error { return nil }
