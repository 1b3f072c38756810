package artifact

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/ulikunitz/fixtree/internal/xio"
)

// Write stores the bitstring on w using format f. Auto selects Text.
func Write(w io.Writer, bits []byte, f Format) error {
	if f == Auto {
		f = Text
	}
	g, err := lookup(f)
	if err != nil {
		return err
	}
	c, err := g.newCompressor(w)
	if err != nil {
		return err
	}
	if _, err = c.Write(bits); err != nil {
		c.Close()
		return err
	}
	return c.Close()
}

// Read reads a bitstring stored in format f. Auto detects the format by its
// magic bytes; streams without known magic are read as text.
func Read(r io.Reader, f Format) (bits []byte, err error) {
	br := bufio.NewReader(r)
	if f == Auto {
		// Peek returns fewer bytes for short streams together with
		// an error that is irrelevant here.
		p, _ := br.Peek(8)
		f = sniff(p)
	}
	g, err := lookup(f)
	if err != nil {
		return nil, err
	}
	d, err := g.newDecompressor(br)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := d.Close(); err == nil {
			err = cerr
		}
	}()
	return io.ReadAll(d)
}

// Options control the writing of artifact files.
type Options struct {
	// Format of the file (default: Auto, selected by the extension)
	Format Format
	// Force allows to overwrite an existing file.
	Force bool
	// Perm gives the permissions of a new file (default: 0666).
	Perm fs.FileMode
}

// TmpName returns the name of the temporary file used while path is
// written. The file is renamed to path after a successful write.
func TmpName(path string) string { return path + ".part" }

// WriteFile stores the bitstring in the file. The data is written to a
// temporary file first, which is renamed after all data has been written.
// An existing file is only replaced if opts.Force is set.
func WriteFile(path string, bits []byte, opts Options) (err error) {
	if path == "" {
		return errors.New("artifact: empty file name not supported")
	}
	f := opts.Format
	if f == Auto {
		f = FormatOf(path)
	}
	g, err := lookup(f)
	if err != nil {
		return err
	}
	perm := opts.Perm
	if perm == 0 {
		perm = 0666
	}
	if _, err = os.Lstat(path); err == nil && !opts.Force {
		return &os.PathError{Op: "write", Path: path, Err: fs.ErrExist}
	}

	tmp := TmpName(path)
	if opts.Force {
		os.Remove(tmp)
	}
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	stack := xio.NewWriteCloserStack()
	defer func() {
		if err != nil {
			stack.Close()
			os.Remove(tmp)
		}
	}()
	stack.Push(file)
	bw := bufio.NewWriter(file)
	stack.PushFunc(bw, bw.Flush)
	c, err := g.newCompressor(bw)
	if err != nil {
		return err
	}
	stack.Push(c)
	if _, err = stack.Write(bits); err != nil {
		return err
	}
	if err = stack.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadFile reads the bitstring stored in the file. The format is detected
// from the content.
func ReadFile(path string) (bits []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, Auto)
}
