package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/fixtree"
	"github.com/ulikunitz/fixtree/artifact"
	"github.com/ulikunitz/fixtree/fidelity"
	"github.com/ulikunitz/fixtree/grid"
	"github.com/ulikunitz/fixtree/internal/imageio"
	"github.com/ulikunitz/fixtree/internal/xlog"
)

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *userPathError) Unwrap() error { return e.Err }

// userError converts path errors to errors presentable to the user.
func userError(err error) error {
	pe, ok := err.(*os.PathError)
	if !ok {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

var errNoRegular = errors.New("no regular file")

// openFile opens the input file. The path "-" selects standard input.
func openFile(path string) (f *os.File, err error) {
	if path == "-" {
		return os.Stdin, nil
	}
	if f, err = os.Open(path); err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &userPathError{Path: path, Err: errNoRegular}
	}
	return f, nil
}

// encodeResult describes the outcome of an encoding.
type encodeResult struct {
	path      string
	written   int64
	truncated bool
	size      int64
}

func (r *encodeResult) report(w io.Writer) {
	fmt.Fprintf(w, "encoded size: %d bytes\n", r.size)
	if r.truncated {
		fmt.Fprintf(w, "bitstring truncated to %d characters\n",
			r.written)
	}
}

// encodeFile encodes the file in and stores the bitstring in the artifact
// file out.
func encodeFile(in, out string, opts *options) (res encodeResult, err error) {
	f, err := openFile(in)
	if err != nil {
		return res, err
	}
	defer f.Close()

	var buf bytes.Buffer
	z, err := fixtree.NewWriterConfig(&buf,
		fixtree.WriterConfig{Limit: opts.limit})
	if err != nil {
		return res, err
	}
	if _, err = io.Copy(z, bufio.NewReader(f)); err != nil {
		return res, err
	}
	if err = z.Close(); err != nil {
		return res, err
	}
	xlog.Debugf("%s: %d characters encoded", in, z.Written())
	if z.Written() == 0 {
		xlog.Warnf("%s: no symbols of the alphabet found", in)
	}

	quit := signalHandler(artifact.TmpName(out))
	defer close(quit)
	err = artifact.WriteFile(out, buf.Bytes(), artifact.Options{
		Format: opts.format,
		Force:  opts.force,
	})
	if err != nil {
		return res, err
	}
	fi, err := os.Stat(out)
	if err != nil {
		return res, err
	}
	res = encodeResult{
		path:      out,
		written:   z.Written(),
		truncated: z.Truncated(),
		size:      fi.Size(),
	}
	return res, nil
}

// shapeOf computes the grid shape for n decoded symbols.
func shapeOf(n int, opts *options) (grid.Shape, error) {
	if opts.like != "" {
		img, err := imageio.ReadFile(opts.like)
		if err != nil {
			return grid.Shape{}, err
		}
		return grid.ShapeOf(img.Bounds()), nil
	}
	switch opts.shape {
	case "", "square":
		return grid.Square(n), nil
	}
	return grid.ParseShape(opts.shape)
}

// decodeFile reads the artifact file, decodes the bitstring and arranges the
// symbols in a grid.
func decodeFile(opts *options) (*grid.Grid, error) {
	bits, err := artifact.ReadFile(opts.artifact)
	if err != nil {
		return nil, err
	}
	zr, err := fixtree.NewReaderConfig(bytes.NewReader(bits),
		fixtree.ReaderConfig{Policy: opts.policy})
	if err != nil {
		return nil, err
	}
	symbols, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	xlog.Debugf("%s: %d symbols decoded from %d characters",
		opts.artifact, len(symbols), len(bits))
	s, err := shapeOf(len(symbols), opts)
	if err != nil {
		return nil, err
	}
	if s.Size() == 0 {
		return nil, &userPathError{Path: opts.artifact,
			Err: errors.New("image would be empty")}
	}
	return grid.Reconstruct(symbols, s)
}

// writeImage stores the grid as grayscale image.
func writeImage(g *grid.Grid, opts *options) error {
	xlog.Debugf("writing %s image %s", g.Shape, opts.output)
	return imageio.WriteFile(opts.output, g.Image(), opts.imageFormat)
}

// runResult describes the outcome of the complete pipeline.
type runResult struct {
	encode encodeResult
	grid   *grid.Grid
	mse    float64
}

// runPipeline encodes the image file in, stores the artifact, reloads and
// decodes it, writes the reconstructed image and compares the grid image
// with the original image. The comparison doesn't include the loss of the
// output image format.
func runPipeline(in string, opts *options) (res runResult, err error) {
	if res.encode, err = encodeFile(in, opts.artifact, opts); err != nil {
		return res, err
	}
	if res.grid, err = decodeFile(opts); err != nil {
		return res, err
	}
	if err = writeImage(res.grid, opts); err != nil {
		return res, err
	}
	orig, err := imageio.ReadFile(in)
	if err != nil {
		return res, err
	}
	if res.mse, err = fidelity.MSE(orig, res.grid.Image()); err != nil {
		return res, err
	}
	return res, nil
}
