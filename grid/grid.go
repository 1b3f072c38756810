// Package grid reshapes decoded symbols into a two-dimensional sample grid
// that can be stored as a grayscale image.
//
// The brightness of a cell is the code point of its symbol multiplied by 255
// in 8-bit arithmetic. The scale was designed for binary samples; for the
// symbols of the fixed alphabet it produces values like 187 for 'E'. The
// behaviour is kept because stored images depend on it.
package grid

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

// Filler is used to pad decoded symbols to the size of the grid.
const Filler = ' '

// Shape gives the dimensions of a grid.
type Shape struct {
	Rows, Cols int
}

// Size returns the number of cells of the shape.
func (s Shape) Size() int { return s.Rows * s.Cols }

func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Cols, s.Rows) }

// ParseShape parses a shape in the format WxH, for instance 640x480.
func ParseShape(s string) (Shape, error) {
	var sh Shape
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return sh, fmt.Errorf("grid: shape %q has no x", s)
	}
	var err error
	if sh.Cols, err = strconv.Atoi(w); err != nil {
		return sh, fmt.Errorf("grid: shape %q: %w", s, err)
	}
	if sh.Rows, err = strconv.Atoi(h); err != nil {
		return sh, fmt.Errorf("grid: shape %q: %w", s, err)
	}
	if err = sh.verify(); err != nil {
		return Shape{}, err
	}
	return sh, nil
}

// Square returns the largest square shape with at most n cells.
func Square(n int) Shape {
	k := isqrt(n)
	return Shape{Rows: k, Cols: k}
}

// ShapeOf returns the shape of an image with bounds r. The rows correspond
// to the height.
func ShapeOf(r image.Rectangle) Shape {
	return Shape{Rows: r.Dy(), Cols: r.Dx()}
}

// isqrt computes the integer square root of n using Newton's method.
func isqrt(n int) int {
	if n < 2 {
		if n < 0 {
			return 0
		}
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// Fit returns exactly n symbols: the input is either truncated or padded on
// the right with Filler. The function panics if n is negative.
func Fit(symbols []byte, n int) []byte {
	if n < 0 {
		panic("grid: negative cell count")
	}
	p := make([]byte, n)
	k := copy(p, symbols)
	for i := k; i < n; i++ {
		p[i] = Filler
	}
	return p
}

// Grid is a row-major grid of symbols. It is not modified after
// construction.
type Grid struct {
	Shape
	Cells []byte
}

var (
	errShape    = errors.New("grid: rows and columns must not be negative")
	errTooLarge = errors.New("grid: shape has too many cells")
)

// verify checks that the dimensions are non-negative and that the number of
// cells can be represented by an int.
func (s Shape) verify() error {
	if s.Rows < 0 || s.Cols < 0 {
		return errShape
	}
	if s.Cols != 0 && s.Rows > math.MaxInt/s.Cols {
		return errTooLarge
	}
	return nil
}

// Reconstruct fits the symbols to the shape and returns the grid.
func Reconstruct(symbols []byte, s Shape) (*Grid, error) {
	if err := s.verify(); err != nil {
		return nil, err
	}
	return &Grid{Shape: s, Cells: Fit(symbols, s.Size())}, nil
}

// At returns the symbol in row r and column c.
func (g *Grid) At(r, c int) byte { return g.Cells[r*g.Cols+c] }

// brightness scales a symbol; the multiplication wraps around.
func brightness(c byte) uint8 { return c * 255 }

// Sample returns the brightness of the cell in row r and column c.
func (g *Grid) Sample(r, c int) uint8 { return brightness(g.At(r, c)) }

// Samples returns the brightness values of all cells in row-major order.
func (g *Grid) Samples() []uint8 {
	p := make([]uint8, len(g.Cells))
	for i, c := range g.Cells {
		p[i] = brightness(c)
	}
	return p
}

// Image converts the grid into a grayscale image.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		row := img.Pix[r*img.Stride : r*img.Stride+g.Cols]
		for c := range row {
			row[c] = g.Sample(r, c)
		}
	}
	return img
}
