package fidelity

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func uniform(w, h int, y uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = y
	}
	return g
}

func TestMSEIdentical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	mse, err := MSE(img, img)
	if err != nil {
		t.Fatalf("MSE error %s", err)
	}
	if mse != 0 {
		t.Fatalf("MSE of identical images is %g; want 0", mse)
	}
}

func TestMSEUniform(t *testing.T) {
	mse, err := MSE(uniform(4, 4, 10), uniform(4, 4, 20))
	if err != nil {
		t.Fatalf("MSE error %s", err)
	}
	if mse != 100 {
		t.Fatalf("MSE = %g; want 100", mse)
	}
}

func TestMSEResize(t *testing.T) {
	mse, err := MSE(uniform(2, 2, 10), uniform(8, 6, 20))
	if err != nil {
		t.Fatalf("MSE error %s", err)
	}
	if math.Abs(mse-100) > 1 {
		t.Fatalf("MSE = %g; want about 100", mse)
	}
}

func TestMSEEmpty(t *testing.T) {
	if _, err := MSE(uniform(0, 0, 0), uniform(2, 2, 0)); err != ErrEmpty {
		t.Fatalf("MSE of empty image returned %v; want %v", err,
			ErrEmpty)
	}
}

func TestGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(3, 4, 5, 5))
	img.Set(3, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	g := Gray(img)
	if b := g.Bounds(); b != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds %v; want origin based 2x1", b)
	}
	if y := g.GrayAt(0, 0).Y; y != 255 {
		t.Fatalf("white pixel converted to %d", y)
	}
	if y := g.GrayAt(1, 0).Y; y != 0 {
		t.Fatalf("transparent pixel converted to %d", y)
	}
}
