// Package fidelity compares two images by the mean squared error of their
// grayscale samples.
package fidelity

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Gray converts img to a grayscale image with bounds starting at the
// origin.
func Gray(img image.Image) *image.Gray {
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y))
			g.SetGray(x, y, c.(color.Gray))
		}
	}
	return g
}

// Resize scales img to the size of r using Catmull-Rom interpolation and
// returns it as grayscale image. The image is only converted if the size
// matches already.
func Resize(img image.Image, r image.Rectangle) *image.Gray {
	src := Gray(img)
	if src.Bounds().Size() == r.Size() {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(),
		draw.Src, nil)
	return dst
}

// ErrEmpty indicates that an image has no pixels.
var ErrEmpty = errors.New("fidelity: image is empty")

// MSE returns the mean squared error between the grayscale versions of a and
// b. The image b is resized to the size of a before the comparison.
func MSE(a, b image.Image) (float64, error) {
	if a.Bounds().Empty() || b.Bounds().Empty() {
		return 0, ErrEmpty
	}
	ga := Gray(a)
	gb := Resize(b, ga.Bounds())
	var sum float64
	for y := 0; y < ga.Rect.Dy(); y++ {
		pa := ga.Pix[y*ga.Stride : y*ga.Stride+ga.Rect.Dx()]
		pb := gb.Pix[y*gb.Stride : y*gb.Stride+gb.Rect.Dx()]
		for x := range pa {
			d := float64(pa[x]) - float64(pb[x])
			sum += d * d
		}
	}
	n := ga.Rect.Dx() * ga.Rect.Dy()
	return sum / float64(n), nil
}
