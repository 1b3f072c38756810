// Package imageio reads and writes image files in the formats supported by
// the fixtree command.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// jpegQuality is the quality used for JPEG output.
const jpegQuality = 75

// encoders maps the format names to the encoding functions.
var encoders = map[string]func(w io.Writer, img image.Image) error{
	"png": png.Encode,
	"jpeg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	},
	"gif": func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	},
	"bmp": bmp.Encode,
	"tiff": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, nil)
	},
}

// Format normalizes a format name or file extension. It returns an error if
// the format is not supported.
func Format(name string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(name, "."))
	switch f {
	case "jpg":
		f = "jpeg"
	case "tif":
		f = "tiff"
	}
	if _, ok := encoders[f]; !ok {
		return "", fmt.Errorf("imageio: format %q not supported", name)
	}
	return f, nil
}

// FormatOf returns the format given by the extension of path.
func FormatOf(path string) (string, error) {
	return Format(filepath.Ext(path))
}

// Decode reads an image in any supported format.
func Decode(r io.Reader) (img image.Image, format string, err error) {
	return image.Decode(bufio.NewReader(r))
}

// Encode writes the image in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := Format(format)
	if err != nil {
		return err
	}
	return encoders[f](w, img)
}

// ReadFile reads the image stored in the file.
func ReadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// WriteFile writes the image to the file. The format is given by the file
// extension if format is empty.
func WriteFile(path string, img image.Image, format string) (err error) {
	if format == "" {
		if format, err = FormatOf(path); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err = Encode(bw, img, format); err != nil {
		return err
	}
	return bw.Flush()
}
