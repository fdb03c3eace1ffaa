// Package imageio loads and saves raster bitmaps through Go's image
// ecosystem. Decoding auto-detects the format: PNG, JPEG, GIF come from
// the standard library, BMP, TIFF and WebP from golang.org/x/image, and
// TGA from the registered ftrvxmtrx/tga decoder. Encoding supports PNG
// and WebP.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga" // register TGA decoding
	_ "golang.org/x/image/bmp"   // register BMP decoding
	_ "golang.org/x/image/tiff"  // register TIFF decoding
	_ "golang.org/x/image/webp"  // register WebP decoding

	"github.com/gogpu/raster"
)

// ErrUnsupportedFormat is returned when the target format of a save is not
// supported.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Decode reads an image from r, auto-detecting its format, and converts it
// into a premultiplied bitmap.
func Decode(r io.Reader) (*raster.Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return raster.FromImage(img), nil
}

// Load reads the image file at path into a premultiplied bitmap.
func Load(path string) (*raster.Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// EncodePNG writes the bitmap to w as PNG.
func EncodePNG(w io.Writer, b *raster.Bitmap) error {
	if err := png.Encode(w, b.RGBA()); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// EncodeWebP writes the bitmap to w as lossless WebP.
func EncodeWebP(w io.Writer, b *raster.Bitmap) error {
	if err := nativewebp.Encode(w, toNRGBA(b.RGBA()), nil); err != nil {
		return fmt.Errorf("imageio: encode webp: %w", err)
	}
	return nil
}

// Save writes the bitmap to path, choosing the format from the extension:
// .png or .webp.
func Save(path string, b *raster.Bitmap) error {
	var encode func(io.Writer, *raster.Bitmap) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = EncodePNG
	case ".webp":
		encode = EncodeWebP
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create: %w", err)
	}

	if err := encode(f, b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close: %w", err)
	}
	return nil
}

// toNRGBA converts a premultiplied image into the straight-alpha form the
// WebP encoder expects.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
