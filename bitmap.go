package raster

import (
	"image"
	"image/color"
)

// Compile-time interface check.
var _ image.Image = (*Bitmap)(nil)

// Bitmap is a rectangular buffer of premultiplied ARGB pixels. It is the
// drawing target of a Canvas and the sample source of a BitmapShader.
//
// Bitmap implements image.Image so it can flow into Go's standard image
// ecosystem (encoders, draw operations).
type Bitmap struct {
	width  int
	height int
	pix    []Pixel
	opaque bool
}

// NewBitmap creates a transparent bitmap with the given dimensions.
// Returns nil when either dimension is not positive.
func NewBitmap(width, height int) *Bitmap {
	if width < 1 || height < 1 {
		return nil
	}
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int { return b.height }

// Pix returns the raw pixel storage in row-major order.
func (b *Bitmap) Pix() []Pixel { return b.pix }

// Row returns the pixels of row y starting at column x.
func (b *Bitmap) Row(x, y int) []Pixel {
	return b.pix[y*b.width+x : (y+1)*b.width]
}

// Get returns the pixel at (x, y). The coordinates must be in bounds.
func (b *Bitmap) Get(x, y int) Pixel {
	return b.pix[y*b.width+x]
}

// Set stores a pixel at (x, y). The coordinates must be in bounds.
func (b *Bitmap) Set(x, y int, p Pixel) {
	b.pix[y*b.width+x] = p
}

// IsOpaque reports whether every pixel of the bitmap is known to have
// alpha 255. It is a conservative flag, not a scan: it is set by FromImage
// and SetOpaque.
func (b *Bitmap) IsOpaque() bool { return b.opaque }

// SetOpaque records whether the bitmap contents are fully opaque.
func (b *Bitmap) SetOpaque(opaque bool) { b.opaque = opaque }

// FromImage converts any image into a premultiplied bitmap and records
// whether it is fully opaque.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	bm := NewBitmap(bounds.Dx(), bounds.Dy())
	if bm == nil {
		return nil
	}

	opaque := true
	for y := 0; y < bm.height; y++ {
		row := bm.Row(0, y)
		for x := 0; x < bm.width; x++ {
			// RGBA() already returns alpha-premultiplied 16-bit channels.
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = PackARGB(a>>8, r>>8, g>>8, bl>>8)
			if a != 0xffff {
				opaque = false
			}
		}
	}
	bm.opaque = opaque
	return bm
}

// RGBA copies the bitmap into a standard premultiplied image.RGBA.
func (b *Bitmap) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		row := b.Row(0, y)
		for x, p := range row {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(p.R())
			img.Pix[i+1] = uint8(p.G())
			img.Pix[i+2] = uint8(p.B())
			img.Pix[i+3] = uint8(p.A())
		}
	}
	return img
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	p := b.Get(x, y)
	return color.RGBA{
		R: uint8(p.R()),
		G: uint8(p.G()),
		B: uint8(p.B()),
		A: uint8(p.A()),
	}
}
