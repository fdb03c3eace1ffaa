package raster

import "github.com/chewxy/math32"

// TileMode controls how a bitmap shader maps coordinates that fall outside
// the bitmap.
type TileMode uint8

const (
	// TileClamp pins coordinates to the nearest edge texel.
	TileClamp TileMode = iota
	// TileRepeat wraps coordinates, tiling the bitmap.
	TileRepeat
	// TileMirror wraps coordinates, alternating direction every period.
	TileMirror
)

// BitmapShader samples a bitmap with nearest-neighbor lookup under an
// optional local transform and a tile mode.
type BitmapShader struct {
	bitmap *Bitmap
	local  Matrix
	tile   TileMode

	maxX, maxY int
	fw, invW   float32
	fh, invH   float32

	inv Matrix
}

// NewBitmapShader creates a shader sampling the given bitmap. The local
// matrix maps bitmap space into the geometry's coordinate space.
// Returns nil when bitmap is nil.
func NewBitmapShader(bitmap *Bitmap, local Matrix, tile TileMode) *BitmapShader {
	if bitmap == nil {
		return nil
	}
	return &BitmapShader{
		bitmap: bitmap,
		local:  local,
		tile:   tile,
		maxX:   bitmap.Width() - 1,
		maxY:   bitmap.Height() - 1,
		fw:     float32(bitmap.Width()),
		invW:   1 / float32(bitmap.Width()),
		fh:     float32(bitmap.Height()),
		invH:   1 / float32(bitmap.Height()),
	}
}

// IsOpaque implements Shader.
func (s *BitmapShader) IsOpaque() bool {
	return s.bitmap.IsOpaque()
}

// SetContext implements Shader.
func (s *BitmapShader) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Multiply(s.local).Invert()
	if !ok {
		return false
	}
	s.inv = inv
	return true
}

// tileRepeat wraps v into [0, size] by taking the fractional period; values
// already in [0, size], including size itself, pass through unchanged.
func tileRepeat(v, size, invSize float32) float32 {
	if v >= 0 && v <= size {
		return v
	}
	unit := v * invSize
	return (unit - float32(floorToInt(unit))) * size
}

// tileMirror folds v into [0, size], reversing direction each period.
func tileMirror(v, size, invSize float32) float32 {
	if v >= 0 && v <= size {
		return v
	}
	unit := v * invSize
	half := unit * 0.5
	mirrored := 2 * math32.Abs(half-float32(floorToInt(half+0.5)))
	return mirrored * size
}

// ShadeRow implements Shader.
func (s *BitmapShader) ShadeRow(x, y, count int, row []Pixel) {
	var tileX, tileY func(float32) float32
	switch s.tile {
	case TileRepeat:
		tileX = func(v float32) float32 { return tileRepeat(v, s.fw, s.invW) }
		tileY = func(v float32) float32 { return tileRepeat(v, s.fh, s.invH) }
	case TileMirror:
		tileX = func(v float32) float32 { return tileMirror(v, s.fw, s.invW) }
		tileY = func(v float32) float32 { return tileMirror(v, s.fh, s.invH) }
	default: // TileClamp
		tileX = func(v float32) float32 { return clampf(v, 0, float32(s.maxX)) }
		tileY = func(v float32) float32 { return clampf(v, 0, float32(s.maxY)) }
	}

	fx := float32(x) + 0.5
	fy := float32(y) + 0.5
	px := s.inv.A*fx + s.inv.B*fy + s.inv.C
	py := s.inv.D*fx + s.inv.E*fy + s.inv.F

	// The per-pixel sample position moves by (inv.A, inv.D) per device
	// pixel; drop whichever axis does not move.
	aZero := nearlyZero(s.inv.A)
	dZero := nearlyZero(s.inv.D)

	switch {
	case aZero && dZero:
		p := s.sample(tileX(px), tileY(py))
		for i := 0; i < count; i++ {
			row[i] = p
		}
	case aZero:
		sx := s.floorX(tileX(px))
		for i := 0; i < count; i++ {
			row[i] = s.bitmap.Get(sx, s.floorY(tileY(py)))
			py += s.inv.D
		}
	case dZero:
		sy := s.floorY(tileY(py))
		for i := 0; i < count; i++ {
			row[i] = s.bitmap.Get(s.floorX(tileX(px)), sy)
			px += s.inv.A
		}
	default:
		for i := 0; i < count; i++ {
			row[i] = s.sample(tileX(px), tileY(py))
			px += s.inv.A
			py += s.inv.D
		}
	}
}

func (s *BitmapShader) sample(tx, ty float32) Pixel {
	return s.bitmap.Get(s.floorX(tx), s.floorY(ty))
}

// floorX floors a tiled coordinate to a sample column. Tiling can land
// exactly on the far edge, so the index is pinned to the last texel.
func (s *BitmapShader) floorX(v float32) int {
	i := int(v)
	if i > s.maxX {
		i = s.maxX
	}
	return i
}

func (s *BitmapShader) floorY(v float32) int {
	i := int(v)
	if i > s.maxY {
		i = s.maxY
	}
	return i
}
