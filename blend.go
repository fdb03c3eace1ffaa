package raster

// BlendMode selects a Porter-Duff compositing operator. All operators work
// on premultiplied pixels; channels are computed independently and alpha
// follows the same equation as the color channels.
type BlendMode uint8

const (
	BlendClear    BlendMode = iota // 0
	BlendSrc                       // S
	BlendDst                       // D
	BlendSrcOver                   // S + (1-Sa)*D [default]
	BlendDstOver                   // D + (1-Da)*S
	BlendSrcIn                     // Da*S
	BlendDstIn                     // Sa*D
	BlendSrcOut                    // (1-Da)*S
	BlendDstOut                    // (1-Sa)*D
	BlendSrcATop                   // Da*S + (1-Sa)*D
	BlendDstATop                   // Sa*D + (1-Da)*S
	BlendXor                       // (1-Sa)*D + (1-Da)*S
	BlendModulate                  // S*D, used by the triangle modulating shader
)

var blendModeNames = [...]string{
	"Clear", "Src", "Dst", "SrcOver", "DstOver", "SrcIn", "DstIn",
	"SrcOut", "DstOut", "SrcATop", "DstATop", "Xor", "Modulate",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

// blendFunc composites a premultiplied source pixel against a destination.
type blendFunc func(src, dst Pixel) Pixel

// blendProc resolves the mode to its compositor once per draw, so the
// per-pixel row loops never switch on the mode.
func blendProc(mode BlendMode) blendFunc {
	switch mode {
	case BlendClear:
		return blendClear
	case BlendSrc:
		return blendSrc
	case BlendDst:
		return blendDstProc
	case BlendDstOver:
		return blendDstOver
	case BlendSrcIn:
		return blendSrcIn
	case BlendDstIn:
		return blendDstIn
	case BlendSrcOut:
		return blendSrcOut
	case BlendDstOut:
		return blendDstOut
	case BlendSrcATop:
		return blendSrcATop
	case BlendDstATop:
		return blendDstATop
	case BlendXor:
		return blendXor
	case BlendModulate:
		return blendModulate
	default:
		return blendSrcOver
	}
}

func blendClear(src, dst Pixel) Pixel {
	return 0
}

func blendSrc(src, dst Pixel) Pixel {
	return src
}

func blendDstProc(src, dst Pixel) Pixel {
	return dst
}

func blendSrcOver(src, dst Pixel) Pixel {
	inv := 255 - src.A()
	return PackARGB(
		src.A()+div255(inv*dst.A()),
		src.R()+div255(inv*dst.R()),
		src.G()+div255(inv*dst.G()),
		src.B()+div255(inv*dst.B()),
	)
}

func blendDstOver(src, dst Pixel) Pixel {
	inv := 255 - dst.A()
	return PackARGB(
		dst.A()+div255(inv*src.A()),
		dst.R()+div255(inv*src.R()),
		dst.G()+div255(inv*src.G()),
		dst.B()+div255(inv*src.B()),
	)
}

func blendSrcIn(src, dst Pixel) Pixel {
	da := dst.A()
	return PackARGB(
		div255(da*src.A()),
		div255(da*src.R()),
		div255(da*src.G()),
		div255(da*src.B()),
	)
}

func blendDstIn(src, dst Pixel) Pixel {
	sa := src.A()
	return PackARGB(
		div255(sa*dst.A()),
		div255(sa*dst.R()),
		div255(sa*dst.G()),
		div255(sa*dst.B()),
	)
}

func blendSrcOut(src, dst Pixel) Pixel {
	inv := 255 - dst.A()
	return PackARGB(
		div255(inv*src.A()),
		div255(inv*src.R()),
		div255(inv*src.G()),
		div255(inv*src.B()),
	)
}

func blendDstOut(src, dst Pixel) Pixel {
	inv := 255 - src.A()
	return PackARGB(
		div255(inv*dst.A()),
		div255(inv*dst.R()),
		div255(inv*dst.G()),
		div255(inv*dst.B()),
	)
}

func blendSrcATop(src, dst Pixel) Pixel {
	da := dst.A()
	inv := 255 - src.A()
	return PackARGB(
		div255(da*src.A()+inv*dst.A()),
		div255(da*src.R()+inv*dst.R()),
		div255(da*src.G()+inv*dst.G()),
		div255(da*src.B()+inv*dst.B()),
	)
}

func blendDstATop(src, dst Pixel) Pixel {
	sa := src.A()
	inv := 255 - dst.A()
	return PackARGB(
		div255(sa*dst.A()+inv*src.A()),
		div255(sa*dst.R()+inv*src.R()),
		div255(sa*dst.G()+inv*src.G()),
		div255(sa*dst.B()+inv*src.B()),
	)
}

func blendXor(src, dst Pixel) Pixel {
	invSa := 255 - src.A()
	invDa := 255 - dst.A()
	return PackARGB(
		div255(invSa*dst.A()+invDa*src.A()),
		div255(invSa*dst.R()+invDa*src.R()),
		div255(invSa*dst.G()+invDa*src.G()),
		div255(invSa*dst.B()+invDa*src.B()),
	)
}

func blendModulate(src, dst Pixel) Pixel {
	return PackARGB(
		div255(src.A()*dst.A()),
		div255(src.R()*dst.R()),
		div255(src.G()*dst.G()),
		div255(src.B()*dst.B()),
	)
}

// simplifyBlend maps a blend mode to an equivalent cheaper mode given what
// is known about the source: opaque means every source pixel has alpha 255,
// transparent means every source pixel has alpha 0. A result of BlendDst
// means the draw has no effect and can be skipped entirely.
func simplifyBlend(mode BlendMode, opaque, transparent bool) BlendMode {
	switch mode {
	case BlendSrc:
		if transparent {
			return BlendClear
		}
	case BlendSrcOver:
		if opaque {
			return BlendSrc
		} else if transparent {
			return BlendDst
		}
	case BlendDstOver:
		if transparent {
			return BlendDst
		}
	case BlendSrcIn:
		if transparent {
			return BlendClear
		}
	case BlendDstIn:
		if opaque {
			return BlendDst
		} else if transparent {
			return BlendClear
		}
	case BlendSrcOut:
		if transparent {
			return BlendClear
		}
	case BlendDstOut:
		if opaque {
			return BlendClear
		} else if transparent {
			return BlendDst
		}
	case BlendSrcATop:
		if opaque {
			return BlendSrcIn
		} else if transparent {
			return BlendDst
		}
	case BlendDstATop:
		if opaque {
			return BlendDstOver
		} else if transparent {
			return BlendClear
		}
	case BlendXor:
		if opaque {
			return BlendSrcOut
		} else if transparent {
			return BlendDst
		}
	}
	return mode
}
