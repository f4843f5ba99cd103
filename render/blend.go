package render

import (
	"image/color"

	"github.com/tilemint/tilemint/tilemap"
)

// blend combines a source color with the destination pixel under a layer's
// blend mode, then mixes the result toward the destination by the layer
// alpha. Add and subtract saturate per channel.
func blend(mode tilemap.BlendMode, dst, src color.RGBA, alpha uint8) color.RGBA {
	var out color.RGBA
	switch mode {
	case tilemap.BlendAdd:
		out = color.RGBA{
			R: satAdd(dst.R, src.R),
			G: satAdd(dst.G, src.G),
			B: satAdd(dst.B, src.B),
			A: 0xff,
		}
	case tilemap.BlendSubtract:
		out = color.RGBA{
			R: satSub(dst.R, src.R),
			G: satSub(dst.G, src.G),
			B: satSub(dst.B, src.B),
			A: 0xff,
		}
	case tilemap.BlendMultiply:
		out = color.RGBA{
			R: mul(dst.R, src.R),
			G: mul(dst.G, src.G),
			B: mul(dst.B, src.B),
			A: 0xff,
		}
	default:
		out = color.RGBA{R: src.R, G: src.G, B: src.B, A: 0xff}
	}
	if alpha == 0xff {
		return out
	}
	return color.RGBA{
		R: mix(dst.R, out.R, alpha),
		G: mix(dst.G, out.G, alpha),
		B: mix(dst.B, out.B, alpha),
		A: 0xff,
	}
}

func satAdd(a, b uint8) uint8 {
	v := int(a) + int(b)
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

func satSub(a, b uint8) uint8 {
	v := int(a) - int(b)
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func mul(a, b uint8) uint8 {
	return uint8(int(a) * int(b) / 0xff)
}

func mix(dst, src, alpha uint8) uint8 {
	return uint8((int(dst)*(0xff-int(alpha)) + int(src)*int(alpha)) / 0xff)
}
