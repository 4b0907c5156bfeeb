// Package blend implements the pixel arithmetic behind span compositing.
//
// Pixels are 32-bit ARGB words with alpha in the most significant byte and
// non-premultiplied color channels. The source-over operator below uses a
// fixed integer formula; callers depend on its exact output for masking
// effects, so it must not be replaced by an approximation.
package blend

// Channel accessors for a packed ARGB word.
func alpha(p uint32) uint32 { return p >> 24 }
func red(p uint32) uint32   { return (p >> 16) & 0xFF }
func green(p uint32) uint32 { return (p >> 8) & 0xFF }
func blue(p uint32) uint32  { return p & 0xFF }

// Over composites src over dst using the non-premultiplied over operator.
//
// A transparent source leaves dst unchanged, an opaque source replaces it,
// and a transparent destination takes src as is. Otherwise:
//
//	resultAlpha = srcA*255 + dstA*(255-srcA)
//	channel     = (srcC*srcA*255 + dstC*dstA*(255-srcA)) / resultAlpha
//	alpha       = resultAlpha / 255
//
// with every channel clamped to 255.
func Over(dst, src uint32) uint32 {
	sa := alpha(src)
	if sa == 0 {
		return dst
	}
	if sa == 255 {
		return src
	}
	da := alpha(dst)
	if da == 0 {
		return src
	}

	r := red(src) * sa * 255
	g := green(src) * sa * 255
	b := blue(src) * sa * 255

	da *= 255 - sa
	sa = sa*255 + da

	r = min(255, (r+red(dst)*da)/sa)
	g = min(255, (g+green(dst)*da)/sa)
	b = min(255, (b+blue(dst)*da)/sa)
	a := min(255, sa/255)

	return a<<24 | r<<16 | g<<8 | b
}

// ApplyAlpha scales the alpha channel of rgb by factor, truncating toward
// zero. Color channels are left untouched. The product is computed in
// float32 so results match the reference engine bit for bit.
func ApplyAlpha(rgb uint32, factor float32) uint32 {
	if factor == 1 {
		return rgb
	}
	a := uint32(float32(alpha(rgb)) * factor)
	return a<<24 | rgb&0x00FFFFFF
}

// Xor returns dst with the XOR-mode transform applied: dst ^ (xorColor ^ src).
// Applying it twice with the same arguments restores dst.
func Xor(dst, xorColor, src uint32) uint32 {
	return dst ^ (xorColor ^ src)
}
