package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Filter selects the resampling used when a blit changes size.
type Filter uint8

const (
	// FilterAreaAverage averages every source pixel a destination pixel
	// covers, weighted by the covered area.
	FilterAreaAverage Filter = iota

	// FilterNearest picks the source pixel under each destination pixel center.
	FilterNearest
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterAreaAverage:
		return "AreaAverage"
	case FilterNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// Scale resamples src to dw by dh with the given filter.
// A buffer that already has the requested size is returned as is.
func Scale(src *Buffer, dw, dh int, f Filter) (*Buffer, error) {
	if dw <= 0 || dh <= 0 {
		return nil, ErrInvalidDimensions
	}
	if dw == src.Width && dh == src.Height {
		return src, nil
	}
	if f == FilterNearest {
		return ScaleNearest(src, dw, dh)
	}
	return ScaleAreaAverage(src, dw, dh)
}

// ScaleNearest resamples src with golang.org/x/image/draw's nearest-neighbor
// scaler. Opaque pixels are reproduced exactly; translucent pixels pass through
// 16-bit premultiplied color and may differ by one in a channel.
func ScaleNearest(src *Buffer, dw, dh int) (*Buffer, error) {
	out, err := NewBuffer(dw, dh)
	if err != nil {
		return nil, err
	}

	srcImg := src.ToNRGBA()
	dstImg := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.NearestNeighbor.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), xdraw.Src, nil)

	for i := range out.Pix {
		j := i * 4
		p := dstImg.Pix[j : j+4 : j+4]
		out.Pix[i] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
	}
	return out, nil
}

// ScaleAreaAverage resamples src to dw by dh by area averaging.
//
// Source and destination are laid over a common integer grid in which a
// source pixel is dw (or dh) units wide and a destination pixel sw (or sh)
// units wide. The destination alpha is the overlap-weighted sum of the source
// alphas divided by sw*sh. Color channels are weighted by area and by source
// alpha, then divided by the summed alpha, so transparent pixels add no
// color. Results are rounded to nearest; a transparent result is 0.
func ScaleAreaAverage(src *Buffer, dw, dh int) (*Buffer, error) {
	out, err := NewBuffer(dw, dh)
	if err != nil {
		return nil, err
	}
	sw, sh := src.Width, src.Height

	// Horizontal pass: one row of dw accumulators per source row, colors
	// premultiplied by alpha.
	cols := weights(sw, dw)
	tmp := make([]uint64, 4*dw*sh)
	for y := 0; y < sh; y++ {
		row := src.Row(y)
		acc := tmp[4*dw*y : 4*dw*(y+1)]
		for dx, ws := range cols {
			var a, r, g, b uint64
			for _, w := range ws {
				p := row[w.index]
				wa := uint64(p>>24) * w.weight
				a += wa
				r += uint64((p>>16)&0xFF) * wa
				g += uint64((p>>8)&0xFF) * wa
				b += uint64(p&0xFF) * wa
			}
			acc[4*dx+0], acc[4*dx+1], acc[4*dx+2], acc[4*dx+3] = a, r, g, b
		}
	}

	// Vertical pass.
	total := uint64(sw) * uint64(sh)
	half := total / 2
	rows := weights(sh, dh)
	for dy, ws := range rows {
		dst := out.Row(dy)
		for dx := range dst {
			var a, r, g, b uint64
			for _, w := range ws {
				acc := tmp[4*dw*w.index+4*dx:]
				a += acc[0] * w.weight
				r += acc[1] * w.weight
				g += acc[2] * w.weight
				b += acc[3] * w.weight
			}
			alpha := clamp255((a + half) / total)
			if alpha == 0 {
				dst[dx] = 0
				continue
			}
			ha := a / 2
			dst[dx] = uint32(alpha)<<24 |
				uint32(clamp255((r+ha)/a))<<16 |
				uint32(clamp255((g+ha)/a))<<8 |
				uint32(clamp255((b+ha)/a))
		}
	}

	return out, nil
}

// weight is the contribution of source index to one destination pixel.
type weight struct {
	index  int
	weight uint64
}

// weights returns, for each of the dn destination pixels, the source pixels
// it overlaps along one axis and the overlap length in grid units.
// The weights of each destination pixel sum to sn.
func weights(sn, dn int) [][]weight {
	out := make([][]weight, dn)
	for d := 0; d < dn; d++ {
		lo, hi := d*sn, (d+1)*sn
		first := lo / dn
		last := (hi - 1) / dn
		ws := make([]weight, 0, last-first+1)
		for s := first; s <= last && s < sn; s++ {
			overlap := min(hi, (s+1)*dn) - max(lo, s*dn)
			if overlap > 0 {
				ws = append(ws, weight{index: s, weight: uint64(overlap)})
			}
		}
		out[d] = ws
	}
	return out
}

func clamp255(v uint64) uint64 {
	return min(v, 255)
}
