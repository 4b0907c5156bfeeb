package text

import "image"

// coverageToARGB converts the alpha coverage of mask over r into ARGB pixels
// of color rgb, scaling the color's own alpha by the coverage.
// mp is the mask point aligned with r.Min.
func coverageToARGB(mask image.Image, mp image.Point, r image.Rectangle, rgb uint32) []uint32 {
	w, h := r.Dx(), r.Dy()
	pix := make([]uint32, w*h)
	ca := rgb >> 24
	color := rgb & 0x00FFFFFF

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := mask.At(mp.X+x, mp.Y+y).RGBA()
			cov := a >> 8
			if cov == 0 {
				continue
			}
			pix[y*w+x] = (cov*ca/255)<<24 | color
		}
	}
	return pix
}
