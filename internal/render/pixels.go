package render

import "image/color"

// cellsToRGBA expands an engine's binary cell buffer into RGBA pixels in buf,
// one pixel per cell. buf must hold 4 bytes per cell.
func cellsToRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		col := off
		if c != 0 {
			col = on
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// toRGBA narrows any color to 8-bit RGBA once, outside the per-cell loop.
func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
