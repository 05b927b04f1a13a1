package render

import "image/color"

// Background is the dead-cell color.
var Background = color.RGBA{A: 255}

// RGB converts a 0xRRGGBB value into an opaque color.
func RGB(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		base := i * 4
		px := off
		if c != 0 {
			px = on
		}
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// FillRGBA paints cells into buf with the given foreground over Background.
// buf must hold 4 bytes per cell.
func FillRGBA(buf []byte, cells []uint8, fg uint32) {
	fillBinaryRGBA(buf, cells, RGB(fg), Background)
}
