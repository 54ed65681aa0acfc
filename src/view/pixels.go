package view

import (
	"image/color"

	"toruslife/src/universe"
)

//fillBinaryRGBA converts the view cells into RGBA pixels in buf, buf holds 4 bytes per cell
func fillBinaryRGBA(buf []byte, v universe.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < v.Len(); i++ {
		base := i * 4
		if v.At(i).Alive() {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
