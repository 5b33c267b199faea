package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// tintRGBA blends tint over the pixels whose mask entry is set.
func tintRGBA(buf []byte, mask []bool, tint color.RGBA, weight float64) {
	if weight <= 0 {
		return
	}
	if weight > 1 {
		weight = 1
	}
	inv := 1 - weight
	for i, on := range mask {
		if !on {
			continue
		}
		base := i * 4
		buf[base+0] = uint8(float64(buf[base+0])*inv + float64(tint.R)*weight + 0.5)
		buf[base+1] = uint8(float64(buf[base+1])*inv + float64(tint.G)*weight + 0.5)
		buf[base+2] = uint8(float64(buf[base+2])*inv + float64(tint.B)*weight + 0.5)
	}
}
