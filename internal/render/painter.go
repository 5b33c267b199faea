//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads palette-indexed cell data into a single image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
	return gp
}

// Blit converts cells through palette, tints the highlighted cells and draws
// the result scaled onto dst. highlight may be nil.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, highlight []bool, scale int) {
	if len(cells) != gp.w*gp.h || len(cells) == 0 {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	if len(highlight) == len(cells) {
		tintRGBA(gp.buf, highlight, color.RGBA{R: 255, G: 230, B: 80, A: 255}, 0.6)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
