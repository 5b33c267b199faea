//go:build ebiten

package ui

import (
	"image/color"

	"seating-ca/internal/core"
	"seating-ca/internal/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type changedCellsProvider interface {
	ChangedCells() []bool
}

type neighborProvider interface {
	NeighborsAt(p geom.Pt) []geom.Pt
}

// Overlay draws optional debugging visuals on top of the base simulation:
// the cells that changed last round (C) and the neighbor set of the seat
// under the cursor (V).
type Overlay struct {
	sim           core.Sim
	scale         int
	showChanged   bool
	showNeighbors bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showChanged: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showChanged = !o.showChanged
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showNeighbors = !o.showNeighbors
	}
}

// Highlight returns the cells the painter should tint, or nil.
func (o *Overlay) Highlight() []bool {
	if !o.showChanged {
		return nil
	}
	if provider, ok := o.sim.(changedCellsProvider); ok {
		return provider.ChangedCells()
	}
	return nil
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showNeighbors {
		return
	}
	provider, ok := o.sim.(neighborProvider)
	if !ok {
		return
	}
	scale := max(o.scale, 1)
	mx, my := ebiten.CursorPosition()
	x, y, ok := cellAt(mx, my, scale, o.sim.Size())
	if !ok {
		return
	}
	nbs := provider.NeighborsAt(geom.Pt{X: x, Y: y})
	if len(nbs) == 0 {
		return
	}
	o.outline(screen, geom.Pt{X: x, Y: y}, scale, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	for _, p := range nbs {
		o.outline(screen, p, scale, color.RGBA{R: 80, G: 200, B: 255, A: 255})
	}
}

func (o *Overlay) outline(screen *ebiten.Image, p geom.Pt, scale int, c color.RGBA) {
	x0, y0 := float64(p.X*scale), float64(p.Y*scale)
	s := float64(scale)
	o.rect(screen, x0, y0, s, 1, c)
	o.rect(screen, x0, y0+s-1, s, 1, c)
	o.rect(screen, x0, y0, 1, s, c)
	o.rect(screen, x0+s-1, y0, 1, s, c)
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
