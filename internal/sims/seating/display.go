package seating

import "image/color"

const (
	displayFloor    = uint8(Floor)
	displayEmpty    = uint8(EmptySeat)
	displayOccupied = uint8(OccupiedSeat)
	// displayVoid marks bounding-box cells past the end of a short row.
	displayVoid = 3
)

var seatingPalette = []color.RGBA{
	displayFloor:    {R: 70, G: 52, B: 32, A: 255},
	displayEmpty:    {R: 90, G: 160, B: 90, A: 255},
	displayOccupied: {R: 210, G: 70, B: 60, A: 255},
	displayVoid:     {R: 0, G: 0, B: 0, A: 255},
}

// Palette exposes the colors used to render the display buffer.
func (a *Automaton) Palette() []color.RGBA {
	return seatingPalette
}

func (a *Automaton) rebuildDisplay() {
	g := a.grid
	a.display.Fill(displayVoid)
	cells := a.display.Cells()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.rows[y]; x++ {
			i := a.display.Index(x, y)
			cells[i] = uint8(g.cur[i])
		}
	}
}
