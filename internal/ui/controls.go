package ui

import (
	"image"

	"seating-ca/internal/core"
)

// adjustTarget returns the value a +/- press would set, and whether the
// press can change anything.
func adjustTarget(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := ctrl.Clamp(current + direction*step)
	return target, target != current
}

// cellAt maps a screen position to grid coordinates.
func cellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
