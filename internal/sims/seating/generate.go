package seating

import (
	"strings"

	"seating-ca/pkg/rng"
)

// Generate builds a random w x h layout in which each cell is an empty seat
// with probability density and floor otherwise.
func Generate(w, h int, density float64, r *rng.RNG) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	lines := make([]string, h)
	var sb strings.Builder
	for y := range lines {
		sb.Reset()
		for x := 0; x < w; x++ {
			if r.Chance(density) {
				sb.WriteByte('L')
			} else {
				sb.WriteByte('.')
			}
		}
		lines[y] = sb.String()
	}
	return lines
}
