// Package geom holds the small amount of 2D integer geometry shared by the
// grid puzzles: points, the eight compass directions and neighbor iteration.
package geom

import "golang.org/x/exp/constraints"

// Pt2 is a point (or offset) on an integer grid. Y grows downwards.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the int point used by the grid types.
type Pt = Pt2[int]

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Chebyshev returns the king-move distance between p and q.
func (p Pt2[T]) Chebyshev(q Pt2[T]) T {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// ForNeighbors calls f for each of the eight surrounding points until f
// returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Walk steps from p along d, calling f with each visited point (p excluded)
// until f returns false.
func (p Pt2[T]) Walk(d Pt2[T], f func(Pt2[T]) (keepGoing bool)) {
	if d.X == 0 && d.Y == 0 {
		return
	}
	for q := p.Add(d); f(q); q = q.Add(d) {
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
