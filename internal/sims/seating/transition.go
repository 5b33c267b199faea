package seating

// Transition computes one synchronous round. prev is the previous generation
// and is only read; next receives the new generation and must have the same
// length. neighbors holds the neighbor indices of every cell, as built for
// the active rule. It returns the number of tiles that changed.
func Transition(prev, next []Tile, neighbors [][]int, threshold int) int {
	changed := 0
	for i, t := range prev {
		n := t
		switch t {
		case OccupiedSeat:
			if occupiedAmong(prev, neighbors[i], threshold) >= threshold {
				n = EmptySeat
			}
		case EmptySeat:
			if occupiedAmong(prev, neighbors[i], 1) == 0 {
				n = OccupiedSeat
			}
		}
		next[i] = n
		if n != t {
			changed++
		}
	}
	return changed
}

// occupiedAmong counts occupied tiles at idx, stopping once limit is reached.
func occupiedAmong(tiles []Tile, idx []int, limit int) int {
	n := 0
	for _, j := range idx {
		if tiles[j] == OccupiedSeat {
			n++
			if n >= limit {
				break
			}
		}
	}
	return n
}
