package seating

import (
	"strings"

	"seating-ca/internal/core"
	"seating-ca/internal/geom"
)

// Grid is a waiting-area layout. Cells are stored row-major over the bounding
// rectangle of the input; only coordinates inside their row belong to the
// domain. The domain is fixed once parsed.
type Grid struct {
	w, h   int
	rows   []int
	coords []geom.Pt

	cur  []Tile
	prev []Tile
}

// Parse builds a Grid from layout rows. Rows may differ in length and
// unknown characters become floor, so Parse never fails. An empty input
// yields an empty domain.
func Parse(lines []string) *Grid {
	decoded := make([][]rune, len(lines))
	w := 0
	for y, line := range lines {
		decoded[y] = []rune(line)
		w = max(w, len(decoded[y]))
	}
	h := len(lines)

	g := &Grid{
		w:    w,
		h:    h,
		rows: make([]int, h),
		cur:  make([]Tile, w*h),
		prev: make([]Tile, w*h),
	}
	for y, row := range decoded {
		g.rows[y] = len(row)
		for x, r := range row {
			g.coords = append(g.coords, geom.Pt{X: x, Y: y})
			g.cur[y*w+x] = TileFromRune(r)
		}
	}
	copy(g.prev, g.cur)
	return g
}

// Size reports the bounding rectangle of the layout.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Len returns the number of coordinates in the domain.
func (g *Grid) Len() int { return len(g.coords) }

// Coords returns the domain in parse order. The slice must not be modified.
func (g *Grid) Coords() []geom.Pt { return g.coords }

// Contains reports whether p is part of the domain.
func (g *Grid) Contains(p geom.Pt) bool {
	return p.Y >= 0 && p.Y < g.h && p.X >= 0 && p.X < g.rows[p.Y]
}

// At returns the current tile at p, or Floor outside the domain.
func (g *Grid) At(p geom.Pt) Tile {
	if !g.Contains(p) {
		return Floor
	}
	return g.cur[g.index(p)]
}

// Occupied counts the occupied seats in the current round.
func (g *Grid) Occupied() int { return count(g.cur, OccupiedSeat) }

// Seats counts the seat coordinates, empty or occupied.
func (g *Grid) Seats() int {
	return count(g.cur, EmptySeat) + count(g.cur, OccupiedSeat)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.rows = append([]int(nil), g.rows...)
	c.coords = append([]geom.Pt(nil), g.coords...)
	c.cur = append([]Tile(nil), g.cur...)
	c.prev = append([]Tile(nil), g.prev...)
	return &c
}

// String renders the current tiles as layout rows separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.rows[y]; x++ {
			sb.WriteRune(g.cur[y*g.w+x].Rune())
		}
	}
	return sb.String()
}

func (g *Grid) index(p geom.Pt) int { return p.Y*g.w + p.X }

// snapshot publishes the current tiles as the previous round. The buffers are
// swapped; the caller must overwrite every slot of cur afterwards.
func (g *Grid) snapshot() {
	g.cur, g.prev = g.prev, g.cur
}

func (g *Grid) load(tiles []Tile) {
	copy(g.cur, tiles)
	copy(g.prev, tiles)
}

func count(tiles []Tile, want Tile) int {
	n := 0
	for _, t := range tiles {
		if t == want {
			n++
		}
	}
	return n
}
