package seating

import (
	"fmt"
	"strings"

	"seating-ca/internal/geom"
)

// RuleKind selects which coordinates count toward a seat's occupancy tally.
type RuleKind uint8

const (
	// Adjacent counts the up to eight cells touching the seat.
	Adjacent RuleKind = iota
	// Visible counts the nearest seat seen along each compass direction,
	// looking across floor.
	Visible
)

// RuleKinds lists every kind in reporting order.
var RuleKinds = []RuleKind{Adjacent, Visible}

func (k RuleKind) String() string {
	switch k {
	case Adjacent:
		return "adjacent"
	case Visible:
		return "visible"
	default:
		return fmt.Sprintf("RuleKind(%d)", uint8(k))
	}
}

// DefaultThreshold is the occupied-neighbor count at which an occupied seat
// is vacated under k.
func (k RuleKind) DefaultThreshold() int {
	if k == Visible {
		return 5
	}
	return 4
}

// ParseRuleKind accepts "adjacent"/"a" and "visible"/"b" in any case.
func ParseRuleKind(s string) (RuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacent", "a":
		return Adjacent, nil
	case "visible", "line-of-sight", "b":
		return Visible, nil
	default:
		return 0, fmt.Errorf("unknown rule %q (want adjacent or visible)", s)
	}
}

// Rule pairs a neighbor selection with its vacating threshold.
type Rule struct {
	Kind      RuleKind
	Threshold int
}

// AdjacentRule returns the adjacency rule with threshold 4.
func AdjacentRule() Rule { return Rule{Kind: Adjacent, Threshold: Adjacent.DefaultThreshold()} }

// VisibleRule returns the line-of-sight rule with threshold 5.
func VisibleRule() Rule { return Rule{Kind: Visible, Threshold: Visible.DefaultThreshold()} }

func (r Rule) String() string { return fmt.Sprintf("%s(%d)", r.Kind, r.Threshold) }

// Neighbors returns the coordinates whose occupancy decides the next state of
// the seat at p. Floor and out-of-domain coordinates have no neighbors.
func (r Rule) Neighbors(g *Grid, p geom.Pt) []geom.Pt {
	if !g.At(p).IsSeat() {
		return nil
	}
	if r.Kind == Visible {
		return visibleSeats(g, p)
	}
	return adjacentCells(g, p)
}

func adjacentCells(g *Grid, p geom.Pt) []geom.Pt {
	var out []geom.Pt
	p.ForNeighbors(func(q geom.Pt) bool {
		if g.Contains(q) {
			out = append(out, q)
		}
		return true
	})
	return out
}

func visibleSeats(g *Grid, p geom.Pt) []geom.Pt {
	var out []geom.Pt
	for _, d := range geom.Directions {
		if q, ok := firstSeat(g, p, d); ok {
			out = append(out, q)
		}
	}
	return out
}

// firstSeat walks from p along d across floor and returns the first seat, if
// any, before leaving the domain.
func firstSeat(g *Grid, p geom.Pt, d geom.Direction) (seat geom.Pt, found bool) {
	p.Walk(d.Offset(), func(q geom.Pt) bool {
		if !g.Contains(q) {
			return false
		}
		if g.At(q).IsSeat() {
			seat, found = q, true
			return false
		}
		return true
	})
	return seat, found
}

// neighborIndex resolves the neighbor sets of every cell to slice indices.
// Seat and floor positions never move, so the result stays valid for the
// lifetime of the grid.
func neighborIndex(g *Grid, r Rule) [][]int {
	idx := make([][]int, len(g.cur))
	for _, p := range g.coords {
		nbs := r.Neighbors(g, p)
		if len(nbs) == 0 {
			continue
		}
		list := make([]int, len(nbs))
		for i, q := range nbs {
			list[i] = g.index(q)
		}
		idx[g.index(p)] = list
	}
	return idx
}
