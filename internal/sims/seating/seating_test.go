package seating

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seating-ca/internal/geom"
)

var sampleLayout = []string{
	"L.LL.LL.LL",
	"LLLLLLL.LL",
	"L.L.L..L..",
	"LLLL.LL.LL",
	"L.LL.LL.LL",
	"L.LLLLL.LL",
	"..L.L.....",
	"LLLLLLLLLL",
	"L.LLLLLL.L",
	"L.LLLLL.LL",
}

func TestParse(t *testing.T) {
	g := Parse(sampleLayout)
	assert.Equal(t, 10, g.Size().W)
	assert.Equal(t, 10, g.Size().H)
	assert.Equal(t, 100, g.Len())
	assert.Equal(t, 71, g.Seats())
	assert.Zero(t, g.Occupied())
	assert.Equal(t, EmptySeat, g.At(geom.Pt{X: 0, Y: 0}))
	assert.Equal(t, Floor, g.At(geom.Pt{X: 1, Y: 0}))
	assert.Equal(t, Floor, g.At(geom.Pt{X: -1, Y: 0}))
	assert.Equal(t, strings.Join(sampleLayout, "\n"), g.String())
}

func TestParseIsPermissive(t *testing.T) {
	g := Parse([]string{"L#x", "?.L"})
	assert.Equal(t, EmptySeat, g.At(geom.Pt{X: 0, Y: 0}))
	assert.Equal(t, OccupiedSeat, g.At(geom.Pt{X: 1, Y: 0}))
	assert.Equal(t, Floor, g.At(geom.Pt{X: 2, Y: 0}))
	assert.Equal(t, Floor, g.At(geom.Pt{X: 0, Y: 1}))
	assert.Equal(t, "L#.\n..L", g.String())
}

func TestParseRaggedRows(t *testing.T) {
	g := Parse([]string{"LLL", "L", "LLL"})
	assert.Equal(t, 3, g.Size().W)
	assert.Equal(t, 7, g.Len())
	assert.True(t, g.Contains(geom.Pt{X: 0, Y: 1}))
	assert.False(t, g.Contains(geom.Pt{X: 1, Y: 1}))
	assert.False(t, g.Contains(geom.Pt{X: 2, Y: 1}))
	assert.Equal(t, "LLL\nL\nLLL", g.String())

	// The ray south from (2,0) leaves the domain at (2,1) and must not
	// reach the seat at (2,2).
	got := VisibleRule().Neighbors(g, geom.Pt{X: 2, Y: 0})
	assert.Equal(t, []geom.Pt{{X: 1, Y: 0}}, got)

	a := New(g, AdjacentRule())
	assert.Len(t, a.Cells(), 9)
	assert.Equal(t, uint8(displayVoid), a.Cells()[1*3+1])
	assert.Equal(t, uint8(displayEmpty), a.Cells()[1*3+0])
}

func TestNeighborsAdjacent(t *testing.T) {
	g := Parse(sampleLayout)
	rule := AdjacentRule()

	corner := rule.Neighbors(g, geom.Pt{X: 0, Y: 0})
	assert.ElementsMatch(t, []geom.Pt{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, corner)

	inner := rule.Neighbors(g, geom.Pt{X: 3, Y: 3})
	assert.Len(t, inner, 8)

	assert.Nil(t, rule.Neighbors(g, geom.Pt{X: 1, Y: 0}), "floor has no neighbor set")
	assert.Nil(t, rule.Neighbors(g, geom.Pt{X: 20, Y: 0}))
}

func TestNeighborsVisible(t *testing.T) {
	g := Parse([]string{
		".......#.",
		"...#.....",
		".#.......",
		".........",
		"..#L....#",
		"....#....",
		".........",
		"#........",
		"...#.....",
	})
	got := VisibleRule().Neighbors(g, geom.Pt{X: 3, Y: 4})
	assert.Len(t, got, 8)
	for _, q := range got {
		assert.Equal(t, OccupiedSeat, g.At(q))
	}

	g = Parse([]string{
		".##.##.",
		"#.#.#.#",
		"##...##",
		"...L...",
		"##...##",
		"#.#.#.#",
		".##.##.",
	})
	assert.Empty(t, VisibleRule().Neighbors(g, geom.Pt{X: 3, Y: 3}))

	g = Parse([]string{
		".............",
		".L.L.#.#.#.#.",
		".............",
	})
	got = VisibleRule().Neighbors(g, geom.Pt{X: 1, Y: 1})
	assert.Equal(t, []geom.Pt{{X: 3, Y: 1}}, got, "the empty seat blocks the view")
}

func TestReferenceScenarios(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		rounds   int
		occupied int
	}{
		{"adjacent", AdjacentRule(), 5, 37},
		{"visible", VisibleRule(), 6, 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Stabilize(sampleLayout, tt.rule, 0)
			require.NoError(t, err)
			assert.Equal(t, Stable, res.State)
			assert.Equal(t, tt.rounds, res.Rounds)
			assert.Equal(t, tt.occupied, res.Occupied)
			assert.Equal(t, tt.rule, res.Rule)
		})
	}
}

func TestSecondRoundLayouts(t *testing.T) {
	adjacent := New(Parse(sampleLayout), AdjacentRule())
	adjacent.Round()
	assert.Equal(t, 71, adjacent.Grid().Occupied(), "every seat fills in round one")
	adjacent.Round()
	assert.Equal(t, strings.Join([]string{
		"#.LL.L#.##",
		"#LLLLLL.L#",
		"L.L.L..L..",
		"#LLL.LL.L#",
		"#.LL.LL.LL",
		"#.LLLL#.##",
		"..L.L.....",
		"#LLLLLLLL#",
		"#.LLLLLL.L",
		"#.#LLLL.##",
	}, "\n"), adjacent.Grid().String())

	visible := New(Parse(sampleLayout), VisibleRule())
	visible.Round()
	visible.Round()
	assert.Equal(t, strings.Join([]string{
		"#.LL.LL.L#",
		"#LLLLLL.LL",
		"L.L.L..L..",
		"LLLL.LL.LL",
		"L.LL.LL.LL",
		"L.LLLLL.LL",
		"..L.L.....",
		"LLLLLLLLL#",
		"#.LLLLLL.L",
		"#.LLLLL.L#",
	}, "\n"), visible.Grid().String())
}

func TestEmptyGrid(t *testing.T) {
	for _, lines := range [][]string{nil, {}, {"", ""}} {
		g := Parse(lines)
		assert.Zero(t, g.Len())
		a := New(g, VisibleRule())
		res, err := a.Stabilize(0)
		require.NoError(t, err)
		assert.Equal(t, Result{Rule: VisibleRule(), Rounds: 0, Occupied: 0, State: Stable}, res)
		assert.Empty(t, a.Cells())
	}
}

func TestIdempotentAtFixpoint(t *testing.T) {
	for _, rule := range []Rule{AdjacentRule(), VisibleRule()} {
		a := New(Parse(sampleLayout), rule)
		_, err := a.Stabilize(0)
		require.NoError(t, err)

		g := a.Grid()
		prev := slices.Clone(g.cur)
		next := make([]Tile, len(prev))
		assert.Zero(t, Transition(prev, next, a.neighbors, rule.Threshold), rule.String())
		assert.Equal(t, prev, next)

		before := g.String()
		assert.True(t, a.Round())
		assert.Equal(t, before, g.String())
	}
}

func TestFloorInvariance(t *testing.T) {
	for _, rule := range []Rule{AdjacentRule(), VisibleRule()} {
		a := New(Parse(sampleLayout), rule)
		var floor []geom.Pt
		for _, p := range a.Grid().Coords() {
			if a.Grid().At(p) == Floor {
				floor = append(floor, p)
			}
		}
		require.NotEmpty(t, floor)

		for !a.Round() {
			for _, p := range floor {
				require.Equal(t, Floor, a.Grid().At(p), "%s round %d at %v", rule, a.Rounds(), p)
			}
		}
	}
}

func TestStateNeverLeavesStable(t *testing.T) {
	a := New(Parse(sampleLayout), AdjacentRule())
	seenStable := false
	for i := 0; i < 12; i++ {
		a.Step()
		if seenStable {
			require.Equal(t, Stable, a.State(), "step %d", i)
		}
		seenStable = a.State() == Stable
	}
	assert.True(t, seenStable)
	assert.Equal(t, 5, a.Rounds())
}

func TestStabilizeRoundCap(t *testing.T) {
	a := New(Parse(sampleLayout), AdjacentRule())
	res, err := a.Stabilize(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConverged))
	assert.Equal(t, Running, res.State)
	assert.Equal(t, 3, res.Rounds)

	// The cap counts the confirming round, so six rounds settle Rule A.
	res, err = a.Stabilize(6)
	require.NoError(t, err)
	assert.Equal(t, Stable, res.State)
	assert.Equal(t, 37, res.Occupied)

	_, err = Stabilize(sampleLayout, AdjacentRule(), 5)
	assert.ErrorIs(t, err, ErrNotConverged)
}

func TestAdjacentSymmetry(t *testing.T) {
	g := Parse(sampleLayout)
	rule := AdjacentRule()
	for _, c := range g.Coords() {
		for _, d := range rule.Neighbors(g, c) {
			assert.Equal(t, 1, c.Chebyshev(d))
			if !g.At(d).IsSeat() {
				continue
			}
			assert.Contains(t, rule.Neighbors(g, d), c, "%v -> %v", c, d)
		}
	}
}

func TestVisibleSymmetryInterior(t *testing.T) {
	g := Parse(sampleLayout)
	size := g.Size()
	interior := func(p geom.Pt) bool {
		return p.X > 0 && p.Y > 0 && p.X < size.W-1 && p.Y < size.H-1
	}
	rule := VisibleRule()
	checked := 0
	for _, c := range g.Coords() {
		if !interior(c) {
			continue
		}
		for _, d := range rule.Neighbors(g, c) {
			if !interior(d) {
				continue
			}
			assert.Contains(t, rule.Neighbors(g, d), c, "%v -> %v", c, d)
			checked++
		}
	}
	assert.Positive(t, checked)
}

func TestResetRestoresInitialLayout(t *testing.T) {
	a := New(Parse(sampleLayout), VisibleRule())
	initial := slices.Clone(a.Cells())
	_, err := a.Stabilize(0)
	require.NoError(t, err)
	require.NotEqual(t, initial, a.Cells())

	a.Reset(99)
	assert.Equal(t, initial, a.Cells())
	assert.Equal(t, Running, a.State())
	assert.Zero(t, a.Rounds())
}

func TestChangedCells(t *testing.T) {
	a := New(Parse([]string{"L.L", "..."}), AdjacentRule())
	a.Round()
	assert.Equal(t, []bool{true, false, true, false, false, false}, a.ChangedCells())
	assert.True(t, a.Round())
	assert.NotContains(t, a.ChangedCells(), true)
}

func TestTileRunes(t *testing.T) {
	for _, tile := range []Tile{Floor, EmptySeat, OccupiedSeat} {
		assert.Equal(t, tile, TileFromRune(tile.Rune()), tile.String())
	}
	assert.False(t, Floor.IsSeat())
	assert.True(t, OccupiedSeat.IsSeat())
}
