// Package seating simulates passengers choosing seats in a waiting area until
// the layout stops changing.
package seating

import (
	"errors"
	"fmt"
	"log/slog"

	"seating-ca/internal/core"
	"seating-ca/internal/geom"
	"seating-ca/pkg/rng"
)

// ErrNotConverged is returned by Stabilize when the round cap is reached
// before the layout settles. The accompanying Result is still valid.
var ErrNotConverged = errors.New("seating layout did not stabilize")

// State is the driver state of an Automaton.
type State uint8

const (
	// Running means the last round changed at least one tile.
	Running State = iota
	// Stable means a round produced no changes. It is terminal.
	Stable
)

func (s State) String() string {
	if s == Stable {
		return "stable"
	}
	return "running"
}

// Result summarizes a stabilization run. Rounds counts the rounds that
// changed at least one tile; the round that confirms the fixed point is not
// included.
type Result struct {
	Rule     Rule
	Rounds   int
	Occupied int
	State    State
}

// Automaton drives a Grid round by round under one Rule.
type Automaton struct {
	grid      *Grid
	rule      Rule
	neighbors [][]int
	initial   []Tile

	state    State
	rounds   int
	executed int
	changed  int

	changedMask []bool
	display     *core.ByteGrid

	layout *layoutSource
	logger *slog.Logger
}

// Option configures an Automaton.
type Option func(*Automaton)

// WithLogger enables per-round debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(a *Automaton) { a.logger = l }
}

// layoutSource regenerates random layouts on Reset.
type layoutSource struct {
	w, h    int
	density float64
	seed    int64
}

func withLayoutSource(src *layoutSource) Option {
	return func(a *Automaton) { a.layout = src }
}

// New returns an Automaton that owns g. The neighbor sets for rule are
// resolved once here.
func New(g *Grid, rule Rule, opts ...Option) *Automaton {
	a := &Automaton{rule: rule}
	for _, opt := range opts {
		opt(a)
	}
	a.setGrid(g)
	return a
}

func (a *Automaton) setGrid(g *Grid) {
	a.grid = g
	a.neighbors = neighborIndex(g, a.rule)
	a.initial = append([]Tile(nil), g.cur...)
	a.changedMask = make([]bool, len(g.cur))
	a.display = core.NewByteGrid(g.w, g.h)
	a.restart()
}

// restart rewinds to the initial layout without touching the grid domain.
func (a *Automaton) restart() {
	a.grid.load(a.initial)
	a.state = Running
	a.rounds = 0
	a.executed = 0
	a.changed = 0
	clear(a.changedMask)
	a.rebuildDisplay()
}

// Grid exposes the underlying grid.
func (a *Automaton) Grid() *Grid { return a.grid }

// Rule returns the active neighbor rule.
func (a *Automaton) Rule() Rule { return a.rule }

// State reports whether the automaton has reached its fixed point.
func (a *Automaton) State() State { return a.state }

// Rounds returns the number of rounds that changed the layout so far.
func (a *Automaton) Rounds() int { return a.rounds }

// Result summarizes the current generation.
func (a *Automaton) Result() Result {
	return Result{Rule: a.rule, Rounds: a.rounds, Occupied: a.grid.Occupied(), State: a.state}
}

// Round advances the layout by one generation and reports whether it is now
// stable. Once stable, further calls do nothing.
func (a *Automaton) Round() bool {
	if a.state == Stable {
		return true
	}
	g := a.grid
	g.snapshot()
	a.changed = Transition(g.prev, g.cur, a.neighbors, a.rule.Threshold)
	a.executed++
	for i := range g.cur {
		a.changedMask[i] = g.cur[i] != g.prev[i]
	}
	if a.changed == 0 {
		a.state = Stable
	} else {
		a.rounds++
	}
	a.rebuildDisplay()

	if a.logger != nil {
		a.logger.Debug("seating round",
			"rule", a.rule.String(),
			"round", a.executed,
			"changed", a.changed,
			"occupied", g.Occupied(),
			"state", a.state.String())
	}
	return a.state == Stable
}

// Stabilize runs rounds until the layout stops changing. maxRounds caps the
// total number of rounds executed by this automaton, counting the confirming
// round; zero or less means no cap. Hitting the cap returns the partial
// result together with ErrNotConverged.
func (a *Automaton) Stabilize(maxRounds int) (Result, error) {
	for a.state == Running {
		if maxRounds > 0 && a.executed >= maxRounds {
			return a.Result(), fmt.Errorf("%s rule after %d rounds: %w", a.rule.Kind, a.executed, ErrNotConverged)
		}
		a.Round()
	}
	return a.Result(), nil
}

// Stabilize parses lines and runs them to the fixed point under rule.
func Stabilize(lines []string, rule Rule, maxRounds int, opts ...Option) (Result, error) {
	return New(Parse(lines), rule, opts...).Stabilize(maxRounds)
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "seating" }

// Size returns the layout bounding rectangle.
func (a *Automaton) Size() core.Size { return a.grid.Size() }

// Cells exposes the display buffer, one palette index per cell.
func (a *Automaton) Cells() []uint8 { return a.display.Cells() }

// ChangedCells marks the cells that changed in the most recent round.
func (a *Automaton) ChangedCells() []bool { return a.changedMask }

// NeighborsAt returns the neighbor set of p under the active rule.
func (a *Automaton) NeighborsAt(p geom.Pt) []geom.Pt {
	return a.rule.Neighbors(a.grid, p)
}

// Step advances one round; it is a no-op once stable.
func (a *Automaton) Step() { a.Round() }

// Reset rewinds to the initial layout. Generated layouts are rebuilt from
// seed, falling back to the configured seed when seed is zero.
func (a *Automaton) Reset(seed int64) {
	if a.layout == nil {
		a.restart()
		return
	}
	if seed == 0 {
		seed = a.layout.seed
	}
	lines := Generate(a.layout.w, a.layout.h, a.layout.density, rng.New(seed))
	a.setGrid(Parse(lines))
}

// SetRule switches to a different rule and restarts from the initial layout.
func (a *Automaton) SetRule(rule Rule) {
	rebuild := rule.Kind != a.rule.Kind
	a.rule = rule
	if rebuild {
		a.neighbors = neighborIndex(a.grid, a.rule)
	}
	a.restart()
}

func init() {
	core.Register("seating", func(cfg map[string]string) (core.Sim, error) {
		return NewFromConfig(FromMap(cfg))
	})
}
