package seating

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seating-ca/internal/core"
	"seating-ca/pkg/rng"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"rule":               "visible",
		"visible_threshold":  "6",
		"adjacent_threshold": "zero",
		"max_rounds":         "-2",
		"w":                  "12",
		"density":            "1.5",
		"seed":               "7",
	})
	assert.Equal(t, "visible", c.Rule)
	assert.Equal(t, 6, c.VisibleThreshold)
	assert.Equal(t, 4, c.AdjacentThreshold)
	assert.Zero(t, c.MaxRounds)
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, DefaultConfig().Density, c.Density)
	assert.Equal(t, int64(7), c.Seed)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "seating.yaml", strings.Join([]string{
		"rule: adjacent",
		"adjacent_threshold: 5",
		"max_rounds: 100",
		"log_level: debug",
	}, "\n"))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "adjacent", c.Rule)
	assert.Equal(t, 5, c.AdjacentThreshold)
	assert.Equal(t, 5, c.VisibleThreshold, "unset keys keep defaults")
	assert.Equal(t, 100, c.MaxRounds)
	assert.Equal(t, "debug", c.LogLevel)

	kinds, err := c.RuleKinds()
	require.NoError(t, err)
	assert.Equal(t, []RuleKind{Adjacent}, kinds)
	assert.Equal(t, Rule{Kind: Adjacent, Threshold: 5}, c.RuleFor(Adjacent))
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "rule: [unterminated"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "rule.yaml", "rule: diagonal"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diagonal")

	_, err = LoadConfig(writeFile(t, "threshold.yaml", "visible_threshold: 9"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "visible_threshold")
}

func TestParseRuleKind(t *testing.T) {
	for in, want := range map[string]RuleKind{
		"adjacent": Adjacent,
		"A":        Adjacent,
		" visible": Visible,
		"b":        Visible,
	} {
		got, err := ParseRuleKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseRuleKind("both")
	assert.Error(t, err)

	kinds, err := DefaultConfig().RuleKinds()
	require.NoError(t, err)
	assert.Equal(t, []RuleKind{Adjacent, Visible}, kinds)
}

func TestNewFromConfigInput(t *testing.T) {
	path := writeFile(t, "layout.txt", strings.Join(sampleLayout, "\n")+"\n")
	c := DefaultConfig()
	c.Input = path
	c.Rule = "visible"

	a, err := NewFromConfig(c)
	require.NoError(t, err)
	res, err := a.Stabilize(0)
	require.NoError(t, err)
	assert.Equal(t, 26, res.Occupied)

	c.Input = filepath.Join(t.TempDir(), "missing.txt")
	_, err = NewFromConfig(c)
	assert.Error(t, err)
}

func TestRegistryBuildsGeneratedLayout(t *testing.T) {
	sim, err := core.New("seating", map[string]string{"w": "16", "h": "8", "seed": "3", "rule": "adjacent"})
	require.NoError(t, err)
	assert.Equal(t, "seating", sim.Name())
	assert.Equal(t, core.Size{W: 16, H: 8}, sim.Size())

	first := append([]uint8(nil), sim.Cells()...)
	sim.Step()
	sim.Reset(0)
	assert.Equal(t, first, sim.Cells(), "reset with zero seed regenerates the configured layout")

	sim.Reset(4)
	again := append([]uint8(nil), sim.Cells()...)
	sim.Reset(4)
	assert.Equal(t, again, sim.Cells())
}

func TestGenerate(t *testing.T) {
	lines := Generate(5, 3, 1, rng.New(1))
	assert.Equal(t, []string{"LLLLL", "LLLLL", "LLLLL"}, lines)
	lines = Generate(4, 2, 0, rng.New(1))
	assert.Equal(t, []string{"....", "...."}, lines)
	assert.Nil(t, Generate(0, 3, 0.5, rng.New(1)))
	assert.Equal(t, Generate(8, 8, 0.5, rng.New(9)), Generate(8, 8, 0.5, rng.New(9)))
}

func TestParameterControls(t *testing.T) {
	a := New(Parse(sampleLayout), AdjacentRule())
	a.Step()

	snap := a.Parameters()
	p, ok := snap.Lookup("seats")
	require.True(t, ok)
	assert.Equal(t, "71", p.Value)
	p, _ = snap.Lookup("round")
	assert.Equal(t, "1", p.Value)

	assert.True(t, a.SetIntParameter("threshold", 5))
	assert.Equal(t, Rule{Kind: Adjacent, Threshold: 5}, a.Rule())
	assert.Zero(t, a.Rounds(), "changing the rule restarts the run")
	assert.False(t, a.SetIntParameter("threshold", 0))
	assert.False(t, a.SetIntParameter("unknown", 1))

	assert.True(t, a.SetIntParameter("rule", int(Visible)))
	assert.Equal(t, VisibleRule(), a.Rule())
	res, err := a.Stabilize(0)
	require.NoError(t, err)
	assert.Equal(t, 26, res.Occupied)
	assert.False(t, a.SetIntParameter("rule", 2))

	assert.Len(t, a.ParameterControls(), 2)
}
