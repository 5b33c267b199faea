package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Input   string
	Rule    string
	Scale   int
	TPS     int
	SPS     int
	Seed    int64
	HUD     int
	Width   int
	Height  int
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "seating", Rule: "adjacent", Scale: 6, TPS: 60, SPS: 4, Seed: 42, HUD: 220, Width: 96, Height: 96, Density: 0.7}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "layout file; a random layout is generated when empty")
	fs.StringVar(&c.Rule, "rule", c.Rule, "neighbor rule: adjacent or visible")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation rounds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random layouts")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Width, "w", c.Width, "width of random layouts")
	fs.IntVar(&c.Height, "h", c.Height, "height of random layouts")
	fs.Float64Var(&c.Density, "density", c.Density, "seat density of random layouts")
}

// SimOptions converts the flags into the registry's key/value form.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"input":   c.Input,
		"rule":    c.Rule,
		"seed":    strconv.FormatInt(c.Seed, 10),
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
}
