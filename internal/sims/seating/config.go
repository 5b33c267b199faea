package seating

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seating-ca/internal/input"
	"seating-ca/pkg/rng"
)

// RuleBoth selects both neighbor rules, reported adjacent first.
const RuleBoth = "both"

// Config controls which layout is simulated and how.
type Config struct {
	// Input is the layout file. When empty a random layout is generated.
	Input string `yaml:"input"`

	// Rule is adjacent, visible or both.
	Rule              string `yaml:"rule"`
	AdjacentThreshold int    `yaml:"adjacent_threshold"`
	VisibleThreshold  int    `yaml:"visible_threshold"`
	MaxRounds         int    `yaml:"max_rounds"`

	LogLevel string `yaml:"log_level"`

	// Generated layout.
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rule:              RuleBoth,
		AdjacentThreshold: Adjacent.DefaultThreshold(),
		VisibleThreshold:  Visible.DefaultThreshold(),
		LogLevel:          "info",
		Width:             96,
		Height:            96,
		Density:           0.7,
		Seed:              1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Values that do not parse are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["input"]; ok {
		c.Input = v
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["adjacent_threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.AdjacentThreshold = parsed
		}
	}
	if v, ok := cfg["visible_threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.VisibleThreshold = parsed
		}
	}
	if v, ok := cfg["max_rounds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxRounds = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file on top of DefaultConfig and validates
// the result.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks value ranges and the rule selection.
func (c Config) Validate() error {
	if _, err := c.RuleKinds(); err != nil {
		return err
	}
	if c.AdjacentThreshold < 1 || c.AdjacentThreshold > 8 {
		return fmt.Errorf("adjacent_threshold %d out of range [1, 8]", c.AdjacentThreshold)
	}
	if c.VisibleThreshold < 1 || c.VisibleThreshold > 8 {
		return fmt.Errorf("visible_threshold %d out of range [1, 8]", c.VisibleThreshold)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max_rounds %d must not be negative", c.MaxRounds)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %g out of range [0, 1]", c.Density)
	}
	return nil
}

// RuleKinds resolves the Rule field.
func (c Config) RuleKinds() ([]RuleKind, error) {
	if strings.EqualFold(strings.TrimSpace(c.Rule), RuleBoth) || c.Rule == "" {
		return RuleKinds, nil
	}
	k, err := ParseRuleKind(c.Rule)
	if err != nil {
		return nil, err
	}
	return []RuleKind{k}, nil
}

// RuleFor returns the rule for k with the configured threshold.
func (c Config) RuleFor(k RuleKind) Rule {
	if k == Visible {
		return Rule{Kind: Visible, Threshold: c.VisibleThreshold}
	}
	return Rule{Kind: Adjacent, Threshold: c.AdjacentThreshold}
}

// NewFromConfig builds an Automaton for the first configured rule, loading
// c.Input or generating a random layout when no input is set.
func NewFromConfig(c Config) (*Automaton, error) {
	kinds, err := c.RuleKinds()
	if err != nil {
		return nil, err
	}
	rule := c.RuleFor(kinds[0])
	if c.Input != "" {
		lines, err := input.Lines(c.Input)
		if err != nil {
			return nil, err
		}
		return New(Parse(lines), rule), nil
	}
	src := &layoutSource{w: c.Width, h: c.Height, density: c.Density, seed: c.Seed}
	lines := Generate(src.w, src.h, src.density, rng.New(src.seed))
	return New(Parse(lines), rule, withLayoutSource(src)), nil
}
