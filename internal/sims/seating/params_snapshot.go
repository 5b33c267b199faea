package seating

import "seating-ca/internal/core"

// Parameters reports the layout, the active rule and the run progress.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	size := a.grid.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Layout",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.IntParam("seats", "Seats", a.grid.Seats()),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("rule_name", "Rule", a.rule.Kind.String()),
				core.IntParam("rule", "Rule kind", int(a.rule.Kind)),
				core.IntParam("threshold", "Threshold", a.rule.Threshold),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("round", "Round", a.rounds),
				core.IntParam("changed", "Changed", a.changed),
				core.IntParam("occupied", "Occupied", a.grid.Occupied()),
				core.StringParam("state", "State", a.state.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule kind", Step: 1, Min: int(Adjacent), Max: int(Visible), HasMin: true, HasMax: true},
		{Key: "threshold", Label: "Threshold", Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
	}
}

// SetIntParameter adjusts the rule and restarts the run. Switching the rule
// kind also resets the threshold to that kind's default.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "rule":
		if value < int(Adjacent) || value > int(Visible) {
			return false
		}
		kind := RuleKind(value)
		a.SetRule(Rule{Kind: kind, Threshold: kind.DefaultThreshold()})
		return true
	case "threshold":
		if value < 1 || value > 8 {
			return false
		}
		a.SetRule(Rule{Kind: a.rule.Kind, Threshold: value})
		return true
	}
	return false
}
