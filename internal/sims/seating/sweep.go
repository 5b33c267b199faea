package seating

import (
	"runtime"
	"sort"
	"sync"
)

// SweepResult is the outcome of one rule in a sweep. Err is non-nil when the
// run hit the round cap.
type SweepResult struct {
	Result
	Err error
}

// Sweep stabilizes g under every combination of kinds and thresholds. Each
// run uses its own copy of g, so g is left untouched. Results are ordered by
// kind, then threshold.
func Sweep(g *Grid, kinds []RuleKind, thresholds []int, maxRounds, workers int) []SweepResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var rules []Rule
	for _, k := range kinds {
		for _, t := range thresholds {
			rules = append(rules, Rule{Kind: k, Threshold: t})
		}
	}

	jobs := make(chan Rule)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				res, err := New(g.Clone(), rule).Stabilize(maxRounds)
				results <- SweepResult{Result: res, Err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, rule := range rules {
			jobs <- rule
		}
		close(jobs)
	}()

	all := make([]SweepResult, 0, len(rules))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Rule.Kind != all[j].Rule.Kind {
			return all[i].Rule.Kind < all[j].Rule.Kind
		}
		return all[i].Rule.Threshold < all[j].Rule.Threshold
	})
	return all
}
