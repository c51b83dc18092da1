package check

import (
	"fmt"
	"time"
)

// Summary aggregates a run.
type Summary struct {
	Results     []*Result `json:"results" yaml:"results"`
	Passed      int       `json:"passed" yaml:"passed"`
	Failed      int       `json:"failed" yaml:"failed"`
	SuccessRate float64   `json:"successRate" yaml:"successRate"`
	Stats       *Stats    `json:"stats,omitempty" yaml:"stats,omitempty"`
	StatsError  string    `json:"statsError,omitempty" yaml:"statsError,omitempty"`
}

// OK reports whether every check passed.
func (s *Summary) OK() bool {
	return s.Failed == 0
}

// Observer is called after each check finishes.
type Observer func(*Result)

// Run executes checks in order. A panicking check is recorded as failed and
// the remaining checks still run.
func Run(env *Env, checks []Check, observe Observer) *Summary {
	summary := &Summary{}

	for _, c := range checks {
		res := runOne(env, c)
		summary.Results = append(summary.Results, res)
		if res.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		if observe != nil {
			observe(res)
		}
	}

	if total := summary.Passed + summary.Failed; total > 0 {
		summary.SuccessRate = float64(summary.Passed) / float64(total) * 100
	}

	stats, err := GenerateStats(env)
	if err != nil {
		summary.StatsError = err.Error()
	} else {
		summary.Stats = stats
	}

	return summary
}

func runOne(env *Env, c Check) (res *Result) {
	res = &Result{Name: c.Name, Icon: c.Icon, Start: c.Start}
	rec := &Recorder{}

	defer func() {
		if p := recover(); p != nil {
			env.Log.Errorf("check %q panicked: %v", c.Name, p)
			res.Passed = false
			res.Panicked = true
			res.Duration = 0
			res.Error = fmt.Sprint(p)
			res.Findings = rec.findings
			res.Conclusion = Finding{Severity: Fail, Message: fmt.Sprintf("Test %q threw an error: %v", c.Name, p)}
		}
	}()

	started := time.Now()
	err := c.Run(env, rec)
	res.Duration = time.Since(started)
	res.Findings = rec.findings

	switch {
	case err != nil:
		res.Error = err.Error()
		res.Conclusion = Finding{Severity: Fail, Message: fmt.Sprintf("%s failed: %v", c.Subject, err)}
	case rec.failed:
		res.Conclusion = Finding{Severity: Fail, Message: c.Subject + " failed"}
	default:
		res.Passed = true
		verb := c.Verb
		if verb == "" {
			verb = "passed"
		}
		res.Conclusion = Finding{Severity: Pass, Message: c.Subject + " " + verb}
	}
	if rec.conclusion != nil && res.Passed {
		res.Conclusion = *rec.conclusion
	}

	env.Log.Debugf("check %q finished in %s (passed=%t)", c.Name, res.Duration, res.Passed)
	return res
}
