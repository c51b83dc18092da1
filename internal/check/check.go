// Package check implements the theme release checks: each check inspects
// the theme descriptor, the extension manifest or the project tree and
// records what it found. A failing check never stops the others.
package check

import (
	"fmt"
	"time"
)

// Severity classifies a finding.
type Severity int

const (
	Info Severity = iota
	Pass
	Warn
	Fail
)

var severityNames = map[Severity]string{
	Info: "info",
	Pass: "pass",
	Warn: "warn",
	Fail: "fail",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// MarshalText encodes the severity by name in JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is a single line of check output.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// Check is a named validation step.
type Check struct {
	Name    string // short name used in the summary, e.g. "JSON Syntax"
	Icon    string
	Start   string // announced before the check runs
	Subject string // used in the concluding line, e.g. "JSON syntax test"
	Verb    string // "passed" or "completed"
	Run     func(env *Env, r *Recorder) error
}

// Result is the outcome of running one Check.
type Result struct {
	Name       string        `json:"name" yaml:"name"`
	Passed     bool          `json:"passed" yaml:"passed"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
	Panicked   bool          `json:"panicked,omitempty" yaml:"panicked,omitempty"`
	Findings   []Finding     `json:"findings,omitempty" yaml:"findings,omitempty"`
	Conclusion Finding       `json:"conclusion" yaml:"conclusion"`

	Icon  string `json:"-" yaml:"-"`
	Start string `json:"-" yaml:"-"`
}

// Recorder collects the findings of a running check.
type Recorder struct {
	findings   []Finding
	failed     bool
	conclusion *Finding
}

func (r *Recorder) add(sev Severity, format string, args []any) {
	r.findings = append(r.findings, Finding{Severity: sev, Message: fmt.Sprintf(format, args...)})
}

// Info records a neutral measurement.
func (r *Recorder) Info(format string, args ...any) { r.add(Info, format, args) }

// Pass records a satisfied expectation.
func (r *Recorder) Pass(format string, args ...any) { r.add(Pass, format, args) }

// Warn records a problem that does not fail the check.
func (r *Recorder) Warn(format string, args ...any) { r.add(Warn, format, args) }

// Fail records a problem and marks the check failed without stopping it.
func (r *Recorder) Fail(format string, args ...any) {
	r.add(Fail, format, args)
	r.failed = true
}

// Conclude replaces the default concluding line.
func (r *Recorder) Conclude(sev Severity, format string, args ...any) {
	r.conclusion = &Finding{Severity: sev, Message: fmt.Sprintf(format, args...)}
}

// Findings returns what has been recorded so far.
func (r *Recorder) Findings() []Finding {
	return r.findings
}
