package check

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Performance reports the theme file size and how long it takes to parse.
var Performance = Check{
	Name:    "Performance",
	Icon:    "⚡",
	Start:   "Testing performance...",
	Subject: "Performance test",
	Verb:    "completed",
	Run:     runPerformance,
}

func runPerformance(env *Env, r *Recorder) error {
	info, err := os.Stat(env.ThemePath())
	if err != nil {
		return fmt.Errorf("reading theme file: %w", err)
	}

	limits := env.Config.Thresholds
	size := info.Size()
	r.Info("Theme file size: %s", humanize.IBytes(uint64(size)))
	switch {
	case size > limits.SizeWarn:
		r.Warn("Theme file is quite large (>%s)", humanize.IBytes(uint64(limits.SizeWarn)))
	case size > limits.SizeOptimal:
		r.Pass("Theme file size is reasonable (%s-%s)",
			humanize.IBytes(uint64(limits.SizeOptimal)), humanize.IBytes(uint64(limits.SizeWarn)))
	default:
		r.Pass("Theme file size is optimal (<%s)", humanize.IBytes(uint64(limits.SizeOptimal)))
	}

	started := time.Now()
	data, err := os.ReadFile(env.ThemePath())
	if err != nil {
		return fmt.Errorf("reading theme file: %w", err)
	}
	if _, err := vscode.ParseTheme(data); err != nil {
		return err
	}
	elapsed := time.Since(started)

	r.Info("JSON parse time: %.2fms", float64(elapsed.Microseconds())/1000)
	if elapsed > limits.ParseWarn {
		r.Warn("JSON parsing is slow (>%s)", limits.ParseWarn)
	} else {
		r.Pass("JSON parsing is fast (<%s)", limits.ParseWarn)
	}
	return nil
}
