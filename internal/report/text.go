// Package report renders check results: styled text while checks run, and
// JSON or YAML documents for machines.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jsvensson/midnightdark/internal/check"
)

const rule = 50

// Text writes human-readable status lines.
type Text struct {
	w      io.Writer
	styles Styles
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer, styles Styles) *Text {
	return &Text{w: w, styles: styles}
}

func (t *Text) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(t.w, style.Render(fmt.Sprintf(format, args...)))
}

func (t *Text) blank() {
	fmt.Fprintln(t.w)
}

// Banner opens a run.
func (t *Text) Banner(title string) {
	t.line(t.styles.Banner, "%s", title)
	t.line(t.styles.Banner, "%s", strings.Repeat("=", rule))
}

// Result prints one finished check. It is a check.Observer.
func (t *Text) Result(res *check.Result) {
	t.blank()
	t.line(t.styles.Start, "%s %s", res.Icon, res.Start)
	for _, f := range res.Findings {
		t.line(t.style(f.Severity), "   %s %s", icon(f.Severity), f.Message)
	}
	t.line(t.style(res.Conclusion.Severity), "%s %s", icon(res.Conclusion.Severity), res.Conclusion.Message)
}

// Stats prints the theme statistics block, or why it is missing.
func (t *Text) Stats(stats *check.Stats, statsErr string) {
	t.blank()
	t.line(t.styles.Start, "📊 Generating theme statistics...")
	if stats == nil {
		t.line(t.styles.Fail, "❌ Failed to generate statistics: %s", statsErr)
		return
	}
	t.line(t.styles.Header, "📈 Theme Statistics:")
	t.line(t.styles.Detail, "   Name: %s", stats.Name)
	t.line(t.styles.Detail, "   Type: %s", stats.Type)
	t.line(t.styles.Detail, "   UI Colors: %d", stats.UIColors)
	t.line(t.styles.Detail, "   Token Rules: %d", stats.TokenRules)
	t.line(t.styles.Detail, "   Total Scopes: %d", stats.TotalScopes)
	t.line(t.styles.Detail, "   File Size: %s", humanize.IBytes(uint64(stats.FileSize)))
}

// Summary prints the totals and the per-check results of a test run.
func (t *Text) Summary(s *check.Summary) {
	t.Stats(s.Stats, s.StatsError)

	t.blank()
	t.line(t.styles.Header, "📊 Test Results:")
	t.line(t.styles.Pass, "   ✅ Passed: %d", s.Passed)
	failStyle := t.styles.Pass
	if s.Failed > 0 {
		failStyle = t.styles.Fail
	}
	t.line(failStyle, "   ❌ Failed: %d", s.Failed)
	t.line(t.styles.Detail, "   📈 Success Rate: %.1f%%", s.SuccessRate)

	t.blank()
	t.line(t.styles.Header, "📋 Individual Results:")
	for _, res := range s.Results {
		status, style := "✅", t.styles.Pass
		if !res.Passed {
			status, style = "❌", t.styles.Fail
		}
		duration := ""
		if res.Duration > 0 {
			duration = fmt.Sprintf(" (%s)", res.Duration.Round(time.Microsecond))
		}
		t.line(style, "   %s %s%s", status, res.Name, duration)
		if res.Error != "" {
			t.line(t.styles.Fail, "      Error: %s", res.Error)
		}
	}
}

// TestEpilogue closes a test run.
func (t *Text) TestEpilogue(ok bool) {
	t.blank()
	if !ok {
		t.line(t.styles.Fail, "❌ Some tests failed. Please fix the issues before releasing.")
		return
	}
	t.line(t.styles.Pass, "🎉 All tests passed! Theme is ready for release.")
	t.nextSteps()
}

// BuildEpilogue closes a build.
func (t *Text) BuildEpilogue(ok bool) {
	t.blank()
	if !ok {
		t.line(t.styles.Fail, "❌ Build failed! Please fix the errors above.")
		return
	}
	t.line(t.styles.Pass, "✅ Build completed successfully!")
	t.nextSteps()
}

func (t *Text) nextSteps() {
	t.blank()
	t.line(t.styles.Header, "Next steps:")
	t.line(t.styles.Detail, "  1. Run \"vsce package\" to create the .vsix file")
	t.line(t.styles.Detail, "  2. Run \"vsce publish\" to publish to the marketplace")
	t.line(t.styles.Detail, "  3. Test the theme in the VS Code Extension Development Host")
}

// Cleaned reports the artifacts a clean removed.
func (t *Text) Cleaned(removed []string) {
	t.line(t.styles.Start, "🧹 Cleaning build artifacts...")
	for _, path := range removed {
		t.line(t.styles.Detail, "   Removed: %s", path)
	}
	t.line(t.styles.Pass, "✅ Clean completed")
}

func (t *Text) style(sev check.Severity) lipgloss.Style {
	switch sev {
	case check.Pass:
		return t.styles.Pass
	case check.Warn:
		return t.styles.Warn
	case check.Fail:
		return t.styles.Fail
	default:
		return t.styles.Detail
	}
}

func icon(sev check.Severity) string {
	switch sev {
	case check.Pass:
		return "✅"
	case check.Warn:
		return "⚠️ "
	case check.Fail:
		return "❌"
	default:
		return "📊"
	}
}
