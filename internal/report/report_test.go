package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jsvensson/midnightdark/internal/check"
)

func sampleSummary() *check.Summary {
	return &check.Summary{
		Results: []*check.Result{
			{
				Name:       "JSON Syntax",
				Passed:     true,
				Duration:   3 * time.Millisecond,
				Icon:       "📝",
				Start:      "Testing JSON syntax...",
				Findings:   []check.Finding{{Severity: check.Pass, Message: "JSON is properly formatted"}},
				Conclusion: check.Finding{Severity: check.Pass, Message: "JSON syntax test passed"},
			},
			{
				Name:       "Required Files",
				Passed:     false,
				Duration:   time.Millisecond,
				Error:      "boom",
				Icon:       "🔍",
				Start:      "Checking required files...",
				Findings:   []check.Finding{{Severity: check.Fail, Message: "Missing required file: LICENSE"}},
				Conclusion: check.Finding{Severity: check.Fail, Message: "Required files check failed"},
			},
		},
		Passed:      1,
		Failed:      1,
		SuccessRate: 50,
		Stats: &check.Stats{
			Name:        "Midnight Dark",
			Type:        "dark",
			UIColors:    120,
			TokenRules:  40,
			TotalScopes: 90,
			FileSize:    20480,
		},
	}
}

func TestText_Result(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, PlainStyles())

	r.Result(sampleSummary().Results[0])

	want := "\n📝 Testing JSON syntax...\n   ✅ JSON is properly formatted\n✅ JSON syntax test passed\n"
	if got := buf.String(); got != want {
		t.Errorf("Result() =\n%q\nwant\n%q", got, want)
	}
}

func TestText_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, PlainStyles())

	r.Summary(sampleSummary())
	got := buf.String()

	for _, want := range []string{
		"📈 Theme Statistics:",
		"   Name: Midnight Dark",
		"   File Size: 20 KiB",
		"   ✅ Passed: 1",
		"   ❌ Failed: 1",
		"   📈 Success Rate: 50.0%",
		"   ✅ JSON Syntax (3ms)",
		"   ❌ Required Files (1ms)",
		"      Error: boom",
	} {
		if !strings.Contains(got, want+"\n") {
			t.Errorf("Summary() output missing %q\n%s", want, got)
		}
	}
}

func TestText_StatsError(t *testing.T) {
	var buf bytes.Buffer
	NewText(&buf, PlainStyles()).Stats(nil, "reading theme file: gone")

	if !strings.Contains(buf.String(), "❌ Failed to generate statistics: reading theme file: gone") {
		t.Errorf("Stats() = %q", buf.String())
	}
}

func TestText_Epilogues(t *testing.T) {
	tests := []struct {
		name string
		run  func(*Text)
		want string
	}{
		{"test ok", func(r *Text) { r.TestEpilogue(true) }, "🎉 All tests passed!"},
		{"test failed", func(r *Text) { r.TestEpilogue(false) }, "❌ Some tests failed."},
		{"build ok", func(r *Text) { r.BuildEpilogue(true) }, "✅ Build completed successfully!"},
		{"build failed", func(r *Text) { r.BuildEpilogue(false) }, "❌ Build failed!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.run(NewText(&buf, PlainStyles()))
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
			if strings.Contains(tt.name, "ok") != strings.Contains(buf.String(), "Next steps:") {
				t.Errorf("Next steps shown = %v for %s", !strings.Contains(tt.name, "ok"), tt.name)
			}
		})
	}
}

func TestText_Cleaned(t *testing.T) {
	var buf bytes.Buffer
	NewText(&buf, PlainStyles()).Cleaned([]string{"theme-1.0.0.vsix"})

	want := "🧹 Cleaning build artifacts...\n   Removed: theme-1.0.0.vsix\n✅ Clean completed\n"
	if buf.String() != want {
		t.Errorf("Cleaned() = %q, want %q", buf.String(), want)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleSummary()); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var doc struct {
		OK      bool `json:"ok"`
		Summary struct {
			Passed  int `json:"passed"`
			Results []struct {
				Name     string `json:"name"`
				Findings []struct {
					Severity string `json:"severity"`
				} `json:"findings"`
			} `json:"results"`
			Stats struct {
				UIColors int `json:"uiColors"`
			} `json:"stats"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decoding report: %v\n%s", err, buf.String())
	}

	if doc.OK {
		t.Error("ok = true, want false")
	}
	if doc.Summary.Passed != 1 {
		t.Errorf("passed = %d, want 1", doc.Summary.Passed)
	}
	if len(doc.Summary.Results) != 2 || doc.Summary.Results[1].Findings[0].Severity != "fail" {
		t.Errorf("results = %+v", doc.Summary.Results)
	}
	if doc.Summary.Stats.UIColors != 120 {
		t.Errorf("uiColors = %d, want 120", doc.Summary.Stats.UIColors)
	}
	if strings.Contains(buf.String(), "Testing JSON syntax") {
		t.Error("JSON report should not carry the start lines")
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, sampleSummary()); err != nil {
		t.Fatalf("YAML() error: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decoding report: %v\n%s", err, buf.String())
	}
	if doc["ok"] != false {
		t.Errorf("ok = %v, want false", doc["ok"])
	}
	if !strings.Contains(buf.String(), "severity: pass") {
		t.Errorf("severity not encoded by name:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "duration: 3ms") {
		t.Errorf("duration not encoded as a string:\n%s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
