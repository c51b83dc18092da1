package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jsvensson/midnightdark/internal/check"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// document is the machine-readable shape of a run.
type document struct {
	OK      bool           `json:"ok" yaml:"ok"`
	Summary *check.Summary `json:"summary" yaml:"summary"`
}

// JSON writes the summary as indented JSON.
func JSON(w io.Writer, s *check.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{OK: s.OK(), Summary: s}); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}

// YAML writes the summary as YAML.
func YAML(w io.Writer, s *check.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{OK: s.OK(), Summary: s}); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return enc.Close()
}
