package lsp

import (
	"path"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/midnightdark/internal/color"
)

const diagSource = "midnightdark"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

// docKind tells theme documents from config files.
type docKind int

const (
	kindTheme docKind = iota
	kindConfig
)

// AnalysisResult holds all information produced by analyzing a document.
type AnalysisResult struct {
	Kind        docKind
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation

	// Symbols maps palette references ("palette.primary") to their
	// definitions. Config files only.
	Symbols map[string]protocol.Range
	// Palette lists palette entries in source order. Config files only.
	Palette []PaletteEntry

	// Background rates contrast in hovers: the theme's editor.background,
	// or the config palette's background entry.
	Background *color.Color
	// ColorsRange spans the theme's colors object. Theme documents only.
	ColorsRange *protocol.Range
	// DefinedColors are the UI color keys already present.
	DefinedColors map[string]bool
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	Key   string // "editor.background", "Comment.foreground", "palette.primary"
	IsRef bool   // true if this is a palette reference (not a hex literal)
}

// PaletteEntry is a resolved palette color.
type PaletteEntry struct {
	Name  string
	Color color.Color
}

// kindForURI picks the analyzer from the document's file name.
func kindForURI(uri string) docKind {
	name := strings.ToLower(path.Base(uri))
	if strings.HasSuffix(name, ".hcl") {
		return kindConfig
	}
	return kindTheme
}

// Analyze parses a document and produces diagnostics and color locations.
// It collects ALL errors rather than short-circuiting on the first.
func Analyze(uri, content string) *AnalysisResult {
	if kindForURI(uri) == kindConfig {
		return analyzeConfig(uri, content)
	}
	return analyzeTheme(content)
}

func (r *AnalysisResult) add(sev protocol.DiagnosticSeverity, rng protocol.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &sev,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng protocol.Range, msg string) {
	r.add(DiagError, rng, msg)
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng protocol.Range, msg string) {
	r.add(DiagWarning, rng, msg)
}

// addInfo adds an information-level diagnostic at the given range.
func (r *AnalysisResult) addInfo(rng protocol.Range, msg string) {
	r.add(DiagInfo, rng, msg)
}

func strPtr(s string) *string {
	return &s
}
