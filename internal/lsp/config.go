package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/midnightdark/internal/color"
	"github.com/jsvensson/midnightdark/internal/config"
)

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// analyzeConfig analyzes a midnightdark.hcl file: palette entries are
// evaluated in source order like the loader does, and every color they or
// the contrast fallbacks resolve to is recorded.
func analyzeConfig(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Kind:    kindConfig,
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(protocol.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	defined := make(map[string]cty.Value)
	for _, block := range body.Blocks {
		if block.Type == "palette" {
			result.analyzePaletteBody(block.Body, defined)
		}
	}

	ctx := config.EvalContext(defined)
	for _, block := range body.Blocks {
		if block.Type == "contrast" {
			for _, editor := range block.Body.Blocks {
				if editor.Type == "editor" {
					result.analyzeFallbacks(editor.Body, ctx)
				}
			}
		}
	}

	// The loader has the final word on everything else the file sets.
	if len(result.Diagnostics) == 0 {
		if _, err := config.ParseHCL([]byte(content), filename); err != nil {
			result.addError(protocol.Range{}, err.Error())
		}
	}

	return result
}

// analyzePaletteBody evaluates palette attributes in source order so later
// entries can reference earlier ones, recording symbols and colors.
func (r *AnalysisResult) analyzePaletteBody(body *hclsyntax.Body, defined map[string]cty.Value) {
	for _, block := range body.Blocks {
		r.addError(hclRangeToLSP(block.DefRange()), "nested blocks are not supported in palette")
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	for _, attr := range attrs {
		symbolName := "palette." + attr.Name
		r.Symbols[symbolName] = hclRangeToLSP(attr.SrcRange)

		c, ok := r.evalColor(attr, config.EvalContext(defined), symbolName)
		if !ok {
			continue
		}
		defined[attr.Name] = cty.StringVal(c.Hex())
		r.Palette = append(r.Palette, PaletteEntry{Name: attr.Name, Color: c})
		if attr.Name == "background" {
			bg := c
			r.Background = &bg
		}
	}
}

// analyzeFallbacks records the editor fallback colors of the contrast block.
func (r *AnalysisResult) analyzeFallbacks(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	for _, name := range []string{"fallback_background", "fallback_foreground"} {
		if attr, ok := body.Attributes[name]; ok {
			r.evalColor(attr, ctx, "contrast.editor."+name)
		}
	}
}

// evalColor evaluates an attribute to a color, reporting failures against it.
func (r *AnalysisResult) evalColor(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, name string) (color.Color, bool) {
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		r.addError(hclRangeToLSP(attr.SrcRange), fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
		return color.Color{}, false
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		r.addError(hclRangeToLSP(attr.SrcRange), fmt.Sprintf("%s: expected a color string", name))
		return color.Color{}, false
	}
	c, err := color.ParseThemeHex(val.AsString())
	if err != nil {
		r.addError(hclRangeToLSP(attr.SrcRange), fmt.Sprintf("%s: %s", name, err))
		return color.Color{}, false
	}

	r.Colors = append(r.Colors, ColorLocation{
		Range: hclRangeToLSP(attr.Expr.Range()),
		Color: c,
		Key:   name,
		IsRef: isReferenceExpr(attr.Expr),
	})
	return c, true
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. palette.primary) rather than a literal value.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
