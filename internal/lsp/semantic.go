package lsp

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

// Semantic token types (indices 0-6) for config files.
var semanticTokenTypes = []string{
	"keyword",   // 0: block types (palette, contrast, ...)
	"property",  // 1: attribute names
	"variable",  // 2: palette entry names in references
	"namespace", // 3: the "palette" namespace identifier
	"string",    // 4: hex color literals
	"function",  // 5: brighten(), darken()
	"number",    // 6: numeric literals
}

// Semantic token modifiers (bit flags)
var semanticTokenModifiers = []string{
	"declaration", // bit 0: defining a new symbol
}

const (
	tokKeyword uint32 = iota
	tokProperty
	tokVariable
	tokNamespace
	tokString
	tokFunction
	tokNumber
)

// SemanticToken represents a single token with its metadata
type SemanticToken struct {
	Line      uint32 // 0-based line number
	StartChar uint32 // 0-based character offset
	Length    uint32
	Type      uint32 // index into semanticTokenTypes
	Modifiers uint32 // bit flags
}

func tokenAt(r hcl.Range, length int, typ, mods uint32) SemanticToken {
	return SemanticToken{
		Line:      uint32(r.Start.Line - 1),
		StartChar: uint32(r.Start.Column - 1),
		Length:    uint32(length),
		Type:      typ,
		Modifiers: mods,
	}
}

// encodeTokens converts tokens to LSP format (5 integers per token)
// Uses delta encoding for line numbers and character positions
func encodeTokens(tokens []SemanticToken) []uint32 {
	if len(tokens) == 0 {
		return []uint32{}
	}

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	data := make([]uint32, 0, len(tokens)*5)

	var prevLine, prevChar uint32
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, tok.Type, tok.Modifiers)

		prevLine = tok.Line
		prevChar = tok.StartChar
	}

	return data
}

// semanticTokensFull generates semantic tokens for a config file.
func semanticTokensFull(content string) []uint32 {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return []uint32{}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	return encodeTokens(tokensFromBody(body, nil))
}

func tokensFromBody(body *hclsyntax.Body, tokens []SemanticToken) []SemanticToken {
	for _, block := range body.Blocks {
		tokens = append(tokens, tokenAt(block.TypeRange, len(block.Type), tokKeyword, 0))
		tokens = tokensFromBody(block.Body, tokens)
	}

	for name, attr := range body.Attributes {
		tokens = append(tokens, tokenAt(attr.NameRange, len(name), tokProperty, 1))
		tokens = tokensFromExpr(attr.Expr, tokens)
	}

	return tokens
}

func tokensFromExpr(expr hclsyntax.Expression, tokens []SemanticToken) []SemanticToken {
	switch e := expr.(type) {
	case *hclsyntax.TemplateExpr:
		if e.IsStringLiteral() {
			val, _ := e.Value(nil)
			if s := val.AsString(); len(s) > 0 && s[0] == '#' {
				// Skip the opening quote.
				r := e.SrcRange
				r.Start.Column++
				tokens = append(tokens, tokenAt(r, len(s), tokString, 0))
			}
		}
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() == cty.Number {
			tokens = append(tokens, tokenAt(e.SrcRange, e.SrcRange.End.Column-e.SrcRange.Start.Column, tokNumber, 0))
		}
	case *hclsyntax.ScopeTraversalExpr:
		tokens = tokensFromTraversal(e.Traversal, tokens)
	case *hclsyntax.FunctionCallExpr:
		tokens = append(tokens, tokenAt(e.NameRange, len(e.Name), tokFunction, 0))
		for _, arg := range e.Args {
			tokens = tokensFromExpr(arg, tokens)
		}
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			tokens = tokensFromExpr(item, tokens)
		}
	}
	return tokens
}

// tokensFromTraversal marks palette.<name> references.
func tokensFromTraversal(traversal hcl.Traversal, tokens []SemanticToken) []SemanticToken {
	if len(traversal) == 0 {
		return tokens
	}
	root, ok := traversal[0].(hcl.TraverseRoot)
	if !ok || root.Name != "palette" {
		return tokens
	}
	tokens = append(tokens, tokenAt(root.SrcRange, len(root.Name), tokNamespace, 0))
	for _, step := range traversal[1:] {
		if attr, ok := step.(hcl.TraverseAttr); ok {
			// SrcRange includes the leading dot.
			r := attr.SrcRange
			r.Start.Column++
			tokens = append(tokens, tokenAt(r, len(attr.Name), tokVariable, 0))
		}
	}
	return tokens
}

// textDocumentSemanticTokensFull handles textDocument/semanticTokens/full
// requests. Theme JSON documents get no semantic tokens.
func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := string(params.TextDocument.URI)
	if kindForURI(uri) != kindConfig {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	content, ok := s.docs.Get(uri)
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}
