package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/midnightdark/internal/color"
)

// hover produces a Hover response for the given cursor position.
// It checks whether the position falls within any ColorLocation from the analysis result.
// The hover shows the color's key, hex and RGB, and its WCAG contrast
// against the background when one is known.
// Returns nil if no color is found at the position.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var b strings.Builder
		title := cl.Key
		if cl.IsRef {
			title = extractText(content, cl.Range)
		}
		if title != "" {
			fmt.Fprintf(&b, "**%s**\n\n", title)
		}
		fmt.Fprintf(&b, "`%s` · `%s`", cl.Color.Hex(), cl.Color.RGB())

		if bg := result.Background; bg != nil && cl.Color != *bg {
			ratio := color.ContrastRatio(cl.Color, *bg)
			fmt.Fprintf(&b, "\n\nContrast on `%s`: **%.2f:1** (%s)", bg.Hex(), ratio, color.LevelFor(ratio))
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: b.String(),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
