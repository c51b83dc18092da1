package lsp

import (
	"path"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/midnightdark/internal/format"
)

// formatEdits returns the edit that replaces the whole document with its
// formatted form, or no edits when it is already formatted.
func formatEdits(uri, content string) ([]protocol.TextEdit, error) {
	formatted, err := format.File(path.Base(uri), content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	li := newLineIndex(content)
	return []protocol.TextEdit{
		{
			Range:   li.rangeOf(0, len(content)),
			NewText: formatted,
		},
	}, nil
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	edits, err := formatEdits(uri, content)
	if err != nil {
		// Invalid JSON is left alone; diagnostics already report it.
		log.Debugf("formatting %s: %s", uri, err)
		return nil, nil
	}
	return edits, nil
}
