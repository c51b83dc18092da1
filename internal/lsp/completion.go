package lsp

import (
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/midnightdark/internal/config"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// settingsKeys are the keys of a token color rule's settings object.
var settingsKeys = []string{"foreground", "background", "fontStyle"}

// fontStyles are the values fontStyle may combine.
var fontStyles = []string{"italic", "bold", "underline", "strikethrough"}

// configBlocks lists the config file's blocks and the attributes each accepts.
var configBlocks = map[string][]string{
	"":             {"theme", "manifest", "type", "clean"},
	"palette":      nil,
	"thresholds":   {"min_ui_colors", "min_token_rules", "consistency", "size_warn_kb", "size_optimal_kb", "parse_warn_ms"},
	"files":        {"required", "optional", "build"},
	"contrast":     {"min_ratio"},
	"editor":       {"background", "foreground", "fallback_background", "fallback_foreground"},
	"pair":         {"background", "foreground"},
	"completeness": {"colors", "scopes", "language_scopes"},
}

// configChildBlocks are the blocks that may appear inside a block.
var configChildBlocks = map[string][]string{
	"":         {"palette", "thresholds", "files", "contrast", "completeness"},
	"contrast": {"editor", "pair"},
}

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	if result != nil && result.Kind == kindConfig {
		return completeConfig(result, content, pos)
	}
	return completeTheme(result, content, pos)
}

// jsonFrame is an open object or array while scanning towards the cursor.
type jsonFrame struct {
	array     bool
	key       string // key the container is the value of
	expectKey bool
}

// jsonCursor describes where the cursor sits in a possibly incomplete document.
type jsonCursor struct {
	stack    []jsonFrame
	inString bool
	lastKey  string
}

// scanToCursor walks content up to offset tracking container nesting. It
// tolerates the incomplete JSON typical while editing.
func scanToCursor(content string, offset int) jsonCursor {
	var cur jsonCursor
	pending := ""
	strStart := 0

	top := func() *jsonFrame {
		if len(cur.stack) == 0 {
			return nil
		}
		return &cur.stack[len(cur.stack)-1]
	}

	for i := 0; i < offset && i < len(content); i++ {
		c := content[i]
		if cur.inString {
			switch c {
			case '\\':
				i++
			case '"':
				cur.inString = false
				if f := top(); f != nil && !f.array && f.expectKey {
					pending = content[strStart+1 : i]
				}
			}
			continue
		}

		switch c {
		case '"':
			cur.inString = true
			strStart = i
		case '{':
			cur.stack = append(cur.stack, jsonFrame{key: pending, expectKey: true})
			pending = ""
		case '[':
			cur.stack = append(cur.stack, jsonFrame{array: true, key: pending})
			pending = ""
		case '}', ']':
			if len(cur.stack) > 0 {
				cur.stack = cur.stack[:len(cur.stack)-1]
			}
			pending = ""
		case ':':
			if f := top(); f != nil && !f.array {
				f.expectKey = false
				cur.lastKey = pending
			}
		case ',':
			if f := top(); f != nil && !f.array {
				f.expectKey = true
			}
			pending = ""
		case '/':
			if i+1 < len(content) && content[i+1] == '/' {
				for i < offset && i < len(content) && content[i] != '\n' {
					i++
				}
			} else if i+1 < len(content) && content[i+1] == '*' {
				end := strings.Index(content[i+2:], "*/")
				if end < 0 {
					i = len(content)
				} else {
					i += end + 3
				}
			}
		}
	}
	return cur
}

// path returns the keys leading to the innermost container.
func (c jsonCursor) path() []string {
	keys := make([]string, 0, len(c.stack))
	for _, f := range c.stack[min(1, len(c.stack)):] {
		keys = append(keys, f.key)
	}
	return keys
}

func (c jsonCursor) atKey() bool {
	return len(c.stack) > 0 && !c.stack[len(c.stack)-1].array && c.stack[len(c.stack)-1].expectKey
}

func completeTheme(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	li := newLineIndex(content)
	cur := scanToCursor(content, li.offset(pos))
	path := cur.path()

	switch {
	case cur.atKey() && len(path) == 0:
		var defined map[string]bool
		if root, _, diags := parseJSON(content); !diags.HasErrors() {
			defined = make(map[string]bool)
			for _, m := range root.Members {
				defined[m.Key] = true
			}
		}
		return keyItems(vscode.RequiredThemeKeys, defined, cur.inString, protocol.CompletionItemKindProperty)

	case cur.atKey() && len(path) == 1 && path[0] == "colors":
		var defined map[string]bool
		if result != nil {
			defined = result.DefinedColors
		}
		return keyItems(config.Default().EssentialColors, defined, cur.inString, protocol.CompletionItemKindColor)

	case cur.atKey() && len(path) == 3 && path[0] == "tokenColors" && path[2] == "settings":
		return keyItems(settingsKeys, nil, cur.inString, protocol.CompletionItemKindProperty)

	case !cur.atKey() && cur.inString && cur.lastKey == "fontStyle" && len(path) == 3 && path[2] == "settings":
		return keyItems(fontStyles, nil, true, protocol.CompletionItemKindEnumMember)
	}

	return nil
}

// keyItems offers names not yet defined. Outside a string the item inserts
// a complete quoted key.
func keyItems(names []string, defined map[string]bool, inString bool, kind protocol.CompletionItemKind) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, name := range names {
		if defined[name] {
			continue
		}
		item := protocol.CompletionItem{
			Label: name,
			Kind:  completionKindPtr(kind),
		}
		if !inString {
			insert := `"` + name + `": `
			item.InsertText = &insert
		}
		items = append(items, item)
	}
	return items
}

func completeConfig(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if strings.HasSuffix(textBeforeCursor, "palette.") {
		return paletteItems(result)
	}

	// Check for value position (after "="): offer functions and palette
	if isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	block := determineBlock(lines, int(pos.Line))
	if block == "palette" {
		return nil
	}

	defined := findDefinedAttributes(lines, int(pos.Line))
	var items []protocol.CompletionItem
	for _, name := range configBlocks[block] {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  completionKindPtr(protocol.CompletionItemKindProperty),
			})
		}
	}
	items = append(items, blockSnippets(configChildBlocks[block])...)
	return items
}

// paletteItems offers the palette entries, showing each color in Detail.
func paletteItems(result *AnalysisResult) []protocol.CompletionItem {
	if result == nil {
		return nil
	}
	entries := append([]PaletteEntry(nil), result.Palette...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	items := make([]protocol.CompletionItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, protocol.CompletionItem{
			Label:  e.Name,
			Kind:   completionKindPtr(protocol.CompletionItemKindColor),
			Detail: strPtr(e.Color.Hex()),
		})
	}
	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns completion items for a value position, including
// function snippets and a palette reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	brightenSnippet := "brighten(${1:color}, ${2:0.1})"
	darkenSnippet := "darken(${1:color}, ${2:0.1})"
	paletteSnippet := "palette."

	return []protocol.CompletionItem{
		{
			Label:            "brighten",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("brighten(color, percentage)"),
			InsertText:       &brightenSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "darken",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("darken(color, percentage)"),
			InsertText:       &darkenSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:      "palette",
			Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
			Detail:     strPtr("palette reference"),
			InsertText: &paletteSnippet,
		},
	}
}

// determineBlock scans from the top of the file down to the cursor line
// and returns the type of the innermost open block, "" at the root.
func determineBlock(lines []string, cursorLine int) string {
	var stack []string

	for i := 0; i <= cursorLine && i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		// Process opening braces: the block type is the first word on the line
		if opens > 0 {
			if parts := strings.Fields(line); len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "}") - strings.Count(line, "{")
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// blockSnippets returns completion items inserting empty blocks.
func blockSnippets(names []string) []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range names {
		snippet := name + " {\n  $0\n}"
		if name == "pair" {
			snippet = "pair \"${1:name}\" {\n  background = \"$2\"\n  foreground = \"$3\"\n}"
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	items := complete(s.getResult(uri), content, params.Position)
	return items, nil
}
