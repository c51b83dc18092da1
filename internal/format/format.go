// Package format canonicalizes the files the project keeps under version
// control: theme JSON documents and the HCL check configuration.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

const jsonIndent = "  "

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// JSON re-indents a JSON document with two spaces, keeping key order and
// literal text, and ends it with a single newline. This is the layout
// JSON.stringify(value, null, 2) produces.
func JSON(content string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(content), "", jsonIndent); err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

// IsCanonicalJSON reports whether content already has the layout JSON
// produces, ignoring line-ending style and surrounding whitespace. Literals
// are compared as written: "\u00e9", 1.0 and "\/" are canonical here,
// where JSON.stringify would respell them as "é", 1 and "/".
func IsCanonicalJSON(content string) (bool, error) {
	formatted, err := JSON(content)
	if err != nil {
		return false, err
	}
	return normalize(content) == normalize(formatted), nil
}

func normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// HCL formats config source according to HCL canonical style rules and
// collapses stray blank lines.
//
// The formatter works even on partial/invalid HCL.
func HCL(content string) (string, error) {
	formatted := hclwrite.Format([]byte(content))
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// File formats content according to the file's extension.
func File(name, content string) (string, error) {
	switch {
	case strings.HasSuffix(name, ".json"):
		return JSON(content)
	case strings.HasSuffix(name, ".hcl"):
		return HCL(content)
	default:
		return "", fmt.Errorf("no formatter for %s", name)
	}
}
