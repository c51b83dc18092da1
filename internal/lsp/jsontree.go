package lsp

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	hcljson "github.com/hashicorp/hcl/v2/json"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/midnightdark/internal/vscode"
)

// jsonKind is the type of a JSON value.
type jsonKind int

const (
	jsonNull jsonKind = iota
	jsonBool
	jsonNumber
	jsonString
	jsonArray
	jsonObject
)

// jsonNode is a JSON value with its byte span in the source.
type jsonNode struct {
	Kind    jsonKind
	Start   int
	End     int
	Str     string // unquoted value of strings
	Members []jsonMember
	Items   []*jsonNode
}

// jsonMember is one key/value pair of an object.
type jsonMember struct {
	Key      string
	KeyStart int
	KeyEnd   int
	Value    *jsonNode
}

// member returns the last value stored under key, as JSON.parse keeps it.
func (n *jsonNode) member(key string) (*jsonMember, bool) {
	if n == nil || n.Kind != jsonObject {
		return nil, false
	}
	for i := len(n.Members) - 1; i >= 0; i-- {
		if n.Members[i].Key == key {
			return &n.Members[i], true
		}
	}
	return nil, false
}

// parseJSON parses a JSON document with hcl/v2/json. Comments are blanked
// out first and returned separately so the rest of the document can still
// be analyzed; byte offsets are unchanged.
func parseJSON(src string) (*jsonNode, []vscode.Comment, hcl.Diagnostics) {
	comments := vscode.FindComments([]byte(src))
	buf := []byte(src)
	for _, c := range comments {
		for i := c.Start; i < c.End; i++ {
			if buf[i] != '\n' && buf[i] != '\r' {
				buf[i] = ' '
			}
		}
	}

	expr, diags := hcljson.ParseExpression(buf, "")
	if diags.HasErrors() {
		return nil, comments, diags
	}
	return newJSONNode(expr), comments, nil
}

func newJSONNode(expr hcl.Expression) *jsonNode {
	rng := expr.Range()
	n := &jsonNode{Start: rng.Start.Byte, End: rng.End.Byte}

	if pairs, diags := hcl.ExprMap(expr); !diags.HasErrors() {
		n.Kind = jsonObject
		for _, pair := range pairs {
			key, _ := pair.Key.Value(nil)
			keyRange := pair.Key.Range()
			n.Members = append(n.Members, jsonMember{
				Key:      key.AsString(),
				KeyStart: keyRange.Start.Byte,
				KeyEnd:   keyRange.End.Byte,
				Value:    newJSONNode(pair.Value),
			})
		}
		return n
	}
	if items, diags := hcl.ExprList(expr); !diags.HasErrors() {
		n.Kind = jsonArray
		for _, item := range items {
			n.Items = append(n.Items, newJSONNode(item))
		}
		return n
	}

	val, _ := expr.Value(nil)
	switch {
	case !val.IsKnown() || val.IsNull():
		n.Kind = jsonNull
	case val.Type() == cty.String:
		n.Kind = jsonString
		n.Str = val.AsString()
	case val.Type() == cty.Number:
		n.Kind = jsonNumber
	case val.Type() == cty.Bool:
		n.Kind = jsonBool
	}
	return n
}

// jsonDiagMessage flattens a parse diagnostic into one line.
func jsonDiagMessage(d *hcl.Diagnostic) string {
	if d.Detail == "" {
		return d.Summary
	}
	return fmt.Sprintf("%s: %s", d.Summary, d.Detail)
}
