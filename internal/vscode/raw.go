package vscode

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Object is a decoded JSON object whose values are kept raw so that
// presence and type can be checked key by key.
type Object map[string]json.RawMessage

// Present reports whether key holds a truthy value: missing keys, null,
// false, 0 and "" are absent; objects and arrays are present even when empty.
func (o Object) Present(key string) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	return truthy(v)
}

// Kind returns the JSON kind of key's value, or KindMissing.
func (o Object) Kind(key string) Kind {
	v, ok := o[key]
	if !ok {
		return KindMissing
	}
	return kindOf(v)
}

// String returns key's value if it is a JSON string.
func (o Object) String(key string) (string, bool) {
	if o.Kind(key) != KindString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(o[key], &s); err != nil {
		return "", false
	}
	return s, true
}

// Object returns key's value if it is a JSON object.
func (o Object) Object(key string) (Object, bool) {
	if o.Kind(key) != KindObject {
		return nil, false
	}
	var child Object
	if err := json.Unmarshal(o[key], &child); err != nil {
		return nil, false
	}
	return child, true
}

// Kind is the JSON value kind.
type Kind int

const (
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "missing"
	}
}

func kindOf(v json.RawMessage) Kind {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return KindMissing
	}
	switch v[0] {
	case 'n':
		return KindNull
	case 't', 'f':
		return KindBool
	case '"':
		return KindString
	case '[':
		return KindArray
	case '{':
		return KindObject
	default:
		return KindNumber
	}
}

func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	switch kindOf(v) {
	case KindMissing, KindNull:
		return false
	case KindBool:
		return string(v) == "true"
	case KindString:
		return string(v) != `""`
	case KindNumber:
		f, err := strconv.ParseFloat(string(v), 64)
		return err != nil || f != 0
	}
	return true
}
