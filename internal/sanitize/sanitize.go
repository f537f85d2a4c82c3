// Package sanitize removes document-store operator keys from decoded input.
//
// A key that starts with '$' or contains '.' could be reinterpreted as a
// query operator or a nested path once the value is embedded in a store
// filter or document, so such keys are dropped together with their values.
package sanitize

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// UnsafeKey reports whether key could act as a store operator or path.
func UnsafeKey(key string) bool {
	return strings.HasPrefix(key, "$") || strings.Contains(key, ".")
}

// Value returns v with every unsafe object key removed, at any depth, and the
// number of keys removed. Maps are modified in place. Scalars are returned
// unchanged, so sanitizing clean input is a no-op.
func Value(v any) (any, int) {
	removed := 0
	out := walk(v, &removed)
	return out, removed
}

func walk(v any, removed *int) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if UnsafeKey(k) {
				delete(t, k)
				*removed++
				continue
			}
			t[k] = walk(child, removed)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = walk(child, removed)
		}
		return t
	default:
		return v
	}
}

// JSON sanitizes a JSON document. Input that is not valid JSON is returned
// as is for the decoder downstream to reject.
func JSON(body []byte) ([]byte, int) {
	if len(bytes.TrimSpace(body)) == 0 {
		return body, 0
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return body, 0
	}

	doc, removed := Value(doc)
	if removed == 0 {
		return body, 0
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return body, 0
	}
	return buf.Bytes(), removed
}

// Query drops parameters whose name, or any bracketed segment of it such as
// filter[$ne], is unsafe.
func Query(values url.Values) (url.Values, int) {
	removed := 0
	for key := range values {
		if unsafeQueryKey(key) {
			delete(values, key)
			removed++
		}
	}
	return values, removed
}

func unsafeQueryKey(key string) bool {
	segments := strings.FieldsFunc(key, func(r rune) bool { return r == '[' || r == ']' })
	for _, s := range segments {
		if UnsafeKey(s) {
			return true
		}
	}
	return false
}
