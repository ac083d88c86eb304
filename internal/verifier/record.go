// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package verifier

import "fmt"

// Record is one fetched row, kept untyped so absent and zero-valued fields
// can both be detected.
type Record map[string]any

// String returns the field rendered as text, or "" when it is absent or
// not a scalar.
func (r Record) String(field string) string {
	switch value := r[field].(type) {
	case string:
		return value
	case float64, bool:
		return fmt.Sprint(value)
	default:
		return ""
	}
}

// Present reports whether field holds a non-empty value. Null, "", 0,
// false and empty arrays or objects count as missing.
func (r Record) Present(field string) bool {
	return present(r[field])
}

// Object returns field as a nested record, or nil.
func (r Record) Object(field string) Record {
	if value, ok := r[field].(map[string]any); ok {
		return value
	}
	return nil
}

// Len returns the length of an array field, or 0.
func (r Record) Len(field string) int {
	if value, ok := r[field].([]any); ok {
		return len(value)
	}
	return 0
}

func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	case bool:
		return v
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// nameOr returns the record name, or fallback when it has none.
func (r Record) nameOr(fallback string) string {
	if name := r.String("name"); name != "" {
		return name
	}
	return fallback
}
