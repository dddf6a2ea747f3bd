// Package schemautil provides helpers for the JSON Schema "type" keyword.
//
// OAS 3.0 spells a type as a string; OAS 3.1 (JSON Schema 2020-12) also
// allows a list such as ["string", "null"] to express nullability. The
// helpers here accept the raw decoded keyword value in either form.
package schemautil

// Type names recognized by the pipeline.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// GetSchemaTypes returns the type(s) from a raw "type" value, handling both
// string (OAS 2.0/3.0) and list (OAS 3.1+) representations.
//
// Examples:
//   - "string" returns ["string"]
//   - ["string", "null"] returns ["string", "null"]
func GetSchemaTypes(raw any) []string {
	switch t := raw.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok && s != "" {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// GetPrimaryType returns the first non-null type. A lone "null" is returned
// as-is. Returns an empty string when no type is declared.
func GetPrimaryType(raw any) string {
	types := GetSchemaTypes(raw)
	for _, t := range types {
		if t != TypeNull {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// IsNullable reports whether a type list admits null alongside another type,
// which is how OAS 3.1 replaces the OAS 3.0 "nullable" keyword.
func IsNullable(raw any) bool {
	types := GetSchemaTypes(raw)
	if len(types) < 2 {
		return false
	}
	for _, t := range types {
		if t == TypeNull {
			return true
		}
	}
	return false
}
