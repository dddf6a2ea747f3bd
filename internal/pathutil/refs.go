// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"net/url"
	"strings"
)

// OAS 3.x reference prefixes
const (
	RefPrefixSchemas       = "#/components/schemas/"
	RefPrefixParameters    = "#/components/parameters/"
	RefPrefixResponses     = "#/components/responses/"
	RefPrefixRequestBodies = "#/components/requestBodies/"
)

// SchemaRef builds "#/components/schemas/{name}", escaping the name as a
// JSON Pointer token.
func SchemaRef(name string) string {
	return RefPrefixSchemas + EscapeToken(name)
}

// ComponentName extracts the component name from a pointer of the form
// prefix+"<name>". The name must be a single, non-empty pointer segment. It is
// percent-decoded first and then JSON-Pointer-unescaped. Any other pointer
// shape reports false.
func ComponentName(ref, prefix string) (string, bool) {
	raw, ok := strings.CutPrefix(ref, prefix)
	if !ok || raw == "" || strings.Contains(raw, "/") {
		return "", false
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	return UnescapeToken(decoded), true
}

// RefName returns a short display name for a pointer: the unescaped last
// segment for component pointers, or the pointer itself otherwise.
func RefName(ref string) string {
	for _, prefix := range []string{RefPrefixSchemas, RefPrefixParameters, RefPrefixResponses, RefPrefixRequestBodies} {
		if name, ok := ComponentName(ref, prefix); ok {
			return name
		}
	}
	return ref
}

// UnescapeToken reverses JSON Pointer escaping (RFC 6901).
// The order matters: "~1" must be replaced before "~0".
func UnescapeToken(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// EscapeToken applies JSON Pointer escaping (RFC 6901).
func EscapeToken(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
