// Package httputil provides HTTP method and status code helpers used when
// grouping OpenAPI operations.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
	WildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
	StatusDefault    = "default"
)

// HTTP Method Constants, as spelled in OpenAPI path items.
const (
	MethodGet    = "get"
	MethodPost   = "post"
	MethodPut    = "put"
	MethodPatch  = "patch"
	MethodDelete = "delete"
)

// SupportedMethods lists the path item keys that are treated as operations,
// in display precedence order.
var SupportedMethods = []string{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

// PreferredSuccessCodes are the response codes picked first, in order, when
// a single response schema has to be selected for an operation.
var PreferredSuccessCodes = []string{"200", "201", "202", "204"}

// MethodRank returns the display precedence of an HTTP method (GET first,
// DELETE last). The comparison is case-insensitive. Unknown methods rank
// after all supported ones.
func MethodRank(method string) int {
	m := strings.ToLower(method)
	for i, candidate := range SupportedMethods {
		if candidate == m {
			return i
		}
	}
	return len(SupportedMethods)
}

// IsSupportedMethod reports whether a path item key names a supported operation.
func IsSupportedMethod(key string) bool {
	return MethodRank(key) < len(SupportedMethods)
}

// IsSuccessStatus reports whether a response key denotes a 2xx response:
// either a numeric code in 200-299 or the wildcard "2XX" (any case).
func IsSuccessStatus(code string) bool {
	if len(code) != StatusCodeLength || code[0] != '2' {
		return false
	}
	if strings.EqualFold(code[1:], "XX") {
		return true
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= 200 && n <= 299
}

// ValidateStatusCode reports whether a responses key is a status: "default",
// a wildcard 1XX-5XX (any case) or a numeric code 100-599.
func ValidateStatusCode(code string) bool {
	if code == StatusDefault {
		return true
	}
	if len(code) != StatusCodeLength {
		return false
	}
	if strings.EqualFold(code[1:], string([]byte{WildcardChar, WildcardChar})) {
		return code[0] >= '1' && code[0] <= '5'
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= MinStatusCode && n <= MaxStatusCode
}
