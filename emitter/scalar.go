package emitter

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/erraggy/oasexplorer/document"
	"github.com/goccy/go-json"
)

var (
	barewordPattern  = regexp.MustCompile(`^[A-Za-z0-9._/=-]+$`)
	timestampPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}`)
)

// yamlKeywords are spellings a YAML parser may read as a boolean or null.
var yamlKeywords = map[string]struct{}{
	"true": {}, "false": {}, "null": {}, "~": {},
	"yes": {}, "no": {}, "on": {}, "off": {},
}

// IsBareword reports whether s can be written unquoted in YAML.
func IsBareword(s string) bool {
	if !barewordPattern.MatchString(s) {
		return false
	}
	if _, reserved := yamlKeywords[strings.ToLower(s)]; reserved {
		return false
	}
	return !looksNumeric(s) && !timestampPattern.MatchString(s)
}

// looksNumeric reports whether a YAML parser could resolve s to a number.
func looksNumeric(s string) bool {
	if s[0] == '-' || s[0] == '.' {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	_, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 0, 64)
	return err == nil
}

// quote JSON-encodes s without HTML escaping.
func quote(s string) string {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

// yamlString writes a string scalar or key.
func yamlString(s string) string {
	if IsBareword(s) {
		return s
	}
	return quote(s)
}

// finite replaces NaN and infinities with 0.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// scalar renders a non-container value. JSON and YAML agree on every scalar
// form used here, except strings, which callers route through yamlString.
func scalar(v any) string {
	switch t := v.(type) {
	case nil, *document.Object:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case string:
		return quote(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return formatFloat(float64(t))
	case float64:
		return formatFloat(t)
	}
	b, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		return quote(err.Error())
	}
	return string(b)
}

func formatFloat(f float64) string {
	if finite(f) != f {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
