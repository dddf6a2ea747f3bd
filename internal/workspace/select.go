package workspace

import (
	"fmt"

	"github.com/erraggy/oasexplorer/emitter"
	"github.com/ohler55/ojg/jp"
)

// Select evaluates a JSONPath expression against a materialized example.
// A single match is returned as is; zero or several matches are returned as
// a list. Ordered mappings become plain maps, so key order in the result is
// sorted.
func Select(v any, selector string) (any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	results := x.Get(emitter.ToPlain(v))
	if len(results) == 1 {
		return results[0], nil
	}
	if results == nil {
		results = []any{}
	}
	return results, nil
}
