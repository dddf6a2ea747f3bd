package emitter

import (
	"math"
	"testing"

	"github.com/erraggy/oasexplorer/document"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func object(kv ...any) *document.Object {
	obj := document.NewObject()
	for i := 0; i+1 < len(kv); i += 2 {
		obj.Set(kv[i].(string), kv[i+1])
	}
	return obj
}

func TestToYAML(t *testing.T) {
	v := object(
		"id", "string",
		"tags", []any{"a", object("name", "x", "n", 1), []any{}, []any{true}},
		"meta", object(),
		"list", []any{},
		"nested", object("deep", object("ok", false)),
		"none", nil,
	)

	want := `id: string
tags:
  - a
  -
    name: x
    n: 1
  - []
  -
    - true
meta: {}
list: []
nested:
  deep:
    ok: false
none: null
`
	assert.Equal(t, want, ToYAML(v))
}

func TestToYAMLTopLevel(t *testing.T) {
	assert.Equal(t, "{}\n", ToYAML(object()))
	assert.Equal(t, "[]\n", ToYAML([]any{}))
	assert.Equal(t, "hello\n", ToYAML("hello"))
	assert.Equal(t, "- 0\n", ToYAML([]any{0}))
	assert.Equal(t, "\"<any>\"\n", ToYAML("<any>"))
}

func TestYAMLQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"with.dots_and/slash=eq-dash", "with.dots_and/slash=eq-dash"},
		{"2024-01-01", `"2024-01-01"`},
		{"v1.2.3", "v1.2.3"},
		{"", `""`},
		{"two words", `"two words"`},
		{"true", `"true"`},
		{"Yes", `"Yes"`},
		{"OFF", `"OFF"`},
		{"null", `"null"`},
		{"~", `"~"`},
		{"123", `"123"`},
		{"1.5", `"1.5"`},
		{"0x1F", `"0x1F"`},
		{"1e5", `"1e5"`},
		{"-dash", `"-dash"`},
		{".inf", `".inf"`},
		{"a:b", `"a:b"`},
		{"<never>", `"<never>"`},
		{"user@example.com", `"user@example.com"`},
		{`quote"inside`, `"quote\"inside"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, yamlString(tt.in))
		})
	}
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, "n: 0\n", ToYAML(object("n", math.NaN())))
	assert.Equal(t, "n: 0\n", ToYAML(object("n", math.Inf(1))))
	assert.Equal(t, "n: 2.5\n", ToYAML(object("n", 2.5)))
	assert.Equal(t, "n: 3.0\n", ToYAML(object("n", 3.0)))
	assert.Equal(t, "n: -7\n", ToYAML(object("n", -7)))
	assert.Equal(t, `[0,1.5,0]`, Inline([]any{0, 1.5, math.Inf(-1)}))
}

func TestToJSON(t *testing.T) {
	v := object(
		"id", "string",
		"list", []any{0, object("a", nil)},
		"empty", object(),
		"none", []any{},
		"html", "<any>",
	)

	want := `{
  "id": "string",
  "list": [
    0,
    {
      "a": null
    }
  ],
  "empty": {},
  "none": [],
  "html": "<any>"
}`
	assert.Equal(t, want, ToJSON(v))
	assert.Equal(t, `{"id":"string","list":[0,{"a":null}],"empty":{},"none":[],"html":"<any>"}`, Inline(v))
}

func TestPlainMapsSortKeys(t *testing.T) {
	v := map[string]any{"b": 1, "a": map[string]any{"d": true, "c": "x"}}
	assert.Equal(t, "a:\n  c: x\n  d: true\nb: 1\n", ToYAML(v))
	assert.Equal(t, `{"a":{"c":"x","d":true},"b":1}`, Inline(v))

	var nilObj *document.Object
	assert.Equal(t, "null", Inline(nilObj))
}

func TestYAMLRoundTrip(t *testing.T) {
	values := []any{
		object(
			"id", "string",
			"count", 0,
			"ratio", 0.25,
			"whole", 2.0,
			"flag", false,
			"nothing", nil,
			"date", "2024-01-01",
			"stamp", "2024-01-01T00:00:00Z",
			"numeric", "42",
			"keyword", "no",
			"multi", "line one\nline two",
			"list", []any{object("a", "b"), []any{"x", 1}, []any{}, object()},
			"weird key: here", "v",
			"123", "numeric key",
		),
		[]any{"<any>", "<never>", "a b"},
		"top-level",
		0,
	}

	for _, v := range values {
		text := ToYAML(v)
		var decoded any
		require.NoError(t, yaml.Unmarshal([]byte(text), &decoded), text)
		if diff := cmp.Diff(ToPlain(v), decoded); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s\nyaml:\n%s", diff, text)
		}
	}
}

func TestToPlain(t *testing.T) {
	v := object("a", []any{object("b", 1)}, "c", "d")
	want := map[string]any{"a": []any{map[string]any{"b": 1}}, "c": "d"}
	assert.Equal(t, want, ToPlain(v))
	assert.Equal(t, "x", ToPlain("x"))
}
