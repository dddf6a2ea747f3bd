package flatten

import (
	"fmt"
	"strings"
	"testing"

	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) *schema.Node {
	t.Helper()
	doc, err := document.ParseBytes([]byte(src))
	require.NoError(t, err)
	return schema.FromValue(doc.Root)
}

func table(t *testing.T, src string) *schema.Table {
	t.Helper()
	doc, err := document.ParseBytes([]byte(src))
	require.NoError(t, err)
	return schema.NewTable(doc.Root)
}

// outline renders rows as "<indent><name> <type>" lines with flag suffixes.
func outline(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", r.Depth))
		b.WriteString(r.Name)
		if !r.Structural || r.Type != "" {
			fmt.Fprintf(&b, " %s", r.Type)
		}
		if r.Required {
			b.WriteString(" *")
		}
		if r.Circular {
			b.WriteString(" (circular)")
		}
		if r.ParamLocation != schema.LocationNone {
			fmt.Fprintf(&b, " @%s", r.ParamLocation)
		}
		out = append(out, b.String())
	}
	return out
}

func TestFlattenObject(t *testing.T) {
	n := decode(t, `
type: object
required: [id, owner]
properties:
  id: {type: integer, format: int64, minimum: 1}
  owner:
    type: object
    required: [name]
    properties:
      name: {type: string}
      email: {type: string, format: email}
  tags:
    type: array
    items: {type: string}
  anything: true
  nothing: false
`)

	want := []string{
		"id integer *",
		"owner object *",
		"  name string *",
		"  email string",
		"tags array",
		"  [",
		"    items string",
		"  ]",
		"anything any",
		"nothing never",
	}
	rows := Flatten(n, nil)
	assert.Equal(t, want, outline(rows))

	id := rows[0]
	assert.Equal(t, "int64", id.Format)
	require.NotNil(t, id.Minimum)
	assert.InDelta(t, 1.0, *id.Minimum, 0)
	assert.True(t, rows[5].Structural)
	assert.Equal(t, OpenBracket, rows[5].Name)
}

func TestFlattenArrayOfObjects(t *testing.T) {
	n := decode(t, `
type: array
items:
  type: object
  properties:
    matrix:
      type: array
      items:
        type: array
        items: {type: number}
    free:
      type: array
`)

	want := []string{
		"[",
		"  matrix array",
		"    [",
		"      [",
		"        items number",
		"      ]",
		"    ]",
		"  free array",
		"    [",
		"      items any",
		"    ]",
		"]",
	}
	assert.Equal(t, want, outline(Flatten(n, nil)))
}

func TestFlattenNamedRootArray(t *testing.T) {
	n := decode(t, "{type: array, items: false}")
	rows, err := FlattenWithOptions(n, nil, WithRootName("Pets"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Pets array", "  [", "    items never", "  ]"}, outline(rows))
	assert.True(t, rows[0].Structural)
}

func TestFlattenScalarRoot(t *testing.T) {
	n := decode(t, "{type: string, enum: [a, 1, null], example: 7}")
	rows, err := FlattenWithOptions(n, nil, WithRootName("code"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "code", rows[0].Name)
	assert.Equal(t, "string", rows[0].Type)
	assert.Equal(t, "a, 1, null", rows[0].Enum)
	assert.Equal(t, "7", rows[0].Example)

	assert.Empty(t, Flatten(nil, nil))
	assert.Equal(t, []string{" any"}, outline(Flatten(schema.Any(), nil)))
}

func TestFlattenAdditionalProperties(t *testing.T) {
	n := decode(t, `
type: object
properties:
  labels:
    type: object
    additionalProperties: {type: string}
  strict:
    type: object
    additionalProperties: false
`)
	want := []string{
		"labels object",
		"  additionalProperties string",
		"strict object",
		"  additionalProperties never",
	}
	assert.Equal(t, want, outline(Flatten(n, nil)))
}

func TestFlattenRefs(t *testing.T) {
	tbl := table(t, `
Tag:
  type: object
  properties:
    label: {type: string}
Pet:
  type: object
  required: [name]
  properties:
    name: {type: string}
    primary: {$ref: '#/components/schemas/Tag'}
    secondary: {$ref: '#/components/schemas/Tag'}
    ghost: {$ref: '#/components/schemas/Ghost'}
`)

	rows := Flatten(&schema.Node{Ref: "#/components/schemas/Pet"}, tbl)
	want := []string{
		"name string *",
		"primary object",
		"  label string",
		"secondary Tag (circular)",
		"ghost #/components/schemas/Ghost",
	}
	assert.Equal(t, want, outline(rows))
	assert.Equal(t, "#/components/schemas/Tag", rows[1].Ref)
	assert.Equal(t, "#/components/schemas/Tag", rows[3].Ref)
	assert.False(t, rows[4].Circular)
}

func TestFlattenCycleTerminates(t *testing.T) {
	tbl := table(t, `
A:
  type: object
  properties:
    b: {$ref: '#/components/schemas/B'}
B:
  type: object
  properties:
    a: {$ref: '#/components/schemas/A'}
    self:
      allOf:
        - $ref: '#/components/schemas/B'
Node:
  type: object
  properties:
    children:
      type: array
      items: {$ref: '#/components/schemas/Node'}
`)

	rows := Flatten(&schema.Node{Ref: "#/components/schemas/A"}, tbl)
	assert.Equal(t, []string{
		"b object",
		"  a A (circular)",
		// allOf members that are already expanded contribute nothing
		"  self any",
	}, outline(rows))

	rows = Flatten(&schema.Node{Ref: "#/components/schemas/Node"}, tbl)
	assert.Equal(t, []string{
		"children array",
		"  [",
		"    items Node (circular)",
		"  ]",
	}, outline(rows))
}

func TestFlattenUnresolvedWithoutResolver(t *testing.T) {
	n := decode(t, `
properties:
  pet: {$ref: '#/components/schemas/Pet'}
`)
	rows := Flatten(n, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "#/components/schemas/Pet", rows[0].Type)
	assert.False(t, rows[0].Circular)
}

func TestFlattenCompositionsNormalized(t *testing.T) {
	n := decode(t, `
type: object
properties:
  choice:
    oneOf:
      - type: object
        properties:
          x: {type: integer}
      - type: string
  merged:
    allOf:
      - properties: {a: {type: string}}
        required: [a]
      - properties: {b: {type: boolean}}
`)
	want := []string{
		"choice object",
		"  x integer",
		"merged object",
		"  a string *",
		"  b boolean",
	}
	assert.Equal(t, want, outline(Flatten(n, nil)))
}

func TestFlattenParamLocationInherited(t *testing.T) {
	filter := decode(t, `
type: object
properties:
  field: {type: string}
`)
	params := &schema.Node{Type: "object", Properties: schema.NewProperties()}
	params.Properties.Set("X-Trace", schema.WithLocation(&schema.Node{Type: "string"}, schema.LocationHeader))
	params.Properties.Set("filter", schema.WithLocation(filter, schema.LocationQuery))

	want := []string{
		"X-Trace string @header",
		"filter object @query",
		"  field string @query",
	}
	assert.Equal(t, want, outline(Flatten(params, nil)))
}
