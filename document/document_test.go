package document

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/oasexplorer/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `openapi: 3.0.3
info:
  title: Sample API
tags:
  - name: pets
    description: Everything about pets
  - description: nameless
paths:
  /pets:
    get:
      operationId: listPets
components:
  schemas:
    Zebra:
      type: string
    Apple:
      type: object
      properties:
        b:
          type: integer
        a:
          type: string
    Foo~1Bar:
      type: boolean
  parameters:
    limit:
      name: limit
      in: query
`

func TestParseBytes(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Sample API", doc.Title())
	assert.Equal(t, "3.0.3", doc.Version())
	assert.Equal(t, SourceFormatYAML, doc.SourceFormat)
	assert.Equal(t, int64(len(sampleYAML)), doc.SourceSize)

	assert.Equal(t, []Tag{{Name: "pets", Description: "Everything about pets"}}, doc.Tags())
	assert.Equal(t, []string{"/pets"}, Keys(doc.Paths()))

	// Source order is preserved, not sorted.
	assert.Equal(t, []string{"Zebra", "Apple", "Foo~1Bar"}, Keys(doc.Schemas()))
	apple := GetObject(doc.Schemas(), "Apple")
	assert.Equal(t, []string{"b", "a"}, Keys(GetObject(apple, "properties")))
}

func TestParseBytesJSON(t *testing.T) {
	data := []byte(`{"openapi":"3.1.0","info":{"title":"J"},"paths":{},"x":{"n":1.5,"i":3,"b":true,"z":null}}`)
	doc, err := ParseBytes(data)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, doc.SourceFormat)
	x := GetObject(doc.Root, "x")
	require.NotNil(t, x)
	assert.Equal(t, []string{"n", "i", "b", "z"}, Keys(x))

	n, _ := x.Get("n")
	assert.Equal(t, 1.5, n)
	i, _ := x.Get("i")
	assert.Equal(t, 3, i)
	assert.True(t, GetBool(x, "b"))
	z, ok := x.Get("z")
	assert.True(t, ok)
	assert.Nil(t, z)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{name: "empty input", data: "", wantMsg: "root must be a mapping"},
		{name: "sequence root", data: "- a\n- b\n", wantMsg: "root must be a mapping"},
		{name: "scalar root", data: "hello", wantMsg: "root must be a mapping"},
		{name: "invalid yaml", data: "a: [1, 2\nb: c\n", wantMsg: "invalid YAML/JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestErrorLine(t *testing.T) {
	assert.Equal(t, 7, errorLine(errors.New("yaml: line 7: did not find expected key")))
	assert.Equal(t, 0, errorLine(errors.New("unexpected end of stream")))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.SourcePath)
	// Extension wins over content sniffing.
	assert.Equal(t, SourceFormatJSON, doc.SourceFormat)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseWithOptions(t *testing.T) {
	t.Run("reader with source name", func(t *testing.T) {
		doc, err := ParseWithOptions(
			WithReader(strings.NewReader(sampleYAML)),
			WithSourceName("inline"),
		)
		require.NoError(t, err)
		assert.Equal(t, "inline", doc.SourcePath)
	})

	t.Run("no input source", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})

	t.Run("two input sources", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a: 1")), WithReader(strings.NewReader("a: 1")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one input source")
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		require.Error(t, err)
	})

	t.Run("invalid max size", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a: 1")), WithMaxFileSize(0))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})

	t.Run("oversize input", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(strings.NewReader(sampleYAML)), WithMaxFileSize(16))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrParse))
		assert.Contains(t, err.Error(), "exceeds maximum size of 16 B")
	})

	t.Run("logger receives debug summary", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		_, err := ParseWithOptions(WithBytes([]byte(sampleYAML)), WithLogger(logger))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "loaded document")
		assert.Contains(t, buf.String(), "schemas=3")
	})
}

func TestComponent(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleYAML))
	require.NoError(t, err)

	tests := []struct {
		ref   string
		found bool
	}{
		{"#/components/schemas/Apple", true},
		{"#/components/parameters/limit", true},
		{"#/components/schemas/Foo~01Bar", true},
		{"#/components/schemas/Foo%7E01Bar", true},
		{"#/components/schemas/Missing", false},
		{"#/components/schemas/Apple/properties/a", false},
		{"#/definitions/Apple", false},
		{"#/components/schemas", false},
		{"other.yaml#/components/schemas/Apple", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			v, ok := doc.Component(tt.ref)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.NotNil(t, v)
			}
		})
	}
}

func TestAliasesExpand(t *testing.T) {
	data := `openapi: 3.0.0
base: &base
  type: string
copy: *base
`
	doc, err := ParseBytes([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "string", GetString(GetObject(doc.Root, "copy"), "type"))
}

func TestAsObject(t *testing.T) {
	obj, ok := AsObject(map[string]any{"b": 1, "a": 2, "c": 3})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, Keys(obj))

	_, ok = AsObject([]any{1})
	assert.False(t, ok)

	var nilObj *Object
	_, ok = AsObject(nilObj)
	assert.False(t, ok)

	// Nil-safe accessors.
	assert.Nil(t, GetObject(nil, "x"))
	assert.Empty(t, GetString(nil, "x"))
	assert.Nil(t, GetSlice(nil, "x"))
	assert.Zero(t, Len(nil))
	assert.Nil(t, Keys(nil))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "10.0 MiB", FormatBytes(DefaultMaxFileSize))
}

func TestNopLoggerAndOrNop(t *testing.T) {
	assert.IsType(t, NopLogger{}, OrNop(nil))
	l := NewSlogAdapter(nil)
	assert.Same(t, l, OrNop(l))
	_, ok := NopLogger{}.With("k", "v").(NopLogger)
	assert.True(t, ok)
}
