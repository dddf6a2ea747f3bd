package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/oasexplorer/flatten"
	"github.com/erraggy/oasexplorer/internal/testutil"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func petstoreFile(t *testing.T) string {
	t.Helper()
	return testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)
}

// fields splits output into whitespace-separated fields per line.
func fields(out string) [][]string {
	var lines [][]string
	for line := range strings.SplitSeq(strings.TrimRight(out, "\n"), "\n") {
		lines = append(lines, strings.Fields(line))
	}
	return lines
}

func TestServices_Text(t *testing.T) {
	out, _, err := run(t, "", "services", petstoreFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Pets: Pet operations\n")
	assert.Contains(t, out, "\nAdmin\n")
	assert.Contains(t, out, "\nDefault\n")
	assert.Contains(t, out, "Store: Store operations\n"+
		"METHOD  PATH           OPERATION ID  REQUEST           RESPONSE\n"+
		"POST    /store/orders  placeOrder    application/json  2XX application/json\n")
	assert.Contains(t, out, "deletePet (deprecated)")
	assert.Less(t, strings.Index(out, "Pets:"), strings.Index(out, "Store:"))
	assert.Less(t, strings.Index(out, "Store:"), strings.Index(out, "Admin"))
}

func TestServices_Structured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "", "services", "--format", "json", petstoreFile(t))
		require.NoError(t, err)
		var records []serviceRecord
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		require.Len(t, records, 4)
		assert.Equal(t, "pets", records[0].Name)
		assert.Equal(t, "listPets", records[0].Operations[0].OperationID)
		assert.Equal(t, "params", records[0].Operations[0].Request)
		assert.Equal(t, "200 application/json", records[0].Operations[0].Response)
	})

	t.Run("yaml from stdin", func(t *testing.T) {
		out, _, err := run(t, testutil.PetstoreYAML, "services", "-f", "yaml", StdinFilePath)
		require.NoError(t, err)
		var records []serviceRecord
		require.NoError(t, yaml.Unmarshal([]byte(out), &records))
		require.Len(t, records, 4)
		assert.Equal(t, "default", records[3].Name)
		assert.Equal(t, "default text/plain", records[3].Operations[0].Response)
	})
}

func TestServices_Errors(t *testing.T) {
	_, _, err := run(t, "", "services", "--format", "xml", petstoreFile(t))
	assert.ErrorContains(t, err, "invalid format 'xml'")

	_, _, err = run(t, "", "services", "/nonexistent/openapi.yaml")
	assert.ErrorContains(t, err, "failed to open document")

	empty := testutil.WriteTempFile(t, "empty.yaml", "openapi: 3.0.3\ninfo: {title: E, version: \"1\"}\n")
	_, _, err = run(t, "", "services", empty)
	assert.ErrorContains(t, err, "document declares no paths")
}

func TestExample(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "yaml response",
			args: []string{"--op", "showPetById"},
			want: "id: 0\nname: string\ntag: string\n",
		},
		{
			name: "json ref",
			args: []string{"--ref", "Error", "--format", "json"},
			want: "{\n  \"code\": 0,\n  \"message\": \"string\"\n}\n",
		},
		{
			name: "select",
			args: []string{"--op", "listPets", "--part", "request", "--select", "$.query.limit"},
			want: "20\n",
		},
		{
			name: "alias",
			args: []string{"--ref", "PurchaseOrder", "--select", "$.status"},
			want: "placed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"example"}, tt.args...)
			out, _, err := run(t, "", append(args, petstoreFile(t))...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExample_Errors(t *testing.T) {
	path := petstoreFile(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no selection", args: []string{"example", path}, want: "op"},
		{name: "both selections", args: []string{"example", "--op", "listPets", "--ref", "Pet", path}, want: "op"},
		{name: "bad part", args: []string{"example", "--op", "listPets", "--part", "body", path}, want: "must be one of"},
		{name: "bad depth", args: []string{"example", "--ref", "Pet", "--max-depth", "0", path}, want: "max-depth"},
		{name: "bad format", args: []string{"example", "--ref", "Pet", "--format", "text", path}, want: "invalid format"},
		{name: "unknown ref", args: []string{"example", "--ref", "Nope", path}, want: "schema not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRows(t *testing.T) {
	out, _, err := run(t, "", "rows", "--ref", "Error", petstoreFile(t))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"FIELD", "TYPE", "REQUIRED", "IN", "FORMAT", "ENUM", "EXAMPLE", "CONSTRAINTS"},
		{"code", "integer", "yes", "int32"},
		{"message", "string", "yes"},
	}, fields(out))
}

func TestRows_ArrayAndConstraints(t *testing.T) {
	out, _, err := run(t, "", "rows", "--op", "listPets", "--part", "request", "--format", "json", petstoreFile(t))
	require.NoError(t, err)

	var records []rowRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	var limit *rowRecord
	for i := range records {
		if records[i].Name == "limit" {
			limit = &records[i]
		}
	}
	require.NotNil(t, limit)
	assert.Equal(t, "query", limit.In)
	assert.Equal(t, "value <= 100", limit.Constraints)
	assert.Equal(t, "20", limit.Example)

	out, _, err = run(t, "", "rows", "--op", "listPets", petstoreFile(t))
	require.NoError(t, err)
	lines := fields(out)
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{"response"}, lines[1])
	assert.Equal(t, []string{"["}, lines[2])
	assert.Equal(t, []string{"]"}, lines[len(lines)-1])
}

func TestConstraints(t *testing.T) {
	lo, hi := 1.5, 10.0
	minLen, maxItems := 2, 5

	tests := []struct {
		name string
		row  flatten.Row
		want string
	}{
		{name: "none", row: flatten.Row{}, want: ""},
		{name: "value range", row: flatten.Row{Minimum: &lo, Maximum: &hi}, want: "value 1.5..10"},
		{name: "lower bound only", row: flatten.Row{Minimum: &lo}, want: "value >= 1.5"},
		{
			name: "mixed",
			row:  flatten.Row{MinLength: &minLen, MaxItems: &maxItems, Pattern: "^a"},
			want: "length >= 2; items <= 5; pattern ^a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraints(tt.row))
		})
	}
}

func TestRenderTable_WideRunes(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []string{"NAME", "NOTE"}, [][]string{{"名前", "x"}, {"ab", "y"}})
	assert.Equal(t, "NAME  NOTE\n名前  x\nab    y\n", buf.String())

	buf.Reset()
	RenderTable(&buf, []string{"A"}, nil)
	assert.Zero(t, buf.Len())
}

func TestTree(t *testing.T) {
	out, _, err := run(t, "", "tree", "--ref", "Error", petstoreFile(t))
	require.NoError(t, err)
	assert.Equal(t, "Error: object\n├── code: integer (int32)\n└── message: string\n", out)

	out, _, err = run(t, "", "tree", "--op", "createPet", "--resolve", petstoreFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "response: -> Pet, composition\n└── allOf (2)\n")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "oasexplorer vdev\n", out)

	out, _, err = run(t, "", "version", "--long")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "", "--verbose", "services", petstoreFile(t))
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded document")
	assert.Contains(t, stderr, "level=DEBUG")

	_, stderr, err = run(t, "", "services", petstoreFile(t))
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
