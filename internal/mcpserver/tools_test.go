package mcpserver

import (
	"context"
	"testing"

	"github.com/erraggy/oasexplorer/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

var petstore = specInput{Content: testutil.PetstoreYAML}

// call invokes a tool handler and returns its typed output, failing the test
// when the handler reported an error result.
func call[In, Out any](t *testing.T, h func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error), input In) Out {
	t.Helper()
	result, out, err := h(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result, "unexpected error result: %s", errorText(result))
	typed, ok := out.(Out)
	require.True(t, ok, "unexpected output type %T", out)
	return typed
}

// callErr invokes a tool handler that is expected to fail and returns the error text.
func callErr[In any](t *testing.T, h func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error), input In) string {
	t.Helper()
	result, out, err := h(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, out)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	return errorText(result)
}

func errorText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if tc, ok := result.Content[0].(*mcp.TextContent); ok {
		return tc.Text
	}
	return ""
}

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	assert.NotPanics(t, func() { registerAllTools(server) })
}

func TestListOperations(t *testing.T) {
	out := call[listOperationsInput, listOperationsOutput](t, handleListOperations, listOperationsInput{Spec: petstore})

	assert.Equal(t, "Petstore", out.Title)
	assert.Equal(t, "3.0.3", out.Version)
	assert.Equal(t, 7, out.Total)
	assert.Equal(t, 7, out.Returned)

	names := make([]string, 0, len(out.Services))
	for _, s := range out.Services {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"pets", "store", "admin", "default"}, names)
	assert.Equal(t, 4, out.Services[0].Operations)
	assert.Equal(t, "Pet operations", out.Services[0].Description)

	first := out.Operations[0]
	assert.Equal(t, "pets", first.Service)
	assert.Equal(t, "GET", first.Method)
	assert.Equal(t, "/pets", first.Path)
	assert.Equal(t, "listPets", first.OperationID)
	assert.True(t, first.HasResponse)
	assert.Equal(t, "200", first.ResponseStatus)
	assert.Equal(t, "application/json", first.ResponseMediaType)
}

func TestListOperations_ServiceFilterAndPaging(t *testing.T) {
	out := call[listOperationsInput, listOperationsOutput](t, handleListOperations, listOperationsInput{
		Spec:    petstore,
		Service: "pets",
		Offset:  1,
		Limit:   2,
	})
	assert.Equal(t, 4, out.Total)
	require.Len(t, out.Operations, 2)
	assert.Equal(t, "createPet", out.Operations[0].OperationID)
	assert.Equal(t, "showPetById", out.Operations[1].OperationID)

	msg := callErr(t, handleListOperations, listOperationsInput{Spec: petstore, Service: "nope"})
	assert.Contains(t, msg, `service "nope" not found`)
}

func TestListOperations_EmptyDocument(t *testing.T) {
	msg := callErr(t, handleListOperations, listOperationsInput{
		Spec: specInput{Content: "openapi: 3.0.3\ninfo: {title: Empty, version: \"1\"}\n"},
	})
	assert.Contains(t, msg, "document declares no paths")
}

func TestMaterializeExample(t *testing.T) {
	t.Run("yaml response", func(t *testing.T) {
		out := call[materializeInput, materializeOutput](t, handleMaterializeExample, materializeInput{
			Spec:        petstore,
			OperationID: "showPetById",
		})
		assert.Equal(t, "yaml", out.Format)
		assert.Equal(t, "showPetById", out.Target.OperationID)
		assert.Equal(t, "200", out.Target.Status)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out.Text), &got))
		assert.Equal(t, map[string]any{"id": 0, "name": "string", "tag": "string"}, got)
	})

	t.Run("json ref", func(t *testing.T) {
		out := call[materializeInput, materializeOutput](t, handleMaterializeExample, materializeInput{
			Spec:   petstore,
			Ref:    "Error",
			Format: "json",
		})
		assert.Equal(t, "Error", out.Target.Name)
		assert.Equal(t, "{\n  \"code\": 0,\n  \"message\": \"string\"\n}", out.Text)
	})

	t.Run("select", func(t *testing.T) {
		out := call[materializeInput, materializeOutput](t, handleMaterializeExample, materializeInput{
			Spec:        petstore,
			OperationID: "listPets",
			Part:        "request",
			Select:      "$.query.limit",
			Format:      "json",
		})
		assert.Equal(t, "20", out.Text)
	})

	t.Run("max depth", func(t *testing.T) {
		out := call[materializeInput, materializeOutput](t, handleMaterializeExample, materializeInput{
			Spec:     petstore,
			Ref:      "Error",
			MaxDepth: 1,
		})
		assert.Contains(t, out.Text, "code: 0")
	})
}

func TestMaterializeExample_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input materializeInput
		want  string
	}{
		{name: "bad format", input: materializeInput{Spec: petstore, Ref: "Pet", Format: "xml"}, want: "format"},
		{name: "no selection", input: materializeInput{Spec: petstore}, want: "must specify an operation id or a schema ref"},
		{name: "unknown op", input: materializeInput{Spec: petstore, OperationID: "nope"}, want: `operation "nope" not found`},
		{name: "bad select", input: materializeInput{Spec: petstore, Ref: "Pet", Select: "$["}, want: "invalid jsonpath"},
		{name: "no spec", input: materializeInput{Ref: "Pet"}, want: "exactly one of file or content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, callErr(t, handleMaterializeExample, tt.input), tt.want)
		})
	}
}

func TestFlattenSchema(t *testing.T) {
	out := call[flattenInput, flattenOutput](t, handleFlattenSchema, flattenInput{
		Spec: petstore,
		Ref:  "Order-v1",
	})
	require.Equal(t, 4, out.Total)
	names := make([]string, 0, len(out.Rows))
	for _, r := range out.Rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"id", "petId", "status", "shipDate"}, names)
	assert.Equal(t, "placed, approved, delivered", out.Rows[2].Enum)
	assert.Equal(t, "date-time", out.Rows[3].Format)

	paged := call[flattenInput, flattenOutput](t, handleFlattenSchema, flattenInput{
		Spec:   petstore,
		Ref:    "Order-v1",
		Offset: 3,
		Limit:  5,
	})
	assert.Equal(t, 4, paged.Total)
	require.Len(t, paged.Rows, 1)
	assert.Equal(t, "shipDate", paged.Rows[0].Name)
}

func TestFlattenSchema_ParameterLocations(t *testing.T) {
	out := call[flattenInput, flattenOutput](t, handleFlattenSchema, flattenInput{
		Spec:        petstore,
		OperationID: "showPetById",
		Part:        "request",
	})
	require.NotEmpty(t, out.Rows)
	assert.Equal(t, "petId", out.Rows[0].Name)
	assert.Equal(t, "path", out.Rows[0].In)
	assert.True(t, out.Rows[0].Required)
}

func TestSchemaTree(t *testing.T) {
	out := call[schemaTreeInput, schemaTreeOutput](t, handleSchemaTree, schemaTreeInput{
		Spec: petstore,
		Ref:  "Error",
	})
	assert.Equal(t, "Error: object\n├── code: integer (int32)\n└── message: string\n", out.Text)
	require.Len(t, out.Nodes, 1)
	assert.Len(t, out.Nodes[0].Children, 2)
}

func TestSchemaTree_Resolve(t *testing.T) {
	plain := call[schemaTreeInput, schemaTreeOutput](t, handleSchemaTree, schemaTreeInput{
		Spec:        petstore,
		OperationID: "createPet",
	})
	assert.Equal(t, "response: -> Pet\n", plain.Text)

	resolved := call[schemaTreeInput, schemaTreeOutput](t, handleSchemaTree, schemaTreeInput{
		Spec:        petstore,
		OperationID: "createPet",
		Resolve:     true,
	})
	assert.Contains(t, resolved.Text, "response: -> Pet, composition")
	assert.Contains(t, resolved.Text, "allOf (2)")
}
