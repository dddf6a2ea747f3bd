// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasexplorer/document"
)

// PetstoreYAML is a small OpenAPI 3.0 document exercising the features the
// pipeline handles: shared and overridden parameters, component references
// for parameters, request bodies and responses, allOf composition, a
// hyphenated schema name reached through its alias, untagged and multi-tagged
// operations, and an ignored HEAD method.
const PetstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
tags:
  - name: pets
    description: Pet operations
  - name: store
    description: Store operations
paths:
  /pets:
    parameters:
      - $ref: '#/components/parameters/TraceId'
    get:
      tags: [pets]
      operationId: listPets
      summary: List pets
      parameters:
        - name: limit
          in: query
          description: Maximum number of results
          example: 20
          schema:
            type: integer
            format: int32
            maximum: 100
      responses:
        '200':
          description: A page of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
        default:
          $ref: '#/components/responses/Error'
    post:
      tags: [pets]
      operationId: createPet
      summary: Create a pet
      requestBody:
        $ref: '#/components/requestBodies/NewPet'
      responses:
        '201':
          description: Created
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: integer
          format: int64
    get:
      tags: [pets]
      operationId: showPetById
      responses:
        '404':
          $ref: '#/components/responses/Error'
        '200':
          description: A pet
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
    delete:
      tags: [pets, admin]
      operationId: deletePet
      deprecated: true
      parameters:
        - name: petId
          in: path
          required: true
          description: Pet to delete
          schema:
            type: string
      responses:
        '204':
          description: Deleted
  /store/orders:
    post:
      tags: [store]
      operationId: placeOrder
      requestBody:
        required: true
        content:
          application/xml:
            schema:
              type: string
          application/json:
            schema:
              $ref: '#/components/schemas/Order'
      responses:
        2XX:
          description: Accepted
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Order'
  /health:
    get:
      operationId: health
      responses:
        default:
          description: Status text
          content:
            text/plain:
              schema:
                type: string
    head:
      operationId: healthHead
      responses:
        '200':
          description: OK
components:
  parameters:
    TraceId:
      name: X-Trace-Id
      in: header
      schema:
        type: string
        format: uuid
  requestBodies:
    NewPet:
      required: true
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/NewPet'
  responses:
    Error:
      description: Error
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Error'
  schemas:
    Pet:
      allOf:
        - $ref: '#/components/schemas/NewPet'
        - type: object
          required: [id]
          properties:
            id:
              type: integer
              format: int64
    NewPet:
      type: object
      required: [name]
      properties:
        name:
          type: string
        tag:
          type: string
    Order-v1:
      type: object
      xml:
        name: PurchaseOrder
      properties:
        id:
          type: integer
        petId:
          type: integer
        status:
          type: string
          enum: [placed, approved, delivered]
        shipDate:
          type: string
          format: date-time
    Error:
      type: object
      required: [code, message]
      properties:
        code:
          type: integer
          format: int32
        message:
          type: string
`

// MustParse loads a document from YAML or JSON text, failing the test on error.
func MustParse(t testing.TB, src string) *document.Document {
	t.Helper()

	doc, err := document.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	return doc
}

// Petstore returns the parsed PetstoreYAML fixture.
func Petstore(t testing.TB) *document.Document {
	t.Helper()
	return MustParse(t, PetstoreYAML)
}

// WriteTempFile writes content to a file named name in a temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t testing.TB, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}
