// Package oasexplorer turns OpenAPI and JSON Schema fragments into concrete,
// inspectable artifacts.
//
// The module is organized as a pipeline of small packages:
//
//   - document: decode a YAML or JSON OpenAPI document, preserving key order
//   - schema: the schema node model, the component schema table ($ref
//     resolution with alias lookups) and the normalizer (ref following,
//     allOf merging, oneOf/anyOf collapsing)
//   - example: materialize one deterministic example value from a schema
//   - emitter: render example values as block-style YAML or indented JSON
//   - flatten: project a schema into ordered, indented rows for tables
//   - tree: project a schema into labeled hierarchical nodes
//   - aggregator: group a document's operations into services, endpoints
//     and methods with merged parameter and selected response schemas
//
// # Quick Start
//
// Load a document and list its operations:
//
//	doc, err := document.ParseWithOptions(document.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	services, err := aggregator.Aggregate(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, svc := range services {
//		fmt.Println(svc.Name)
//	}
//
// Materialize and print a request example:
//
//	table := schema.NewTable(doc.Schemas())
//	op, _ := aggregator.FindOperation(services, "createPet")
//	value := example.Materialize(op.Request, table)
//	fmt.Print(emitter.ToYAML(value))
//
// Every pipeline stage is a pure, synchronous walk over in-memory values: no
// stage blocks, and independent calls may run concurrently. Malformed input
// degrades to neutral defaults; cyclic $ref graphs terminate with sentinel
// values instead of errors. The only pipeline failure is an aggregation that
// finds no operations (see oaserrors.ErrEmptyDocument).
package oasexplorer
