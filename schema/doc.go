// Package schema models JSON Schema fragments as they appear in OpenAPI
// documents and canonicalizes them for display.
//
// A [Node] is either boolean shorthand (true matches anything, false
// matches nothing) or an object schema. Nodes are decoded from raw document
// values with [FromValue] and are never modified afterwards; every
// transformation returns a new node.
//
// # Resolution
//
// A [Table] maps component schema names to nodes and resolves pointers of the
// form "#/components/schemas/<name>". Besides the declared names it answers
// for two alias classes: a schema's xml.name and the part of its name before
// the first hyphen. Declared names always win over aliases; among aliases the
// first registration wins.
//
//	table := schema.TableFromDocument(doc)
//	pet, ok := table.Resolve("#/components/schemas/Pet")
//
// # Normalization
//
// [Normalize] follows $ref pointers (stopping at cycles), merges allOf
// members, collapses oneOf/anyOf to their first branch and carries a
// parameter location tag from a reference onto its target:
//
//	canonical := schema.Normalize(node, table)
//	switch schema.Classify(canonical) {
//	case schema.KindObject:
//	    // ...
//	}
//
// Normalization is shallow: it canonicalizes the node it is given, not the
// nodes nested under properties or items. Consumers normalize each child as
// they descend.
package schema
