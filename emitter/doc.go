// Package emitter serializes materialized example values as text.
//
// [ToYAML] writes block-style YAML and [ToJSON] writes JSON indented by two
// spaces. Both preserve the order of *document.Object mappings; plain Go maps
// are written with sorted keys. Non-finite numbers are written as 0.
//
// Strings are written bare in YAML only when they cannot be mistaken for
// another type: they must consist of letters, digits and the characters
// "._/=-", must not spell a YAML boolean or null keyword, and must not read
// as a number or a date. Everything else is JSON-quoted, which is valid YAML.
package emitter
