package document

import (
	"strings"

	"github.com/erraggy/oasexplorer/internal/pathutil"
)

const componentsPrefix = "#/components/"

// Document is a loaded OpenAPI document. The pipeline reads the subset
// info.title, tags[], paths and components.
type Document struct {
	// SourcePath is the file path or source identifier the document came from
	SourcePath string
	// SourceFormat is the detected serialization
	SourceFormat SourceFormat
	// SourceSize is the number of bytes that were decoded
	SourceSize int64
	// Root is the decoded top-level mapping
	Root *Object
}

// Tag is a declared document tag.
type Tag struct {
	Name        string
	Description string
}

// New wraps an already decoded root mapping.
func New(root *Object) *Document {
	if root == nil {
		root = NewObject()
	}
	return &Document{Root: root, SourceFormat: SourceFormatUnknown}
}

// Title returns info.title.
func (d *Document) Title() string {
	return GetString(GetObject(d.Root, "info"), "title")
}

// Version returns the declared "openapi" (or legacy "swagger") version string.
func (d *Document) Version() string {
	if v := GetString(d.Root, "openapi"); v != "" {
		return v
	}
	return GetString(d.Root, "swagger")
}

// Tags returns the declared tags in document order. Entries without a name
// are skipped.
func (d *Document) Tags() []Tag {
	var tags []Tag
	for _, raw := range GetSlice(d.Root, "tags") {
		obj, ok := AsObject(raw)
		if !ok {
			continue
		}
		name := GetString(obj, "name")
		if name == "" {
			continue
		}
		tags = append(tags, Tag{Name: name, Description: GetString(obj, "description")})
	}
	return tags
}

// Paths returns the paths mapping, or nil.
func (d *Document) Paths() *Object {
	return GetObject(d.Root, "paths")
}

// Schemas returns components.schemas, or nil.
func (d *Document) Schemas() *Object {
	return GetObject(GetObject(d.Root, "components"), "schemas")
}

// Component looks up a pointer of the form "#/components/<section>/<name>".
// Any other pointer shape, or a missing entry, reports false.
func (d *Document) Component(ref string) (any, bool) {
	rest, ok := strings.CutPrefix(ref, componentsPrefix)
	if !ok {
		return nil, false
	}
	section, _, found := strings.Cut(rest, "/")
	if !found || section == "" {
		return nil, false
	}
	name, ok := pathutil.ComponentName(ref, componentsPrefix+section+"/")
	if !ok {
		return nil, false
	}
	return Get(GetObject(GetObject(d.Root, "components"), section), name)
}
