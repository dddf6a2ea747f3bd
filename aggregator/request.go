package aggregator

import (
	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/schemautil"
	"github.com/erraggy/oasexplorer/schema"
)

// Property names of a combined request schema.
const (
	ParamsProperty = "params"
	BodyProperty   = "body"
)

// MediaTypeJSON is preferred whenever several media types are declared.
const MediaTypeJSON = "application/json"

type parameter struct {
	name     string
	location schema.Location
	required bool
	schema   *schema.Node
}

// parameters decodes a parameters list. Entries that are not mappings, that
// reference a missing component or that have an unknown location are
// skipped.
func (a *aggregator) parameters(raw []any) []parameter {
	var out []parameter
	for _, v := range raw {
		obj := a.component(v)
		if obj == nil {
			continue
		}
		name := document.GetString(obj, "name")
		in := document.GetString(obj, "in")
		loc, ok := schema.ParseLocation(in)
		if !ok || name == "" {
			a.logger.Debug("skipped parameter", "name", name, "in", in)
			continue
		}
		out = append(out, parameter{
			name:     name,
			location: loc,
			required: document.GetBool(obj, "required") || loc == schema.LocationPath,
			schema:   parameterSchema(obj, loc),
		})
	}
	return out
}

// parameterSchema returns the parameter's schema tagged with its location.
// The parameter's description and example fill in when the schema lacks
// them.
func parameterSchema(obj *document.Object, loc schema.Location) *schema.Node {
	raw, ok := obj.Get("schema")
	if !ok {
		raw, _ = mediaSchema(document.GetObject(obj, "content"))
	}
	n := schema.FromValue(raw)
	if n == nil {
		n = &schema.Node{}
	}
	if n.IsBool() {
		return n
	}

	c := n.Clone()
	if c.Description == "" {
		c.Description = document.GetString(obj, "description")
	}
	if c.Example == nil {
		c.Example, _ = obj.Get("example")
	}
	c.Deprecated = c.Deprecated || document.GetBool(obj, "deprecated")
	c.ParamLocation = loc
	return c
}

// mergeParameters overlays operation-level parameters on path-level ones,
// keyed by location and name. Overridden entries keep their position.
func mergeParameters(shared, own []parameter) []parameter {
	type key struct {
		loc  schema.Location
		name string
	}
	merged := make([]parameter, 0, len(shared)+len(own))
	index := make(map[key]int, len(shared)+len(own))
	for _, list := range [][]parameter{shared, own} {
		for _, p := range list {
			k := key{p.location, p.name}
			if i, exists := index[k]; exists {
				merged[i] = p
				continue
			}
			index[k] = len(merged)
			merged = append(merged, p)
		}
	}
	return merged
}

// paramsSchema builds the parameter part of a request schema, or nil when
// there are no parameters.
func paramsSchema(params []parameter) (n *schema.Node, required bool) {
	type group struct {
		loc      schema.Location
		node     *schema.Node
		required bool
	}
	var groups []group
	for _, loc := range schema.Locations {
		g := group{loc: loc, node: &schema.Node{Type: schemautil.TypeObject, ParamLocation: loc}}
		for _, p := range params {
			if p.location != loc {
				continue
			}
			if g.node.Properties == nil {
				g.node.Properties = schema.NewProperties()
			}
			g.node.Properties.Set(p.name, p.schema)
			if p.required {
				g.node.Required = append(g.node.Required, p.name)
				g.required = true
			}
		}
		if g.node.Properties != nil {
			groups = append(groups, g)
		}
	}

	switch len(groups) {
	case 0:
		return nil, false
	case 1:
		return groups[0].node, groups[0].required
	}

	combined := &schema.Node{Type: schemautil.TypeObject, Properties: schema.NewProperties()}
	for _, g := range groups {
		combined.Properties.Set(g.loc.String(), g.node)
		if g.required {
			combined.Required = append(combined.Required, g.loc.String())
			required = true
		}
	}
	return combined, required
}

// request combines parameters and body into one schema.
func (a *aggregator) request(params []parameter, op *document.Object) (*schema.Node, string) {
	paramsNode, paramsRequired := paramsSchema(params)

	var (
		body         *schema.Node
		bodyRequired bool
		mediaType    string
	)
	if raw, ok := op.Get("requestBody"); ok {
		if rb := a.component(raw); rb != nil {
			var rawSchema any
			rawSchema, mediaType = mediaSchema(document.GetObject(rb, "content"))
			body = schema.FromValue(rawSchema)
			bodyRequired = document.GetBool(rb, "required")
		}
	}

	switch {
	case paramsNode == nil:
		return body, mediaType
	case body == nil:
		return paramsNode, ""
	}

	combined := &schema.Node{Type: schemautil.TypeObject, Properties: schema.NewProperties()}
	combined.Properties.Set(ParamsProperty, paramsNode)
	combined.Properties.Set(BodyProperty, body)
	if paramsRequired {
		combined.Required = append(combined.Required, ParamsProperty)
	}
	if bodyRequired {
		combined.Required = append(combined.Required, BodyProperty)
	}
	return combined, mediaType
}

// mediaSchema returns the schema of the application/json entry of a content
// map, or of its first entry.
func mediaSchema(content *document.Object) (any, string) {
	if document.Len(content) == 0 {
		return nil, ""
	}
	mediaType := MediaTypeJSON
	media := document.GetObject(content, MediaTypeJSON)
	if media == nil {
		first := content.Oldest()
		mediaType = first.Key
		media, _ = document.AsObject(first.Value)
	}
	raw, _ := document.Get(media, "schema")
	return raw, mediaType
}
