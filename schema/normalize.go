package schema

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Normalize returns the canonical form of n:
//
//   - boolean shorthand is returned as-is
//   - a $ref is replaced by its normalized target; a pointer already being
//     followed (a cycle) or one that cannot be resolved is left in place
//   - allOf members are merged into one schema
//   - oneOf, then anyOf, collapse to their normalized first branch
//
// A parameter location carried by a $ref or composition node is attached to
// the result unless the result declares its own. n itself is never modified.
func Normalize(n *Node, r Resolver) *Node {
	return normalize(n, r, mapset.NewThreadUnsafeSet[string](), LocationNone)
}

// MergeAllOf merges the allOf members of n into a copy of n. Scalar keywords
// keep the first value found, starting with n itself; properties keep the
// first definition of each name; required names are unioned. The result has
// no allOf.
func MergeAllOf(n *Node, r Resolver) *Node {
	if n == nil || n.IsBool() || len(n.AllOf) == 0 {
		return n
	}
	return mergeAllOf(n, r, mapset.NewThreadUnsafeSet[string](), LocationNone)
}

// normalize carries the set of pointers currently being followed. Pointers
// are added before descending into a target and removed afterwards.
func normalize(n *Node, r Resolver, inFlight mapset.Set[string], loc Location) *Node {
	if n == nil || n.IsBool() {
		return n
	}
	if n.ParamLocation != LocationNone {
		loc = n.ParamLocation
	}

	if n.Ref != "" {
		if r == nil {
			return n
		}
		if inFlight.Contains(n.Ref) {
			return WithLocation(n, loc)
		}
		target, ok := r.Resolve(n.Ref)
		if !ok {
			return n
		}
		inFlight.Add(n.Ref)
		out := normalize(target, r, inFlight, loc)
		inFlight.Remove(n.Ref)
		return out
	}

	out := n
	if len(out.AllOf) > 0 {
		out = mergeAllOf(out, r, inFlight, loc)
	}
	if len(out.OneOf) > 0 {
		return normalize(out.OneOf[0], r, inFlight, loc)
	}
	if len(out.AnyOf) > 0 {
		return normalize(out.AnyOf[0], r, inFlight, loc)
	}
	return WithLocation(out, loc)
}

func mergeAllOf(n *Node, r Resolver, inFlight mapset.Set[string], loc Location) *Node {
	merged := n.Clone()
	merged.AllOf = nil
	if merged.Properties == nil {
		merged.Properties = NewProperties()
	}

	required := mapset.NewThreadUnsafeSet(merged.Required...)
	for _, item := range n.AllOf {
		member := normalize(item, r, inFlight, loc)
		if member == nil || member.IsBool() {
			continue
		}

		if merged.Type == "" {
			merged.Type = member.Type
		}
		if merged.Description == "" {
			merged.Description = member.Description
		}
		if merged.Title == "" {
			merged.Title = member.Title
		}
		if merged.Items == nil {
			merged.Items = member.Items
		}
		if merged.AdditionalProperties == nil {
			merged.AdditionalProperties = member.AdditionalProperties
		}

		if member.Properties != nil {
			for pair := member.Properties.Oldest(); pair != nil; pair = pair.Next() {
				if _, exists := merged.Properties.Get(pair.Key); !exists {
					merged.Properties.Set(pair.Key, pair.Value)
				}
			}
		}
		for _, name := range member.Required {
			if required.Add(name) {
				merged.Required = append(merged.Required, name)
			}
		}
	}

	if merged.Properties.Len() == 0 && n.Properties == nil {
		merged.Properties = nil
	}
	return merged
}
