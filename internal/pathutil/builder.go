package pathutil

import (
	"strconv"
	"strings"
)

const itemsSegment = "[]"

// PathBuilder builds dotted keys incrementally with push/pop semantics.
// Bracketed segments ("[]", "[0]") attach to the previous segment without a
// dot. The full string is only materialized when String() is called.
type PathBuilder struct {
	segments []string
	length   int
}

// Push adds a named segment.
func (p *PathBuilder) Push(segment string) {
	if len(p.segments) > 0 {
		p.length++
	}
	p.segments = append(p.segments, segment)
	p.length += len(segment)
}

// PushItems adds the array items marker "[]".
func (p *PathBuilder) PushItems() {
	p.pushBracket(itemsSegment)
}

// PushIndex adds an index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.pushBracket("[" + strconv.Itoa(i) + "]")
}

func (p *PathBuilder) pushBracket(seg string) {
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	n := len(p.segments)
	if n == 0 {
		return
	}
	last := p.segments[n-1]
	p.segments = p.segments[:n-1]
	p.length -= len(last)
	if n > 1 && !isBracket(last) {
		p.length--
	}
}

// Len returns the number of segments.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full key.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	for i, seg := range p.segments {
		if i > 0 && !isBracket(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isBracket(seg string) bool {
	return len(seg) > 0 && seg[0] == '['
}
