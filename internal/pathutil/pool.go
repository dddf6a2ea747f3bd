package pathutil

import "sync"

// Tree keys rarely nest past a handful of levels. Builders that grew beyond
// keyCapLimit are dropped rather than returned to the pool.
const (
	keyCapHint  = 8
	keyCapLimit = 64
)

var builders = sync.Pool{
	New: func() any { return &PathBuilder{segments: make([]string, 0, keyCapHint)} },
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p, _ := builders.Get().(*PathBuilder)
	if p == nil {
		p = &PathBuilder{segments: make([]string, 0, keyCapHint)}
	}
	p.Reset()
	return p
}

// Put hands p back to the pool. Nil and oversized builders are discarded.
func Put(p *PathBuilder) {
	if p != nil && cap(p.segments) <= keyCapLimit {
		builders.Put(p)
	}
}
