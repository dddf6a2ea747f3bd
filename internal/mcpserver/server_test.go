package mcpserver

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	five := seq(5)

	tests := []struct {
		name          string
		items         []int
		offset, limit int
		want          []int
	}{
		{name: "zero limit uses row limit", items: five, want: five},
		{name: "negative limit uses row limit", items: five, limit: -3, want: five},
		{name: "first page", items: five, limit: 2, want: []int{0, 1}},
		{name: "middle page", items: five, offset: 1, limit: 2, want: []int{1, 2}},
		{name: "short last page", items: five, offset: 3, limit: 10, want: []int{3, 4}},
		{name: "offset past end", items: five, offset: 5, limit: 2},
		{name: "negative offset", items: five, offset: -1, limit: 2},
		{name: "empty input", items: []int{}, limit: 2},
		{name: "limit overflow", items: five, offset: 1, limit: math.MaxInt, want: []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_Caps(t *testing.T) {
	assert.Len(t, paginate(seq(cfg.RowLimit+50), 0, 0), cfg.RowLimit)
	assert.Len(t, paginate(seq(cfg.MaxLimit+500), 0, cfg.MaxLimit+500), cfg.MaxLimit)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: errors.New("schema not found: Pet"), want: "schema not found: Pet"},
		{err: errors.New("failed to open document /root/specs/api.yaml"), want: "failed to open document <path>"},
		{err: errors.New("read /tmp/a.yaml and /Users/me/b.json"), want: "read <path> and <path>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeError(tt.err))
	}
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("open /home/u/x.yaml: denied"))
	assert.True(t, res.IsError)
	assert.Equal(t, "open <path>: denied", errorText(res))
}

func TestWorkspaceCache_Recency(t *testing.T) {
	c := newWorkspaceCache(2)
	c.put("a", nil, time.Hour)
	c.put("b", nil, time.Hour)
	c.get("a")
	c.put("c", nil, time.Hour)

	assert.Equal(t, 2, c.len())
	_, okA := c.lru.Get("a")
	_, okB := c.lru.Get("b")
	assert.True(t, okA, "recently read entry survives")
	assert.False(t, okB, "least recently used entry is evicted")
}
