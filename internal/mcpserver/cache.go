package mcpserver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oasexplorer/internal/workspace"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type cached struct {
	ws      *workspace.Workspace
	expires time.Time
}

func (c cached) expired(now time.Time) bool {
	return !c.expires.IsZero() && now.After(c.expires)
}

// workspaceCache is a session-scoped LRU of loaded workspaces with per-entry
// expiry. The ordered map keeps entries from least to most recently used.
type workspaceCache struct {
	mu       sync.Mutex
	lru      *orderedmap.OrderedMap[string, cached]
	capacity int
	sweeping atomic.Bool
}

func newWorkspaceCache(capacity int) *workspaceCache {
	return &workspaceCache{
		lru:      orderedmap.New[string, cached](),
		capacity: capacity,
	}
}

var workspaces = newWorkspaceCache(cfg.CacheMaxSize)

// get returns the workspace stored under key, or nil on a miss. A hit marks
// the entry as most recently used; an expired entry is dropped.
func (c *workspaceCache) get(key string) *workspace.Workspace {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if e.expired(time.Now()) {
		c.lru.Delete(key)
		return nil
	}
	_ = c.lru.MoveToBack(key)
	return e.ws
}

// put stores ws under key for ttl, evicting the least recently used entry
// when a new key would exceed capacity.
func (c *workspaceCache) put(key string, ws *workspace.Workspace, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := cached{ws: ws, expires: time.Now().Add(ttl)}
	if _, ok := c.lru.Get(key); ok {
		c.lru.Set(key, e)
		_ = c.lru.MoveToBack(key)
		return
	}
	for c.capacity > 0 && c.lru.Len() >= c.capacity {
		c.lru.Delete(c.lru.Oldest().Key)
	}
	c.lru.Set(key, e)
}

func (c *workspaceCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	var stale []string
	for p := c.lru.Oldest(); p != nil; p = p.Next() {
		if p.Value.expired(now) {
			stale = append(stale, p.Key)
		}
	}
	for _, k := range stale {
		c.lru.Delete(k)
	}
}

// startSweeper runs sweep every interval until ctx is done. Only one sweeper
// runs at a time.
func (c *workspaceCache) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *workspaceCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru = orderedmap.New[string, cached]()
}

func (c *workspaceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
