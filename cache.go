package arena

import "sync"

// chunkCache recycles released chunks of one size across arenas.
// Arenas of different chunk sizes never share a cache.
type chunkCache struct {
	size int
	pool sync.Pool
}

var chunkCaches sync.Map // int -> *chunkCache

func chunkCacheFor(size int) *chunkCache {
	if c, ok := chunkCaches.Load(size); ok {
		return c.(*chunkCache)
	}
	c, _ := chunkCaches.LoadOrStore(size, &chunkCache{size: size})
	return c.(*chunkCache)
}

// get returns a cached chunk, or nil when none is available.
func (c *chunkCache) get() []byte {
	v := c.pool.Get()
	if v == nil {
		return nil
	}
	return *v.(*[]byte)
}

// put caches buf if it has exactly the cache's chunk size.
// Oversized chunks are left to the garbage collector.
func (c *chunkCache) put(buf []byte) {
	if len(buf) != c.size {
		return
	}
	c.pool.Put(&buf)
}
