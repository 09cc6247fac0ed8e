package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit/pkg/cache"
)

func TestLRU(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRU[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = c.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		c := cache.NewLRU[string, int](2)
		var evicted []string
		c.OnEvict(func(k string, _ int) { evicted = append(evicted, k) })

		c.Put("a", 1)
		c.Put("b", 2)
		c.Get("a")
		c.Put("c", 3)

		_, ok := c.Get("b")
		assert.False(t, ok)
		assert.Equal(t, []string{"b"}, evicted)
		assert.Equal(t, []string{"c", "a"}, c.Keys())
	})

	t.Run("update keeps size and refreshes recency", func(t *testing.T) {
		c := cache.NewLRU[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("a", 10)
		c.Put("c", 3)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 10, v)
		_, ok = c.Get("b")
		assert.False(t, ok)
	})

	t.Run("remove and purge", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)

		assert.True(t, c.Remove("a"))
		assert.False(t, c.Remove("a"))
		assert.Equal(t, 1, c.Len())

		c.Purge()
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Keys())
	})

	t.Run("stats", func(t *testing.T) {
		c := cache.NewLRU[string, int](1)
		c.Put("a", 1)
		c.Get("a")
		c.Get("b")
		c.Put("b", 2)

		assert.Equal(t, cache.Stats{Hits: 1, Misses: 1, Evictions: 1}, c.Stats())
	})

	t.Run("panics on invalid capacity", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	})
}

func TestLRU_Concurrent(t *testing.T) {
	c := cache.NewLRU[string, int](16)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := strconv.Itoa(i % 20)
			c.Put(key, i)
			c.Get(key)
			if i%5 == 0 {
				c.Remove(key)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
