package memo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int]()

	c.Set("foo", 42)
	val, ok := c.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = c.Get("bar")
	assert.False(t, ok)
}

func TestCache_BumpInvalidates(t *testing.T) {
	c := New[string, string]()
	c.Set("key", "value")

	c.Bump()

	_, ok := c.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	// The key is writable again in the new epoch.
	c.Set("key", "fresh")
	val, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "fresh", val)
}

func TestCache_GetOrCompute(t *testing.T) {
	c := New[string, int]()
	calls := 0
	compute := func() int {
		calls++
		return 7
	}

	assert.Equal(t, 7, c.GetOrCompute("a", compute))
	assert.Equal(t, 7, c.GetOrCompute("a", compute))
	assert.Equal(t, 1, calls)

	c.Bump()
	assert.Equal(t, 7, c.GetOrCompute("a", compute))
	assert.Equal(t, 2, calls)
}

func TestCache_Delete(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set(n, n*2)
		}(i)
	}

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Get(n)
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 100, c.Len())
}
