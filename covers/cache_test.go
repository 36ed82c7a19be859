package covers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treygoff24/site/models"
)

func TestCache(t *testing.T) {
	t.Run("lookup and miss", func(t *testing.T) {
		cache := NewCache(models.CoverMap{"a": "https://cdn.example.com/a.jpg"})

		url, ok := cache.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "https://cdn.example.com/a.jpg", url)

		_, ok = cache.Get("missing")
		assert.False(t, ok)
	})

	t.Run("nil seed behaves as empty", func(t *testing.T) {
		cache := NewCache(nil)
		_, ok := cache.Get("a")
		assert.False(t, ok)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("replace swaps the whole map", func(t *testing.T) {
		cache := NewCache(models.CoverMap{"a": "old"})
		cache.Replace(models.CoverMap{"b": "new"})

		_, ok := cache.Get("a")
		assert.False(t, ok)
		url, ok := cache.Get("b")
		assert.True(t, ok)
		assert.Equal(t, "new", url)
	})
}
