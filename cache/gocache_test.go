package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoCache_Basic(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("https://api.example.com/coins/bitcoin", []byte(`{"id":"bitcoin"}`), 0)
	cache.Set("https://api.example.com/search/trending", []byte(`{"coins":[]}`), time.Minute)

	data, ok := cache.Get("https://api.example.com/coins/bitcoin")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"id":"bitcoin"}`), data)

	_, ok = cache.Get("https://api.example.com/coins/ethereum")
	assert.False(t, ok)

	assert.Equal(t, 2, cache.ItemCount())
}

func TestGoCache_Delete(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)
	cache.Set("key3", []byte("value3"), 0)

	cache.Delete("key1", "key3")

	_, ok := cache.Get("key1")
	assert.False(t, ok)
	_, ok = cache.Get("key3")
	assert.False(t, ok)
	data, ok := cache.Get("key2")
	assert.True(t, ok)
	assert.Equal(t, []byte("value2"), data)
	assert.Equal(t, 1, cache.ItemCount())
}

func TestGoCache_Clear(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)
	assert.Equal(t, 2, cache.ItemCount())

	cache.Clear()
	assert.Equal(t, 0, cache.ItemCount())
}

func TestGoCache_Expiration(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("short", []byte("value"), 50*time.Millisecond)

	_, ok := cache.Get("short")
	assert.True(t, ok)

	time.Sleep(100 * time.Millisecond)

	_, ok = cache.Get("short")
	assert.False(t, ok)
}

func TestGoCache_NonByteValue(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	// Values written behind our back with another type are treated as missing
	cache.cache.Set("weird", 42, 0)

	_, ok := cache.Get("weird")
	assert.False(t, ok)
}
