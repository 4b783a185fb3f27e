package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	key := CacheKeyUserByAccessToken([]byte("token"))

	_, found := c.Get(key)
	assert.False(t, found)

	c.Set(key, 42)

	value, found := c.Get(key)
	assert.True(t, found)
	assert.Equal(t, 42, value)
}

func TestCacheExpiration(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	c.Set("key", "value", 10*time.Millisecond)

	_, found := c.Get("key")
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)

	_, found = c.Get("key")
	assert.False(t, found)
}

func TestCacheFlush(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	c.Set("key", "value")
	c.Flush()

	_, found := c.Get("key")
	assert.False(t, found)
}
