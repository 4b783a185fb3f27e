package common

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache memoizes bearer-token lookups so the authenticate middleware does
// not hit the database on every request. Entity reads and listings are
// never cached.
type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

func (c *Cache) Delete(key string) {
	c.Cache.Delete(key)
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

func CacheKeyUserByAccessToken(token []byte) string {
	return "user_by_access_token:" + string(token)
}

// CacheKeyAccessTokenByUser indexes the cached token lookup by owner so
// revocation can drop it.
func CacheKeyAccessTokenByUser(userID int) string {
	return "access_token_by_user:" + strconv.Itoa(userID)
}
