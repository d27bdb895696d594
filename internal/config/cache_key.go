package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a staff user's active session token ID.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("session:user:%d", userID)
}

var CacheKey = NewCacheKeyStruct()
