package common

import "time"

// CacheInterface is the memo store used for values that are expensive to look
// up but stable for the life of the process.
type CacheInterface interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, duration time.Duration)
	Delete(key string)

	// GetOrSet returns the cached value for key, or calls loader and caches its
	// result. Loader errors are returned and nothing is cached.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)
}
