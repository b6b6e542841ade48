package cache_utils

import (
	"context"
	"encoding/json"
	"time"

	"jobtracker/internal/cache"
	"jobtracker/internal/util/logger"

	"github.com/valkey-io/valkey-go"
)

const (
	DefaultCacheTimeout = 5 * time.Second
	DefaultCacheExpiry  = 10 * time.Minute

	// generations must outlive every entry written under an older generation
	generationExpiry = 24 * time.Hour
)

// CacheUtil stores JSON values under a key prefix. Every failure degrades to a
// cache miss: callers always have the database as the source of truth.
type CacheUtil[T any] struct {
	prefix  string
	timeout time.Duration
	expiry  time.Duration
}

func NewCacheUtil[T any](prefix string, expiry time.Duration) *CacheUtil[T] {
	if expiry <= 0 {
		expiry = DefaultCacheExpiry
	}

	return &CacheUtil[T]{
		prefix:  prefix,
		timeout: DefaultCacheTimeout,
		expiry:  expiry,
	}
}

func TestCacheConnection() {
	cacheUtil := NewCacheUtil[string]("test:", time.Minute)

	testKey := "connection_test"
	testValue := "valkey_is_working"

	cacheUtil.Set(testKey, &testValue)

	retrievedValue := cacheUtil.Get(testKey)
	if retrievedValue == nil {
		panic("Cache test failed: could not retrieve cached value")
	}

	if *retrievedValue != testValue {
		panic("Cache test failed: retrieved value does not match expected")
	}

	cacheUtil.Invalidate(testKey)

	if cacheUtil.Get(testKey) != nil {
		panic("Cache test failed: test key was not properly invalidated")
	}
}

func (c *CacheUtil[T]) Get(key string) *T {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	client := cache.GetCache()
	result := client.Do(ctx, client.B().Get().Key(c.prefix+key).Build())

	if result.Error() != nil {
		if !valkey.IsValkeyNil(result.Error()) {
			logger.GetLogger().Warn("cache get failed", "key", c.prefix+key, "error", result.Error())
		}

		return nil
	}

	data, err := result.AsBytes()
	if err != nil {
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil
	}

	return &item
}

func (c *CacheUtil[T]) Set(key string, item *T) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	data, err := json.Marshal(item)
	if err != nil {
		return
	}

	client := cache.GetCache()
	err = client.Do(ctx, client.B().Set().Key(c.prefix+key).Value(string(data)).Ex(c.expiry).Build()).Error()
	if err != nil {
		logger.GetLogger().Warn("cache set failed", "key", c.prefix+key, "error", err)
	}
}

func (c *CacheUtil[T]) Invalidate(keys ...string) {
	if len(keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	fullKeys := make([]string, len(keys))
	for i, key := range keys {
		fullKeys[i] = c.prefix + key
	}

	client := cache.GetCache()
	err := client.Do(ctx, client.B().Del().Key(fullKeys...).Build()).Error()
	if err != nil {
		logger.GetLogger().Warn("cache invalidate failed", "keys", fullKeys, "error", err)
	}
}

// Generation returns the current generation of key, 0 when it was never
// bumped. Callers put it into the cache key so entries written before a
// bump are never read again.
func (c *CacheUtil[T]) Generation(key string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	client := cache.GetCache()
	result := client.Do(ctx, client.B().Get().Key(c.generationKey(key)).Build())

	if result.Error() != nil {
		if valkey.IsValkeyNil(result.Error()) {
			return 0, nil
		}

		return 0, result.Error()
	}

	return result.AsInt64()
}

// BumpGeneration moves every key to a new generation.
func (c *CacheUtil[T]) BumpGeneration(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	client := cache.GetCache()

	commands := make(valkey.Commands, 0, len(keys)*2)
	for _, key := range keys {
		generationKey := c.generationKey(key)
		commands = append(
			commands,
			client.B().Incr().Key(generationKey).Build(),
			client.B().Expire().Key(generationKey).Seconds(int64(generationExpiry.Seconds())).Build(),
		)
	}

	for _, result := range client.DoMulti(ctx, commands...) {
		if err := result.Error(); err != nil {
			return err
		}
	}

	return nil
}

func (c *CacheUtil[T]) generationKey(key string) string {
	return c.prefix + "gen:" + key
}
