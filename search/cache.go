package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/utils"
	"github.com/karlseguin/ccache/v3"
	"github.com/redis/go-redis/v9"
)

const (
	localCacheSize = 1000
	purgePattern   = "search:*"
	purgeScanCount = 100
)

// ResultCache memoizes search results by key.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]models.Property, bool)
	Set(ctx context.Context, key string, properties []models.Property)
	Purge(ctx context.Context)
}

type cachedResult struct {
	Properties []models.Property `json:"properties"`
}

// twoLevelCache keeps recent results in process and, when a redis client
// is available, shares them across instances.
type twoLevelCache struct {
	local  *ccache.Cache[*cachedResult]
	remote *redis.Client
	ttl    time.Duration
}

// NewResultCache builds the cache. A nil redis client keeps it local.
func NewResultCache(remote *redis.Client, ttl time.Duration) ResultCache {
	return &twoLevelCache{
		local:  ccache.New(ccache.Configure[*cachedResult]().MaxSize(localCacheSize)),
		remote: remote,
		ttl:    ttl,
	}
}

func (c *twoLevelCache) Get(ctx context.Context, key string) ([]models.Property, bool) {
	if item := c.local.Get(key); item != nil && !item.Expired() {
		utils.Logger.Debugf("Cache HIT (local): key=%s", key)
		return clone(item.Value().Properties), true
	}

	if c.remote == nil {
		utils.Logger.Debugf("Cache MISS: key=%s", key)
		return nil, false
	}

	raw, err := c.remote.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.Logger.WithError(err).Warnf("Redis GET failed for key %s", key)
		}
		utils.Logger.Debugf("Cache MISS: key=%s", key)
		return nil, false
	}

	var data cachedResult
	if err := json.Unmarshal(raw, &data); err != nil {
		utils.Logger.WithError(err).Warnf("Discarding unreadable cache entry %s", key)
		return nil, false
	}
	if data.Properties == nil {
		data.Properties = []models.Property{}
	}

	c.local.Set(key, &data, c.ttl)
	utils.Logger.Debugf("Cache HIT (redis): key=%s, stored locally", key)
	return clone(data.Properties), true
}

func (c *twoLevelCache) Set(ctx context.Context, key string, properties []models.Property) {
	data := &cachedResult{Properties: clone(properties)}
	c.local.Set(key, data, c.ttl)

	if c.remote == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to serialize results for key %s", key)
		return
	}
	if err := c.remote.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to cache results for key %s", key)
	}
}

// Purge empties the local tier and deletes every search key in redis.
func (c *twoLevelCache) Purge(ctx context.Context) {
	c.local.Clear()

	if c.remote == nil {
		return
	}

	var keysToDelete []string
	var cursor uint64
	for {
		keys, next, err := c.remote.Scan(ctx, cursor, purgePattern, purgeScanCount).Result()
		if err != nil {
			utils.Logger.WithError(err).Errorf("Redis SCAN failed for pattern '%s'", purgePattern)
			return
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := c.remote.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		utils.Logger.WithError(err).Errorf("Failed deleting %d search cache keys", len(keysToDelete))
		return
	}
	utils.Logger.Infof("Search cache purged, %d keys removed", len(keysToDelete))
}

func clone(properties []models.Property) []models.Property {
	out := make([]models.Property, len(properties))
	copy(out, properties)
	return out
}
