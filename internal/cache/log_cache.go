package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"exercise-tracker/internal/model"
)

const epochKey = "tracker:log:epoch"

// LogCache keeps rendered log responses in redis. Cached entries expire on a
// short TTL. A per-user dirty marker set on every exercise write keeps reads
// off the cache until the marker expires, and the epoch counter, bumped on
// bulk deletes, fences off every key cached before the wipe.
//
// The marker suppresses reads without evicting keys, so an entry cached
// before a write can be served again once the marker lapses, stale by at
// most logTTL. The tracker accepts that window in exchange for not scanning
// the keyspace on every write.
type LogCache struct {
	client         *redisv9.Client
	logTTL         time.Duration
	dirtyMarkerTTL time.Duration
}

func NewLogCache(client *redisv9.Client, logTTL, dirtyMarkerTTL time.Duration) *LogCache {
	if logTTL <= 0 {
		logTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &LogCache{
		client:         client,
		logTTL:         logTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *LogCache) Get(ctx context.Context, key string) (*model.Log, bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get log failed: %w", err)
	}

	var logView model.Log
	if err := json.Unmarshal([]byte(raw), &logView); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached log failed: %w", err)
	}
	return &logView, true, nil
}

func (c *LogCache) Set(ctx context.Context, key string, logView *model.Log) error {
	payload, err := json.Marshal(logView)
	if err != nil {
		return fmt.Errorf("marshal log cache failed: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.logTTL).Err(); err != nil {
		return fmt.Errorf("redis set log failed: %w", err)
	}
	return nil
}

func (c *LogCache) MarkDirty(ctx context.Context, userID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(userID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *LogCache) IsDirty(ctx context.Context, userID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *LogCache) Epoch(ctx context.Context) (int64, error) {
	epoch, err := c.client.Get(ctx, epochKey).Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get log epoch failed: %w", err)
	}
	return epoch, nil
}

func (c *LogCache) BumpEpoch(ctx context.Context) error {
	if err := c.client.Incr(ctx, epochKey).Err(); err != nil {
		return fmt.Errorf("redis bump log epoch failed: %w", err)
	}
	return nil
}

func (c *LogCache) dirtyKey(userID uint) string {
	return fmt.Sprintf("tracker:log:dirty:%d", userID)
}
