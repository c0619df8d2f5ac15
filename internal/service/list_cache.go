package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// listCache 列表响应的短 TTL 缓存，写操作后失效
// rdb 为 nil 时所有操作直接穿透（单元测试场景）
type listCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func newListCache(rdb *redis.Client, ttl time.Duration) *listCache {
	return &listCache{rdb: rdb, ttl: ttl}
}

func (c *listCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *listCache) set(ctx context.Context, key string, value interface{}) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	// 缓存失败不影响主流程
	c.rdb.Set(ctx, key, raw, c.ttl)
}

func (c *listCache) invalidate(ctx context.Context, key string) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key)
}
