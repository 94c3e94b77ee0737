package report

import (
	"context"
	"time"
)

// Repository 报表聚合查询
type Repository interface {
	// Aggregate 统计created_at落在[from, to)内的订单，没有数据时各项为0
	Aggregate(ctx context.Context, from, to time.Time) (*Report, error)
}

// Cache 报表缓存，值允许在TTL内过期
type Cache interface {
	// Get 命中返回(report, true, nil)，未命中返回(nil, false, nil)
	Get(ctx context.Context, key string) (*Report, bool, error)
	Set(ctx context.Context, key string, r *Report, ttl time.Duration) error
}

// NopCache 不缓存（未启用Redis时使用）
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*Report, bool, error) { return nil, false, nil }

func (NopCache) Set(context.Context, string, *Report, time.Duration) error { return nil }
