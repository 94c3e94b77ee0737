package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/report"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
	"github.com/xiebiao/inventory/pkg/metrics"
)

// ReportCache 报表缓存（Redis）
// 1. Key: {prefix}:report:{start}:{end}
// 2. 值为JSON，金额保存为字符串，避免精度丢失
// 3. Redis调用受熔断器保护，连续失败后直接返回错误，由调用方降级查库
type ReportCache struct {
	client  *redis.Client
	prefix  string
	breaker *circuitbreaker.CircuitBreaker
}

var _ report.Cache = (*ReportCache)(nil)

// NewReportCache 创建报表缓存
func NewReportCache(client *redis.Client, cfg config.CacheConfig, log *zap.Logger) *ReportCache {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	breaker := circuitbreaker.NewCircuitBreaker("report-cache", circuitbreaker.Config{
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= maxFailures
		},
	})
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Warn("熔断器状态变化",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})

	return &ReportCache{
		client:  client,
		prefix:  cfg.KeyPrefix,
		breaker: breaker,
	}
}

// cachedReport 缓存中的报表
type cachedReport struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	TotalUnitsSold int64           `json:"total_units_sold"`
	TotalReturns   int64           `json:"total_returns"`
}

// Get 读取缓存，redis.Nil视为未命中
func (c *ReportCache) Get(ctx context.Context, key string) (*report.Report, bool, error) {
	var data []byte
	err := c.execute(func() error {
		b, err := c.client.Get(ctx, c.key(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		data = b
		return err
	})
	if err != nil {
		return nil, false, apperrors.ErrRedisError.WithErr(err)
	}
	if data == nil {
		return nil, false, nil
	}

	var cached cachedReport
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, apperrors.Wrap(err, "解析报表缓存失败")
	}
	return &report.Report{
		TotalRevenue:   cached.TotalRevenue,
		TotalProfit:    cached.TotalProfit,
		TotalUnitsSold: cached.TotalUnitsSold,
		TotalReturns:   cached.TotalReturns,
	}, true, nil
}

// Set 写入缓存并设置TTL
func (c *ReportCache) Set(ctx context.Context, key string, r *report.Report, ttl time.Duration) error {
	data, err := json.Marshal(cachedReport{
		TotalRevenue:   r.TotalRevenue,
		TotalProfit:    r.TotalProfit,
		TotalUnitsSold: r.TotalUnitsSold,
		TotalReturns:   r.TotalReturns,
	})
	if err != nil {
		return apperrors.Wrap(err, "序列化报表失败")
	}

	err = c.execute(func() error {
		return c.client.Set(ctx, c.key(key), data, ttl).Err()
	})
	if err != nil {
		return apperrors.ErrRedisError.WithErr(err)
	}
	return nil
}

// execute 熔断器保护下调用Redis，并记录熔断器指标
func (c *ReportCache) execute(fn func() error) error {
	err := c.breaker.Execute(fn)

	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{
		"name":   c.breaker.Name(),
		"result": result,
	})
	return err
}

func (c *ReportCache) key(k string) string {
	if c.prefix == "" {
		return "report:" + k
	}
	return c.prefix + ":report:" + k
}
