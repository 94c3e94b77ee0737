package report

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/report"
	"github.com/xiebiao/inventory/pkg/metrics"
	"github.com/xiebiao/inventory/pkg/tracing"
)

const tracerName = "inventory/application/report"

// GetReportUseCase 销售报表用例（Cache-Aside）
// 1. 先读缓存，命中直接返回
// 2. 未命中查询数据库并回写缓存
// 3. 缓存出错只记日志，降级为直接查库
type GetReportUseCase struct {
	repo  report.Repository
	cache report.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewGetReportUseCase 创建报表用例，cache为nil时不缓存
func NewGetReportUseCase(repo report.Repository, cache report.Cache, ttl time.Duration, log *zap.Logger) *GetReportUseCase {
	if cache == nil {
		cache = report.NopCache{}
	}
	return &GetReportUseCase{repo: repo, cache: cache, ttl: ttl, log: log}
}

// Execute 统计start到end（含）之间的订单
// 日期格式错误或start晚于end时不访问缓存与数据库
func (uc *GetReportUseCase) Execute(ctx context.Context, start, end string) (*report.Report, error) {
	dr, err := report.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "report.Get")
	defer span.End()
	span.SetAttributes(attribute.String("report.range", dr.Key()))

	// 1. 读缓存
	key := dr.Key()
	if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
		metrics.IncCounterVec(metrics.ReportCacheRequests, map[string]string{"result": "error"})
		uc.log.Warn("读取报表缓存失败", zap.String("key", key), zap.Error(err))
	} else if ok {
		metrics.IncCounterVec(metrics.ReportCacheRequests, map[string]string{"result": "hit"})
		span.SetAttributes(attribute.Bool("report.cache_hit", true))
		return cached, nil
	} else {
		metrics.IncCounterVec(metrics.ReportCacheRequests, map[string]string{"result": "miss"})
	}

	// 2. 查询数据库
	from, to := dr.Bounds()
	queryStart := time.Now()
	r, err := uc.repo.Aggregate(ctx, from, to)
	metrics.ObserveHistogram(metrics.ReportQueryDuration, time.Since(queryStart).Seconds())
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	// 3. 回写缓存
	if err := uc.cache.Set(ctx, key, r, uc.ttl); err != nil {
		uc.log.Warn("写入报表缓存失败", zap.String("key", key), zap.Error(err))
	}
	return r, nil
}
