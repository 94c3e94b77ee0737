// Package metrics 提供基于Prometheus的指标收集
//
// 指标分为四组：
//   - HTTP请求：请求数、耗时、处理中的请求数（由middleware.Metrics记录）
//   - 订单：创建成功/失败次数、创建耗时
//   - 报表：缓存命中情况、聚合查询耗时
//   - 基础设施：请求事务提交/回滚次数、熔断器状态
//
// # 使用示例
//
//	// 1. 启动时初始化（重复调用无副作用）
//	metrics.InitMetrics()
//
//	// 2. 暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 业务代码记录指标
//	start := time.Now()
//	defer metrics.ObserveHistogram(metrics.OrderCreationDuration, time.Since(start).Seconds())
//
// 所有便捷函数对未初始化的指标是安全的（直接忽略），
// 单元测试不调用InitMetrics也不会panic。
//
// # 命名规范
//
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾（`_seconds`）
//  3. 避免高基数标签：path使用路由模板（/api/v1/products/:id），不用真实URL
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// OrdersCreatedTotal 订单创建成功总数
	OrdersCreatedTotal prometheus.Counter

	// OrdersFailedTotal 订单创建失败总数
	OrdersFailedTotal prometheus.Counter

	// OrderCreationDuration 订单创建耗时（一次存储过程调用或一个事务）
	OrderCreationDuration prometheus.Histogram

	// OrdersInProgress 正在创建的订单数
	OrdersInProgress prometheus.Gauge

	// ReportCacheRequests 报表缓存访问次数
	// 标签：result（hit/miss/error）
	ReportCacheRequests *prometheus.CounterVec

	// ReportQueryDuration 报表聚合查询耗时
	ReportQueryDuration prometheus.Histogram

	// DBTransactionsTotal 请求级事务结束次数
	// 标签：result（commit/rollback/commit_failed）
	DBTransactionsTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签：name、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标，注册到默认Registry
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		OrdersCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "订单创建总数",
			},
		)

		OrdersFailedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_failed_total",
				Help: "订单创建失败总数",
			},
		)

		OrderCreationDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_creation_duration_seconds",
				Help:    "订单创建耗时（秒）",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		)

		OrdersInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "orders_in_progress",
				Help: "正在处理的订单数",
			},
		)

		ReportCacheRequests = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_cache_requests_total",
				Help: "报表缓存访问次数",
			},
			[]string{"result"},
		)

		ReportQueryDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_query_duration_seconds",
				Help:    "报表聚合查询耗时（秒）",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		)

		DBTransactionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_transactions_total",
				Help: "请求级数据库事务结束次数",
			},
			[]string{"result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		CircuitBreakerRequests = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuit_breaker_requests_total",
				Help: "熔断器请求总数",
			},
			[]string{"name", "result"},
		)
	})
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram == nil {
		return
	}
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
