// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP指标：请求总数、耗时分布、处理中的请求数（由middleware.Metrics()记录）
//   - 业务指标：卖家/图书操作次数，按操作名和结果打标签
//   - 基础设施指标：缓存命中率、事件发布结果、熔断器状态
//
// 所有指标通过promauto注册到默认Registry，由/metrics端点暴露：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 操作结果标签值
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板，如/api/v1/seller/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// OperationsTotal 业务操作总数
	// 标签：operation（create_seller、delete_seller等）、result（success/failure）
	OperationsTotal *prometheus.CounterVec

	// BooksCascadeDeletedTotal 卖家删除时级联删除的图书数
	BooksCascadeDeletedTotal prometheus.Counter

	// 基础设施指标

	// CacheRequestsTotal 卖家详情缓存访问次数
	// 标签：result（hit/miss/error/stale）
	CacheRequestsTotal *prometheus.CounterVec

	// EventsPublishedTotal 领域事件发布次数
	// 标签：routing_key、result
	EventsPublishedTotal *prometheus.CounterVec

	// BreakerState 熔断器状态（0=CLOSED 1=OPEN 2=HALF_OPEN）
	// 标签：name（redis、rabbitmq）
	BreakerState *prometheus.GaugeVec
)

// InitMetrics 初始化所有Prometheus指标
// 可重复调用，只有第一次生效
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
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 1ms、10ms、100ms、500ms、1s、5s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		OperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_operations_total",
				Help: "卖家与图书业务操作总数",
			},
			[]string{"operation", "result"},
		)

		BooksCascadeDeletedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_books_cascade_deleted_total",
				Help: "随卖家一起删除的图书总数",
			},
		)

		CacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seller_cache_requests_total",
				Help: "卖家详情缓存访问次数",
			},
			[]string{"result"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_published_total",
				Help: "领域事件发布次数",
			},
			[]string{"routing_key", "result"},
		)

		BreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED 1=OPEN 2=HALF_OPEN）",
			},
			[]string{"name"},
		)
	})
}

// RecordOperation 记录一次业务操作结果
func RecordOperation(operation string, err error) {
	InitMetrics()
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	OperationsTotal.With(prometheus.Labels{"operation": operation, "result": result}).Inc()
}

// RecordCascade 记录级联删除的图书数
func RecordCascade(n int64) {
	InitMetrics()
	if n > 0 {
		BooksCascadeDeletedTotal.Add(float64(n))
	}
}

// RecordCache 记录缓存访问结果（hit/miss/error/stale，stale为放弃的过期回填）
func RecordCache(result string) {
	InitMetrics()
	CacheRequestsTotal.With(prometheus.Labels{"result": result}).Inc()
}

// RecordPublish 记录事件发布结果
func RecordPublish(routingKey string, err error) {
	InitMetrics()
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	EventsPublishedTotal.With(prometheus.Labels{"routing_key": routingKey, "result": result}).Inc()
}

// RecordBreakerState 记录熔断器当前状态
func RecordBreakerState(name string, state int) {
	InitMetrics()
	BreakerState.With(prometheus.Labels{"name": name}).Set(float64(state))
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
