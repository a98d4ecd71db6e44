// Package metrics 基于Prometheus的指标
//
// 指标在包初始化时注册到默认Registry,由/metrics端点(promhttp.Handler)暴露。
//
// 命名规范：
//   - Counter以_total结尾
//   - Histogram以单位结尾(_seconds)
//   - 标签只用有限取值(method、status、result),不要用user_id、order_id
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path(路由模板)、status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// OrdersCreatedTotal 订单创建成功数
	// 标签：payment_method(PAY_NOW/PAY_AT_COUNTER)
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cafe_orders_created_total",
			Help: "订单创建总数",
		},
		[]string{"payment_method"},
	)

	// OrdersFailedTotal 订单创建失败数
	// 标签：reason(validation/token/conflict/internal)
	OrdersFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cafe_orders_failed_total",
			Help: "订单创建失败总数",
		},
		[]string{"reason"},
	)

	// OrderCreationDuration 订单创建耗时
	OrderCreationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cafe_order_creation_duration_seconds",
			Help:    "订单创建耗时（秒）",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// MenuCacheRequests 菜单缓存访问
	// 标签：result(hit/miss/error)
	MenuCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cafe_menu_cache_requests_total",
			Help: "菜单缓存访问次数",
		},
		[]string{"result"},
	)

	// WorkshopRegistrationsTotal 工作坊报名数
	// 标签：result(confirmed/full)
	WorkshopRegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cafe_workshop_registrations_total",
			Help: "工作坊报名次数",
		},
		[]string{"result"},
	)

	// ArtBookingsTotal 艺术品预订
	// 标签：result(requested/accepted/rejected)
	ArtBookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cafe_art_bookings_total",
			Help: "艺术品预订申请和处理次数",
		},
		[]string{"result"},
	)

	// MessagesPublishedTotal 消息发布数
	// 标签：routing_key、result(success/failure)
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"routing_key", "result"},
	)

	// MessagesConsumedTotal 消息消费数
	// 标签：queue、result(success/failure)
	MessagesConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_consumed_total",
			Help: "消息消费总数",
		},
		[]string{"queue", "result"},
	)

	// CircuitBreakerState 熔断器状态(0=CLOSED 1=OPEN 2=HALF_OPEN)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态",
		},
		[]string{"name"},
	)
)

// 结果标签取值
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultHit      = "hit"
	ResultMiss     = "miss"
	ResultError    = "error"
	ResultRejected = "rejected" // 熔断打开,请求未发出
)

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels ...string) {
	counter.WithLabelValues(labels...).Inc()
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, value float64, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(value)
}
