package mq

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/pkg/circuitbreaker"
	"github.com/xiebiao/cafe/pkg/metrics"
)

// publisher Publisher和NopPublisher共同的发布方法
type publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// BreakerPublisher 在熔断器保护下发布消息
// 熔断打开期间直接丢弃消息,下单接口不再被RabbitMQ拖慢
type BreakerPublisher struct {
	next    publisher
	breaker *circuitbreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewBreakerPublisher 包装next
func NewBreakerPublisher(next publisher, breaker *circuitbreaker.CircuitBreaker, logger *zap.Logger) *BreakerPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BreakerPublisher{next: next, breaker: breaker, logger: logger}
}

// Publish 熔断打开时返回circuitbreaker.ErrOpenState
func (p *BreakerPublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	err := p.breaker.Execute(func() error {
		return p.next.Publish(ctx, routingKey, message)
	})
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		metrics.IncCounterVec(metrics.MessagesPublishedTotal, routingKey, metrics.ResultRejected)
		p.logger.Debug("publish skipped, circuit open", zap.String("routing_key", routingKey))
	}
	return err
}

// LogStateChange 作为熔断器OnStateChange回调,记录日志并更新指标
func LogStateChange(logger *zap.Logger) func(name string, from, to circuitbreaker.State) {
	return func(name string, from, to circuitbreaker.State) {
		metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		logger.Warn("circuit breaker state changed",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	}
}
