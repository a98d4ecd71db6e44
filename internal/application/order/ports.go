package order

import (
	"context"
)

// TxManager 事务管理器
// 教学要点:fn内的仓储调用通过ctx拿到同一个事务
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 领域事件发布者(RabbitMQ或Nop)
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}
