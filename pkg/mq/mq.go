// Package mq 基于RabbitMQ(amqp091)的消息发布与消费
//
// 教学要点：
//   - Topic Exchange + Routing Key(如order.created)实现按事件类型订阅
//   - 消息持久化(DeliveryMode=Persistent) + 手动ACK,保证至少一次投递
//   - 处理失败Nack(requeue=true)重新入队,消费方需要幂等
//   - 永久性错误(包装ErrPermanent)Nack(requeue=false),不再重投
package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xiebiao/cafe/pkg/metrics"
)

// Publisher 消息发布者
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *zap.Logger
}

// NewPublisher 连接RabbitMQ并声明Exchange
func NewPublisher(url, exchange, exchangeType string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	if err := declareExchange(channel, exchange, exchangeType); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("message publisher ready",
		zap.String("exchange", exchange),
		zap.String("type", exchangeType),
	)

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Publish 以JSON发布消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		metrics.IncCounterVec(metrics.MessagesPublishedTotal, routingKey, metrics.ResultFailure)
		return fmt.Errorf("发布消息失败: %w", err)
	}

	metrics.IncCounterVec(metrics.MessagesPublishedTotal, routingKey, metrics.ResultSuccess)
	p.logger.Debug("message published",
		zap.String("routing_key", routingKey),
		zap.Int("bytes", len(body)),
	)
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NopPublisher 未配置RabbitMQ时使用,丢弃所有消息
type NopPublisher struct{}

// Publish 什么都不做
func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// Close 什么都不做
func (NopPublisher) Close() error { return nil }

// ErrPermanent 重试也不会成功的错误(消息体损坏、缺字段等)
// handler用 fmt.Errorf("...: %w", mq.ErrPermanent) 包装后,消息被丢弃而不是重新入队
var ErrPermanent = errors.New("permanent message failure")

// Handler 消息处理函数,返回错误时消息重新入队,永久性错误除外
type Handler func(ctx context.Context, routingKey string, body []byte) error

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

// NewConsumer 声明Exchange和Queue,并按routingKeys绑定
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, logger *zap.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	closeAll := func() {
		channel.Close()
		conn.Close()
	}

	if err := declareExchange(channel, exchange, exchangeType); err != nil {
		closeAll()
		return nil, err
	}

	q, err := channel.QueueDeclare(
		queue,
		true,  // Durable
		false, // AutoDelete
		false, // Exclusive
		false, // NoWait
		nil,
	)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("声明Queue失败: %w", err)
	}

	for _, routingKey := range routingKeys {
		if err := channel.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			closeAll()
			return nil, fmt.Errorf("绑定Queue失败: %w", err)
		}
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("message consumer ready",
		zap.String("queue", q.Name),
		zap.Strings("routing_keys", routingKeys),
	)

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   q.Name,
		logger:  logger,
	}, nil
}

// Consume 阻塞消费,直到ctx取消或Channel关闭
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	// 每次只取一条,处理完再取下一条
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // Consumer标签
		false, // AutoAck
		false, // Exclusive
		false, // NoLocal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	c.logger.Info("consuming", zap.String("queue", c.queue))
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopped", zap.String("queue", c.queue))
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("消息Channel已关闭")
			}
			dispatch(ctx, c.queue, msg, handler, c.logger)
		}
	}
}

// dispatch 调用handler后ACK
// 失败时:永久性错误Nack不重新入队,其他错误Nack重新入队
// Qos(1)下毒消息一直重新入队会堵住整个队列
func dispatch(ctx context.Context, queue string, msg amqp.Delivery, handler Handler, logger *zap.Logger) {
	if err := handler(ctx, msg.RoutingKey, msg.Body); err != nil {
		metrics.IncCounterVec(metrics.MessagesConsumedTotal, queue, metrics.ResultFailure)

		requeue := !errors.Is(err, ErrPermanent)
		if requeue {
			logger.Warn("message handling failed, requeue",
				zap.String("routing_key", msg.RoutingKey),
				zap.Error(err),
			)
		} else {
			logger.Warn("message handling failed permanently, drop",
				zap.String("routing_key", msg.RoutingKey),
				zap.Uint64("delivery_tag", msg.DeliveryTag),
				zap.Error(err),
			)
		}
		if nackErr := msg.Nack(false, requeue); nackErr != nil {
			logger.Error("nack failed", zap.Error(nackErr))
		}
		return
	}

	metrics.IncCounterVec(metrics.MessagesConsumedTotal, queue, metrics.ResultSuccess)
	if ackErr := msg.Ack(false); ackErr != nil {
		logger.Error("ack failed", zap.Error(ackErr))
	}
}

// Close 关闭Channel和连接
func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

func declareExchange(channel *amqp.Channel, exchange, exchangeType string) error {
	err := channel.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("声明Exchange失败: %w", err)
	}
	return nil
}
