package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/order"
	"github.com/xiebiao/cafe/pkg/mq"
)

// ticketPrinter 把order.created事件转成出单小票
type ticketPrinter struct {
	loc    *time.Location
	logger *zap.Logger
}

func newTicketPrinter(loc *time.Location, logger *zap.Logger) *ticketPrinter {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ticketPrinter{loc: loc, logger: logger}
}

// Handle 实现mq.Handler
// 未知路由键直接ACK;消息体损坏或缺字段返回mq.ErrPermanent,消息被丢弃不再重投
func (p *ticketPrinter) Handle(_ context.Context, routingKey string, body []byte) error {
	if routingKey != order.EventOrderCreated {
		p.logger.Debug("ignore event", zap.String("routing_key", routingKey))
		return nil
	}

	var evt order.CreatedEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return fmt.Errorf("解析订单事件失败: %w: %v", mq.ErrPermanent, err)
	}
	if evt.OrderID == "" || evt.OrderToken == "" {
		return fmt.Errorf("订单事件缺少orderId或orderToken: %w", mq.ErrPermanent)
	}

	p.logger.Info("kitchen ticket",
		zap.String("order_id", evt.OrderID),
		zap.String("order_token", evt.OrderToken),
		zap.String("pickup_time", evt.PickupTime.In(p.loc).Format("15:04")),
		zap.String("payment_method", string(evt.PaymentMethod)),
		zap.String("items", formatItems(evt.Items)),
	)
	return nil
}

// formatItems 形如 "2x Latte, 1x Mocha"
func formatItems(items []order.CreatedEventItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = it.MenuItemID
		}
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, name))
	}
	return strings.Join(parts, ", ")
}
