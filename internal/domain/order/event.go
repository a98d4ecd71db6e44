package order

import "time"

// EventOrderCreated 订单创建事件的路由键
const EventOrderCreated = "order.created"

// CreatedEvent 订单创建事件,后厨按取餐时间备餐
type CreatedEvent struct {
	OrderID       string             `json:"orderId"`
	OrderToken    string             `json:"orderToken"`
	UserID        uint               `json:"userId"`
	TotalAmount   int64              `json:"totalAmount"`
	PaymentMethod PaymentMethod      `json:"paymentMethod"`
	PickupTime    time.Time          `json:"pickupTime"`
	Items         []CreatedEventItem `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// CreatedEventItem 事件中的明细
type CreatedEventItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// NewCreatedEvent 由订单构建事件
func NewCreatedEvent(o *Order) CreatedEvent {
	items := make([]CreatedEventItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = CreatedEventItem{MenuItemID: it.MenuItemID, Name: it.Name, Quantity: it.Quantity}
	}
	return CreatedEvent{
		OrderID:       o.OrderID,
		OrderToken:    o.OrderToken,
		UserID:        o.UserID,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		PickupTime:    o.PickupTime,
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}
