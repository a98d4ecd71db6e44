package order

import (
	"time"

	"github.com/xiebiao/cafe/internal/domain/order"
)

// OrderDTO 订单响应
type OrderDTO struct {
	ID            uint           `json:"id"`
	OrderID       string         `json:"orderId"`
	OrderToken    string         `json:"orderToken"`
	UserID        uint           `json:"userId"`
	Items         []OrderItemDTO `json:"items"`
	TotalAmount   int64          `json:"totalAmount"` // 分
	PaymentMethod string         `json:"paymentMethod"`
	PaymentStatus string         `json:"paymentStatus"`
	PickupTime    time.Time      `json:"pickupTime"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// OrderItemDTO 订单明细响应
type OrderItemDTO struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// ToDTO 领域对象 → 响应DTO
func ToDTO(o *order.Order) *OrderDTO {
	items := make([]OrderItemDTO, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemDTO{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		}
	}
	return &OrderDTO{
		ID:            o.ID,
		OrderID:       o.OrderID,
		OrderToken:    o.OrderToken,
		UserID:        o.UserID,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		PickupTime:    o.PickupTime,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
