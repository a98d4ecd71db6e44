package dto

import "time"

// CreateOrderRequest HTTP下单请求
// 空购物车、支付方式、取餐时间、数量这些业务校验交给应用层,
// 这样客户端拿到的是对应的业务错误码而不是笼统的参数错误
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"max=50,dive"`
	PaymentMethod string             `json:"paymentMethod" binding:"max=20" example:"PAY_NOW"`
	PickupTime    time.Time          `json:"pickupTime" example:"2024-01-15T11:00:00+05:30"`
}

// OrderItemRequest 下单明细
type OrderItemRequest struct {
	MenuItemID string `json:"menuItemId" binding:"max=64" example:"itm_robusta_iced_americano"`
	Quantity   int    `json:"quantity" binding:"max=99" example:"2"`
}

// ListOrdersQuery 管理端订单列表筛选
// filter=pending|completed优先于status
type ListOrdersQuery struct {
	Filter string `form:"filter" binding:"omitempty,oneof=pending completed" example:"pending"`
	Status string `form:"status" binding:"omitempty,max=16" example:"COMPLETED"`
}
