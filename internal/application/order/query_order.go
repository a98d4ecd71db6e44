package order

import (
	"context"

	"github.com/xiebiao/cafe/internal/domain/order"
)

// GetOrderUseCase 顾客查询自己的订单
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建查询订单用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 查询订单
// 教学要点:访问他人订单同样返回"不存在",不暴露订单是否存在
func (uc *GetOrderUseCase) Execute(ctx context.Context, userID, id uint) (*OrderDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderNotFound
	}
	return ToDTO(o), nil
}

// ListOrdersUseCase 管理端订单列表
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest 列表筛选
// Filter取pending/completed;Filter为空时才看Status
type ListOrdersRequest struct {
	Filter string
	Status string
}

// Execute 按创建时间倒序返回订单
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) ([]*OrderDTO, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	list := make([]*OrderDTO, len(orders))
	for i, o := range orders {
		list[i] = ToDTO(o)
	}
	return list, nil
}

func buildFilter(req ListOrdersRequest) (order.ListFilter, error) {
	switch req.Filter {
	case "pending":
		return order.ListFilter{Status: order.StatusPending}, nil
	case "completed":
		return order.ListFilter{Status: order.StatusCompleted}, nil
	}

	if req.Status == "" {
		return order.ListFilter{}, nil
	}
	status, ok := order.ParseStatus(req.Status)
	if !ok {
		return order.ListFilter{}, order.ErrUnknownStatus
	}
	return order.ListFilter{Status: status}, nil
}
