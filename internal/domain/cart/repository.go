package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// FindByUserID 查询用户购物车,不存在返回ErrCartNotFound
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)

	// Save 保存购物车(不存在则创建),整体覆盖条目
	Save(ctx context.Context, cart *Cart) error

	// ClearByUserID 清空用户购物车,购物车不存在时不报错
	// 教学要点:下单时在订单事务内调用,与订单一起提交或回滚
	ClearByUserID(ctx context.Context, userID uint) error
}
