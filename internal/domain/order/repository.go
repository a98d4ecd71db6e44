package order

import (
	"context"
	"time"
)

// ListFilter 管理端订单列表筛选
// Status为空表示全部
type ListFilter struct {
	Status Status
}

// Repository 订单仓储接口(依赖倒置原则)
// 教学要点:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 事务通过context传递
type Repository interface {
	// Create 创建订单(包含明细)
	// 教学要点:订单号和取餐码的唯一索引冲突返回ErrOrderConflict
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// LockByID 悲观锁查询(SELECT ... FOR UPDATE),必须在事务内调用
	// 教学要点:两个店员同时操作同一订单时,后到的请求会等待并看到最新状态
	LockByID(ctx context.Context, id uint) (*Order, error)

	// List 按筛选条件查询,按创建时间倒序
	List(ctx context.Context, filter ListFilter) ([]*Order, error)

	// Update 更新订单状态和支付状态
	Update(ctx context.Context, order *Order) error

	// Delete 删除订单及明细
	Delete(ctx context.Context, id uint) error

	// ExistsByToken 取餐码是否已被占用
	ExistsByToken(ctx context.Context, token string) (bool, error)

	// CountCreatedBetween 统计[from, to)内创建的订单数
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
