package workshop

import (
	"context"
)

// Repository 工作坊仓储接口
type Repository interface {
	// List 全部工作坊,按日期升序
	List(ctx context.Context) ([]*Workshop, error)

	// ListMostRegistered 报名人数最多的工作坊,最多limit个
	ListMostRegistered(ctx context.Context, limit int) ([]*Workshop, error)

	// LockByID 悲观锁查询(SELECT ... FOR UPDATE),必须在事务内调用
	LockByID(ctx context.Context, id uint) (*Workshop, error)

	// UpdateRegisteredCount 写回已报名人数
	UpdateRegisteredCount(ctx context.Context, w *Workshop) error

	// CreateRegistration 保存报名记录
	CreateRegistration(ctx context.Context, r *Registration) error

	// ListRegistrations 全部报名记录,按创建时间倒序
	ListRegistrations(ctx context.Context) ([]*Registration, error)
}
