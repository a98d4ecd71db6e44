package franchise

import (
	"context"
)

// Repository 加盟咨询仓储接口
type Repository interface {
	Create(ctx context.Context, e *Enquiry) error

	// List 按创建时间倒序分页,同时返回总数
	List(ctx context.Context, offset, limit int) ([]*Enquiry, int64, error)

	// UpdateStatus 更新状态并返回最新记录,不存在返回ErrEnquiryNotFound
	UpdateStatus(ctx context.Context, id uint, status Status) (*Enquiry, error)
}
