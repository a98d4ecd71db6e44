package art

import (
	"context"
)

// Repository 艺术品和预订申请仓储接口
type Repository interface {
	// List 按状态升序(可预订在前),同状态按创建时间倒序
	List(ctx context.Context) ([]*Art, error)

	// ListByMoodTag 带有mood标签的作品,最多limit个;mood为空时不过滤
	ListByMoodTag(ctx context.Context, mood string, limit int) ([]*Art, error)

	// ListUnsoldByPrice 未售出的作品,按价格倒序,最多limit个
	ListUnsoldByPrice(ctx context.Context, limit int) ([]*Art, error)

	// FindByID 不存在返回ErrArtNotFound
	FindByID(ctx context.Context, id uint) (*Art, error)

	// LockByID 悲观锁查询(SELECT ... FOR UPDATE),必须在事务内调用
	LockByID(ctx context.Context, id uint) (*Art, error)

	// UpdateAvailability 写回作品状态
	UpdateAvailability(ctx context.Context, a *Art) error

	// CreateBooking 保存预订申请
	CreateBooking(ctx context.Context, b *Booking) error

	// LockBookingByID 悲观锁查询预订申请,必须在事务内调用
	LockBookingByID(ctx context.Context, id uint) (*Booking, error)

	// UpdateBookingStatus 写回申请状态
	UpdateBookingStatus(ctx context.Context, b *Booking) error

	// ListBookings 按创建时间倒序分页,同时返回总数
	ListBookings(ctx context.Context, offset, limit int) ([]*Booking, int64, error)

	// HasOtherAccepted 同一作品除excludeID之外是否还有已接受的申请
	HasOtherAccepted(ctx context.Context, artID, excludeID uint) (bool, error)
}
