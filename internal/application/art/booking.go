// Package art 艺术品预订申请:顾客提交,店员接受或拒绝
package art

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/application/catalog"
	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/pkg/clock"
	"github.com/xiebiao/cafe/pkg/metrics"
)

// TxManager 事务管理器
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingUseCase 艺术品预订
type BookingUseCase struct {
	repo      art.Repository
	txManager TxManager
	clock     clock.Clock
	logger    *zap.Logger
}

// NewBookingUseCase 创建预订用例
func NewBookingUseCase(repo art.Repository, txManager TxManager, clk clock.Clock, logger *zap.Logger) *BookingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingUseCase{repo: repo, txManager: txManager, clock: clk, logger: logger}
}

// CreateBookingRequest 预订申请
type CreateBookingRequest struct {
	ArtID    uint
	UserName string
	Phone    string
	Email    string
	Message  string
}

// BookingDTO 预订申请响应
// Art是处理后的作品状态,列表里为空
type BookingDTO struct {
	ID        uint            `json:"id"`
	ArtID     uint            `json:"artId"`
	ArtName   string          `json:"artName"`
	UserName  string          `json:"userName"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email,omitempty"`
	Message   string          `json:"message,omitempty"`
	Status    string          `json:"status"`
	Art       *catalog.ArtDTO `json:"art,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Create 提交预订申请
// 作品必须存在且未售出;申请不改变作品状态,店员接受后才预留
func (uc *BookingUseCase) Create(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	if req.ArtID == 0 {
		return nil, art.ErrMissingFields
	}
	a, err := uc.repo.FindByID(ctx, req.ArtID)
	if err != nil {
		return nil, err
	}

	b, err := art.NewBooking(a, req.UserName, req.Phone, req.Email, req.Message, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.ArtBookingsTotal, "requested")
	uc.logger.Info("art booking requested",
		zap.Uint("booking_id", b.ID),
		zap.Uint("art_id", b.ArtID),
	)
	return toBookingDTO(b, nil), nil
}

// List 管理端分页列表,按申请时间倒序,page从1开始
func (uc *BookingUseCase) List(ctx context.Context, page, pageSize int) ([]*BookingDTO, int64, error) {
	list, total, err := uc.repo.ListBookings(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*BookingDTO, len(list))
	for i, b := range list {
		out[i] = toBookingDTO(b, nil)
	}
	return out, total, nil
}

// Accept 接受申请,作品标记为已预订
// 教学要点:和工作坊报名一样,先锁申请行再锁作品行(固定加锁顺序避免死锁),
// 判断状态、写回,COMMIT后释放锁
func (uc *BookingUseCase) Accept(ctx context.Context, id uint) (*BookingDTO, error) {
	var (
		b *art.Booking
		a *art.Art
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		if b, err = uc.repo.LockBookingByID(txCtx, id); err != nil {
			return err
		}
		if a, err = uc.repo.LockByID(txCtx, b.ArtID); err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := a.Reserve(now); err != nil {
			return err
		}
		b.Accept(now)

		if err := uc.repo.UpdateBookingStatus(txCtx, b); err != nil {
			return err
		}
		return uc.repo.UpdateAvailability(txCtx, a)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.ArtBookingsTotal, "accepted")
	uc.logger.Info("art booking accepted", zap.Uint("booking_id", b.ID), zap.Uint("art_id", a.ID))
	return toBookingDTO(b, a), nil
}

// Reject 拒绝申请
// 作品处于已预订且没有其他已接受的申请时恢复为可预订;已售出的保持不变
func (uc *BookingUseCase) Reject(ctx context.Context, id uint) (*BookingDTO, error) {
	var (
		b *art.Booking
		a *art.Art
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		if b, err = uc.repo.LockBookingByID(txCtx, id); err != nil {
			return err
		}

		now := uc.clock.Now()
		b.Reject(now)
		if err := uc.repo.UpdateBookingStatus(txCtx, b); err != nil {
			return err
		}

		// 作品被删除时只更新申请
		a, err = uc.repo.LockByID(txCtx, b.ArtID)
		if errors.Is(err, art.ErrArtNotFound) {
			a = nil
			return nil
		}
		if err != nil {
			return err
		}
		if a.Availability != art.Reserved {
			return nil
		}

		others, err := uc.repo.HasOtherAccepted(txCtx, a.ID, b.ID)
		if err != nil {
			return err
		}
		if others {
			return nil
		}
		a.Release(now)
		return uc.repo.UpdateAvailability(txCtx, a)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.ArtBookingsTotal, "rejected")
	uc.logger.Info("art booking rejected", zap.Uint("booking_id", b.ID), zap.Uint("art_id", b.ArtID))
	return toBookingDTO(b, a), nil
}

func toBookingDTO(b *art.Booking, a *art.Art) *BookingDTO {
	dto := &BookingDTO{
		ID:        b.ID,
		ArtID:     b.ArtID,
		ArtName:   b.ArtName,
		UserName:  b.UserName,
		Phone:     b.Phone,
		Email:     b.Email,
		Message:   b.Message,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if a != nil {
		dto.Art = catalog.ToArtDTO(a)
	}
	return dto
}
