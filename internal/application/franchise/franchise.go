package franchise

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/franchise"
	"github.com/xiebiao/cafe/pkg/clock"
)

// SubmittedMessage 提交成功后给用户的提示
const SubmittedMessage = "We'll contact you soon."

// EnquiryUseCase 加盟咨询
type EnquiryUseCase struct {
	repo   franchise.Repository
	clock  clock.Clock
	logger *zap.Logger
}

// NewEnquiryUseCase 创建加盟咨询用例
func NewEnquiryUseCase(repo franchise.Repository, clk clock.Clock, logger *zap.Logger) *EnquiryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnquiryUseCase{repo: repo, clock: clk, logger: logger}
}

// SubmitRequest 提交咨询
type SubmitRequest struct {
	FullName        string
	Phone           string
	Email           string
	City            string
	InvestmentRange string
	Message         string
}

// EnquiryDTO 咨询响应
type EnquiryDTO struct {
	ID              uint      `json:"id"`
	FullName        string    `json:"fullName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	City            string    `json:"city"`
	InvestmentRange string    `json:"investmentRange,omitempty"`
	Message         string    `json:"message,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Submit 提交咨询
func (uc *EnquiryUseCase) Submit(ctx context.Context, req SubmitRequest) (*EnquiryDTO, error) {
	e, err := franchise.NewEnquiry(req.FullName, req.Phone, req.Email, req.City, req.InvestmentRange, req.Message, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.logger.Info("franchise enquiry submitted", zap.Uint("id", e.ID), zap.String("city", e.City))
	return toDTO(e), nil
}

// List 管理端分页列表,按提交时间倒序,page从1开始
func (uc *EnquiryUseCase) List(ctx context.Context, page, pageSize int) ([]*EnquiryDTO, int64, error) {
	list, total, err := uc.repo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*EnquiryDTO, len(list))
	for i, e := range list {
		out[i] = toDTO(e)
	}
	return out, total, nil
}

// UpdateStatus 更新跟进状态(NEW/CONTACTED)
func (uc *EnquiryUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*EnquiryDTO, error) {
	s := franchise.Status(status)
	if !s.Valid() {
		return nil, franchise.ErrInvalidStatus
	}
	e, err := uc.repo.UpdateStatus(ctx, id, s)
	if err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func toDTO(e *franchise.Enquiry) *EnquiryDTO {
	return &EnquiryDTO{
		ID:              e.ID,
		FullName:        e.FullName,
		Phone:           e.Phone,
		Email:           e.Email,
		City:            e.City,
		InvestmentRange: e.InvestmentRange,
		Message:         e.Message,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
